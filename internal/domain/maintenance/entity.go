// internal/domain/maintenance/entity.go
package maintenance

type Status string

const (
	StatusPending Status = "Pendente"
	StatusDone    Status = "Feito"
)

// Maintenance is a repair or service on a property (manutenção).
type Maintenance struct {
	ID            string  `json:"id"`
	PropertyID    string  `json:"imovelId"`
	Description   string  `json:"descricao"`
	Date          string  `json:"data"`
	Value         float64 `json:"valor"`
	Responsible   string  `json:"responsavel"`
	Status        Status  `json:"status"`
	CreatedAt     string  `json:"criadoEm"`
	PropertyTitle string  `json:"imovelTitulo,omitempty"`
	PropertyAddr  string  `json:"imovelEndereco,omitempty"`
}

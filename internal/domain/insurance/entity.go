// internal/domain/insurance/entity.go
package insurance

// Insurance is a policy covering a property (seguro).
type Insurance struct {
	ID            string  `json:"id"`
	PropertyID    string  `json:"imovelId"`
	Description   string  `json:"descricao"`
	Value         float64 `json:"valor"`
	StartDate     string  `json:"dataInicio"`
	EndDate       string  `json:"dataFim"`
	Insurer       string  `json:"seguradora"`
	Policy        string  `json:"apolice"`
	CreatedAt     string  `json:"criadoEm"`
	PropertyTitle string  `json:"imovelTitulo,omitempty"`
}

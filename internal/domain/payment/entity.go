// internal/domain/payment/entity.go
package payment

type Status string

const (
	StatusAwaiting Status = "Aguardando"
	StatusPaid     Status = "Pago"
	StatusOverdue  Status = "Atrasado"
	StatusAdvance  Status = "Adiantado"
)

// Payment is one monthly rent receivable (recebimento).
type Payment struct {
	ID            string  `json:"id"`
	LeaseID       string  `json:"contratoId"`
	Competence    string  `json:"competencia"`
	ExpectedValue float64 `json:"valorPrevisto"`
	PaidValue     float64 `json:"valorPago"`
	PaidAt        string  `json:"dataPagamento,omitempty"`
	Status        Status  `json:"status"`
	CreatedAt     string  `json:"criadoEm"`
	PropertyTitle string  `json:"imovelTitulo,omitempty"`
	TenantName    string  `json:"locatarioNome,omitempty"`
}

// MonthTotal is the received amount of a competence month.
type MonthTotal struct {
	Total float64 `json:"total"`
}

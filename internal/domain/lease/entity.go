// internal/domain/lease/entity.go
package lease

import "rental-console/internal/domain/adjustment"

type Status string

const (
	StatusActive    Status = "Ativo"
	StatusEnded     Status = "Encerrado"
	StatusSuspended Status = "Suspenso"
)

// Lease is a rental contract between a tenant and a property (contrato).
type Lease struct {
	ID            string  `json:"id"`
	PropertyID    string  `json:"imovelId"`
	TenantID      string  `json:"locatarioId"`
	StartDate     string  `json:"dataInicio"`
	EndDate       string  `json:"dataFim"`
	Rent          float64 `json:"valorAluguel"`
	Insurance     float64 `json:"valorSeguro"`
	DueDay        int     `json:"diaVencimento"`
	Status        Status  `json:"status"`
	PDFPath       string  `json:"caminhoDocumentoPDF"`
	CreatedAt     string  `json:"criadoEm"`
	PropertyTitle string  `json:"imovelTitulo,omitempty"`
	TenantName    string  `json:"locatarioNome,omitempty"`
}

// Details is a lease with its billing totals and rent history.
type Details struct {
	Lease
	PaymentCount  int                     `json:"totalRecebimentos"`
	PaidCount     int                     `json:"recebimentosPagos"`
	OverdueCount  int                     `json:"recebimentosAtrasados"`
	TotalReceived float64                 `json:"totalRecebido"`
	History       []adjustment.Adjustment `json:"historicosReajuste"`
}

// internal/domain/transaction/entity.go
package transaction

type Kind string

const (
	KindIncome  Kind = "Receita"
	KindExpense Kind = "Despesa"
)

type Category string

const (
	CategoryMaintenance Category = "Manutencao"
	CategoryPropertyTax Category = "IPTU"
	CategoryInsurance   Category = "Seguro"
	CategoryOther       Category = "Outros"
)

type Status string

const (
	StatusPending   Status = "Pendente"
	StatusPaid      Status = "Pago"
	StatusReceived  Status = "Recebido"
	StatusCancelled Status = "Cancelado"
)

// Settle actions, as the backend names them in the route.
const (
	ActionPay     = "pagar"
	ActionReceive = "receber"
	ActionCancel  = "cancelar"
)

// Transaction is a financial movement (movimentação) optionally tied to a property.
type Transaction struct {
	ID            string   `json:"id"`
	PropertyID    string   `json:"imovelId,omitempty"`
	Kind          Kind     `json:"tipo"`
	Category      Category `json:"categoria"`
	Description   string   `json:"descricao"`
	Value         float64  `json:"valor"`
	Date          string   `json:"data"`
	Status        Status   `json:"status"`
	CreatedAt     string   `json:"criadoEm"`
	PropertyTitle string   `json:"imovelTitulo,omitempty"`
}

// PeriodBalance totals a date range.
type PeriodBalance struct {
	Income  float64 `json:"totalReceitas"`
	Expense float64 `json:"totalDespesas"`
	Balance float64 `json:"saldo"`
}

// MonthReport is one month of the annual report.
type MonthReport struct {
	Month   int     `json:"mes"`
	Income  float64 `json:"receitas"`
	Expense float64 `json:"despesas"`
	Balance float64 `json:"saldo"`
}

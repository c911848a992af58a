// internal/domain/dashboard/entity.go
package dashboard

// Summary is the headline block of the dashboard (resumo).
type Summary struct {
	TotalProperties    int     `json:"totalImoveis"`
	ActiveProperties   int     `json:"imoveisAtivos"`
	TotalTenants       int     `json:"totalLocatarios"`
	ActiveLeases       int     `json:"contratosAtivos"`
	PendingPayments    int     `json:"recebimentosPendentes"`
	PendingMaintenance int     `json:"manutencoesPendentes"`
	MonthlyIncome      float64 `json:"receitaMensal"`
	MonthlyExpense     float64 `json:"despesaMensal"`
	MonthlyBalance     float64 `json:"saldoMensal"`
}

// ChartPoint is one month of the income/expense chart.
type ChartPoint struct {
	Month   string  `json:"mes"`
	Income  float64 `json:"receita"`
	Expense float64 `json:"despesa"`
}

// ExpiringLease is a lease ending soon.
type ExpiringLease struct {
	ID            string `json:"id"`
	PropertyTitle string `json:"imovelTitulo"`
	TenantName    string `json:"locatarioNome"`
	EndDate       string `json:"dataFim"`
	DaysToExpiry  int    `json:"diasParaVencimento"`
}

// PendingMaintenance is an open maintenance item.
type PendingMaintenance struct {
	ID            string  `json:"id"`
	PropertyTitle string  `json:"imovelTitulo"`
	Description   string  `json:"descricao"`
	Date          string  `json:"data"`
	Value         float64 `json:"valor"`
}

// DetailedStats groups the secondary indicators.
type DetailedStats struct {
	YearReceived            float64 `json:"totalRecebidoAno"`
	YearExpenses            float64 `json:"totalDespesasAno"`
	YearBalance             float64 `json:"saldoAno"`
	DefaultingTenants       int     `json:"locatariosInadimplentes"`
	TotalOverdue            float64 `json:"totalAtrasado"`
	DelinquencyPercent      float64 `json:"percentualInadimplencia"`
	MostProfitableMonth     string  `json:"mesMaisRentavel"`
	LeasesEndingNextMonth   int     `json:"contratosVencendoProximoMes"`
	NextMonthIncomeForecast float64 `json:"previsaoReceitaProximoMes"`
}

// internal/domain/payment/dto.go
package payment

import "rental-console/internal/pkg/calc"

type CreatePaymentRequest struct {
	LeaseID       string  `json:"contratoId" binding:"required,uuid"`
	Competence    string  `json:"competencia" binding:"required,isodate"`
	ExpectedValue float64 `json:"valorPrevisto" binding:"min=0.01"`
}

func (r *CreatePaymentRequest) Normalize() {
	r.Competence = calc.ToAPIDate(r.Competence)
}

type PayRequest struct {
	PaidValue float64 `json:"valorPago" binding:"min=0.01"`
	PaidAt    string  `json:"dataPagamento" binding:"required,isodate"`
}

func (r *PayRequest) Normalize() {
	r.PaidAt = calc.ToAPIDate(r.PaidAt)
}

// GenerateRequest asks the backend to create every receivable of a lease period.
type GenerateRequest struct {
	LeaseID   string  `json:"contratoId" binding:"required,uuid"`
	StartDate string  `json:"dataInicio" binding:"required,isodate"`
	EndDate   string  `json:"dataFim" binding:"required,isodate,afterdate=dataInicio"`
	Rent      float64 `json:"valorAluguel" binding:"min=0.01"`
	DueDay    int     `json:"diaVencimento" binding:"min=1,max=31"`
}

func (r *GenerateRequest) Normalize() {
	r.StartDate = calc.ToAPIDate(r.StartDate)
	r.EndDate = calc.ToAPIDate(r.EndDate)
}

// View adds the labels the payment tables show.
type View struct {
	Payment
	CompetenceLabel string `json:"competenciaFormatada"`
	ExpectedLabel   string `json:"valorPrevistoFormatado"`
	PaidLabel       string `json:"valorPagoFormatado"`
}

func NewView(p Payment) View {
	return View{
		Payment:         p,
		CompetenceLabel: calc.CompetenceLabel(p.Competence),
		ExpectedLabel:   calc.FormatBRL(p.ExpectedValue),
		PaidLabel:       calc.FormatBRL(p.PaidValue),
	}
}

func NewViews(list []Payment) []View {
	views := make([]View, 0, len(list))
	for _, p := range list {
		views = append(views, NewView(p))
	}
	return views
}

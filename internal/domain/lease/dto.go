// internal/domain/lease/dto.go
package lease

import (
	"fmt"
	"time"

	"rental-console/internal/pkg/calc"
)

type CreateLeaseRequest struct {
	PropertyID string  `json:"imovelId" binding:"required,uuid"`
	TenantID   string  `json:"locatarioId" binding:"required,uuid"`
	StartDate  string  `json:"dataInicio" binding:"required,isodate"`
	EndDate    string  `json:"dataFim" binding:"required,isodate,afterdate=dataInicio"`
	Rent       float64 `json:"valorAluguel" binding:"min=0.01"`
	Insurance  float64 `json:"valorSeguro" binding:"min=0"`
	DueDay     int     `json:"diaVencimento" binding:"min=1,max=31"`
}

func (r *CreateLeaseRequest) Normalize() {
	r.StartDate = calc.ToAPIDate(r.StartDate)
	r.EndDate = calc.ToAPIDate(r.EndDate)
}

type UpdateLeaseRequest struct {
	EndDate   string  `json:"dataFim" binding:"required,isodate"`
	Rent      float64 `json:"valorAluguel" binding:"min=0.01"`
	Insurance float64 `json:"valorSeguro" binding:"min=0"`
	DueDay    int     `json:"diaVencimento" binding:"min=1,max=31"`
	Status    Status  `json:"status" binding:"required,oneof=Ativo Encerrado Suspenso"`
}

func (r *UpdateLeaseRequest) Normalize() {
	r.EndDate = calc.ToAPIDate(r.EndDate)
}

type SearchParams struct {
	Term string `form:"termo" json:"termo,omitempty"`
}

// View adds the figures the lease list shows.
type View struct {
	Lease
	MonthsRemaining int    `json:"mesesRestantes"`
	RentLabel       string `json:"valorAluguelFormatado"`
}

func NewView(l Lease, now time.Time) View {
	v := View{Lease: l, RentLabel: calc.FormatBRL(l.Rent)}
	if end, err := calc.ParseDate(l.EndDate); err == nil {
		v.MonthsRemaining = calc.MonthsRemaining(end, now)
	}
	return v
}

func NewViews(list []Lease, now time.Time) []View {
	views := make([]View, 0, len(list))
	for _, l := range list {
		views = append(views, NewView(l, now))
	}
	return views
}

// Option is a lease select entry carrying the values payment forms prefill.
type Option struct {
	Value         string  `json:"value"`
	Label         string  `json:"label"`
	Rent          float64 `json:"valorAluguel"`
	DueDay        int     `json:"diaVencimento"`
	PropertyTitle string  `json:"imovelTitulo"`
	TenantName    string  `json:"locatarioNome"`
}

// Options lists active leases as "property - tenant" select entries.
func Options(list []Lease) []Option {
	options := make([]Option, 0, len(list))
	for _, l := range list {
		if l.Status != StatusActive {
			continue
		}
		options = append(options, Option{
			Value:         l.ID,
			Label:         fmt.Sprintf("%s - %s", l.PropertyTitle, l.TenantName),
			Rent:          l.Rent,
			DueDay:        l.DueDay,
			PropertyTitle: l.PropertyTitle,
			TenantName:    l.TenantName,
		})
	}
	return options
}

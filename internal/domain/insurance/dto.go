// internal/domain/insurance/dto.go
package insurance

import (
	"net/url"
	"time"

	"rental-console/internal/pkg/calc"
)

type CreateInsuranceRequest struct {
	PropertyID  string  `json:"imovelId" binding:"required"`
	Description string  `json:"descricao" binding:"required,min=3,max=150"`
	Value       float64 `json:"valor" binding:"min=0.01"`
	StartDate   string  `json:"dataInicio" binding:"required,isodate"`
	EndDate     string  `json:"dataFim" binding:"required,isodate,afterdate=dataInicio"`
	Insurer     string  `json:"seguradora" binding:"required,min=3,max=150"`
	Policy      string  `json:"apolice" binding:"required,min=3,max=100"`
}

func (r *CreateInsuranceRequest) Normalize() {
	r.StartDate = calc.ToAPIDate(r.StartDate)
	r.EndDate = calc.ToAPIDate(r.EndDate)
}

type UpdateInsuranceRequest struct {
	Description string  `json:"descricao" binding:"required,min=3,max=150"`
	Value       float64 `json:"valor" binding:"min=0.01"`
	StartDate   string  `json:"dataInicio" binding:"required,isodate"`
	EndDate     string  `json:"dataFim" binding:"required,isodate,afterdate=dataInicio"`
	Insurer     string  `json:"seguradora" binding:"required,min=3,max=150"`
	Policy      string  `json:"apolice" binding:"required,min=3,max=100"`
}

func (r *UpdateInsuranceRequest) Normalize() {
	r.StartDate = calc.ToAPIDate(r.StartDate)
	r.EndDate = calc.ToAPIDate(r.EndDate)
}

// Query filters the policy list.
type Query struct {
	Search     string `form:"search"`
	PropertyID string `form:"imovelId"`
	Insurer    string `form:"seguradora"`
	Policy     string `form:"apolice"`
}

func (q Query) Values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("search", q.Search)
	set("imovelId", q.PropertyID)
	set("seguradora", q.Insurer)
	set("apolice", q.Policy)
	return v
}

// View adds the coverage status shown in policy tables.
type View struct {
	Insurance
	Status       calc.InsuranceStatus `json:"situacao"`
	DaysToExpiry int                  `json:"diasParaVencimento"`
	CoverageDays int                  `json:"diasVigencia"`
	ValueLabel   string               `json:"valorFormatado"`
}

// NewView derives the status from the end date. Policies with unparseable dates
// keep zero day counts and are reported as expired.
func NewView(i Insurance, now time.Time) View {
	v := View{Insurance: i, Status: calc.InsuranceExpired, ValueLabel: calc.FormatBRL(i.Value)}
	end, err := calc.ParseDate(i.EndDate)
	if err != nil {
		return v
	}
	v.Status = calc.StatusForInsurance(end, now)
	v.DaysToExpiry = calc.DaysUntil(end, now)
	if start, err := calc.ParseDate(i.StartDate); err == nil {
		v.CoverageDays = calc.CoverageDays(start, end)
	}
	return v
}

func NewViews(list []Insurance, now time.Time) []View {
	views := make([]View, 0, len(list))
	for _, i := range list {
		views = append(views, NewView(i, now))
	}
	return views
}

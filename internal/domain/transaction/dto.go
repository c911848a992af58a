// internal/domain/transaction/dto.go
package transaction

import (
	"net/url"

	"rental-console/internal/pkg/calc"
	"rental-console/internal/pkg/validation"
)

type CreateTransactionRequest struct {
	PropertyID  string            `json:"imovelId,omitempty"`
	Kind        Kind              `json:"tipo" binding:"required,oneof=Despesa Receita"`
	Category    Category          `json:"categoria" binding:"required,oneof=Manutencao IPTU Seguro Outros"`
	Description string            `json:"descricao" binding:"required,min=3,max=200"`
	Value       validation.Number `json:"valor" binding:"min=0.01"`
	Date        string            `json:"data" binding:"required,isodate"`
}

func (r *CreateTransactionRequest) Normalize() {
	r.Date = calc.ToAPIDate(r.Date)
}

type UpdateTransactionRequest struct {
	Description string            `json:"descricao" binding:"required,min=3,max=200"`
	Value       validation.Number `json:"valor" binding:"min=0.01"`
	Date        string            `json:"data" binding:"required,isodate"`
	Status      Status            `json:"status" binding:"required,oneof=Pendente Pago Recebido Cancelado"`
}

func (r *UpdateTransactionRequest) Normalize() {
	r.Date = calc.ToAPIDate(r.Date)
}

// SettleRequest marks a movement paid or received; the backend defaults the date to today.
type SettleRequest struct {
	PaidAt string `json:"dataPagamento,omitempty" binding:"omitempty,isodate"`
}

func (r *SettleRequest) Normalize() {
	r.PaidAt = calc.ToAPIDate(r.PaidAt)
}

// PeriodQuery bounds the period endpoints.
type PeriodQuery struct {
	Start string `form:"inicio" binding:"required,isodate"`
	End   string `form:"fim" binding:"required,isodate"`
}

func (q PeriodQuery) Values() url.Values {
	v := url.Values{}
	v.Set("inicio", calc.ToAPIDate(q.Start))
	v.Set("fim", calc.ToAPIDate(q.End))
	return v
}

// SearchParams filters the movement search. Empty fields are omitted.
type SearchParams struct {
	PropertyID string `form:"imovelId"`
	Kind       string `form:"tipo"`
	Category   string `form:"categoria"`
	Status     string `form:"status"`
	Start      string `form:"inicio"`
	End        string `form:"fim"`
}

func (p SearchParams) Values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("imovelId", p.PropertyID)
	set("tipo", p.Kind)
	set("categoria", p.Category)
	set("status", p.Status)
	set("inicio", calc.ToAPIDate(p.Start))
	set("fim", calc.ToAPIDate(p.End))
	return v
}

// internal/domain/tenant/dto.go
package tenant

import (
	"fmt"

	"rental-console/internal/domain/option"
	"rental-console/internal/pkg/calc"
)

type CreateTenantRequest struct {
	Name      string `json:"nome" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"telefone" binding:"required,min=10"`
	CPF       string `json:"cpf" binding:"required,min=11,max=14"`
	RG        string `json:"rg" binding:"required"`
	BirthDate string `json:"dataNascimento" binding:"required,isodate"`
	Street    string `json:"enderecoLogradouro" binding:"required"`
	Number    string `json:"enderecoNumero" binding:"required"`
	District  string `json:"enderecoBairro" binding:"required"`
	City      string `json:"enderecoCidade" binding:"required"`
	State     string `json:"enderecoEstado" binding:"required,len=2"`
	ZipCode   string `json:"enderecoCEP" binding:"required,min=8,max=9"`
}

// Normalize converts form dates into the backend format.
func (r *CreateTenantRequest) Normalize() {
	r.BirthDate = calc.ToAPIDate(r.BirthDate)
}

type UpdateTenantRequest struct {
	Name      string `json:"nome" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"telefone" binding:"required,min=10"`
	RG        string `json:"rg" binding:"required"`
	BirthDate string `json:"dataNascimento" binding:"required,isodate"`
}

func (r *UpdateTenantRequest) Normalize() {
	r.BirthDate = calc.ToAPIDate(r.BirthDate)
}

type SearchParams struct {
	Term string `form:"termo" json:"termo,omitempty"`
}

// Options lists tenants in good standing as "name - cpf" select entries.
func Options(tenants []Tenant) []option.SelectOption {
	options := make([]option.SelectOption, 0, len(tenants))
	for _, t := range tenants {
		if t.Status != StatusCompliant {
			continue
		}
		options = append(options, option.SelectOption{
			Value: t.ID,
			Label: fmt.Sprintf("%s - %s", t.Name, t.CPF),
		})
	}
	return options
}

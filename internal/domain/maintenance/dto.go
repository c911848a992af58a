// internal/domain/maintenance/dto.go
package maintenance

import (
	"rental-console/internal/pkg/calc"
	"rental-console/internal/pkg/validation"
)

type CreateMaintenanceRequest struct {
	PropertyID  string            `json:"imovelId" binding:"required"`
	Description string            `json:"descricao" binding:"required,min=3,max=500"`
	Date        string            `json:"data" binding:"required,isodate"`
	Value       validation.Number `json:"valor" binding:"min=0.01"`
	Responsible string            `json:"responsavel" binding:"required,min=3,max=150"`
}

func (r *CreateMaintenanceRequest) Normalize() {
	r.Date = calc.ToAPIDate(r.Date)
}

type UpdateMaintenanceRequest struct {
	Description string            `json:"descricao" binding:"required,min=3,max=500"`
	Date        string            `json:"data" binding:"required,isodate"`
	Value       validation.Number `json:"valor" binding:"min=0.01"`
	Responsible string            `json:"responsavel" binding:"required,min=3,max=150"`
	Status      Status            `json:"status" binding:"required,oneof=Pendente Feito"`
}

func (r *UpdateMaintenanceRequest) Normalize() {
	r.Date = calc.ToAPIDate(r.Date)
}

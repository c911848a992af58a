// internal/domain/adjustment/dto.go
package adjustment

import (
	"rental-console/internal/pkg/calc"
	"rental-console/internal/pkg/validation"
)

type CreateAdjustmentRequest struct {
	LeaseID  string            `json:"contratoId" binding:"required"`
	NewValue validation.Number `json:"valorNovo" binding:"min=0.01"`
	Index    string            `json:"indiceUtilizado" binding:"required"`
}

type UpdateAdjustmentRequest struct {
	LeaseID  string            `json:"contratoId" binding:"required"`
	NewValue validation.Number `json:"valorNovo" binding:"min=0.01"`
	Index    string            `json:"indiceUtilizado" binding:"required"`
}

// CalculateRequest asks the backend to project a new rent; it answers with a bare number.
type CalculateRequest struct {
	CurrentValue validation.Number `json:"valorAtual" binding:"min=0.01"`
	Index        string            `json:"indice" binding:"required"`
	Percent      validation.Number `json:"percentual"`
}

// LatestQuery bounds the "latest adjustments" list.
type LatestQuery struct {
	Count int `form:"quantidade,default=10" binding:"min=1,max=100"`
}

// SuggestQuery picks the index for a suggestion.
type SuggestQuery struct {
	Index string `form:"indice,default=IPCA"`
}

// View is an adjustment with its variation in percent.
type View struct {
	Adjustment
	Percent       float64 `json:"percentual"`
	PreviousLabel string  `json:"valorAnteriorFormatado"`
	NewLabel      string  `json:"valorNovoFormatado"`
}

func NewView(a Adjustment) View {
	return View{
		Adjustment:    a,
		Percent:       calc.PercentChange(a.PreviousValue, a.NewValue),
		PreviousLabel: calc.FormatBRL(a.PreviousValue),
		NewLabel:      calc.FormatBRL(a.NewValue),
	}
}

func NewViews(list []Adjustment) []View {
	views := make([]View, 0, len(list))
	for _, a := range list {
		views = append(views, NewView(a))
	}
	return views
}

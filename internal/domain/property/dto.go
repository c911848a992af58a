// internal/domain/property/dto.go
package property

import (
	"fmt"

	"rental-console/internal/domain/option"
)

type CreatePropertyRequest struct {
	Type          string  `json:"tipo" binding:"required"`
	Title         string  `json:"titulo" binding:"required,min=3"`
	Description   string  `json:"descricao" binding:"required,min=10"`
	Address       Address `json:"endereco"`
	AreaM2        float64 `json:"areaM2" binding:"min=1"`
	Bedrooms      int     `json:"quartos" binding:"min=0"`
	Bathrooms     int     `json:"banheiros" binding:"min=0"`
	ParkingSpots  int     `json:"vagasGaragem" binding:"min=0"`
	SuggestedRent float64 `json:"valorAluguelSugerido" binding:"min=0"`
}

type UpdatePropertyRequest struct {
	Title         string  `json:"titulo" binding:"required,min=3"`
	Description   string  `json:"descricao" binding:"required,min=10"`
	Address       Address `json:"endereco"`
	AreaM2        float64 `json:"areaM2" binding:"min=1"`
	Bedrooms      int     `json:"quartos" binding:"min=0"`
	Bathrooms     int     `json:"banheiros" binding:"min=0"`
	ParkingSpots  int     `json:"vagasGaragem" binding:"min=0"`
	SuggestedRent float64 `json:"valorAluguelSugerido" binding:"min=0"`
	Active        bool    `json:"ativo"`
}

type SearchParams struct {
	Term string `form:"termo" json:"termo,omitempty"`
}

// Options lists active properties as "title - city/state" select entries.
func Options(properties []Property) []option.SelectOption {
	options := make([]option.SelectOption, 0, len(properties))
	for _, p := range properties {
		if !p.Active {
			continue
		}
		options = append(options, option.SelectOption{
			Value: p.ID,
			Label: fmt.Sprintf("%s - %s/%s", p.Title, p.Address.City, p.Address.State),
			Extra: map[string]interface{}{"valorAluguelSugerido": p.SuggestedRent},
		})
	}
	return options
}

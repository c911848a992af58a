// internal/domain/property/entity.go
package property

// Address is the postal address of a property.
type Address struct {
	Street     string `json:"logradouro" binding:"required"`
	Number     string `json:"numero" binding:"required"`
	Complement string `json:"complemento,omitempty"`
	District   string `json:"bairro" binding:"required"`
	City       string `json:"cidade" binding:"required"`
	State      string `json:"estado" binding:"required,len=2"`
	ZipCode    string `json:"cep" binding:"required,min=8,max=9"`
}

// Property is a rentable unit (imóvel).
type Property struct {
	ID            string  `json:"id"`
	Type          string  `json:"tipo"`
	Title         string  `json:"titulo"`
	Description   string  `json:"descricao"`
	Address       Address `json:"endereco"`
	AreaM2        float64 `json:"areaM2"`
	Bedrooms      int     `json:"quartos"`
	Bathrooms     int     `json:"banheiros"`
	ParkingSpots  int     `json:"vagasGaragem"`
	SuggestedRent float64 `json:"valorAluguelSugerido"`
	Active        bool    `json:"ativo"`
	CreatedAt     string  `json:"criadoEm"`
	UserID        string  `json:"usuarioId"`
}

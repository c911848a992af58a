// internal/domain/adjustment/entity.go
package adjustment

// Indices offered in adjustment forms, value then label.
var Indices = []struct {
	Value string `json:"value"`
	Label string `json:"label"`
}{
	{"IPCA", "IPCA"},
	{"IGPM", "IGP-M"},
	{"INCC", "INCC"},
	{"IPC", "IPC"},
	{"Customizado", "Customizado"},
}

// DefaultIndex is used when a suggestion is requested without an index.
const DefaultIndex = "IPCA"

// Adjustment is one entry of a lease's rent history (histórico de reajuste).
type Adjustment struct {
	ID            string  `json:"id"`
	LeaseID       string  `json:"contratoId"`
	PreviousValue float64 `json:"valorAnterior"`
	NewValue      float64 `json:"valorNovo"`
	AppliedAt     string  `json:"dataReajuste"`
	Index         string  `json:"indiceUtilizado"`
	CreatedAt     string  `json:"criadoEm"`
	LeaseLabel    string  `json:"contratoDescricao,omitempty"`
	PropertyTitle string  `json:"imovelTitulo,omitempty"`
	TenantName    string  `json:"locatarioNome,omitempty"`
}

// internal/domain/tenant/entity.go
package tenant

const (
	StatusCompliant  = "Adimplente"
	StatusDefaulting = "Inadimplente"
)

// Tenant is a person renting a property (locatário).
type Tenant struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	Email     string `json:"email"`
	Phone     string `json:"telefone"`
	CPF       string `json:"cpf"`
	RG        string `json:"rg"`
	BirthDate string `json:"dataNascimento"`
	Status    string `json:"status"`
	CreatedAt string `json:"criadoEm"`
	Street    string `json:"enderecoLogradouro,omitempty"`
	Number    string `json:"enderecoNumero,omitempty"`
	District  string `json:"enderecoBairro,omitempty"`
	City      string `json:"enderecoCidade,omitempty"`
	State     string `json:"enderecoEstado,omitempty"`
	ZipCode   string `json:"enderecoCEP,omitempty"`
}

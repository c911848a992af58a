// internal/domain/auth/entity.go
package auth

// User is the account record returned by /Usuarios/me.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	Email     string `json:"email"`
	Phone     string `json:"telefone"`
	CreatedAt string `json:"criadoEm"`
}

// IsZero reports whether u carries no identity.
func (u *User) IsZero() bool {
	return u == nil || u.ID == ""
}

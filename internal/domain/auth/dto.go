// internal/domain/auth/dto.go
package auth

// LoginRequest is the login form and the /Auth/login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required,min=6"`
}

// LoginResponse is what /Auth/login answers with.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiraEm"`
	User      User   `json:"usuario"`
}

// RegisterRequest is the account creation form.
type RegisterRequest struct {
	Name            string `json:"nome" binding:"required,min=3"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"telefone" binding:"required,min=10"`
	Password        string `json:"senha" binding:"required,min=6,strongpwd"`
	ConfirmPassword string `json:"confirmarSenha" binding:"required,eqfield=Password"`
}

// RegisterResponse summarises the created account.
type RegisterResponse struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	Email     string `json:"email"`
	Phone     string `json:"telefone"`
	CreatedAt string `json:"criadoEm"`
}

// ChangePasswordRequest is the password change form.
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"senhaAtual" binding:"required"`
	NewPassword        string `json:"novaSenha" binding:"required,min=6,strongpwd"`
	ConfirmNewPassword string `json:"confirmarNovaSenha" binding:"required,eqfield=NewPassword"`
}

// UpdateUserRequest is the profile form sent to PUT /Usuarios/me.
type UpdateUserRequest struct {
	Name  string `json:"nome" binding:"required,min=3"`
	Phone string `json:"telefone" binding:"required,min=10"`
}

package dto

// LoginRequest entrada do login.
type LoginRequest struct {
	Email    string `json:"user_email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse saída do login.
type TokenResponse struct {
	AccessToken        string `json:"access_token"`
	TokenType          string `json:"token_type"`
	MustChangePassword bool   `json:"must_change_password"`
}

// TrocaSenhaRequest troca de senha pelo próprio usuário autenticado.
type TrocaSenhaRequest struct {
	SenhaAtual string `json:"old_password" validate:"required"`
	NovaSenha  string `json:"new_password" validate:"required,min=8"`
}

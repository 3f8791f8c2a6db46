package dto

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido após autenticação.
type LoginResponse struct {
	Token       string `json:"token"`
	ExpiresIn   int    `json:"expires_in"` // segundos
	CompanyName string `json:"company_name"`
}

package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

type CadastrarUsuarioRequest struct {
	Nome  string `json:"nome"  validate:"required,min=1,max=100"`
	Tipo  string `json:"tipo"  validate:"required,oneof=administrador voluntario"`
	Senha string `json:"senha" validate:"required,min=4"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse omits the password hash; it never leaves the service layer.
type UsuarioResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
	Tipo string `json:"tipo"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}

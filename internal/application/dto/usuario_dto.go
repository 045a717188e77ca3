package dto

import "time"

// RegistrarUsuarioRequest entrada do cadastro de usuário (signup).
type RegistrarUsuarioRequest struct {
	Nome      string `json:"nome" validate:"required,min=2,max=120"`
	Email     string `json:"email" validate:"required,email"`
	CPF       string `json:"cpf" validate:"required"`
	Senha     string `json:"senha" validate:"required,min=6"`
	Cargo     string `json:"cargo" validate:"omitempty,oneof=gerente estoquista financeiro"`
	UnidadeID string `json:"unidade_id" validate:"required"`
}

// LoginRequest entrada do login.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// LoginResponse token de sessão mais o usuário autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// RecuperarSenhaRequest solicita o e-mail com token de recuperação.
type RecuperarSenhaRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RedefinirSenhaRequest redefine a senha com um token de recuperação válido.
type RedefinirSenhaRequest struct {
	Token     string `json:"token" validate:"required"`
	NovaSenha string `json:"nova_senha" validate:"required,min=6"`
}

// AtualizarUsuarioRequest atualização de perfil. Cargo e unidade só podem ser
// alterados por um gerente.
type AtualizarUsuarioRequest struct {
	Nome      *string `json:"nome,omitempty"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Senha     *string `json:"senha,omitempty" validate:"omitempty,min=6"`
	Cargo     *string `json:"cargo,omitempty" validate:"omitempty,oneof=gerente estoquista financeiro"`
	UnidadeID *string `json:"unidade_id,omitempty"`
}

// UsuarioResponse representação de um usuário nas respostas (sem senha).
type UsuarioResponse struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	CPF          string    `json:"cpf"`
	Cargo        string    `json:"cargo"`
	Status       string    `json:"status"`
	UnidadeID    string    `json:"unidade_id"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// UsuarioListResponse listagem paginada de usuários.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

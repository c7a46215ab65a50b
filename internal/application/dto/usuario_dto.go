package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
)

// CriarUsuarioRequest entrada de criação de conta (senha em texto, hasheada no
// use case). A organização é herdada do criador, nunca do payload.
type CriarUsuarioRequest struct {
	Nome     string `json:"user_nome" validate:"required,min=1,max=80"`
	Email    string `json:"user_email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	RoleID   int    `json:"role_id" validate:"required"`
	IsActive *bool  `json:"is_active"`
}

// AtualizarUsuarioRequest atualização administrativa parcial. Email é imutável.
type AtualizarUsuarioRequest struct {
	Nome               *string `json:"user_nome"`
	Password           *string `json:"password"`
	RoleID             *int    `json:"role_id"`
	IsActive           *bool   `json:"is_active"`
	MustChangePassword *bool   `json:"must_change_password"`
}

// UsuarioResponse saída de uma conta (sem o hash).
type UsuarioResponse struct {
	ID                    uuid.UUID  `json:"user_id"`
	Nome                  string     `json:"user_nome"`
	Email                 string     `json:"user_email"`
	RoleID                int        `json:"role_id"`
	OrganizationID        uuid.UUID  `json:"organization_id"`
	IsActive              bool       `json:"is_active"`
	MustChangePassword    bool       `json:"must_change_password"`
	FailedLoginCount      int        `json:"failed_login_count"`
	LockedUntil           *time.Time `json:"locked_until,omitempty"`
	LastLoginAt           *time.Time `json:"last_login_at,omitempty"`
	PasswordChangedAt     *time.Time `json:"password_changed_at,omitempty"`
	TempPasswordExpiresAt *time.Time `json:"temp_password_expires_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// ToUsuarioResponse converte a entidade para o DTO de saída.
func ToUsuarioResponse(u *entity.Usuario) *UsuarioResponse {
	if u == nil {
		return nil
	}
	return &UsuarioResponse{
		ID:                    u.ID,
		Nome:                  u.Nome,
		Email:                 u.Email,
		RoleID:                u.RoleID,
		OrganizationID:        u.OrganizationID,
		IsActive:              u.IsActive,
		MustChangePassword:    u.MustChangePassword,
		FailedLoginCount:      u.FailedLoginCount,
		LockedUntil:           u.LockedUntil,
		LastLoginAt:           u.LastLoginAt,
		PasswordChangedAt:     u.PasswordChangedAt,
		TempPasswordExpiresAt: u.TempPasswordExpiresAt,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}

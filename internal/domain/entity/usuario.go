package entity

import (
	"time"

	"github.com/google/uuid"
)

// Usuario conta de acesso do sistema, sempre vinculada a uma organização e a
// uma Role. PasswordHash guarda apenas o digest bcrypt, nunca a senha.
type Usuario struct {
	ID             uuid.UUID
	Nome           string
	Email          string
	PasswordHash   string
	RoleID         int
	Role           *Role
	OrganizationID uuid.UUID

	FailedLoginCount int
	LockedUntil      *time.Time
	LastLoginAt      *time.Time

	IsActive           bool
	MustChangePassword bool

	PasswordChangedAt     *time.Time
	TempPasswordExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// RoleName nome da role carregada, ou vazio se não populada.
func (u *Usuario) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.RoleName
}

// Bloqueado indica se a conta está bloqueada no instante dado.
func (u *Usuario) Bloqueado(agora time.Time) bool {
	return u.LockedUntil != nil && u.LockedUntil.After(agora)
}

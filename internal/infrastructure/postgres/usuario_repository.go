package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seu-usuario/equipe-pro/internal/domain"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
// Todas as buscas filtram deleted_at IS NULL e trazem a role via join.
type UsuarioRepo struct {
	db dbtx
}

// NewUsuarioRepository constrói o adaptador de persistência de usuários.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{db: pool}
}

const colunasUsuario = `
	u.user_id, u.user_nome, u.user_email, u.password_hash, u.role_id,
	u.organization_id, u.failed_login_count, u.locked_until, u.last_login_at,
	u.is_active, u.must_change_password, u.password_changed_at,
	u.temp_password_expires_at, u.created_at, u.updated_at, u.deleted_at,
	r.role_name`

func scanUsuario(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	var roleName string
	err := row.Scan(
		&u.ID, &u.Nome, &u.Email, &u.PasswordHash, &u.RoleID,
		&u.OrganizationID, &u.FailedLoginCount, &u.LockedUntil, &u.LastLoginAt,
		&u.IsActive, &u.MustChangePassword, &u.PasswordChangedAt,
		&u.TempPasswordExpiresAt, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
		&roleName,
	)
	if err != nil {
		return nil, err
	}
	u.Role = &entity.Role{RoleID: u.RoleID, RoleName: roleName}
	return &u, nil
}

// Criar persiste uma conta nova.
func (r *UsuarioRepo) Criar(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (
			user_id, user_nome, user_email, password_hash, role_id, organization_id,
			failed_login_count, is_active, must_change_password,
			temp_password_expires_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.Nome, u.Email, u.PasswordHash, u.RoleID, u.OrganizationID,
		u.IsActive, u.MustChangePassword, u.TempPasswordExpiresAt,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// BuscarPorID conta com role populada, ou nil. Removidas são invisíveis.
func (r *UsuarioRepo) BuscarPorID(ctx context.Context, id uuid.UUID) (*entity.Usuario, error) {
	query := `
		SELECT ` + colunasUsuario + `
		FROM usuarios u
		JOIN roles r ON r.role_id = u.role_id
		WHERE u.user_id = $1 AND u.deleted_at IS NULL`
	u, err := scanUsuario(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario por id: %w", err)
	}
	return u, nil
}

// BuscarPorEmail conta com role populada, ou nil. Removidas são invisíveis.
func (r *UsuarioRepo) BuscarPorEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	query := `
		SELECT ` + colunasUsuario + `
		FROM usuarios u
		JOIN roles r ON r.role_id = u.role_id
		WHERE u.user_email = $1 AND u.deleted_at IS NULL`
	u, err := scanUsuario(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario por email: %w", err)
	}
	return u, nil
}

// ListarPorOrganizacao contas da organização com paginação.
func (r *UsuarioRepo) ListarPorOrganizacao(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*entity.Usuario, error) {
	query := `
		SELECT ` + colunasUsuario + `
		FROM usuarios u
		JOIN roles r ON r.role_id = u.role_id
		WHERE u.organization_id = $1 AND u.deleted_at IS NULL
		ORDER BY u.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Atualizar grava os campos mutáveis da conta. Email nunca muda.
func (r *UsuarioRepo) Atualizar(ctx context.Context, u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET
			user_nome = $2, password_hash = $3, role_id = $4, is_active = $5,
			must_change_password = $6, password_changed_at = $7,
			temp_password_expires_at = $8, updated_at = $9
		WHERE user_id = $1 AND deleted_at IS NULL`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.Nome, u.PasswordHash, u.RoleID, u.IsActive,
		u.MustChangePassword, u.PasswordChangedAt, u.TempPasswordExpiresAt,
		u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("atualizar usuario: %w", err)
	}
	return nil
}

// RemoverLogicamente marca deleted_at e desativa. Nunca há DELETE físico.
func (r *UsuarioRepo) RemoverLogicamente(ctx context.Context, id uuid.UUID, quando time.Time) error {
	query := `
		UPDATE usuarios SET deleted_at = $2, is_active = FALSE, updated_at = $2
		WHERE user_id = $1 AND deleted_at IS NULL`
	_, err := r.db.Exec(ctx, query, id, quando)
	if err != nil {
		return fmt.Errorf("remover usuario: %w", err)
	}
	return nil
}

// RegistrarFalhaLogin um único UPDATE condicional: incrementa o contador e, ao
// atingir o limite, zera o contador e grava o bloqueio. O lock de linha do
// próprio UPDATE serializa tentativas concorrentes; duas falhas simultâneas
// partindo de limite-1 produzem sempre contador 0 + bloqueio, nunca um
// incremento perdido.
func (r *UsuarioRepo) RegistrarFalhaLogin(ctx context.Context, id uuid.UUID, limite int, bloqueio time.Duration) (int, *time.Time, error) {
	query := `
		UPDATE usuarios SET
			failed_login_count = CASE
				WHEN failed_login_count + 1 >= $2 THEN 0
				ELSE failed_login_count + 1
			END,
			locked_until = CASE
				WHEN failed_login_count + 1 >= $2 THEN now() + make_interval(mins => $3)
				ELSE locked_until
			END,
			updated_at = now()
		WHERE user_id = $1 AND deleted_at IS NULL
		RETURNING failed_login_count, locked_until`
	var contador int
	var lockedUntil *time.Time
	err := r.db.QueryRow(ctx, query, id, limite, int(bloqueio.Minutes())).Scan(&contador, &lockedUntil)
	if err != nil {
		return 0, nil, fmt.Errorf("registrar falha de login: %w", err)
	}
	return contador, lockedUntil, nil
}

// RegistrarLoginComSucesso zera o contador, limpa o bloqueio e grava o último
// login, em um único comando.
func (r *UsuarioRepo) RegistrarLoginComSucesso(ctx context.Context, id uuid.UUID, quando time.Time) error {
	query := `
		UPDATE usuarios SET
			failed_login_count = 0, locked_until = NULL, last_login_at = $2, updated_at = $2
		WHERE user_id = $1 AND deleted_at IS NULL`
	_, err := r.db.Exec(ctx, query, id, quando)
	if err != nil {
		return fmt.Errorf("registrar login: %w", err)
	}
	return nil
}

// AtualizarSenha grava o novo hash e encerra o estado de senha temporária.
func (r *UsuarioRepo) AtualizarSenha(ctx context.Context, id uuid.UUID, hash string, quando time.Time) error {
	query := `
		UPDATE usuarios SET
			password_hash = $2, must_change_password = FALSE,
			temp_password_expires_at = NULL, password_changed_at = $3, updated_at = $3
		WHERE user_id = $1 AND deleted_at IS NULL`
	_, err := r.db.Exec(ctx, query, id, hash, quando)
	if err != nil {
		return fmt.Errorf("atualizar senha: %w", err)
	}
	return nil
}

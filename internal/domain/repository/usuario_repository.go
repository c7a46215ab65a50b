package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
)

// UsuarioRepository porta de persistência de Usuario.
//
// Todas as buscas excluem contas removidas (deleted_at preenchido); uma conta
// removida é invisível para autenticação e listagens.
type UsuarioRepository interface {
	Criar(ctx context.Context, u *entity.Usuario) error

	// BuscarPorID retorna a conta com a Role já populada (join), ou nil.
	BuscarPorID(ctx context.Context, id uuid.UUID) (*entity.Usuario, error)

	// BuscarPorEmail retorna a conta com a Role já populada, ou nil.
	BuscarPorEmail(ctx context.Context, email string) (*entity.Usuario, error)

	ListarPorOrganizacao(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*entity.Usuario, error)
	Atualizar(ctx context.Context, u *entity.Usuario) error

	// RemoverLogicamente marca deleted_at e desativa a conta. Nunca há
	// remoção física de usuários.
	RemoverLogicamente(ctx context.Context, id uuid.UUID, quando time.Time) error

	// RegistrarFalhaLogin incrementa o contador de falhas em um único
	// comando atômico: ao atingir o limite, zera o contador e grava
	// locked_until = agora + bloqueio. Retorna o contador e o bloqueio
	// resultantes. Duas falhas concorrentes partindo de limite-1 nunca podem
	// perder a atualização (ver a implementação postgres).
	RegistrarFalhaLogin(ctx context.Context, id uuid.UUID, limite int, bloqueio time.Duration) (int, *time.Time, error)

	// RegistrarLoginComSucesso zera o contador, limpa locked_until e grava
	// last_login_at, em um único comando.
	RegistrarLoginComSucesso(ctx context.Context, id uuid.UUID, quando time.Time) error

	// AtualizarSenha grava o novo hash, limpa o estado de senha temporária
	// (must_change_password, temp_password_expires_at) e carimba
	// password_changed_at.
	AtualizarSenha(ctx context.Context, id uuid.UUID, hash string, quando time.Time) error
}

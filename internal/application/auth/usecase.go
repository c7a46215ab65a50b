package auth

import (
	"context"
	"time"

	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/domain"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
	"github.com/seu-usuario/equipe-pro/pkg/hasher"
	"github.com/seu-usuario/equipe-pro/pkg/token"
)

// Config parâmetros de segurança de conta, fixados no startup.
type Config struct {
	JWTSecret       string
	JWTIssuer       string
	JWTTTL          time.Duration
	LimiteFalhas    int           // tentativas até bloquear
	DuracaoBloqueio time.Duration // janela do bloqueio
	CustoBcrypt     int
}

// AuthUseCase máquina de estados do login: verifica credenciais, contabiliza
// falhas, aplica bloqueio, valida a janela da senha temporária e emite o token.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	cfg      Config
	agora    func() time.Time
}

// NewAuthUseCase constrói o use case de autenticação.
func NewAuthUseCase(usuarios repository.UsuarioRepository, cfg Config) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, cfg: cfg, agora: time.Now}
}

// Login percorre os estados da conta na ordem fixa: removida, bloqueada,
// inativa, senha temporária, e só então confere a credencial.
//
// Credencial errada incrementa o contador de falhas; na quinta falha a conta é
// bloqueada e o contador zera (a atualização é um único comando atômico no
// repositório, segura sob tentativas concorrentes). Conta inexistente e senha
// errada respondem com a mesma mensagem para não permitir enumeração de
// emails. Sucesso zera o contador, limpa o bloqueio, grava last_login_at e
// emite o token com o estado atual de must_change_password.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	agora := uc.agora()

	u, err := uc.usuarios.BuscarPorEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	if u.DeletedAt != nil {
		return nil, domain.ErrUsuarioRemovido
	}
	if u.Bloqueado(agora) {
		return nil, &domain.ContaBloqueadaError{Ate: *u.LockedUntil}
	}
	if !u.IsActive {
		return nil, domain.ErrUsuarioInativo
	}
	if u.MustChangePassword {
		if u.TempPasswordExpiresAt == nil {
			return nil, domain.ErrSenhaTemporariaNaoProvisionada
		}
		if agora.After(*u.TempPasswordExpiresAt) {
			return nil, domain.ErrSenhaTemporariaExpirada
		}
	}

	if !hasher.Verificar(in.Password, u.PasswordHash) {
		if _, _, err := uc.usuarios.RegistrarFalhaLogin(ctx, u.ID, uc.cfg.LimiteFalhas, uc.cfg.DuracaoBloqueio); err != nil {
			return nil, err
		}
		return nil, domain.ErrCredenciaisInvalidas
	}

	if err := uc.usuarios.RegistrarLoginComSucesso(ctx, u.ID, agora); err != nil {
		return nil, err
	}

	tok, err := token.Emitir(
		uc.cfg.JWTSecret, uc.cfg.JWTIssuer,
		u.ID.String(), u.Email, u.OrganizationID.String(),
		u.RoleID, u.MustChangePassword, uc.cfg.JWTTTL,
	)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken:        tok,
		TokenType:          "bearer",
		MustChangePassword: u.MustChangePassword,
	}, nil
}

// TrocarSenha troca a senha do próprio usuário após conferir a atual. Limpa o
// estado de senha temporária; é a saída do estado pending-password-change.
func (uc *AuthUseCase) TrocarSenha(ctx context.Context, u *entity.Usuario, in dto.TrocaSenhaRequest) error {
	if !hasher.Verificar(in.SenhaAtual, u.PasswordHash) {
		return domain.ErrSenhaAtualInvalida
	}
	hash, err := hasher.Hash(in.NovaSenha, uc.cfg.CustoBcrypt)
	if err != nil {
		return err
	}
	return uc.usuarios.AtualizarSenha(ctx, u.ID, hash, uc.agora())
}

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/domain"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/pkg/hasher"
	"github.com/seu-usuario/equipe-pro/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UsuarioRepository em memória
// ──────────────────────────────────────────────────────────────────────────────

// usuarioRepoFake reproduz a semântica do repositório real, inclusive a
// atualização condicional de falhas de login (incrementa; no limite, zera e
// grava o bloqueio).
type usuarioRepoFake struct {
	usuarios map[uuid.UUID]*entity.Usuario
	agora    func() time.Time

	ultimoLoginGravado *time.Time
	senhaAtualizada    string
}

func newUsuarioRepoFake(agora func() time.Time, us ...*entity.Usuario) *usuarioRepoFake {
	f := &usuarioRepoFake{usuarios: map[uuid.UUID]*entity.Usuario{}, agora: agora}
	for _, u := range us {
		f.usuarios[u.ID] = u
	}
	return f
}

func (f *usuarioRepoFake) Criar(_ context.Context, u *entity.Usuario) error {
	f.usuarios[u.ID] = u
	return nil
}

func (f *usuarioRepoFake) BuscarPorID(_ context.Context, id uuid.UUID) (*entity.Usuario, error) {
	u := f.usuarios[id]
	if u == nil || u.DeletedAt != nil {
		return nil, nil
	}
	return u, nil
}

func (f *usuarioRepoFake) BuscarPorEmail(_ context.Context, email string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Email == email && u.DeletedAt == nil {
			return u, nil
		}
	}
	return nil, nil
}

func (f *usuarioRepoFake) ListarPorOrganizacao(_ context.Context, orgID uuid.UUID, limit, offset int) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range f.usuarios {
		if u.OrganizationID == orgID && u.DeletedAt == nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *usuarioRepoFake) Atualizar(_ context.Context, u *entity.Usuario) error {
	f.usuarios[u.ID] = u
	return nil
}

func (f *usuarioRepoFake) RemoverLogicamente(_ context.Context, id uuid.UUID, quando time.Time) error {
	if u := f.usuarios[id]; u != nil {
		u.DeletedAt = &quando
		u.IsActive = false
	}
	return nil
}

func (f *usuarioRepoFake) RegistrarFalhaLogin(_ context.Context, id uuid.UUID, limite int, bloqueio time.Duration) (int, *time.Time, error) {
	u := f.usuarios[id]
	if u.FailedLoginCount+1 >= limite {
		u.FailedLoginCount = 0
		ate := f.agora().Add(bloqueio)
		u.LockedUntil = &ate
	} else {
		u.FailedLoginCount++
	}
	return u.FailedLoginCount, u.LockedUntil, nil
}

func (f *usuarioRepoFake) RegistrarLoginComSucesso(_ context.Context, id uuid.UUID, quando time.Time) error {
	u := f.usuarios[id]
	u.FailedLoginCount = 0
	u.LockedUntil = nil
	u.LastLoginAt = &quando
	f.ultimoLoginGravado = &quando
	return nil
}

func (f *usuarioRepoFake) AtualizarSenha(_ context.Context, id uuid.UUID, hash string, quando time.Time) error {
	u := f.usuarios[id]
	u.PasswordHash = hash
	u.MustChangePassword = false
	u.TempPasswordExpiresAt = nil
	u.PasswordChangedAt = &quando
	f.senhaAtualizada = hash
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var instante = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

const senhaCorreta = "senha-correta-123"

func contaBase(t *testing.T) *entity.Usuario {
	t.Helper()
	hash, err := hasher.Hash(senhaCorreta, 4)
	require.NoError(t, err)
	return &entity.Usuario{
		ID:             uuid.New(),
		Nome:           "Ana Dirigente",
		Email:          "ana@clube.com",
		PasswordHash:   hash,
		RoleID:         1,
		Role:           &entity.Role{RoleID: 1, RoleName: entity.RoleDirigente},
		OrganizationID: uuid.New(),
		IsActive:       true,
	}
}

func montar(t *testing.T, us ...*entity.Usuario) (*AuthUseCase, *usuarioRepoFake) {
	t.Helper()
	agora := func() time.Time { return instante }
	repo := newUsuarioRepoFake(agora, us...)
	uc := NewAuthUseCase(repo, Config{
		JWTSecret:       "segredo-de-teste",
		JWTIssuer:       "equipe-pro-test",
		JWTTTL:          time.Hour,
		LimiteFalhas:    5,
		DuracaoBloqueio: 60 * time.Minute,
		CustoBcrypt:     4,
	})
	uc.agora = agora
	return uc, repo
}

func login(uc *AuthUseCase, email, senha string) (*dto.TokenResponse, error) {
	return uc.Login(context.Background(), dto.LoginRequest{Email: email, Password: senha})
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Sucesso(t *testing.T) {
	u := contaBase(t)
	u.FailedLoginCount = 3
	uc, repo := montar(t, u)

	out, err := login(uc, u.Email, senhaCorreta)
	require.NoError(t, err)

	assert.Equal(t, "bearer", out.TokenType)
	assert.False(t, out.MustChangePassword)

	claims, err := token.Analisar("segredo-de-teste", out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.Subject)
	assert.Equal(t, u.OrganizationID.String(), claims.OrganizationID)

	// Sucesso zera o contador, limpa o bloqueio e grava o último login.
	assert.Equal(t, 0, u.FailedLoginCount)
	assert.Nil(t, u.LockedUntil)
	require.NotNil(t, repo.ultimoLoginGravado)
	assert.Equal(t, instante, *repo.ultimoLoginGravado)
}

func TestLogin_EmailDesconhecido(t *testing.T) {
	uc, _ := montar(t, contaBase(t))
	_, err := login(uc, "ninguem@clube.com", "tanto-faz")
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}

func TestLogin_SenhaErradaIncrementaContador(t *testing.T) {
	u := contaBase(t)
	uc, _ := montar(t, u)

	_, err := login(uc, u.Email, "senha-errada")
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
	assert.Equal(t, 1, u.FailedLoginCount)
	assert.Nil(t, u.LockedUntil)
}

func TestLogin_QuintaFalhaBloqueiaEZeraContador(t *testing.T) {
	u := contaBase(t)
	u.FailedLoginCount = 4
	uc, _ := montar(t, u)

	_, err := login(uc, u.Email, "senha-errada")
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)

	assert.Equal(t, 0, u.FailedLoginCount)
	require.NotNil(t, u.LockedUntil)
	assert.Equal(t, instante.Add(60*time.Minute), *u.LockedUntil)
}

func TestLogin_BloqueadaRejeitaAteSenhaCorreta(t *testing.T) {
	u := contaBase(t)
	ate := instante.Add(30 * time.Minute)
	u.LockedUntil = &ate
	uc, _ := montar(t, u)

	_, err := login(uc, u.Email, senhaCorreta)
	var bloqueada *domain.ContaBloqueadaError
	require.ErrorAs(t, err, &bloqueada)
	assert.Equal(t, ate, bloqueada.Ate)
}

func TestLogin_BloqueioVencidoPermiteLogin(t *testing.T) {
	u := contaBase(t)
	ate := instante.Add(-time.Minute)
	u.LockedUntil = &ate
	uc, _ := montar(t, u)

	_, err := login(uc, u.Email, senhaCorreta)
	require.NoError(t, err)
	assert.Nil(t, u.LockedUntil)
}

func TestLogin_ContaRemovida(t *testing.T) {
	u := contaBase(t)
	quando := instante.Add(-time.Hour)
	u.DeletedAt = &quando
	uc, _ := montar(t, u)

	// O repositório real nem devolve contas removidas; com o fake devolvendo,
	// o caminho responde como credencial inválida (email invisível).
	_, err := login(uc, u.Email, senhaCorreta)
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}

func TestLogin_ContaInativa(t *testing.T) {
	u := contaBase(t)
	u.IsActive = false
	uc, _ := montar(t, u)

	_, err := login(uc, u.Email, senhaCorreta)
	assert.ErrorIs(t, err, domain.ErrUsuarioInativo)
}

func TestLogin_SenhaTemporariaSemJanela(t *testing.T) {
	u := contaBase(t)
	u.MustChangePassword = true
	uc, _ := montar(t, u)

	_, err := login(uc, u.Email, senhaCorreta)
	assert.ErrorIs(t, err, domain.ErrSenhaTemporariaNaoProvisionada)
}

func TestLogin_SenhaTemporariaExpirada(t *testing.T) {
	u := contaBase(t)
	u.MustChangePassword = true
	vencida := instante.Add(-time.Hour)
	u.TempPasswordExpiresAt = &vencida
	uc, _ := montar(t, u)

	_, err := login(uc, u.Email, senhaCorreta)
	assert.ErrorIs(t, err, domain.ErrSenhaTemporariaExpirada)
}

func TestLogin_SenhaTemporariaNaJanela(t *testing.T) {
	u := contaBase(t)
	u.MustChangePassword = true
	valida := instante.Add(24 * time.Hour)
	u.TempPasswordExpiresAt = &valida
	uc, _ := montar(t, u)

	out, err := login(uc, u.Email, senhaCorreta)
	require.NoError(t, err)
	assert.True(t, out.MustChangePassword)

	claims, err := token.Analisar("segredo-de-teste", out.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.MustChangePassword)
}

func TestLogin_InativaPrecedeSenhaTemporaria(t *testing.T) {
	u := contaBase(t)
	u.IsActive = false
	u.MustChangePassword = true
	uc, _ := montar(t, u)

	_, err := login(uc, u.Email, senhaCorreta)
	assert.ErrorIs(t, err, domain.ErrUsuarioInativo)
}

// Duas falhas "simultâneas" partindo de contador 4: a primeira bloqueia e
// zera, a segunda incrementa de novo. Nunca há incremento perdido nem
// contador negativo.
func TestLogin_FalhasConsecutivasAposBloqueio(t *testing.T) {
	u := contaBase(t)
	u.FailedLoginCount = 4
	uc, _ := montar(t, u)

	_, err := login(uc, u.Email, "senha-errada")
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
	require.NotNil(t, u.LockedUntil)
	assert.Equal(t, 0, u.FailedLoginCount)

	// A conta agora está bloqueada: a segunda tentativa para no bloqueio,
	// antes de conferir a senha, e não mexe no contador.
	_, err = login(uc, u.Email, "senha-errada")
	var bloqueada *domain.ContaBloqueadaError
	require.ErrorAs(t, err, &bloqueada)
	assert.Equal(t, 0, u.FailedLoginCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// TrocarSenha
// ──────────────────────────────────────────────────────────────────────────────

func TestTrocarSenha_Sucesso(t *testing.T) {
	u := contaBase(t)
	u.MustChangePassword = true
	valida := instante.Add(24 * time.Hour)
	u.TempPasswordExpiresAt = &valida
	uc, repo := montar(t, u)

	err := uc.TrocarSenha(context.Background(), u, dto.TrocaSenhaRequest{
		SenhaAtual: senhaCorreta,
		NovaSenha:  "nova-senha-forte-456",
	})
	require.NoError(t, err)

	assert.False(t, u.MustChangePassword)
	assert.Nil(t, u.TempPasswordExpiresAt)
	assert.True(t, hasher.Verificar("nova-senha-forte-456", repo.senhaAtualizada))
	assert.False(t, hasher.Verificar(senhaCorreta, repo.senhaAtualizada))
}

func TestTrocarSenha_SenhaAtualErrada(t *testing.T) {
	u := contaBase(t)
	uc, repo := montar(t, u)

	err := uc.TrocarSenha(context.Background(), u, dto.TrocaSenhaRequest{
		SenhaAtual: "nao-e-essa",
		NovaSenha:  "nova-senha-forte-456",
	})
	assert.ErrorIs(t, err, domain.ErrSenhaAtualInvalida)
	assert.Empty(t, repo.senhaAtualizada)
}

package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	apphttp "github.com/seu-usuario/equipe-pro/internal/interfaces/http"
	"github.com/seu-usuario/equipe-pro/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "segredo-de-teste-para-middleware"
	testIssuer    = "equipe-pro-test"
)

// usuarioLookupFake só implementa BuscarPorID, que é o que o middleware usa.
type usuarioLookupFake struct {
	usuarios map[uuid.UUID]*entity.Usuario
}

func (f *usuarioLookupFake) Criar(context.Context, *entity.Usuario) error { return nil }
func (f *usuarioLookupFake) BuscarPorID(_ context.Context, id uuid.UUID) (*entity.Usuario, error) {
	return f.usuarios[id], nil
}
func (f *usuarioLookupFake) BuscarPorEmail(context.Context, string) (*entity.Usuario, error) {
	return nil, nil
}
func (f *usuarioLookupFake) ListarPorOrganizacao(context.Context, uuid.UUID, int, int) ([]*entity.Usuario, error) {
	return nil, nil
}
func (f *usuarioLookupFake) Atualizar(context.Context, *entity.Usuario) error { return nil }
func (f *usuarioLookupFake) RemoverLogicamente(context.Context, uuid.UUID, time.Time) error {
	return nil
}
func (f *usuarioLookupFake) RegistrarFalhaLogin(context.Context, uuid.UUID, int, time.Duration) (int, *time.Time, error) {
	return 0, nil, nil
}
func (f *usuarioLookupFake) RegistrarLoginComSucesso(context.Context, uuid.UUID, time.Time) error {
	return nil
}
func (f *usuarioLookupFake) AtualizarSenha(context.Context, uuid.UUID, string, time.Time) error {
	return nil
}

// buildTestApp monta uma aplicação Fiber mínima com as duas camadas:
//   - /autenticado: só CurrentUser (token válido basta)
//   - /pleno: CurrentUser + RequireActive
func buildTestApp(usuarios *usuarioLookupFake) *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error {
		u := apphttp.UsuarioAtual(c)
		return c.JSON(fiber.Map{"ok": true, "email": u.Email})
	}
	app.Get("/autenticado", apphttp.CurrentUser(testJWTSecret, usuarios), ok)
	app.Get("/pleno", apphttp.CurrentUser(testJWTSecret, usuarios), apphttp.RequireActive(), ok)
	app.Get("/admin",
		apphttp.CurrentUser(testJWTSecret, usuarios),
		apphttp.RequireActive(),
		apphttp.RequireRole(entity.RoleDirigente, entity.RoleCoordenador),
		ok,
	)
	return app
}

func tokenPara(t *testing.T, u *entity.Usuario) string {
	t.Helper()
	tok, err := token.Emitir(testJWTSecret, testIssuer, u.ID.String(), u.Email,
		u.OrganizationID.String(), u.RoleID, u.MustChangePassword, time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func contaAtiva(nomeRole string) *entity.Usuario {
	return &entity.Usuario{
		ID:             uuid.New(),
		Nome:           "Conta de Teste",
		Email:          "teste@clube.com",
		RoleID:         1,
		Role:           &entity.Role{RoleID: 1, RoleName: nomeRole},
		OrganizationID: uuid.New(),
		IsActive:       true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CurrentUser
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentUser_SemHeader(t *testing.T) {
	app := buildTestApp(&usuarioLookupFake{usuarios: map[uuid.UUID]*entity.Usuario{}})
	resp := doRequest(t, app, "/autenticado", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCurrentUser_EsquemaErrado(t *testing.T) {
	app := buildTestApp(&usuarioLookupFake{usuarios: map[uuid.UUID]*entity.Usuario{}})
	resp := doRequest(t, app, "/autenticado", "Basic abc123")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCurrentUser_TokenInvalido(t *testing.T) {
	app := buildTestApp(&usuarioLookupFake{usuarios: map[uuid.UUID]*entity.Usuario{}})
	resp := doRequest(t, app, "/autenticado", "Bearer nao.e.um.token")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token assinado para uma conta que não existe mais no banco (removida):
// recusado na hora, sem esperar a expiração.
func TestCurrentUser_ContaInexistente(t *testing.T) {
	u := contaAtiva(entity.RoleDirigente)
	app := buildTestApp(&usuarioLookupFake{usuarios: map[uuid.UUID]*entity.Usuario{}})
	resp := doRequest(t, app, "/autenticado", tokenPara(t, u))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCurrentUser_TokenValido(t *testing.T) {
	u := contaAtiva(entity.RoleDirigente)
	app := buildTestApp(&usuarioLookupFake{usuarios: map[uuid.UUID]*entity.Usuario{u.ID: u}})
	resp := doRequest(t, app, "/autenticado", tokenPara(t, u))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireActive
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireActive_ContaInativa(t *testing.T) {
	u := contaAtiva(entity.RoleDirigente)
	u.IsActive = false
	app := buildTestApp(&usuarioLookupFake{usuarios: map[uuid.UUID]*entity.Usuario{u.ID: u}})
	resp := doRequest(t, app, "/pleno", tokenPara(t, u))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Conta bloqueada por excesso de tentativas: o token emitido antes do
// bloqueio continua criptograficamente válido, mas a camada plena recusa até
// o horário de desbloqueio.
func TestRequireActive_ContaBloqueada(t *testing.T) {
	u := contaAtiva(entity.RoleDirigente)
	ate := time.Now().Add(30 * time.Minute)
	u.LockedUntil = &ate
	app := buildTestApp(&usuarioLookupFake{usuarios: map[uuid.UUID]*entity.Usuario{u.ID: u}})

	resp := doRequest(t, app, "/pleno", tokenPara(t, u))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	corpo, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(corpo), "ACCOUNT_LOCKED")

	// Bloqueio vencido deixa de barrar.
	vencido := time.Now().Add(-time.Minute)
	u.LockedUntil = &vencido
	resp2 := doRequest(t, app, "/pleno", tokenPara(t, u))
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

// Conta com troca de senha pendente: a camada autenticada aceita (é por onde
// ela troca a senha), a camada plena recusa.
func TestRequireActive_TrocaSenhaPendente(t *testing.T) {
	u := contaAtiva(entity.RoleDirigente)
	u.MustChangePassword = true
	app := buildTestApp(&usuarioLookupFake{usuarios: map[uuid.UUID]*entity.Usuario{u.ID: u}})

	resp := doRequest(t, app, "/autenticado", tokenPara(t, u))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2 := doRequest(t, app, "/pleno", tokenPara(t, u))
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)
}

func TestRequireActive_ContaPlena(t *testing.T) {
	u := contaAtiva(entity.RoleTreinador)
	app := buildTestApp(&usuarioLookupFake{usuarios: map[uuid.UUID]*entity.Usuario{u.ID: u}})
	resp := doRequest(t, app, "/pleno", tokenPara(t, u))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_DirigentePassa(t *testing.T) {
	u := contaAtiva(entity.RoleDirigente)
	app := buildTestApp(&usuarioLookupFake{usuarios: map[uuid.UUID]*entity.Usuario{u.ID: u}})
	resp := doRequest(t, app, "/admin", tokenPara(t, u))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_AtletaBarrado(t *testing.T) {
	u := contaAtiva(entity.RoleAtleta)
	app := buildTestApp(&usuarioLookupFake{usuarios: map[uuid.UUID]*entity.Usuario{u.ID: u}})
	resp := doRequest(t, app, "/admin", tokenPara(t, u))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

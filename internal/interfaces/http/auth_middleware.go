package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/application/authz"
	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/domain"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
	"github.com/seu-usuario/equipe-pro/pkg/token"
)

// LocalUsuario chave de c.Locals para a conta autenticada.
const LocalUsuario = "usuario_atual"

// CurrentUser valida o Bearer Token e resolve a conta no banco a cada
// requisição: token válido de conta removida ou inexistente é recusado na
// hora, sem esperar a expiração. A conta resolvida (com role) vai para
// c.Locals; o estado de ativação NÃO é verificado aqui — rotas que exigem
// conta plena compõem com RequireActive.
func CurrentUser(jwtSecret string, usuarios repository.UsuarioRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return negar(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "header Authorization obrigatório")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return negar(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return negar(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vazio")
		}

		claims, err := token.Analisar(jwtSecret, tokenString)
		if err != nil {
			return negar(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "credenciais inválidas")
		}
		id, err := uuid.Parse(claims.Subject)
		if err != nil {
			return negar(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "credenciais inválidas")
		}

		u, err := usuarios.BuscarPorID(c.UserContext(), id)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if u == nil {
			return negar(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "credenciais inválidas")
		}

		c.Locals(LocalUsuario, u)
		return c.Next()
	}
}

// RequireActive exige conta ativa, não bloqueada e sem troca de senha
// pendente. O bloqueio vale aqui também: token emitido antes do bloqueio não
// dá sobrevida à conta. Conta com must_change_password só alcança a rota de
// troca de senha, que não compõe com este middleware.
func RequireActive() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := UsuarioAtual(c)
		if u == nil {
			return negar(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "não autenticado")
		}
		if !u.IsActive {
			return negar(c, fiber.StatusForbidden, "INACTIVE", "usuário inativo")
		}
		if u.Bloqueado(time.Now()) {
			bloqueio := domain.ContaBloqueadaError{Ate: *u.LockedUntil}
			return negar(c, fiber.StatusForbidden, "ACCOUNT_LOCKED", bloqueio.Error())
		}
		if u.MustChangePassword {
			return negar(c, fiber.StatusForbidden, "PASSWORD_CHANGE_REQUIRED", "troca de senha obrigatória")
		}
		return c.Next()
	}
}

// RequireRole exige que a role da conta esteja no conjunto de nomes. A decisão
// em si é do avaliador de permissões; aqui só se traduz o resultado.
func RequireRole(nomes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authz.Autorizar(UsuarioAtual(c), nil, nomes); err != nil {
			return erroHTTP(c, err)
		}
		return c.Next()
	}
}

// UsuarioAtual devolve a conta autenticada do contexto (após CurrentUser).
func UsuarioAtual(c *fiber.Ctx) *entity.Usuario {
	v := c.Locals(LocalUsuario)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.Usuario)
	return u
}

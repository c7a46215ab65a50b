package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/domain"
)

// negar responde uma negação de acesso registrando o evento no log: falhas de
// autenticação e autorização são o sinal de auditoria da API.
func negar(c *fiber.Ctx, status int, code, msg string) error {
	log.Warn().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("ip", c.IP()).
		Str("code", code).
		Msg("acesso negado")
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// erroHTTP traduz erros de domínio para status + corpo. A ordem de verificação
// segue a taxonomia: 401 para credencial, 403 para estado de conta e
// permissão, 404 para recurso (inclusive fora da organização), 409 para
// conflito de email, 400 para entrada.
func erroHTTP(c *fiber.Ctx, err error) error {
	var bloqueada *domain.ContaBloqueadaError
	switch {
	case errors.Is(err, domain.ErrCredenciaisInvalidas):
		return negar(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "email ou senha inválidos")
	case errors.Is(err, domain.ErrNaoAutenticado):
		return negar(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "não autenticado")
	case errors.As(err, &bloqueada):
		return negar(c, fiber.StatusForbidden, "ACCOUNT_LOCKED", bloqueada.Error())
	case errors.Is(err, domain.ErrUsuarioRemovido):
		return negar(c, fiber.StatusForbidden, "ACCOUNT_DELETED", "usuário removido")
	case errors.Is(err, domain.ErrUsuarioInativo):
		return negar(c, fiber.StatusForbidden, "INACTIVE", "usuário inativo")
	case errors.Is(err, domain.ErrTrocaSenhaPendente):
		return negar(c, fiber.StatusForbidden, "PASSWORD_CHANGE_REQUIRED", "troca de senha obrigatória")
	case errors.Is(err, domain.ErrSenhaTemporariaNaoProvisionada):
		return negar(c, fiber.StatusForbidden, "TEMP_PASSWORD_MISSING", "senha temporária não provisionada")
	case errors.Is(err, domain.ErrSenhaTemporariaExpirada):
		return negar(c, fiber.StatusForbidden, "TEMP_PASSWORD_EXPIRED", "senha temporária expirada")
	case errors.Is(err, domain.ErrPermissaoNegada):
		return negar(c, fiber.StatusForbidden, "FORBIDDEN", "permissão negada")
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso não encontrado"})
	case errors.Is(err, domain.ErrEmailJaCadastrado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "email já cadastrado"})
	case errors.Is(err, domain.ErrRoleInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "role_id inválido"})
	case errors.Is(err, domain.ErrSenhaAtualInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "senha atual inválida"})
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

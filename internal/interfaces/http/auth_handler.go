package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/equipe-pro/internal/application/auth"
	"github.com/seu-usuario/equipe-pro/internal/application/dto"
)

// AuthHandler login e troca de senha.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Autenticar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "user_email, password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /usuarios/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_email e password são obrigatórios"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// TrocarSenha godoc
// @Summary      Trocar a própria senha
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TrocaSenhaRequest  true  "old_password, new_password"
// @Success      200   {object}  dto.OKResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /usuarios/change-password [post]
func (h *AuthHandler) TrocarSenha(c *fiber.Ctx) error {
	u := UsuarioAtual(c)
	var in dto.TrocaSenhaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.SenhaAtual == "" || in.NovaSenha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "old_password e new_password são obrigatórios"})
	}
	if len(in.NovaSenha) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "new_password deve ter ao menos 8 caracteres"})
	}
	if err := h.uc.TrocarSenha(c.UserContext(), u, in); err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

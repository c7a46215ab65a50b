package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/application/usecase"
)

// UsuarioHandler administração de contas (protegido).
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler constrói o handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Criar godoc
// @Summary      Criar conta na organização
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarUsuarioRequest  true  "Dados da conta"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /usuarios [post]
func (h *UsuarioHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" || in.Email == "" || in.Password == "" || in.RoleID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_nome, user_email, password e role_id são obrigatórios"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password deve ter ao menos 8 caracteres"})
	}
	out, err := h.uc.Criar(c.UserContext(), UsuarioAtual(c), in)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar contas da organização
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(100)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.UsuarioResponse
// @Router       /usuarios [get]
func (h *UsuarioHandler) Listar(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Listar(c.UserContext(), UsuarioAtual(c), page)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Obter conta por ID
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conta (UUID)"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /usuarios/{id} [get]
func (h *UsuarioHandler) BuscarPorID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser um UUID"})
	}
	out, err := h.uc.BuscarPorID(c.UserContext(), UsuarioAtual(c), id)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar conta
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da conta (UUID)"
// @Param        body  body  dto.AtualizarUsuarioRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /usuarios/{id} [put]
func (h *UsuarioHandler) Atualizar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser um UUID"})
	}
	var in dto.AtualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Password != nil && len(*in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password deve ter ao menos 8 caracteres"})
	}
	out, err := h.uc.Atualizar(c.UserContext(), UsuarioAtual(c), id, in)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// Remover godoc
// @Summary      Remover conta (soft delete)
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conta (UUID)"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /usuarios/{id} [delete]
func (h *UsuarioHandler) Remover(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser um UUID"})
	}
	quando, err := h.uc.Remover(c.UserContext(), UsuarioAtual(c), id)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true, DeletedAt: quando.UTC().Format("2006-01-02T15:04:05Z07:00")})
}

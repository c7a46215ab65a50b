package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/application/usecase"
)

// EquipeHandler equipes (protegido).
type EquipeHandler struct {
	uc *usecase.EquipeUseCase
}

// NewEquipeHandler constrói o handler.
func NewEquipeHandler(uc *usecase.EquipeUseCase) *EquipeHandler {
	return &EquipeHandler{uc: uc}
}

// Criar godoc
// @Summary      Criar equipe
// @Tags         equipes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EquipeRequest  true  "Dados da equipe"
// @Success      201   {object}  dto.EquipeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /equipes [post]
func (h *EquipeHandler) Criar(c *fiber.Ctx) error {
	var in dto.EquipeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório"})
	}
	out, err := h.uc.Criar(c.UserContext(), UsuarioAtual(c), in)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar equipes visíveis à conta
// @Tags         equipes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(100)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.EquipeResponse
// @Router       /equipes [get]
func (h *EquipeHandler) Listar(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Listar(c.UserContext(), UsuarioAtual(c), page)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Obter equipe por ID
// @Tags         equipes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da equipe"
// @Success      200  {object}  dto.EquipeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /equipes/{id} [get]
func (h *EquipeHandler) BuscarPorID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	out, err := h.uc.BuscarPorID(c.UserContext(), UsuarioAtual(c), id)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar equipe
// @Tags         equipes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da equipe"
// @Param        body  body  dto.EquipeRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.EquipeResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /equipes/{id} [put]
func (h *EquipeHandler) Atualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	var in dto.EquipeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório"})
	}
	out, err := h.uc.Atualizar(c.UserContext(), UsuarioAtual(c), id, in)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// Remover godoc
// @Summary      Remover equipe
// @Tags         equipes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da equipe"
// @Success      200  {object}  dto.OKResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /equipes/{id} [delete]
func (h *EquipeHandler) Remover(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	if err := h.uc.Remover(c.UserContext(), UsuarioAtual(c), id); err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

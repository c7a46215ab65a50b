package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/application/usecase"
)

// AtletaHandler atletas (protegido).
type AtletaHandler struct {
	uc *usecase.AtletaUseCase
}

// NewAtletaHandler constrói o handler.
func NewAtletaHandler(uc *usecase.AtletaUseCase) *AtletaHandler {
	return &AtletaHandler{uc: uc}
}

// Criar godoc
// @Summary      Criar atleta
// @Tags         atletas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AtletaRequest  true  "Dados do atleta"
// @Success      201   {object}  dto.AtletaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /atletas [post]
func (h *AtletaHandler) Criar(c *fiber.Ctx) error {
	var in dto.AtletaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome e email são obrigatórios"})
	}
	out, err := h.uc.Criar(c.UserContext(), UsuarioAtual(c), in)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar atletas visíveis à conta
// @Tags         atletas
// @Security     Bearer
// @Produce      json
// @Param        busca   query  string  false  "Busca por nome (sem acento, sem caixa)"
// @Param        limit   query  int     false  "Limite"  default(100)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.AtletaResponse
// @Router       /atletas [get]
func (h *AtletaHandler) Listar(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Listar(c.UserContext(), UsuarioAtual(c), c.Query("busca"), page)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Obter atleta por ID
// @Tags         atletas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do atleta"
// @Success      200  {object}  dto.AtletaResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /atletas/{id} [get]
func (h *AtletaHandler) BuscarPorID(c *fiber.Ctx) error {
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
// @Summary      Atualizar atleta
// @Tags         atletas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do atleta"
// @Param        body  body  dto.AtletaRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.AtletaResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /atletas/{id} [put]
func (h *AtletaHandler) Atualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	var in dto.AtletaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome e email são obrigatórios"})
	}
	out, err := h.uc.Atualizar(c.UserContext(), UsuarioAtual(c), id, in)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// Remover godoc
// @Summary      Remover atleta
// @Tags         atletas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do atleta"
// @Success      200  {object}  dto.OKResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /atletas/{id} [delete]
func (h *AtletaHandler) Remover(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	if err := h.uc.Remover(c.UserContext(), UsuarioAtual(c), id); err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

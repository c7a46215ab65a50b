package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/application/usecase"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

// VideoHandler vídeos de equipes e atletas (protegido).
type VideoHandler struct {
	uc *usecase.VideoUseCase
}

// NewVideoHandler constrói o handler.
func NewVideoHandler(uc *usecase.VideoUseCase) *VideoHandler {
	return &VideoHandler{uc: uc}
}

// Criar godoc
// @Summary      Cadastrar vídeo
// @Tags         videos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VideoRequest  true  "url, equipe_id, atleta_id opcional"
// @Success      201   {object}  dto.VideoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /videos [post]
func (h *VideoHandler) Criar(c *fiber.Ctx) error {
	var in dto.VideoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.URL == "" || in.EquipeID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "url e equipe_id são obrigatórios"})
	}
	out, err := h.uc.Criar(c.UserContext(), UsuarioAtual(c), in)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar vídeos visíveis à conta
// @Tags         videos
// @Security     Bearer
// @Produce      json
// @Param        equipe_id  query  int  false  "Filtrar por equipe"
// @Param        atleta_id  query  int  false  "Filtrar por atleta"
// @Param        limit      query  int  false  "Limite"  default(100)
// @Param        offset     query  int  false  "Offset"  default(0)
// @Success      200        {array}  dto.VideoResponse
// @Router       /videos [get]
func (h *VideoHandler) Listar(c *fiber.Ctx) error {
	var f repository.FiltroVideo
	if v := c.QueryInt("equipe_id", 0); v > 0 {
		f.EquipeID = &v
	}
	if v := c.QueryInt("atleta_id", 0); v > 0 {
		f.AtletaID = &v
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Listar(c.UserContext(), UsuarioAtual(c), f, page)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// Remover godoc
// @Summary      Remover vídeo
// @Tags         videos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do vídeo"
// @Success      200  {object}  dto.OKResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /videos/{id} [delete]
func (h *VideoHandler) Remover(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	if err := h.uc.Remover(c.UserContext(), UsuarioAtual(c), id); err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

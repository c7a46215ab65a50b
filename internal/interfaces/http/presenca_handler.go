package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/application/usecase"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

// PresencaHandler registros de presença (protegido).
type PresencaHandler struct {
	uc *usecase.PresencaUseCase
}

// NewPresencaHandler constrói o handler.
func NewPresencaHandler(uc *usecase.PresencaUseCase) *PresencaHandler {
	return &PresencaHandler{uc: uc}
}

// Criar godoc
// @Summary      Registrar presença
// @Tags         presencas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PresencaRequest  true  "Dados da presença"
// @Success      201   {object}  dto.PresencaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /presencas [post]
func (h *PresencaHandler) Criar(c *fiber.Ctx) error {
	var in dto.PresencaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.AtletaID == 0 || in.EquipeID == 0 || in.Data.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "atleta_id, equipe_id e data são obrigatórios"})
	}
	out, err := h.uc.Criar(c.UserContext(), UsuarioAtual(c), in)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar presenças visíveis à conta
// @Tags         presencas
// @Security     Bearer
// @Produce      json
// @Param        equipe_id  query  int     false  "Filtrar por equipe"
// @Param        atleta_id  query  int     false  "Filtrar por atleta"
// @Param        data       query  string  false  "Filtrar por data (YYYY-MM-DD)"
// @Param        limit      query  int     false  "Limite"  default(100)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {array}  dto.PresencaResponse
// @Router       /presencas [get]
func (h *PresencaHandler) Listar(c *fiber.Ctx) error {
	var f repository.FiltroPresenca
	if v := c.QueryInt("equipe_id", 0); v > 0 {
		f.EquipeID = &v
	}
	if v := c.QueryInt("atleta_id", 0); v > 0 {
		f.AtletaID = &v
	}
	if s := c.Query("data"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data deve estar no formato YYYY-MM-DD"})
		}
		f.Data = &d
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.Listar(c.UserContext(), UsuarioAtual(c), f, page)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar presença
// @Tags         presencas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da presença"
// @Param        body  body  dto.PresencaRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.PresencaResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /presencas/{id} [put]
func (h *PresencaHandler) Atualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	var in dto.PresencaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.AtletaID == 0 || in.EquipeID == 0 || in.Data.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "atleta_id, equipe_id e data são obrigatórios"})
	}
	out, err := h.uc.Atualizar(c.UserContext(), UsuarioAtual(c), id, in)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// Remover godoc
// @Summary      Remover presença
// @Tags         presencas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da presença"
// @Success      200  {object}  dto.OKResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /presencas/{id} [delete]
func (h *PresencaHandler) Remover(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	if err := h.uc.Remover(c.UserContext(), UsuarioAtual(c), id); err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Relatorio godoc
// @Summary      Relatório de presenças da equipe em PDF
// @Tags         presencas
// @Security     Bearer
// @Produce      application/pdf
// @Param        equipe_id  query  int  true  "ID da equipe"
// @Success      200  {file}    file
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /presencas/relatorio [get]
func (h *PresencaHandler) Relatorio(c *fiber.Ctx) error {
	equipeID := c.QueryInt("equipe_id", 0)
	if equipeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "equipe_id é obrigatório"})
	}
	pdfBytes, err := h.uc.GerarRelatorio(c.UserContext(), UsuarioAtual(c), equipeID)
	if err != nil {
		return erroHTTP(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="presencas-equipe-%d.pdf"`, equipeID))
	return c.Send(pdfBytes)
}

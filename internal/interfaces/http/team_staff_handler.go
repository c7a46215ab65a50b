package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/application/usecase"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

// TeamStaffHandler vínculos usuário-equipe com função (protegido, administrativo).
type TeamStaffHandler struct {
	uc *usecase.TeamStaffUseCase
}

// NewTeamStaffHandler constrói o handler.
func NewTeamStaffHandler(uc *usecase.TeamStaffUseCase) *TeamStaffHandler {
	return &TeamStaffHandler{uc: uc}
}

// Criar godoc
// @Summary      Vincular usuário como staff de equipe
// @Tags         team-staff
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TeamStaffRequest  true  "equipe_id, user_id, staff_role"
// @Success      201   {object}  dto.TeamStaffResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /team-staff [post]
func (h *TeamStaffHandler) Criar(c *fiber.Ctx) error {
	var in dto.TeamStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.EquipeID == 0 || in.UserID == uuid.Nil || in.StaffRole == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "equipe_id, user_id e staff_role são obrigatórios"})
	}
	out, err := h.uc.Criar(c.UserContext(), UsuarioAtual(c), in)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar staff da organização
// @Tags         team-staff
// @Security     Bearer
// @Produce      json
// @Param        equipe_id  query  int     false  "Filtrar por equipe"
// @Param        user_id    query  string  false  "Filtrar por usuário (UUID)"
// @Success      200        {array}  dto.TeamStaffResponse
// @Router       /team-staff [get]
func (h *TeamStaffHandler) Listar(c *fiber.Ctx) error {
	var f repository.FiltroTeamStaff
	if v := c.QueryInt("equipe_id", 0); v > 0 {
		f.EquipeID = &v
	}
	if s := c.Query("user_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "user_id deve ser um UUID"})
		}
		f.UserID = &id
	}
	out, err := h.uc.Listar(c.UserContext(), UsuarioAtual(c), f)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// Remover godoc
// @Summary      Remover vínculo de staff
// @Tags         team-staff
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do vínculo"
// @Success      200  {object}  dto.OKResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /team-staff/{id} [delete]
func (h *TeamStaffHandler) Remover(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	if err := h.uc.Remover(c.UserContext(), UsuarioAtual(c), id); err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

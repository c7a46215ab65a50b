package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/application/usecase"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

// MembershipHandler vínculos atleta-equipe (protegido, administrativo).
type MembershipHandler struct {
	uc *usecase.MembershipUseCase
}

// NewMembershipHandler constrói o handler.
func NewMembershipHandler(uc *usecase.MembershipUseCase) *MembershipHandler {
	return &MembershipHandler{uc: uc}
}

// Criar godoc
// @Summary      Vincular atleta a equipe
// @Tags         memberships
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MembershipRequest  true  "equipe_id, atleta_id"
// @Success      201   {object}  dto.MembershipResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /memberships [post]
func (h *MembershipHandler) Criar(c *fiber.Ctx) error {
	var in dto.MembershipRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.EquipeID == 0 || in.AtletaID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "equipe_id e atleta_id são obrigatórios"})
	}
	out, err := h.uc.Criar(c.UserContext(), UsuarioAtual(c), in)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar vínculos da organização
// @Tags         memberships
// @Security     Bearer
// @Produce      json
// @Param        equipe_id  query  int  false  "Filtrar por equipe"
// @Param        atleta_id  query  int  false  "Filtrar por atleta"
// @Success      200        {array}  dto.MembershipResponse
// @Router       /memberships [get]
func (h *MembershipHandler) Listar(c *fiber.Ctx) error {
	var f repository.FiltroMembership
	if v := c.QueryInt("equipe_id", 0); v > 0 {
		f.EquipeID = &v
	}
	if v := c.QueryInt("atleta_id", 0); v > 0 {
		f.AtletaID = &v
	}
	out, err := h.uc.Listar(c.UserContext(), UsuarioAtual(c), f)
	if err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(out)
}

// Remover godoc
// @Summary      Remover vínculo
// @Tags         memberships
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do vínculo"
// @Success      200  {object}  dto.OKResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /memberships/{id} [delete]
func (h *MembershipHandler) Remover(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	if err := h.uc.Remover(c.UserContext(), UsuarioAtual(c), id); err != nil {
		return erroHTTP(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

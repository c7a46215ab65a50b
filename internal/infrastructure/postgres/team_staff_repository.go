package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

var _ repository.TeamStaffRepository = (*TeamStaffRepo)(nil)

// TeamStaffRepo implementação do porto TeamStaffRepository sobre PostgreSQL.
type TeamStaffRepo struct {
	db dbtx
}

// NewTeamStaffRepository constrói o adaptador sobre o pool.
func NewTeamStaffRepository(pool *pgxpool.Pool) *TeamStaffRepo {
	return &TeamStaffRepo{db: pool}
}

// NewTeamStaffRepositoryTx variante atada a uma transação.
func NewTeamStaffRepositoryTx(tx pgx.Tx) *TeamStaffRepo {
	return &TeamStaffRepo{db: tx}
}

// Criar insere o vínculo e devolve o id gerado em ts.ID.
func (r *TeamStaffRepo) Criar(ctx context.Context, ts *entity.TeamStaff) error {
	query := `
		INSERT INTO team_staff (equipe_id, user_id, staff_role)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.db.QueryRow(ctx, query, ts.EquipeID, ts.UserID, ts.StaffRole).Scan(&ts.ID)
	if err != nil {
		return fmt.Errorf("insert team_staff: %w", err)
	}
	return nil
}

// BuscarPorID vínculo por id, ou nil.
func (r *TeamStaffRepo) BuscarPorID(ctx context.Context, id int) (*entity.TeamStaff, error) {
	query := `SELECT id, equipe_id, user_id, staff_role FROM team_staff WHERE id = $1`
	var ts entity.TeamStaff
	err := r.db.QueryRow(ctx, query, id).Scan(&ts.ID, &ts.EquipeID, &ts.UserID, &ts.StaffRole)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar team_staff: %w", err)
	}
	return &ts, nil
}

// Buscar vínculo pela tripla (equipe, usuário, função), ou nil.
func (r *TeamStaffRepo) Buscar(ctx context.Context, equipeID int, userID uuid.UUID, staffRole string) (*entity.TeamStaff, error) {
	query := `
		SELECT id, equipe_id, user_id, staff_role FROM team_staff
		WHERE equipe_id = $1 AND user_id = $2 AND staff_role = $3`
	var ts entity.TeamStaff
	err := r.db.QueryRow(ctx, query, equipeID, userID, staffRole).Scan(&ts.ID, &ts.EquipeID, &ts.UserID, &ts.StaffRole)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar team_staff: %w", err)
	}
	return &ts, nil
}

// ExisteParaUsuario o usuário tem qualquer função de staff na equipe?
func (r *TeamStaffRepo) ExisteParaUsuario(ctx context.Context, equipeID int, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM team_staff WHERE equipe_id = $1 AND user_id = $2)`
	var existe bool
	if err := r.db.QueryRow(ctx, query, equipeID, userID).Scan(&existe); err != nil {
		return false, fmt.Errorf("verificar staff: %w", err)
	}
	return existe, nil
}

// Listar vínculos cujas equipes pertencem à organização, com filtros opcionais.
func (r *TeamStaffRepo) Listar(ctx context.Context, orgID uuid.UUID, f repository.FiltroTeamStaff) ([]*entity.TeamStaff, error) {
	query := `
		SELECT ts.id, ts.equipe_id, ts.user_id, ts.staff_role
		FROM team_staff ts
		JOIN equipes e ON e.id = ts.equipe_id
		WHERE e.organization_id = $1`
	args := []any{orgID}
	if f.EquipeID != nil {
		args = append(args, *f.EquipeID)
		query += fmt.Sprintf(" AND ts.equipe_id = $%d", len(args))
	}
	if f.UserID != nil {
		args = append(args, *f.UserID)
		query += fmt.Sprintf(" AND ts.user_id = $%d", len(args))
	}
	query += " ORDER BY ts.id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar team_staff: %w", err)
	}
	defer rows.Close()
	var list []*entity.TeamStaff
	for rows.Next() {
		var ts entity.TeamStaff
		if err := rows.Scan(&ts.ID, &ts.EquipeID, &ts.UserID, &ts.StaffRole); err != nil {
			return nil, fmt.Errorf("scan team_staff: %w", err)
		}
		list = append(list, &ts)
	}
	return list, rows.Err()
}

// Remover apaga o vínculo.
func (r *TeamStaffRepo) Remover(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM team_staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("remover team_staff: %w", err)
	}
	return nil
}

package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

// Fakes em memória dos portos de persistência, compartilhados pelos testes do
// pacote. Reproduzem a semântica dos adaptadores Postgres: ids sequenciais,
// nil para inexistente, filtros de organização por join lógico.

// ── usuários ──────────────────────────────────────────────────────────────────

type usuarioRepoFake struct {
	usuarios map[uuid.UUID]*entity.Usuario
}

func newUsuarioRepoFake(us ...*entity.Usuario) *usuarioRepoFake {
	f := &usuarioRepoFake{usuarios: map[uuid.UUID]*entity.Usuario{}}
	for _, u := range us {
		f.usuarios[u.ID] = u
	}
	return f
}

func (f *usuarioRepoFake) Criar(_ context.Context, u *entity.Usuario) error {
	f.usuarios[u.ID] = u
	return nil
}

func (f *usuarioRepoFake) BuscarPorID(_ context.Context, id uuid.UUID) (*entity.Usuario, error) {
	u := f.usuarios[id]
	if u == nil || u.DeletedAt != nil {
		return nil, nil
	}
	return u, nil
}

func (f *usuarioRepoFake) BuscarPorEmail(_ context.Context, email string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Email == email && u.DeletedAt == nil {
			return u, nil
		}
	}
	return nil, nil
}

func (f *usuarioRepoFake) ListarPorOrganizacao(_ context.Context, orgID uuid.UUID, limit, offset int) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range f.usuarios {
		if u.OrganizationID == orgID && u.DeletedAt == nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *usuarioRepoFake) Atualizar(_ context.Context, u *entity.Usuario) error {
	f.usuarios[u.ID] = u
	return nil
}

func (f *usuarioRepoFake) RemoverLogicamente(_ context.Context, id uuid.UUID, quando time.Time) error {
	if u := f.usuarios[id]; u != nil {
		u.DeletedAt = &quando
		u.IsActive = false
	}
	return nil
}

func (f *usuarioRepoFake) RegistrarFalhaLogin(_ context.Context, id uuid.UUID, limite int, bloqueio time.Duration) (int, *time.Time, error) {
	u := f.usuarios[id]
	if u.FailedLoginCount+1 >= limite {
		u.FailedLoginCount = 0
		ate := time.Now().Add(bloqueio)
		u.LockedUntil = &ate
	} else {
		u.FailedLoginCount++
	}
	return u.FailedLoginCount, u.LockedUntil, nil
}

func (f *usuarioRepoFake) RegistrarLoginComSucesso(_ context.Context, id uuid.UUID, quando time.Time) error {
	u := f.usuarios[id]
	u.FailedLoginCount = 0
	u.LockedUntil = nil
	u.LastLoginAt = &quando
	return nil
}

func (f *usuarioRepoFake) AtualizarSenha(_ context.Context, id uuid.UUID, hash string, quando time.Time) error {
	u := f.usuarios[id]
	u.PasswordHash = hash
	u.MustChangePassword = false
	u.TempPasswordExpiresAt = nil
	u.PasswordChangedAt = &quando
	return nil
}

// ── roles ─────────────────────────────────────────────────────────────────────

type roleRepoFake struct {
	roles map[int]*entity.Role
}

func newRoleRepoFake() *roleRepoFake {
	return &roleRepoFake{roles: map[int]*entity.Role{
		1: {RoleID: 1, RoleName: entity.RoleDirigente},
		2: {RoleID: 2, RoleName: entity.RoleCoordenador},
		3: {RoleID: 3, RoleName: entity.RoleTreinador},
		4: {RoleID: 4, RoleName: entity.RoleAtleta},
	}}
}

func (f *roleRepoFake) BuscarPorID(_ context.Context, id int) (*entity.Role, error) {
	return f.roles[id], nil
}

func (f *roleRepoFake) BuscarPorNome(_ context.Context, nome string) (*entity.Role, error) {
	for _, r := range f.roles {
		if r.RoleName == nome {
			return r, nil
		}
	}
	return nil, nil
}

func (f *roleRepoFake) Listar(_ context.Context) ([]*entity.Role, error) {
	var out []*entity.Role
	for _, r := range f.roles {
		out = append(out, r)
	}
	return out, nil
}

// ── equipes ───────────────────────────────────────────────────────────────────

type equipeRepoFake struct {
	equipes map[int]*entity.Equipe
	staff   *teamStaffRepoFake
	members *membershipRepoFake
	proxID  int
}

func newEquipeRepoFake(staff *teamStaffRepoFake, members *membershipRepoFake) *equipeRepoFake {
	return &equipeRepoFake{equipes: map[int]*entity.Equipe{}, staff: staff, members: members}
}

func (f *equipeRepoFake) Criar(_ context.Context, e *entity.Equipe) error {
	f.proxID++
	e.ID = f.proxID
	copia := *e
	f.equipes[e.ID] = &copia
	return nil
}

func (f *equipeRepoFake) BuscarPorID(_ context.Context, id int) (*entity.Equipe, error) {
	e := f.equipes[id]
	if e == nil {
		return nil, nil
	}
	copia := *e
	return &copia, nil
}

func (f *equipeRepoFake) ListarPorOrganizacao(_ context.Context, orgID uuid.UUID, limit, offset int) ([]*entity.Equipe, error) {
	var out []*entity.Equipe
	for _, e := range f.equipes {
		if e.OrganizationID == orgID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *equipeRepoFake) ListarPorMembroAtleta(_ context.Context, orgID uuid.UUID, atletaID int, limit, offset int) ([]*entity.Equipe, error) {
	var out []*entity.Equipe
	for _, m := range f.members.memberships {
		if m.AtletaID != atletaID {
			continue
		}
		if e := f.equipes[m.EquipeID]; e != nil && e.OrganizationID == orgID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *equipeRepoFake) ListarPorStaff(_ context.Context, orgID uuid.UUID, usuarioID uuid.UUID, limit, offset int) ([]*entity.Equipe, error) {
	visto := map[int]bool{}
	var out []*entity.Equipe
	for _, ts := range f.staff.vinculos {
		if ts.UserID != usuarioID || visto[ts.EquipeID] {
			continue
		}
		if e := f.equipes[ts.EquipeID]; e != nil && e.OrganizationID == orgID {
			visto[ts.EquipeID] = true
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *equipeRepoFake) Atualizar(_ context.Context, e *entity.Equipe) error {
	copia := *e
	f.equipes[e.ID] = &copia
	return nil
}

func (f *equipeRepoFake) Remover(_ context.Context, id int) error {
	delete(f.equipes, id)
	return nil
}

// ── team staff ────────────────────────────────────────────────────────────────

type teamStaffRepoFake struct {
	vinculos map[int]*entity.TeamStaff
	equipes  func(id int) *entity.Equipe
	proxID   int
}

func newTeamStaffRepoFake() *teamStaffRepoFake {
	return &teamStaffRepoFake{vinculos: map[int]*entity.TeamStaff{}}
}

func (f *teamStaffRepoFake) Criar(_ context.Context, ts *entity.TeamStaff) error {
	f.proxID++
	ts.ID = f.proxID
	copia := *ts
	f.vinculos[ts.ID] = &copia
	return nil
}

func (f *teamStaffRepoFake) BuscarPorID(_ context.Context, id int) (*entity.TeamStaff, error) {
	ts := f.vinculos[id]
	if ts == nil {
		return nil, nil
	}
	copia := *ts
	return &copia, nil
}

func (f *teamStaffRepoFake) Buscar(_ context.Context, equipeID int, userID uuid.UUID, staffRole string) (*entity.TeamStaff, error) {
	for _, ts := range f.vinculos {
		if ts.EquipeID == equipeID && ts.UserID == userID && ts.StaffRole == staffRole {
			copia := *ts
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *teamStaffRepoFake) ExisteParaUsuario(_ context.Context, equipeID int, userID uuid.UUID) (bool, error) {
	for _, ts := range f.vinculos {
		if ts.EquipeID == equipeID && ts.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *teamStaffRepoFake) Listar(_ context.Context, orgID uuid.UUID, filtro repository.FiltroTeamStaff) ([]*entity.TeamStaff, error) {
	var out []*entity.TeamStaff
	for _, ts := range f.vinculos {
		if f.equipes != nil {
			e := f.equipes(ts.EquipeID)
			if e == nil || e.OrganizationID != orgID {
				continue
			}
		}
		if filtro.EquipeID != nil && ts.EquipeID != *filtro.EquipeID {
			continue
		}
		if filtro.UserID != nil && ts.UserID != *filtro.UserID {
			continue
		}
		out = append(out, ts)
	}
	return out, nil
}

func (f *teamStaffRepoFake) Remover(_ context.Context, id int) error {
	delete(f.vinculos, id)
	return nil
}

// ── memberships ───────────────────────────────────────────────────────────────

type membershipRepoFake struct {
	memberships map[int]*entity.Membership
	equipes     func(id int) *entity.Equipe
	proxID      int
}

func newMembershipRepoFake() *membershipRepoFake {
	return &membershipRepoFake{memberships: map[int]*entity.Membership{}}
}

func (f *membershipRepoFake) Criar(_ context.Context, m *entity.Membership) error {
	f.proxID++
	m.ID = f.proxID
	copia := *m
	f.memberships[m.ID] = &copia
	return nil
}

func (f *membershipRepoFake) BuscarPorID(_ context.Context, id int) (*entity.Membership, error) {
	m := f.memberships[id]
	if m == nil {
		return nil, nil
	}
	copia := *m
	return &copia, nil
}

func (f *membershipRepoFake) BuscarPorEquipeAtleta(_ context.Context, equipeID, atletaID int) (*entity.Membership, error) {
	for _, m := range f.memberships {
		if m.EquipeID == equipeID && m.AtletaID == atletaID {
			copia := *m
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *membershipRepoFake) BuscarEquipeDoAtleta(_ context.Context, atletaID int) (int, error) {
	for _, m := range f.memberships {
		if m.AtletaID == atletaID {
			return m.EquipeID, nil
		}
	}
	return 0, nil
}

func (f *membershipRepoFake) Listar(_ context.Context, orgID uuid.UUID, filtro repository.FiltroMembership) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for _, m := range f.memberships {
		if f.equipes != nil {
			e := f.equipes(m.EquipeID)
			if e == nil || e.OrganizationID != orgID {
				continue
			}
		}
		if filtro.EquipeID != nil && m.EquipeID != *filtro.EquipeID {
			continue
		}
		if filtro.AtletaID != nil && m.AtletaID != *filtro.AtletaID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *membershipRepoFake) Remover(_ context.Context, id int) error {
	delete(f.memberships, id)
	return nil
}

// ── atletas ───────────────────────────────────────────────────────────────────

type atletaRepoFake struct {
	atletas map[int]*entity.Atleta
	members *membershipRepoFake
	staff   *teamStaffRepoFake
	proxID  int
}

func newAtletaRepoFake(members *membershipRepoFake, staff *teamStaffRepoFake) *atletaRepoFake {
	return &atletaRepoFake{atletas: map[int]*entity.Atleta{}, members: members, staff: staff}
}

func (f *atletaRepoFake) Criar(_ context.Context, a *entity.Atleta) error {
	f.proxID++
	a.ID = f.proxID
	copia := *a
	f.atletas[a.ID] = &copia
	return nil
}

func (f *atletaRepoFake) BuscarPorID(_ context.Context, id int) (*entity.Atleta, error) {
	a := f.atletas[id]
	if a == nil {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (f *atletaRepoFake) BuscarPorEmail(_ context.Context, email string) (*entity.Atleta, error) {
	for _, a := range f.atletas {
		if a.Email == email {
			copia := *a
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *atletaRepoFake) BuscarPorEmailNaOrganizacao(_ context.Context, email string, orgID uuid.UUID) (*entity.Atleta, error) {
	for _, a := range f.atletas {
		if a.Email == email && a.OrganizationID == orgID {
			copia := *a
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *atletaRepoFake) ListarPorOrganizacao(_ context.Context, orgID uuid.UUID, limit, offset int) ([]*entity.Atleta, error) {
	var out []*entity.Atleta
	for _, a := range f.atletas {
		if a.OrganizationID == orgID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *atletaRepoFake) ListarPorStaff(_ context.Context, orgID uuid.UUID, usuarioID uuid.UUID, limit, offset int) ([]*entity.Atleta, error) {
	equipesDoStaff := map[int]bool{}
	for _, ts := range f.staff.vinculos {
		if ts.UserID == usuarioID {
			equipesDoStaff[ts.EquipeID] = true
		}
	}
	visto := map[int]bool{}
	var out []*entity.Atleta
	for _, m := range f.members.memberships {
		if !equipesDoStaff[m.EquipeID] || visto[m.AtletaID] {
			continue
		}
		if a := f.atletas[m.AtletaID]; a != nil && a.OrganizationID == orgID {
			visto[m.AtletaID] = true
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *atletaRepoFake) Atualizar(_ context.Context, a *entity.Atleta) error {
	copia := *a
	f.atletas[a.ID] = &copia
	return nil
}

func (f *atletaRepoFake) Remover(_ context.Context, id int) error {
	delete(f.atletas, id)
	return nil
}

// ── tx runner ─────────────────────────────────────────────────────────────────

// txRunnerFake executa o callback direto sobre os fakes; sem transação real.
type txRunnerFake struct {
	equipes *equipeRepoFake
	staff   *teamStaffRepoFake
}

func (f *txRunnerFake) Run(ctx context.Context, fn func(equipes repository.EquipeRepository, staff repository.TeamStaffRepository) error) error {
	return fn(f.equipes, f.staff)
}

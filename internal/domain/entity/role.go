package entity

// Nomes de role conhecidos.
const (
	RoleDirigente   = "dirigente"
	RoleCoordenador = "coordenador"
	RoleTreinador   = "treinador"
	RoleAtleta      = "atleta"
)

// Role classe de permissão nomeada, referenciada por Usuario.
type Role struct {
	RoleID   int
	RoleName string
}

// EhAdministrativa dirigente e coordenador têm acesso irrestrito dentro da
// própria organização.
func (r Role) EhAdministrativa() bool {
	return r.RoleName == RoleDirigente || r.RoleName == RoleCoordenador
}

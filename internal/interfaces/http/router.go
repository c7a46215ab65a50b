package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/equipe-pro/internal/application/auth"
	"github.com/seu-usuario/equipe-pro/internal/application/usecase"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	EquipeUC     *usecase.EquipeUseCase
	AtletaUC     *usecase.AtletaUseCase
	MembershipUC *usecase.MembershipUseCase
	TeamStaffUC  *usecase.TeamStaffUseCase
	PresencaUC   *usecase.PresencaUseCase
	VideoUC      *usecase.VideoUseCase
	Usuarios     repository.UsuarioRepository
	JWTSecret    string
}

// Router registra as rotas da API em três camadas declarativas: públicas,
// autenticadas (token válido basta, é a saída da troca de senha obrigatória) e
// plenas (conta ativa e sem pendência de senha).
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)

	// Público
	app.Post("/usuarios/login", authHandler.Login)

	// Autenticado: qualquer conta com token válido, mesmo com troca de senha
	// pendente. É por aqui que a conta pendente sai do limbo.
	autenticado := app.Group("/", CurrentUser(deps.JWTSecret, deps.Usuarios))
	autenticado.Post("/usuarios/change-password", authHandler.TrocarSenha)

	// Pleno: conta ativa e sem troca de senha pendente.
	pleno := autenticado.Group("/", RequireActive())

	// Administração de contas: mutações só para dirigente e coordenador;
	// treinador mantém leitura.
	admin := RequireRole(entity.RoleDirigente, entity.RoleCoordenador)
	leitura := RequireRole(entity.RoleDirigente, entity.RoleCoordenador, entity.RoleTreinador)
	usuarios := pleno.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", admin, usuarioHandler.Criar)
	usuarios.Get("/", leitura, usuarioHandler.Listar)
	usuarios.Get("/:id", leitura, usuarioHandler.BuscarPorID)
	usuarios.Put("/:id", admin, usuarioHandler.Atualizar)
	usuarios.Delete("/:id", admin, usuarioHandler.Remover)

	equipes := pleno.Group("/equipes")
	equipeHandler := NewEquipeHandler(deps.EquipeUC)
	equipes.Post("/", equipeHandler.Criar)
	equipes.Get("/", equipeHandler.Listar)
	equipes.Get("/:id", equipeHandler.BuscarPorID)
	equipes.Put("/:id", equipeHandler.Atualizar)
	equipes.Delete("/:id", equipeHandler.Remover)

	atletas := pleno.Group("/atletas")
	atletaHandler := NewAtletaHandler(deps.AtletaUC)
	atletas.Post("/", atletaHandler.Criar)
	atletas.Get("/", atletaHandler.Listar)
	atletas.Get("/:id", atletaHandler.BuscarPorID)
	atletas.Put("/:id", atletaHandler.Atualizar)
	atletas.Delete("/:id", atletaHandler.Remover)

	memberships := pleno.Group("/memberships")
	membershipHandler := NewMembershipHandler(deps.MembershipUC)
	memberships.Post("/", membershipHandler.Criar)
	memberships.Get("/", membershipHandler.Listar)
	memberships.Delete("/:id", membershipHandler.Remover)

	teamStaff := pleno.Group("/team-staff")
	teamStaffHandler := NewTeamStaffHandler(deps.TeamStaffUC)
	teamStaff.Post("/", teamStaffHandler.Criar)
	teamStaff.Get("/", teamStaffHandler.Listar)
	teamStaff.Delete("/:id", teamStaffHandler.Remover)

	presencas := pleno.Group("/presencas")
	presencaHandler := NewPresencaHandler(deps.PresencaUC)
	presencas.Post("/", presencaHandler.Criar)
	presencas.Get("/relatorio", presencaHandler.Relatorio)
	presencas.Get("/", presencaHandler.Listar)
	presencas.Put("/:id", presencaHandler.Atualizar)
	presencas.Delete("/:id", presencaHandler.Remover)

	videos := pleno.Group("/videos")
	videoHandler := NewVideoHandler(deps.VideoUC)
	videos.Post("/", videoHandler.Criar)
	videos.Get("/", videoHandler.Listar)
	videos.Delete("/:id", videoHandler.Remover)
}

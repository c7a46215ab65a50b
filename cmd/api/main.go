package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/seu-usuario/equipe-pro/internal/application/auth"
	"github.com/seu-usuario/equipe-pro/internal/application/authz"
	"github.com/seu-usuario/equipe-pro/internal/application/usecase"
	infrapdf "github.com/seu-usuario/equipe-pro/internal/infrastructure/pdf"
	"github.com/seu-usuario/equipe-pro/internal/infrastructure/postgres"
	httpRouter "github.com/seu-usuario/equipe-pro/internal/interfaces/http"
	"github.com/seu-usuario/equipe-pro/pkg/config"
	"github.com/seu-usuario/equipe-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	equipeRepo := postgres.NewEquipeRepository(pool)
	atletaRepo := postgres.NewAtletaRepository(pool)
	membershipRepo := postgres.NewMembershipRepository(pool)
	teamStaffRepo := postgres.NewTeamStaffRepository(pool)
	presencaRepo := postgres.NewPresencaRepository(pool)
	videoRepo := postgres.NewVideoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	escopo := authz.NewTeamScope(teamStaffRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.Config{
		JWTSecret:       cfg.JWT.Secret,
		JWTIssuer:       cfg.JWT.Issuer,
		JWTTTL:          time.Duration(cfg.JWT.Expiration) * time.Minute,
		LimiteFalhas:    cfg.Auth.LimiteFalhasLogin,
		DuracaoBloqueio: time.Duration(cfg.Auth.BloqueioMinutos) * time.Minute,
		CustoBcrypt:     cfg.Auth.CustoBcrypt,
	})
	usuarioUC := usecase.NewUsuarioUseCase(
		usuarioRepo, roleRepo,
		time.Duration(cfg.Auth.ValidadeSenhaTempDias)*24*time.Hour,
		cfg.Auth.CustoBcrypt,
	)
	equipeUC := usecase.NewEquipeUseCase(equipeRepo, usuarioRepo, atletaRepo, membershipRepo, escopo, txRunner)
	atletaUC := usecase.NewAtletaUseCase(atletaRepo, membershipRepo, escopo)
	membershipUC := usecase.NewMembershipUseCase(membershipRepo, equipeRepo, atletaRepo, escopo)
	teamStaffUC := usecase.NewTeamStaffUseCase(teamStaffRepo, equipeRepo, usuarioRepo)
	presencaUC := usecase.NewPresencaUseCase(presencaRepo, equipeRepo, atletaRepo, escopo, pdfGenerator)
	videoUC := usecase.NewVideoUseCase(videoRepo, equipeRepo, atletaRepo, membershipRepo, escopo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Equipe Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/ping-banco", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"banco": "indisponível"})
		}
		return c.JSON(fiber.Map{"banco": "ok"})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UsuarioUC:    usuarioUC,
		EquipeUC:     equipeUC,
		AtletaUC:     atletaUC,
		MembershipUC: membershipUC,
		TeamStaffUC:  teamStaffUC,
		PresencaUC:   presencaUC,
		VideoUC:      videoUC,
		Usuarios:     usuarioRepo,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}

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

	"github.com/seplan-goias/tramita-api/internal/application/analytics"
	"github.com/seplan-goias/tramita-api/internal/application/auth"
	"github.com/seplan-goias/tramita-api/internal/application/tramitacao"
	"github.com/seplan-goias/tramita-api/internal/application/usecase"
	"github.com/seplan-goias/tramita-api/internal/domain/repository"
	infraai "github.com/seplan-goias/tramita-api/internal/infrastructure/ai"
	"github.com/seplan-goias/tramita-api/internal/infrastructure/postgres"
	httpRouter "github.com/seplan-goias/tramita-api/internal/interfaces/http"
	"github.com/seplan-goias/tramita-api/pkg/config"
	"github.com/seplan-goias/tramita-api/pkg/logger"
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
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	caseRepo := postgres.NewCaseRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	statusRepo := postgres.NewStatusRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tramitacaoUC := tramitacao.NewUseCase(txRunner, caseRepo, unitRepo, statusRepo)
	dashboardUC := analytics.NewDashboardUseCase(caseRepo, statusRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	statusUC := usecase.NewStatusUseCase(statusRepo)
	auditUC := usecase.NewAuditUseCase(auditRepo)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.APIKey, cfg.AI.Model)
	summaryUC := usecase.NewSummaryUseCase(anthropicSvc, caseRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Assinante LISTEN/NOTIFY: loga as mudanças empurradas pelo banco.
	// Outros consumidores (ex.: websocket para o painel) podem assinar o
	// mesmo canal com seus próprios handlers.
	listenCtx, stopListen := context.WithCancel(ctx)
	defer stopListen()
	listener := postgres.NewListener(pool, log.Zerolog())
	go func() {
		err := listener.Subscribe(listenCtx, "", func(ev repository.ChangeEvent) {
			log.Debug().
				Str("kind", ev.Kind).
				Str("entity", ev.Entity).
				Str("entity_id", ev.EntityID).
				Str("tenant_id", ev.TenantID).
				Msg("mudança notificada pelo store")
		})
		if err != nil && listenCtx.Err() == nil {
			log.Error().Err(err).Msg("assinante de mudanças finalizado")
		}
	}()

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
		Title:    "Tramita API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TramitacaoUC: tramitacaoUC,
		DashboardUC:  dashboardUC,
		UnitUC:       unitUC,
		StatusUC:     statusUC,
		AuditUC:      auditUC,
		SummaryUC:    summaryUC,
		AuthUC:       authUC,
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

	stopListen()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

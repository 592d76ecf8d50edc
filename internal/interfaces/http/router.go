package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seplan-goias/tramita-api/internal/application/analytics"
	"github.com/seplan-goias/tramita-api/internal/application/auth"
	"github.com/seplan-goias/tramita-api/internal/application/tramitacao"
	"github.com/seplan-goias/tramita-api/internal/application/usecase"
	"github.com/seplan-goias/tramita-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	TramitacaoUC *tramitacao.UseCase
	DashboardUC  *analytics.DashboardUseCase
	UnitUC       *usecase.UnitUseCase
	StatusUC     *usecase.StatusUseCase
	AuditUC      *usecase.AuditUseCase
	SummaryUC    *usecase.SummaryUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Papéis com permissão de escrita sobre processos
	writeRoles := RequireRole(entity.RoleAdmin, entity.RoleGestor)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Processos
	cases := protected.Group("/cases")
	caseHandler := NewCaseHandler(deps.TramitacaoUC)
	cases.Get("/", caseHandler.List)
	cases.Post("/", writeRoles, caseHandler.Create)
	cases.Get("/:id", caseHandler.GetByID)
	cases.Post("/:id/transition", writeRoles, caseHandler.Transition)
	// Edição retroativa e exclusão são privilegiadas (somente admin)
	cases.Put("/:id/history", adminOnly, caseHandler.RetroactiveEdit)
	cases.Delete("/:id", adminOnly, caseHandler.Delete)

	// Resumo por IA (leitura)
	aiHandler := NewAIHandler(deps.SummaryUC)
	cases.Get("/:id/summary", aiHandler.Summarize)

	// Painel gerencial
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/calendar", dashboardHandler.Calendar)

	// Configuração do fluxo (somente admin para escrita)
	config := protected.Group("/config")
	configHandler := NewConfigHandler(deps.UnitUC, deps.StatusUC)
	config.Get("/units", configHandler.ListUnits)
	config.Post("/units", adminOnly, configHandler.CreateUnit)
	config.Put("/units/:id", adminOnly, configHandler.UpdateUnit)
	config.Delete("/units/:id", adminOnly, configHandler.DeleteUnit)
	config.Get("/statuses", configHandler.ListStatuses)
	config.Post("/statuses", adminOnly, configHandler.CreateStatus)
	config.Put("/statuses/:id", adminOnly, configHandler.UpdateStatus)
	config.Delete("/statuses/:id", adminOnly, configHandler.DeleteStatus)

	// Auditoria (admin e gestor)
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/audit", RequireRole(entity.RoleAdmin, entity.RoleGestor), auditHandler.List)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DevMartinG/selena-api/internal/application/auth"
	"github.com/DevMartinG/selena-api/internal/application/usecase"
	"github.com/DevMartinG/selena-api/internal/domain/entity"
	"github.com/DevMartinG/selena-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	TenderUC      *usecase.TenderUseCase
	StageUC       *usecase.StageUseCase
	RuleUC        *usecase.DeadlineRuleUseCase
	CustomRuleUC  *usecase.CustomRuleUseCase
	ValidationUC  *usecase.ValidationUseCase
	DashboardUC   *usecase.DashboardUseCase
	ReportUC      *usecase.ReportUseCase
	RequirementUC *usecase.RequirementUseCase
	Logger        *logger.Logger
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Escritura: admin y analista. Lectura: cualquier rol autenticado.
	write := RequireRole(entity.RoleAdmin, entity.RoleAnalista)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Tenders
	tenders := protected.Group("/tenders")
	tenderHandler := NewTenderHandler(deps.TenderUC)
	tenders.Post("/", write, tenderHandler.Create)
	tenders.Get("/", tenderHandler.List)
	tenders.Get("/:id", tenderHandler.GetByID)
	tenders.Put("/:id", write, tenderHandler.Update)
	tenders.Delete("/:id", adminOnly, tenderHandler.Delete)

	// Etapas del proceso
	stageHandler := NewStageHandler(deps.StageUC)
	tenders.Post("/:id/stages", write, stageHandler.Create)
	tenders.Get("/:id/stages", stageHandler.List)
	tenders.Get("/:id/stages/:stage", stageHandler.Get)
	tenders.Put("/:id/stages/:stage", write, stageHandler.UpdateFields)

	// Validación y duración (consultivas)
	validationHandler := NewValidationHandler(deps.ValidationUC)
	tenders.Get("/:id/validation", validationHandler.Report)
	tenders.Post("/:id/validation", validationHandler.ValidateLive)
	tenders.Get("/:id/duration", validationHandler.Duration)

	// Excepciones por proceso (evidencia multipart)
	customRuleHandler := NewCustomRuleHandler(deps.CustomRuleUC)
	tenders.Post("/:id/custom-rules", write, customRuleHandler.Create)
	tenders.Get("/:id/custom-rules", customRuleHandler.List)
	tenders.Delete("/:id/custom-rules/:rule_id", write, customRuleHandler.Delete)

	// Ficha de seguimiento en PDF
	reportHandler := NewReportHandler(deps.ReportUC)
	tenders.Get("/:id/report", reportHandler.TrackingSheet)

	// Reglas globales (solo admin)
	rules := protected.Group("/deadline-rules", adminOnly)
	ruleHandler := NewRuleHandler(deps.RuleUC)
	rules.Post("/", ruleHandler.Create)
	rules.Get("/", ruleHandler.List)
	rules.Get("/:id", ruleHandler.GetByID)
	rules.Put("/:id", ruleHandler.Update)
	rules.Delete("/:id", ruleHandler.Delete)

	// Panel y consulta externa
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	requirementHandler := NewRequirementHandler(deps.RequirementUC, deps.Logger)
	protected.Get("/seace/requirements/:year/:number", requirementHandler.Lookup)
}

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

	"github.com/DevMartinG/selena-api/internal/application/auth"
	"github.com/DevMartinG/selena-api/internal/application/usecase"
	infrapdf "github.com/DevMartinG/selena-api/internal/infrastructure/pdf"
	"github.com/DevMartinG/selena-api/internal/infrastructure/postgres"
	infraseace "github.com/DevMartinG/selena-api/internal/infrastructure/seace"
	"github.com/DevMartinG/selena-api/internal/infrastructure/storage"
	httpRouter "github.com/DevMartinG/selena-api/internal/interfaces/http"
	domseace "github.com/DevMartinG/selena-api/internal/domain/seace"
	"github.com/DevMartinG/selena-api/pkg/config"
	"github.com/DevMartinG/selena-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}

	evidenceStore, err := storage.NewEvidenceStore(ctx, cfg.Minio)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MinIO")
	}

	userRepo := postgres.NewUserRepository(pool)
	tenderRepo := postgres.NewTenderRepository(pool)
	stageRepo := postgres.NewStageRepository(pool)
	ruleRepo := postgres.NewDeadlineRuleRepository(pool)
	customRepo := postgres.NewCustomDeadlineRuleRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	validator := domseace.NewValidator(domseace.DefaultCatalog())

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	tenderUC := usecase.NewTenderUseCase(tenderRepo)
	stageUC := usecase.NewStageUseCase(txRunner, tenderRepo, stageRepo, ruleRepo, customRepo, validator)
	ruleUC := usecase.NewDeadlineRuleUseCase(ruleRepo)
	customRuleUC := usecase.NewCustomRuleUseCase(customRepo, tenderRepo, evidenceStore)
	validationUC := usecase.NewValidationUseCase(tenderRepo, stageRepo, ruleRepo, customRepo, validator)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	requirementUC := usecase.NewRequirementUseCase(infraseace.NewClient(cfg.SEACE))

	// PDF: ficha de seguimiento del proceso
	sheetGenerator := infrapdf.NewMarotoSheetGenerator()
	reportUC := usecase.NewReportUseCase(tenderRepo, stageRepo, ruleRepo, customRepo, validator, sheetGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SELENA API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		TenderUC:      tenderUC,
		StageUC:       stageUC,
		RuleUC:        ruleUC,
		CustomRuleUC:  customRuleUC,
		ValidationUC:  validationUC,
		DashboardUC:   dashboardUC,
		ReportUC:      reportUC,
		RequirementUC: requirementUC,
		Logger:        log,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

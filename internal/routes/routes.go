package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-frontdesk/internal/audit"
	"github.com/BruksfildServices01/barber-frontdesk/internal/cache"
	"github.com/BruksfildServices01/barber-frontdesk/internal/config"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/frontdesk"
	"github.com/BruksfildServices01/barber-frontdesk/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-frontdesk/internal/infra/repository"
	"github.com/BruksfildServices01/barber-frontdesk/internal/logger"
	"github.com/BruksfildServices01/barber-frontdesk/internal/middleware"
	"github.com/BruksfildServices01/barber-frontdesk/internal/session"
	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-frontdesk/internal/usecase/appointment"
	ucClient "github.com/BruksfildServices01/barber-frontdesk/internal/usecase/client"
	ucReport "github.com/BruksfildServices01/barber-frontdesk/internal/usecase/report"
	ucSettings "github.com/BruksfildServices01/barber-frontdesk/internal/usecase/settings"
	ucTeam "github.com/BruksfildServices01/barber-frontdesk/internal/usecase/team"
	"github.com/BruksfildServices01/barber-frontdesk/internal/validators"
)

// Deps are the singletons shared by every route.
type Deps struct {
	Config      *config.Config
	DB          *gorm.DB
	Store       frontdesk.Repository
	Audit       *audit.Dispatcher
	Sessions    session.Store
	ReportCache cache.ReportCache
	Resolver    validators.DomainResolver
	Clock       timezone.Clock
	Log         *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	tz := cfg.Timezone

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(logger.Recovery(d.Log))
	r.Use(logger.GinMiddleware(d.Log))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(d.DB)
	accessRequestRepo := infraRepo.NewAccessRequestGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(d.Store, d.Audit, d.Clock, tz, d.Log)
	checkpointUC := ucAppointment.NewConfirmCheckpoint(d.Store, d.Audit)
	togglePaymentUC := ucAppointment.NewQuickTogglePayment(d.Store, d.Audit)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(d.Store, d.Clock)

	dailyStatsUC := ucReport.NewGetDailyStats(d.Store, d.Clock)
	financialUC := ucReport.NewGetFinancialClosure(d.Store, d.ReportCache, d.Clock, d.Log)

	listEmployeesUC := ucTeam.NewListEmployees(d.Store)
	addEmployeeUC := ucTeam.NewAddEmployee(d.Store, d.Audit, d.Clock)
	deleteEmployeeUC := ucTeam.NewDeleteEmployee(d.Store, d.Audit)

	listClientsUC := ucClient.NewListClients(d.Store)
	suggestClientsUC := ucClient.NewSuggestClients(d.Store)
	updateClientUC := ucClient.NewUpdate(d.Store, d.Audit, d.Clock)

	settingsGate := ucSettings.NewGate(
		ucSettings.Credentials{Username: cfg.SettingsUser, Password: cfg.SettingsPassword},
		cfg.SettingsSessionTTL,
		d.Sessions,
		d.Audit,
		d.Clock,
		d.Log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(accountRepo, cfg)
	accessRequestHandler := handlers.NewAccessRequestHandler(accessRequestRepo, d.Resolver, d.Audit)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		checkpointUC,
		togglePaymentUC,
		listByDateUC,
		tz,
		d.Clock,
	)
	reportHandler := handlers.NewReportHandler(dailyStatsUC, financialUC, tz, d.Clock)
	clientHandler := handlers.NewClientHandler(listClientsUC, suggestClientsUC, updateClientUC)
	settingsHandler := handlers.NewSettingsHandler(settingsGate, listEmployeesUC, addEmployeeUC, deleteEmployeeUC)
	publicHandler := handlers.NewPublicHandler(listEmployeesUC, createAppointmentUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, tz)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/employees", publicHandler.ListEmployees)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/access-requests", accessRequestHandler.Create)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/dashboard", reportHandler.Dashboard)
			secured.GET("/financial", reportHandler.Financial)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id/checkpoint", appointmentHandler.Checkpoint)
			secured.PATCH("/appointments/:id/toggle-payment", appointmentHandler.TogglePayment)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/suggestions", clientHandler.Suggestions)
			secured.PATCH("/clients/:id/phone", clientHandler.UpdatePhone)
			secured.PATCH("/clients/:id", clientHandler.Rename)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.GET("/employees", settingsHandler.ListEmployees)
			secured.GET("/audit-logs", auditLogsHandler.List)
			secured.GET("/access-requests", accessRequestHandler.List)

			// ------------------------------
			// SETTINGS (fixed credentials)
			// ------------------------------
			secured.POST("/settings/login", settingsHandler.Login)
			secured.POST("/settings/logout", settingsHandler.Logout)

			gated := secured.Group("/settings")
			gated.Use(middleware.SettingsGate(settingsGate))
			{
				gated.POST("/employees", settingsHandler.AddEmployee)
				gated.DELETE("/employees/:id", settingsHandler.DeleteEmployee)
			}
		}
	}
}

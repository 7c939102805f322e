package routes

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-manager/internal/audit"
	"github.com/BruksfildServices01/appointment-manager/internal/cache"
	"github.com/BruksfildServices01/appointment-manager/internal/config"
	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-manager/internal/handlers"
	infraRepo "github.com/BruksfildServices01/appointment-manager/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-manager/internal/loginlog"
	"github.com/BruksfildServices01/appointment-manager/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/appointment-manager/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/appointment-manager/internal/usecase/auth"
	ucCustomer "github.com/BruksfildServices01/appointment-manager/internal/usecase/customer"
	ucReport "github.com/BruksfildServices01/appointment-manager/internal/usecase/report"
)

// Deps are the long-lived services built once in main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Hours    domain.BusinessHours
	Audit    *audit.Dispatcher
	Cache    *cache.ReportCache
	LoginLog *loginlog.Writer
	Reports  *ucReport.Suite
}

// NewEngine builds the gin engine with recovery, request logging and the
// proxy trust list. Client IPs come from the socket unless the peer is a
// trusted proxy.
func NewEngine(cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(middleware.Recovery(), middleware.RequestLogger())
	return r, nil
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	businessLoc := d.Hours.Location
	if businessLoc == nil {
		businessLoc = time.UTC
	}

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middleware.LocaleMiddleware(cfg.DefaultLocale))

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	customerRepo := infraRepo.NewCustomerGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	saveAppointmentUC := ucAppointment.NewSaveAppointment(appointmentRepo, d.Hours, d.Audit, d.Cache)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, d.Audit, d.Cache)
	listAppointmentsUC := ucAppointment.NewListAppointmentsInRange(appointmentRepo)
	upcomingUC := ucAppointment.NewFindUpcoming(appointmentRepo)

	saveCustomerUC := ucCustomer.NewSaveCustomer(customerRepo, d.Audit)
	deleteCustomerUC := ucCustomer.NewDeleteCustomer(customerRepo, d.Audit)
	listCustomersUC := ucCustomer.NewListCustomers(customerRepo)

	loginUC := ucAuth.NewLogin(userRepo, upcomingUC, d.LoginLog, d.Audit, cfg.JWTSecret)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC, businessLoc)
	meHandler := handlers.NewMeHandler(userRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		saveAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		upcomingUC,
		d.Hours,
	)

	customerHandler := handlers.NewCustomerHandler(
		saveCustomerUC,
		deleteCustomerUC,
		listCustomersUC,
	)

	reportHandler := handlers.NewReportHandler(
		d.Reports.Types,
		d.Reports.Consultants,
		d.Reports.Contacts,
		d.Reports.Export,
		businessLoc,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB), businessLoc)

	loginLimiter := middleware.NewIPRateLimiter(cfg.LoginRatePerSecond, cfg.LoginRateBurst)

	// ======================================================
	// API
	// ======================================================
	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	{
		api.GET("/labels", handlers.Labels)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", middleware.RateLimitMiddleware(loginLimiter), authHandler.Login)

		// ------------------------------
		// SECURED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/business-hours", appointmentHandler.BusinessHours)

			secured.GET("/me/appointments", appointmentHandler.List)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments/upcoming", appointmentHandler.Upcoming)
			secured.PUT("/me/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)

			secured.GET("/customers", customerHandler.List)
			secured.POST("/customers", customerHandler.Create)
			secured.PUT("/customers/:id", customerHandler.Update)
			secured.DELETE("/customers/:id", customerHandler.Delete)

			secured.GET("/reports/types", reportHandler.Types)
			secured.GET("/reports/consultants", reportHandler.Consultants)
			secured.GET("/reports/consultants/:username", reportHandler.ConsultantSchedule)
			secured.GET("/reports/contacts", reportHandler.Contacts)
			secured.GET("/reports/contacts/:contact", reportHandler.ContactSchedule)
			secured.GET("/reports/:kind/export", reportHandler.Export)
		}
	}
}

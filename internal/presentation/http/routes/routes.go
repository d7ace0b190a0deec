package routes

import (
	"time"

	"github.com/eventdesk/eventdesk-api/internal/config"
	domainRepo "github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/internal/presentation/http/handler"
	"github.com/eventdesk/eventdesk-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Stall        *handler.StallHandler
	Product      *handler.ProductHandler
	Bill         *handler.BillHandler
	Registration *handler.RegistrationHandler
	Payment      *handler.PaymentHandler
	Program      *handler.ProgramHandler
	Team         *handler.TeamHandler
	Ledger       *handler.LedgerHandler
	Dashboard    *handler.DashboardHandler
	Printer      *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		// Dashboard
		v1.GET("/dashboard", h.Dashboard.GetStats)

		// Ledger
		v1.GET("/ledger/summary", h.Ledger.Summary)

		registerStallRoutes(v1, h)
		registerProductRoutes(v1, h)
		registerBillRoutes(v1, h, deps)
		registerRegistrationRoutes(v1, h, deps)
		registerPaymentRoutes(v1, h)
		registerProgramRoutes(v1, h)
		registerTeamRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router
}

func registerStallRoutes(v1 *gin.RouterGroup, h *Handlers) {
	stalls := v1.Group("/stalls")
	{
		stalls.GET("", h.Stall.List)
		stalls.POST("", h.Stall.Create)
		stalls.GET("/:id", h.Stall.Get)
		stalls.PUT("/:id", h.Stall.Update)
		stalls.DELETE("/:id", h.Stall.Delete)
		stalls.POST("/:id/verify", h.Stall.Verify)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerBillRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	bills := v1.Group("/bills")
	{
		bills.GET("", h.Bill.List)
		// Bill creation uses idempotency middleware to prevent duplicate receipts
		bills.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Bill.Create)
		bills.GET("/:id", h.Bill.Get)
		bills.POST("/:id/pay", h.Bill.Pay)
	}
}

func registerRegistrationRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	registrations := v1.Group("/registrations")
	{
		registrations.GET("", h.Registration.List)
		registrations.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Registration.Create)
		registrations.GET("/:id", h.Registration.Get)
	}
}

func registerPaymentRoutes(v1 *gin.RouterGroup, h *Handlers) {
	payments := v1.Group("/payments")
	{
		payments.GET("", h.Payment.List)
		payments.POST("", h.Payment.Create)
		payments.GET("/:id", h.Payment.Get)
	}
}

func registerProgramRoutes(v1 *gin.RouterGroup, h *Handlers) {
	programs := v1.Group("/programs")
	{
		programs.GET("", h.Program.List)
		programs.POST("", h.Program.Create)
		programs.GET("/:id", h.Program.Get)
		programs.PUT("/:id", h.Program.Update)
		programs.DELETE("/:id", h.Program.Delete)
	}
}

func registerTeamRoutes(v1 *gin.RouterGroup, h *Handlers) {
	team := v1.Group("/team")
	{
		team.GET("", h.Team.List)
		team.POST("", h.Team.Create)
		team.GET("/:id", h.Team.Get)
		team.PUT("/:id", h.Team.Update)
		team.DELETE("/:id", h.Team.Delete)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printerGroup := v1.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
		printerGroup.POST("/receipt", h.Printer.PrintReceipt)
	}
}

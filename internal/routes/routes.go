package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/doctors-portal-api/internal/audit"
	"github.com/BruksfildServices01/doctors-portal-api/internal/config"
	dbpkg "github.com/BruksfildServices01/doctors-portal-api/internal/db"
	"github.com/BruksfildServices01/doctors-portal-api/internal/domain/auth"
	"github.com/BruksfildServices01/doctors-portal-api/internal/handlers"
	"github.com/BruksfildServices01/doctors-portal-api/internal/infra/cache"
	"github.com/BruksfildServices01/doctors-portal-api/internal/infra/gateway"
	infraRepo "github.com/BruksfildServices01/doctors-portal-api/internal/infra/repository"
	"github.com/BruksfildServices01/doctors-portal-api/internal/middleware"
	"github.com/BruksfildServices01/doctors-portal-api/internal/token"
	ucBooking "github.com/BruksfildServices01/doctors-portal-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	database *mongo.Database,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingMongoRepository(database)
	userRepo := infraRepo.NewUserMongoRepository(database)
	doctorRepo := infraRepo.NewDoctorMongoRepository(database)
	auditRepo := infraRepo.NewAuditLogMongoRepository(database)

	catalogCache := cache.NewCatalogCache(rdb, bookingRepo, cfg.CatalogCacheTTL, log)
	stripeGateway := gateway.NewStripeGateway(cfg.StripeSecretKey)

	auditLogger := audit.New(database.Collection(dbpkg.CollectionAuditLogs))
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	guard := auth.NewGuard(userRepo)

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	reserveUC := ucBooking.NewReserve(bookingRepo, auditDispatcher)
	confirmPaymentUC := ucBooking.NewConfirmPayment(bookingRepo, auditDispatcher, log)
	createIntentUC := ucBooking.NewCreatePaymentIntent(stripeGateway, cfg.Currency)

	// ======================================================
	// HANDLERS
	// ======================================================
	serviceHandler := handlers.NewServiceHandler(catalogCache)
	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC, cfg.ClinicTimezone)
	bookingHandler := handlers.NewBookingHandler(reserveUC, confirmPaymentUC, bookingRepo, guard)
	paymentHandler := handlers.NewPaymentHandler(createIntentUC)
	userHandler := handlers.NewUserHandler(userRepo, tokens, auditDispatcher)
	doctorHandler := handlers.NewDoctorHandler(doctorRepo, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditRepo)

	// ======================================================
	// MIDDLEWARE CHAINS
	// ======================================================
	identityRequired := middleware.RequireIdentity(tokens)
	adminRequired := middleware.RequireAdmin(guard)

	// ======================================================
	// ROUTES
	// ======================================================

	// Public
	r.GET("/services", serviceHandler.List)
	r.GET("/available", availabilityHandler.Get)
	r.GET("/doctors", doctorHandler.List)
	r.POST("/booking", bookingHandler.Create)
	r.PUT("/users/:email", userHandler.Upsert)
	r.GET("/users/admin/:email", userHandler.IsAdmin)

	// Identity required
	identified := r.Group("/")
	identified.Use(identityRequired)
	{
		identified.GET("/booking", bookingHandler.ListByPatient)
		identified.GET("/booking/:id", bookingHandler.GetByID)
		identified.PATCH("/booking/:id", bookingHandler.ConfirmPayment)
		identified.POST("/create-payment-intent", paymentHandler.CreateIntent)
	}

	// Admin required
	admin := r.Group("/")
	admin.Use(identityRequired, adminRequired)
	{
		admin.GET("/users", userHandler.List)
		admin.PUT("/users/admin/:email", userHandler.Elevate)
		admin.POST("/doctors", doctorHandler.Create)
		admin.DELETE("/doctors/:email", doctorHandler.Delete)
		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}

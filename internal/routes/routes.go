package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	apDomain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	shopDomain "github.com/BruksfildServices01/barber-booking/internal/domain/barbershop"
	userDomain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/infra/cache"
	"github.com/BruksfildServices01/barber-booking/internal/infra/imaging"
	"github.com/BruksfildServices01/barber-booking/internal/infra/mail"
	"github.com/BruksfildServices01/barber-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/token"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucShop "github.com/BruksfildServices01/barber-booking/internal/usecase/barbershop"
	ucUser "github.com/BruksfildServices01/barber-booking/internal/usecase/user"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// Deps are the process-wide singletons built by main. Objects may be nil,
// which turns logo uploads off.
type Deps struct {
	Config *config.Config
	Log    *zap.Logger

	Users        userDomain.Repository
	Shops        shopDomain.Repository
	Appointments apDomain.Repository

	Audit      *audit.Logger
	Dispatcher *audit.Dispatcher
	Metrics    *metrics.Metrics

	Tokens      cache.TokenStore
	Mailer      mail.Mailer
	Objects     storage.ObjectStore
	CheckDomain validators.DomainChecker
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	validators.Setup()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		middleware.Recovery(d.Log),
		d.Metrics.Middleware(),
		middleware.ErrorHandler(d.Log),
		middleware.CORS(d.Config.CORSOrigins),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	signer := token.NewSigner(d.Config.JWTSecret, d.Config.JWTTTL, d.Config.ResetTokenTTL)
	resolve := ucUser.NewResolveIdentity(d.Users, d.Shops, signer)

	authLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		PerMinute: d.Config.AuthRatePerMinute,
		Burst:     d.Config.AuthRateBurst,
	})

	var objects ucShop.ObjectStore
	if d.Objects != nil {
		objects = d.Objects
	}

	// ======================================================
	// USE CASES: USERS
	// ======================================================
	userHandler := handlers.NewUserHandler(
		ucUser.NewRegisterUser(d.Users, signer, d.CheckDomain, d.Log),
		ucUser.NewAuthenticateUser(d.Users, d.Shops, signer),
		ucUser.NewValidateToken(resolve),
		ucUser.NewForgotPassword(d.Users, signer, d.Mailer, d.Config.ResetPasswordURL, d.Log),
		ucUser.NewResetPassword(d.Users, signer, d.Tokens, d.Log),
		ucUser.NewGetMe(d.Users),
		ucUser.NewUpdateMe(d.Users),
	)

	// ======================================================
	// USE CASES: BARBERSHOPS, SERVICES, SERVICE TYPES
	// ======================================================
	barbershopHandler := handlers.NewBarbershopHandler(
		ucShop.NewCreateShop(d.Shops, d.Dispatcher, d.Log),
		ucShop.NewGetMyShop(d.Shops),
		ucShop.NewUpdateShop(d.Shops, d.Dispatcher),
		ucShop.NewSetShopStatus(d.Shops, d.Dispatcher),
		ucShop.NewGetShop(d.Shops),
		ucShop.NewListShops(d.Shops),
		d.Audit,
	)

	serviceHandler := handlers.NewServiceHandler(
		ucShop.NewCreateService(d.Shops, d.Dispatcher),
		ucShop.NewUpdateService(d.Shops, d.Dispatcher),
		ucShop.NewSetServiceStatus(d.Shops, d.Dispatcher),
		ucShop.NewGetService(d.Shops),
		ucShop.NewGetOwnedService(d.Shops),
		ucShop.NewListServices(d.Shops),
	)

	serviceTypeHandler := handlers.NewServiceTypeHandler(
		ucShop.NewCreateServiceType(d.Shops, d.Dispatcher),
		ucShop.NewGetServiceType(d.Shops),
		ucShop.NewListServiceTypes(d.Shops),
		ucShop.NewUploadLogo(d.Shops, objects, imaging.ToWebP, imaging.ContentType, d.Dispatcher, d.Log),
	)

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	listAppointmentsUC := ucAppointment.NewListAppointments(d.Appointments)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(d.Appointments, d.Dispatcher, d.Metrics, d.Log),
		ucAppointment.NewUpdateAppointment(d.Appointments, d.Dispatcher, d.Metrics, d.Log),
		ucAppointment.NewSetAppointmentStatus(d.Appointments, d.Dispatcher, d.Metrics, d.Log),
		ucAppointment.NewGetAppointment(d.Appointments),
		ucAppointment.NewGetOwnedAppointment(d.Appointments),
		listAppointmentsUC,
		ucAppointment.NewPostMessage(d.Appointments, d.Dispatcher, d.Metrics, d.Log),
		ucAppointment.NewListMessages(d.Appointments),
	)

	clientHandler := handlers.NewClientHandler(
		ucAppointment.NewAcceptAppointment(d.Appointments, d.Dispatcher, d.Metrics, d.Log),
		ucAppointment.NewCancelAppointment(d.Appointments, d.Dispatcher, d.Metrics, d.Log),
		listAppointmentsUC,
	)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", d.Metrics.Handler())

	authPublic := r.Group("/user")
	authPublic.Use(authLimiter.RateLimit())
	{
		authPublic.POST("/register", userHandler.Register)
		authPublic.POST("/authenticate", userHandler.Authenticate)
		authPublic.POST("/validate-token", userHandler.ValidateToken)
		authPublic.POST("/password/forgot", userHandler.ForgotPassword)
		authPublic.POST("/password/reset", userHandler.ResetPassword)
	}

	r.GET("/appointments", appointmentHandler.List)
	r.GET("/appointments/:id", appointmentHandler.Get)

	r.GET("/services", serviceHandler.List)
	r.GET("/services/:id", serviceHandler.Get)

	r.GET("/barbershops", barbershopHandler.List)
	r.GET("/barbershops/:id", barbershopHandler.Get)

	r.GET("/service-types", serviceTypeHandler.List)
	r.GET("/service-types/:id", serviceTypeHandler.Get)

	// ======================================================
	// PRIVATE
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.Auth(resolve))
	{
		secured.GET("/user/me", userHandler.Me)
		secured.PUT("/user/me", userHandler.UpdateMe)

		// ------------------------------
		// BARBERSHOP
		// ------------------------------
		secured.POST("/barbershop", barbershopHandler.Create)
		secured.GET("/barbershop", barbershopHandler.GetMine)
		secured.PUT("/barbershop", barbershopHandler.Update)
		secured.DELETE("/barbershop", barbershopHandler.Delete)
		secured.PUT("/barbershop/enable", barbershopHandler.Enable)
		secured.PUT("/barbershop/disable", barbershopHandler.Disable)
		secured.GET("/barbershop/audit-logs", barbershopHandler.AuditLogs)

		secured.POST("/barbershop/service", serviceHandler.Create)
		secured.GET("/barbershop/service", serviceHandler.ListMine)
		secured.GET("/barbershop/service/:id", serviceHandler.GetMine)
		secured.PUT("/barbershop/service/:id", serviceHandler.Update)
		secured.DELETE("/barbershop/service/:id", serviceHandler.Delete)
		secured.PUT("/barbershop/service/:id/enable", serviceHandler.Enable)
		secured.PUT("/barbershop/service/:id/disable", serviceHandler.Disable)

		secured.POST("/barbershop/appointment", appointmentHandler.Create)
		secured.GET("/barbershop/appointment", appointmentHandler.ListMine)
		secured.GET("/barbershop/appointment/:id", appointmentHandler.GetMine)
		secured.PUT("/barbershop/appointment/:id", appointmentHandler.Update)
		secured.DELETE("/barbershop/appointment/:id", appointmentHandler.Delete)
		secured.PUT("/barbershop/appointment/:id/enable", appointmentHandler.Enable)
		secured.PUT("/barbershop/appointment/:id/disable", appointmentHandler.Disable)

		// ------------------------------
		// CLIENT
		// ------------------------------
		secured.PUT("/client/appointment/accept/:id", clientHandler.Accept)
		secured.PUT("/client/appointment/cancel/:id", clientHandler.Cancel)
		secured.GET("/client/appointment", clientHandler.List)

		secured.GET("/appointments/:id/messages", appointmentHandler.ListMessages)
		secured.POST("/appointments/:id/messages", appointmentHandler.PostMessage)

		secured.POST("/service-types", serviceTypeHandler.Create)
		secured.PUT("/service-types/:id/logo", serviceTypeHandler.UploadLogo)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devsquadbr/crm-template/internal/audit"
	"github.com/devsquadbr/crm-template/internal/config"
	"github.com/devsquadbr/crm-template/internal/handlers"
	infraRepo "github.com/devsquadbr/crm-template/internal/infra/repository"
	"github.com/devsquadbr/crm-template/internal/middleware"
	ucAccount "github.com/devsquadbr/crm-template/internal/usecase/account"
	ucCustomer "github.com/devsquadbr/crm-template/internal/usecase/customer"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	mail handlers.MailPublisher,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	customerRepo := infraRepo.NewCustomerGormRepository(db)
	identityStore := infraRepo.NewIdentityGormStore(db)
	settingsStore := infraRepo.NewSettingsGormStore(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// SERVICES
	// ======================================================
	customerService := ucCustomer.NewService(customerRepo)
	accountService := ucAccount.NewService(identityStore, settingsStore, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(accountService, mail, cfg)
	customerHandler := handlers.NewCustomerHandler(customerService)
	adminHandler := handlers.NewAdminHandler(accountService)
	meHandler := handlers.NewMeHandler(accountService)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/password/forgot", authHandler.ForgotPassword)
		api.POST("/auth/password/reset", authHandler.ResetPassword)

		api.GET("/account/operations", meHandler.Operations)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/roles", meHandler.Roles)
			secured.POST("/account/exists", meHandler.ExistsByEmail)
			secured.DELETE("/account", meHandler.DeleteAccount)

			// ------------------------------
			// CUSTOMERS (owner-scoped)
			// ------------------------------
			secured.POST("/customer", customerHandler.Create)
			secured.GET("/customer/:id", customerHandler.Get)
			secured.PUT("/customer/:id", customerHandler.Update)
			secured.DELETE("/customer/:id", customerHandler.Delete)
			secured.POST("/customers", customerHandler.Search)
			secured.POST("/seed/customers/:number", customerHandler.Seed)

			// ------------------------------
			// ADMINISTRATION
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdministrator())
			{
				admin.POST("/users", adminHandler.SearchUsers)
				admin.POST("/users/:id/admin-toggle", adminHandler.ToggleAdminRole)
				admin.PUT("/users/:id/admin", adminHandler.SetAdminRole)
				admin.DELETE("/users/:id", adminHandler.DeleteUser)

				admin.GET("/settings", adminHandler.GetSettings)
				admin.PUT("/settings", adminHandler.UpdateSettings)
			}
		}
	}
}

package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/staffdesk/employee-system/internal/api/handler"
	"github.com/staffdesk/employee-system/internal/api/middleware"
	"github.com/staffdesk/employee-system/internal/core/service"
	"github.com/staffdesk/employee-system/internal/infrastructure/config"
	mongodb "github.com/staffdesk/employee-system/internal/infrastructure/db/mongo"
	"github.com/staffdesk/employee-system/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Every route names its capability explicitly via middleware.Guard, so an
// open route is a declared decision. The admin-area CRUD routes are open:
// that is inherited behavior from the original system, kept as-is.
func NewRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	images, err := storage.NewImageStore(cfg.ImageDir)
	if err != nil {
		return nil, err
	}

	adminRepo := mongodb.NewAdminRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(adminRepo, employeeRepo, tokens, log)
	employeeService := service.NewEmployeeService(employeeRepo, categoryRepo, tokens, log)
	categoryService := service.NewCategoryService(categoryRepo, log)

	authHandler := handler.NewAuthHandler(authService, employeeService)
	employeeHandler := handler.NewEmployeeHandler(employeeService, images)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	profileHandler := handler.NewProfileHandler(authService)

	open := middleware.Guard(middleware.CapNone, tokens)
	authed := middleware.Guard(middleware.CapAuthenticated, tokens)

	// --- Admin area ---
	auth := e.Group("/auth")
	auth.POST("/adminlogin", authHandler.AdminLogin, open...)
	auth.POST("/adminsignup", authHandler.AdminSignup, open...)
	auth.GET("/logout", authHandler.Logout, open...)
	auth.GET("/category", categoryHandler.List, open...)
	auth.POST("/add_category", categoryHandler.Create, open...)
	auth.PUT("/edit_category/:id", categoryHandler.Update, open...)
	auth.DELETE("/delete_category/:id", categoryHandler.Delete, open...)
	auth.POST("/add_employee", employeeHandler.Create, open...)
	auth.GET("/employee", employeeHandler.List, open...)
	auth.GET("/employee/:id", employeeHandler.GetByID, open...)
	auth.PUT("/edit_employee/:id", employeeHandler.Update, open...)
	auth.DELETE("/delete_employee/:id", employeeHandler.Delete, open...)
	auth.GET("/admin_count", authHandler.AdminCount, open...)
	auth.GET("/employee_count", authHandler.EmployeeCount, open...)
	auth.GET("/salary_count", authHandler.SalaryTotal, open...)
	auth.GET("/admin_records", authHandler.AdminRecords, open...)

	// --- Employee area ---
	employee := e.Group("/employee")
	employee.POST("/signup", employeeHandler.SignUp, open...)
	employee.GET("/logout", employeeHandler.Logout, open...)
	employee.POST("/", employeeHandler.Create, open...)
	employee.GET("/", employeeHandler.List, open...)
	employee.GET("/:id", employeeHandler.GetByID, open...)
	employee.PUT("/edit_employee/:id", employeeHandler.Update, open...)
	employee.DELETE("/delete_employee/:id", employeeHandler.Delete, open...)

	// --- Authenticated endpoints ---
	e.GET("/profile/", profileHandler.Profile, authed...)
	e.GET("/verify", profileHandler.Verify, authed...)

	// --- Static images (uploaded employee photos) ---
	e.Static("/images", images.Dir())

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e, nil
}

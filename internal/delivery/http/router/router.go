// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"epro/internal/delivery/http/middleware"
	"epro/internal/delivery/http/router/handler"
	"epro/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	CatalogHandler   *handler.CatalogHandler
	PackHandler      *handler.PackHandler
	SelectionHandler *handler.SelectionHandler
	BrandingHandler  *handler.BrandingHandler
	PageHandler      *handler.PageHandler
	AuthMiddleware   *middleware.AuthMiddleware
	RouteGuard       *middleware.RouteGuard
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	catalogHandler   *handler.CatalogHandler
	packHandler      *handler.PackHandler
	selectionHandler *handler.SelectionHandler
	brandingHandler  *handler.BrandingHandler
	pageHandler      *handler.PageHandler
	authMiddleware   *middleware.AuthMiddleware
	routeGuard       *middleware.RouteGuard
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		catalogHandler:   params.CatalogHandler,
		packHandler:      params.PackHandler,
		selectionHandler: params.SelectionHandler,
		brandingHandler:  params.BrandingHandler,
		pageHandler:      params.PageHandler,
		authMiddleware:   params.AuthMiddleware,
		routeGuard:       params.RouteGuard,
	}
}

// RegisterRoutes sets up all the API and page routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public API: authentication and branding reads.
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/refresh", r.accountHandler.Refresh)
		authGroup.POST("/logout", r.accountHandler.Logout)
	}
	e.GET("/api/branding", r.brandingHandler.Get)

	// Routes shared by every authenticated role.
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/me", r.accountHandler.Me)
		apiGroup.POST("/auth/check-role", r.accountHandler.CheckRole)

		catalogGroup := apiGroup.Group("/catalog")
		{
			catalogGroup.GET("/countries", r.catalogHandler.ListCountries)
			catalogGroup.GET("/degrees", r.catalogHandler.ListDegrees)
			catalogGroup.GET("/courses", r.catalogHandler.ListCourses)
			catalogGroup.GET("/universities", r.catalogHandler.ListUniversities)
			catalogGroup.GET("/groups", r.catalogHandler.ListGroups)
			catalogGroup.GET("/groups/:id", r.catalogHandler.GetGroup)
		}
	}

	// Student routes: pack discovery and selection submission.
	studentGroup := e.Group("/api/student")
	studentGroup.Use(r.authMiddleware.Authenticate)
	studentGroup.Use(r.authMiddleware.RequireRole(entity.RoleStudent))
	{
		studentGroup.GET("/packs", r.packHandler.ListForStudent)
		studentGroup.GET("/packs/:id", r.packHandler.Get)
		studentGroup.POST("/selections", r.selectionHandler.Submit)
		studentGroup.GET("/selections", r.selectionHandler.ListMine)
	}

	// Manager routes: the review queue. Admins may review too.
	managerGroup := e.Group("/api/manager")
	managerGroup.Use(r.authMiddleware.Authenticate)
	managerGroup.Use(r.authMiddleware.RequireRole(entity.RoleProgramManager, entity.RoleAdmin))
	{
		managerGroup.GET("/selections/pending", r.selectionHandler.ListPending)
		managerGroup.POST("/selections/:id/decision", r.selectionHandler.Decide)
		managerGroup.GET("/packs", r.packHandler.ListAll)
		managerGroup.GET("/packs/:id", r.packHandler.Get)
		managerGroup.GET("/packs/:id/selections", r.selectionHandler.ListByPack)
	}

	// Admin routes: pack lifecycle, account provisioning and branding.
	adminGroup := e.Group("/api/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/packs", r.packHandler.Create)
		adminGroup.GET("/packs", r.packHandler.ListAll)
		adminGroup.GET("/packs/:id", r.packHandler.Get)
		adminGroup.PUT("/packs/:id", r.packHandler.Update)
		adminGroup.POST("/packs/:id/status", r.packHandler.ChangeStatus)
		adminGroup.GET("/packs/:id/qrcode", r.packHandler.ShareQRCode)

		adminGroup.POST("/accounts", r.accountHandler.CreateAccount)
		adminGroup.PATCH("/accounts/:id/active", r.accountHandler.SetAccountActive)

		adminGroup.PUT("/branding", r.brandingHandler.Update)
		adminGroup.POST("/branding/logo", r.brandingHandler.UploadLogo)
	}

	// Server-rendered pages behind the cookie session.
	r.registerPages(e)
}

// registerPages wires the login and dashboard pages for each section.
func (r *router) registerPages(e *echo.Echo) {
	// The root and the bare section prefixes always land on a login page.
	e.GET("/", r.pageHandler.SectionRedirect(entity.RoleStudent))

	for _, role := range []entity.Role{entity.RoleStudent, entity.RoleProgramManager, entity.RoleAdmin} {
		e.GET(role.SectionPath(), r.pageHandler.SectionRedirect(role))
		e.GET(role.LoginPath(), r.pageHandler.LoginPage(role))
		e.POST(role.LoginPath(), r.pageHandler.LoginSubmit(role))
		e.GET(role.DashboardPath(), r.pageHandler.Dashboard(role), r.routeGuard.RequirePageRole(role))
	}

	e.POST("/logout", r.pageHandler.Logout)
}

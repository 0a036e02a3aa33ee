// Package router contains routing and server setup for the web delivery.
package router

import (
	"autoparts/internal/delivery/web/middleware"
	"autoparts/internal/delivery/web/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProfileHandler    *handler.ProfileHandler
	AdminHandler      *handler.AdminHandler
	SessionMiddleware *middleware.SessionMiddleware
	RouteGuard        *middleware.RouteGuard
	Gatherer          prometheus.Gatherer `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	adminHandler      *handler.AdminHandler
	sessionMiddleware *middleware.SessionMiddleware
	routeGuard        *middleware.RouteGuard
	gatherer          prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		profileHandler:    params.ProfileHandler,
		adminHandler:      params.AdminHandler,
		sessionMiddleware: params.SessionMiddleware,
		routeGuard:        params.RouteGuard,
		gatherer:          params.Gatherer,
	}
}

// RegisterRoutes sets up all the page and form routes of the frontend.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints carry no session
	e.GET("/health", handler.HealthCheck)
	if r.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	// Every page runs behind the session and the route guard
	pages := e.Group("", r.sessionMiddleware.Attach, r.routeGuard.Guard)

	// Shop
	pages.GET("/", r.profileHandler.Home)
	pages.GET("/profile", r.profileHandler.GetProfile)
	pages.PUT("/profile", r.profileHandler.UpdateProfile)
	pages.GET("/session", r.authHandler.Me)

	// Login flow
	loginGroup := pages.Group("/login")
	{
		loginGroup.GET("", r.authHandler.LoginPage)
		loginGroup.POST("/otp/request", r.authHandler.RequestOTP)
		loginGroup.POST("/otp/verify", r.authHandler.VerifyOTP)
		loginGroup.POST("/otp/resend", r.authHandler.ResendOTP)
		loginGroup.POST("/phone/change", r.authHandler.ChangePhone)
	}
	pages.POST("/logout", r.authHandler.Logout)
	pages.POST("/logout/all", r.authHandler.LogoutAll)

	// Admin console
	adminGroup := pages.Group("/admin")
	{
		adminGroup.GET("", r.adminHandler.Dashboard)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users", r.adminHandler.CreateUser)
		adminGroup.GET("/users/:id", r.adminHandler.GetUser)
		adminGroup.PUT("/users/:id", r.adminHandler.UpdateUser)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
	}
}

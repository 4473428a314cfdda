package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo-contrib/echoprometheus"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"phorum/internal/auth"
	"phorum/internal/config"
	"phorum/internal/handler"
	appmw "phorum/internal/middleware"
	"phorum/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessions auth.SessionStoreInterface,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	postHandler *handler.PostHandler,
	userHandler *handler.UserHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(echoprometheus.NewMiddleware("phorum"))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// The jwt stage parses a bearer token when one is present; its error
	// handler swallows everything so anonymous requests continue and the
	// Identity stage decides what the token is worth.
	jwtStage := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	})

	api := e.Group("/api", jwtStage, appmw.Identity(sessions, users))

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/posts", postHandler.ListPosts)
	api.GET("/posts/:id", postHandler.GetPost)
	api.GET("/users", userHandler.ListUsers)

	// Authenticated routes
	authed := api.Group("", appmw.RequireAuthenticated())
	authed.POST("/posts", postHandler.CreatePost)
	authed.POST("/posts/:id/replies", postHandler.CreateReply)
	authed.GET("/users/:username", userHandler.GetProfile)
	authed.PUT("/users/:username", userHandler.UpdateProfile)
	authed.GET("/me", userHandler.Me)
	authed.PUT("/me", userHandler.UpdateMe)

	// Admin routes
	admin := api.Group("/admin", appmw.RequireAuthenticated(), appmw.RequireAdmin())
	admin.GET("/overview", adminHandler.Overview)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

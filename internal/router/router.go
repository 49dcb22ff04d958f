package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"contacthub/internal/auth"
	"contacthub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	contactHandler *handler.ContactHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/signin", authHandler.Signin)
	api.POST("/auth/forgot-password", authHandler.ForgotPassword)
	api.POST("/auth/reset-password", authHandler.ResetPassword)

	// Secured routes. Session tokens are verified statelessly; a missing or
	// invalid bearer token is rejected before any handler runs.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.VerifySessionToken(token)
		},
	}))

	secured.GET("/me", userHandler.GetProfile)
	secured.DELETE("/me", userHandler.DeleteAccount)

	secured.POST("/contacts", contactHandler.CreateContact)
	secured.GET("/contacts", contactHandler.ListContacts)
	secured.GET("/contacts/search", contactHandler.SearchContacts)
	secured.GET("/contacts/count", contactHandler.CountContacts)
	secured.GET("/contacts/:id", contactHandler.GetContact)
	secured.PUT("/contacts/:id", contactHandler.UpdateContact)
	secured.DELETE("/contacts/:id", contactHandler.DeleteContact)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"arbejdstid/internal/auth"
	apperrors "arbejdstid/internal/errors"
	"arbejdstid/internal/handler"
	"arbejdstid/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	tokenService *auth.TokenService,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	scheduleHandler *handler.ScheduleHandler,
	hoursHandler *handler.HoursHandler,
	apiHandler *handler.APIHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.GET("/", authHandler.Index)
	e.POST("/", authHandler.Index)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)

	// Server-rendered pages: a missing or invalid session redirects to the
	// login page. No post-login target is preserved; login always lands on
	// the dashboard.
	pages := e.Group("", sessionGuard(tokenService, redirectToLogin), resolveIdentity(authService, redirectToLogin))
	pages.GET("/dashboard", dashboardHandler.Show)
	pages.POST("/dashboard", dashboardHandler.Submit)
	pages.POST("/delete/:entry_id", scheduleHandler.Delete)
	pages.GET("/logout", authHandler.Logout)
	pages.GET("/Skema/:user", scheduleHandler.Skema)
	pages.GET("/arbejdstider/:user_id", hoursHandler.WorkHours)

	// JSON API: same guard, 401 envelope instead of a redirect.
	api := e.Group("/api", sessionGuard(tokenService, unauthorizedJSON), resolveIdentity(authService, unauthorizedJSON))
	api.GET("/hours/:period", apiHandler.Hours)
	api.GET("/changes", apiHandler.Changes)
}

func redirectToLogin(c echo.Context, _ error) error {
	return c.Redirect(http.StatusFound, "/login")
}

func unauthorizedJSON(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(apperrors.ErrSessionExpired)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// sessionGuard verifies the signed session cookie.
func sessionGuard(tokenService *auth.TokenService, onError func(echo.Context, error) error) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:   tokenService.Secret(),
		TokenLookup:  "cookie:" + auth.SessionCookie,
		ErrorHandler: onError,
	})
}

// resolveIdentity checks the server-side session record and loads the user
// into the request context. The cookie alone is never enough: a session
// deleted by logout fails here even while the token is unexpired.
func resolveIdentity(authService service.AuthService, onError func(echo.Context, error) error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return onError(c, apperrors.ErrSessionExpired)
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return onError(c, apperrors.ErrSessionExpired)
			}
			sessionID, _ := claims["jti"].(string)
			if sessionID == "" {
				return onError(c, apperrors.ErrSessionExpired)
			}

			user, err := authService.Resolve(c.Request().Context(), sessionID)
			if err != nil {
				return onError(c, err)
			}

			c.Set(handler.IdentityKey, user)
			c.Set(handler.SessionIDKey, sessionID)
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

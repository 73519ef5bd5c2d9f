package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"paylens/app"
	"paylens/app/settings"
)

// Server exposes the dashboard over HTTP. It owns the Echo instance
// and the token issuer; all domain state lives in the App.
type Server struct {
	app    *app.App
	echo   *echo.Echo
	tokens *TokenIssuer
}

// NewServer wires the HTTP API around the application.
func NewServer(a *app.App, cfg settings.Settings) (*Server, error) {
	ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	tokens, err := NewTokenIssuer(cfg.TokenSecret, ttl)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	s := &Server{app: a, echo: e, tokens: tokens}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api")
	api.GET("/health", s.GetHealth)
	api.POST("/session", s.CreateSession)
	api.POST("/reload", s.Reload)

	// Session-scoped routes require a valid token
	scoped := api.Group("", s.requireSession)
	scoped.GET("/filters", s.GetFilters)
	scoped.PUT("/filters", s.PutFilters)
	scoped.GET("/dashboard", s.GetDashboard)
	scoped.GET("/export", s.GetExport)
}

// Start blocks serving HTTP on the given address.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

const sessionKey = "paylens.session"

// requireSession authenticates the request's bearer token and loads the
// session into the request context.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString := strings.TrimPrefix(auth, "Bearer ")
		if tokenString == "" || tokenString == auth {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		sessionID, err := s.tokens.Verify(tokenString)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
		}

		session, err := s.app.Session(sessionID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
		}

		c.Set(sessionKey, session)
		return next(c)
	}
}

func currentSession(c echo.Context) *app.Session {
	return c.Get(sessionKey).(*app.Session)
}

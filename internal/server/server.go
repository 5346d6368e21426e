package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apperrors "github.com/Zhaohan-Wang/Star-Office-UI/internal/errors"
	"github.com/Zhaohan-Wang/Star-Office-UI/internal/pet"
	"github.com/Zhaohan-Wang/Star-Office-UI/internal/platform/config"
	"github.com/Zhaohan-Wang/Star-Office-UI/internal/platform/correlation"
)

// petService is what the handlers need from the pet loader.
type petService interface {
	ReadState(ctx context.Context) (*pet.State, error)
	LoadScene(ctx context.Context) (*pet.Scene, error)
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	pets      petService
	clock     clockwork.Clock
	startTime time.Time
}

func NewServer(cfg *config.Config, pets petService, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(correlationMiddleware())
	e.Use(requestLoggerMiddleware())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		pets:      pets,
		clock:     clock,
		startTime: clock.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// requestLoggerMiddleware logs one line per request through slog, so request
// logs share the handler/format (and correlation IDs) of the rest of the app.
func requestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			slog.InfoContext(c.Request().Context(), "Request", attrs...)
			return nil
		},
	})
}

// correlationMiddleware assigns each request a correlation ID so its log
// lines can be grouped, and echoes it back in a response header.
func correlationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := correlation.NewID()
			ctx := correlation.WithID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Correlation-ID", id)
			return next(c)
		}
	}
}

package server

import (
	"context"
	"fmt"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/Zhaohan-Wang/Star-Office-UI/internal/platform/version"
)

func (s *Server) handleLiveness(c echo.Context) error {
	uptime := s.clock.Since(s.startTime).Seconds()
	return c.JSON(200, map[string]any{
		"status": "ok",
		"uptime": uptime,
	})
}

func (s *Server) handleReadiness(c echo.Context) error {
	checks := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"project_root", s.checkProjectRoot},
		{"state_file", s.checkStateFile},
	}

	ctx := c.Request().Context()
	for _, check := range checks {
		if err := check.fn(ctx); err != nil {
			return c.JSON(503, map[string]any{
				"status":       "unhealthy",
				"failed_check": check.name,
				"error":        err.Error(),
			})
		}
	}

	return c.JSON(200, map[string]string{"status": "ready"})
}

func (s *Server) checkProjectRoot(context.Context) error {
	info, err := os.Stat(s.config.ProjectRoot)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.config.ProjectRoot)
	}
	return nil
}

func (s *Server) checkStateFile(context.Context) error {
	_, err := os.Stat(s.config.StatePath())
	return err
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(200, version.Get())
}

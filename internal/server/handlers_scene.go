package server

import (
	"fmt"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Zhaohan-Wang/Star-Office-UI/internal/errors"
)

func (s *Server) handleScene(c echo.Context) error {
	ctx := c.Request().Context()

	scene, err := s.pets.LoadScene(ctx)
	if err != nil {
		return apperrors.InternalError(err.Error(), nil)
	}

	if err := c.JSON(200, scene); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

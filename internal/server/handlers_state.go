package server

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Zhaohan-Wang/Star-Office-UI/internal/errors"
)

func (s *Server) handleState(c echo.Context) error {
	ctx := c.Request().Context()

	state, err := s.pets.ReadState(ctx)
	if err != nil {
		// The error string is the surface: path for missing files,
		// "parse: ..." for malformed JSON.
		if errors.Is(err, fs.ErrNotExist) {
			return apperrors.NotFoundError(err.Error())
		}
		return apperrors.InternalError(err.Error(), nil)
	}

	if err := c.JSON(200, state); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

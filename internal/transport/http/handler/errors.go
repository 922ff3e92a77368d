package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"exercise-tracker/internal/app"
	"exercise-tracker/internal/transport/http/response"
)

// logBindFailure records a body or query that could not be bound. The
// request then proceeds with no fields so the operation reports what is
// missing. An empty body is not worth a log line.
func logBindFailure(log zerolog.Logger, c *gin.Context, err error) {
	if errors.Is(err, io.EOF) {
		return
	}
	log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("request binding failed")
}

func writeServiceError(c *gin.Context, log zerolog.Logger, op string, err error) {
	switch {
	case errors.Is(err, app.ErrValidation),
		errors.Is(err, app.ErrNotFound),
		errors.Is(err, app.ErrEmptyResult):
		response.Error(c, err.Error())
	default:
		log.Error().Err(err).Str("op", op).Msg("request failed")
		_ = c.Error(err)
		response.Internal(c)
	}
}

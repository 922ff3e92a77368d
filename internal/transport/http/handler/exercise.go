package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"exercise-tracker/internal/app"
	"exercise-tracker/internal/transport/http/response"
)

type ExerciseHandler struct {
	exerciseService *app.ExerciseService
	log             zerolog.Logger
}

func NewExerciseHandler(exerciseService *app.ExerciseService, log zerolog.Logger) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, log: log}
}

func (h *ExerciseHandler) Create(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		logBindFailure(h.log, c, err)
		req = CreateExerciseRequest{}
	}

	receipt, err := h.exerciseService.CreateExercise(c.Request.Context(), app.CreateExerciseInput{
		UserID:      c.Param("id"),
		Description: string(req.Description),
		Duration:    req.Duration.Float(),
		Date:        string(req.Date),
	})
	if err != nil {
		writeServiceError(c, h.log, "create exercise", err)
		return
	}

	response.OK(c, receipt)
}

func (h *ExerciseHandler) Logs(c *gin.Context) {
	var req LogQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logBindFailure(h.log, c, err)
		req = LogQueryRequest{}
	}

	result, err := h.exerciseService.GetLogs(c.Request.Context(), app.LogQuery{
		UserID: c.Param("id"),
		From:   req.From,
		To:     req.To,
		Limit:  req.Limit,
	})
	if err != nil {
		writeServiceError(c, h.log, "get logs", err)
		return
	}

	response.OK(c, result)
}

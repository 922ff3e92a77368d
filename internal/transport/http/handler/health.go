package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"exercise-tracker/internal/bootstrap"
)

type HealthHandler struct {
	app *bootstrap.App
}

type dependencyStatus struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func NewHealthHandler(app *bootstrap.App) *HealthHandler {
	return &HealthHandler{app: app}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	storageStatus := h.checkStorage(ctx)
	dependencies := gin.H{"storage": storageStatus}
	allOK := storageStatus.OK

	if h.app.Config.Redis.Enabled {
		status := h.checkRedis(ctx)
		dependencies["redis"] = status
		allOK = allOK && status.OK
	}
	if h.app.Config.RabbitMQ.Enabled {
		status := h.checkRabbitMQ()
		dependencies["rabbitmq"] = status
		allOK = allOK && status.OK
	}

	statusCode := http.StatusOK
	if !allOK {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"app":            h.app.Config.App.Name,
		"env":            h.app.Config.App.Env,
		"storage_driver": h.app.Storage.Driver,
		"uptime_sec":     int(time.Since(h.app.StartedAt).Seconds()),
		"dependencies":   dependencies,
	})
}

func (h *HealthHandler) checkStorage(ctx context.Context) dependencyStatus {
	if err := h.app.Storage.Ping(ctx); err != nil {
		return dependencyStatus{OK: false, Message: err.Error()}
	}
	return dependencyStatus{OK: true}
}

func (h *HealthHandler) checkRedis(ctx context.Context) dependencyStatus {
	if h.app.Redis == nil {
		return dependencyStatus{OK: false, Message: "client not initialized"}
	}
	if err := h.app.Redis.Ping(ctx).Err(); err != nil {
		return dependencyStatus{OK: false, Message: err.Error()}
	}
	return dependencyStatus{OK: true}
}

func (h *HealthHandler) checkRabbitMQ() dependencyStatus {
	if h.app.MQConn == nil || h.app.MQConn.IsClosed() {
		return dependencyStatus{OK: false, Message: "connection closed"}
	}
	return dependencyStatus{OK: true}
}

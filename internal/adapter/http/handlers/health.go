package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sabique2003/Tasklite/internal/adapter/http/middleware"
	"github.com/sabique2003/Tasklite/internal/core/ports"
)

const (
	StatusOk            = "ok"
	StatusDown          = "down"
	healthCheckTimeout  = 2 * time.Second
	DependencyMysql     = "mysql"
	DependencyTaskStore = "task_store"
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthAdvanced struct {
	AppName           string            `json:"app_name"`
	AppVersion        string            `json:"app_version"`
	CurrentSystemTime string            `json:"current_system_time"`
	Language          string            `json:"language"`
	Status            map[string]string `json:"status"`
}

// HealthHandler reports on the one dependency a server needs: MySQL for the
// task store, the remote task store for the board.
type HealthHandler struct {
	dependency string
	pinger     ports.Pinger
}

func NewHealthHandler(dependency string, pinger ports.Pinger) *HealthHandler {
	return &HealthHandler{dependency: dependency, pinger: pinger}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkDependency(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	status := StatusDown
	if h.checkDependency(c.Request.Context()) {
		status = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status:            map[string]string{h.dependency: status},
	})
}

func (h *HealthHandler) checkDependency(ctx context.Context) bool {
	if h.pinger == nil {
		return false
	}
	// Avoid hanging health checks if the dependency stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	return h.pinger.PingContext(timeoutCtx) == nil
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}

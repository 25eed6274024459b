package handlers

import (
	"context"
	"os"
	"time"

	"taskdesk/internal/adapter/http/middleware"
	"taskdesk/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const (
	StatusOk             = "ok"
	StatusDown           = "down"
	healthStorageTimeout = 2 * time.Second
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Storage string `json:"storage"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	StorageDriver     string         `json:"storage_driver"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	probe         ports.StorageProbe
	appName       string
	storageDriver string
}

func NewHealthHandler(probe ports.StorageProbe, appName, storageDriver string) *HealthHandler {
	return &HealthHandler{probe: probe, appName: appName, storageDriver: storageDriver}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	ctx := c.Request.Context()
	statusCode := 200
	message := StatusOk

	if !h.checkStorage(ctx) {
		statusCode = 500
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           h.appName,
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	ctx := c.Request.Context()

	storageStatus := StatusDown
	if h.checkStorage(ctx) {
		storageStatus = StatusOk
	}

	c.JSON(200, HealthAdvanced{
		AppName:           h.appName,
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		StorageDriver:     h.storageDriver,
		Status: HealthServices{
			Storage: storageStatus,
		},
	})
}

func (h *HealthHandler) checkStorage(ctx context.Context) bool {
	if h.probe == nil {
		return false
	}
	// Avoid hanging health checks if a remote backend stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthStorageTimeout)
	defer cancel()
	return h.probe.CheckAvailability(timeoutCtx) == nil
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}

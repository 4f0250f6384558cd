package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hotel-booking/services"
)

// SystemController serves the dashboard's health and statistics probes.
type SystemController struct {
	SystemSvc *services.SystemService
	StatsSvc  *services.StatsService
	log       *zerolog.Logger
	now       func() time.Time
}

func NewSystemController(system *services.SystemService, stats *services.StatsService, log *zerolog.Logger) *SystemController {
	return &SystemController{SystemSvc: system, StatsSvc: stats, log: log, now: time.Now}
}

func (ctrl *SystemController) timestamp() string {
	return ctrl.now().UTC().Format(time.RFC3339)
}

// Health (GET /api/health)
func (ctrl *SystemController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Hotel Booking API is running",
		"timestamp": ctrl.timestamp(),
		"version":   services.APIVersion,
	})
}

// DatabaseStatus (GET /api/database/status)
func (ctrl *SystemController) DatabaseStatus(c *gin.Context) {
	if err := ctrl.SystemSvc.Ping(c.Request.Context()); err != nil {
		ctrl.log.Error().Err(err).Msg("database ping failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "ERROR",
			"message":   "Database connection failed",
			"error":     err.Error(),
			"timestamp": ctrl.timestamp(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "OK",
		"message":    "Database connection successful",
		"timestamp":  ctrl.timestamp(),
		"connection": ctrl.SystemSvc.Info,
	})
}

// DatabaseTables (GET /api/database/tables)
func (ctrl *SystemController) DatabaseTables(c *gin.Context) {
	tables, err := ctrl.SystemSvc.Tables(c.Request.Context())
	if err != nil {
		ctrl.log.Error().Err(err).Msg("table listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "ERROR",
			"message":   "Failed to get table information",
			"error":     err.Error(),
			"timestamp": ctrl.timestamp(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Database tables information",
		"timestamp": ctrl.timestamp(),
		"tables":    tables,
	})
}

// Stats (GET /api/stats)
func (ctrl *SystemController) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "OK",
		"message":    "System statistics",
		"timestamp":  ctrl.timestamp(),
		"statistics": ctrl.StatsSvc.Report(c.Request.Context()),
	})
}

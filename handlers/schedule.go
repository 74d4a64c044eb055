package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glamora/models"
	"glamora/services/schedule"
	"glamora/utils"
)

// ScheduleHandler exposes schedule management for providers. Schedules are
// validated here, at registration time; the availability engine assumes they
// are well-formed.
type ScheduleHandler struct {
	Svc    schedule.Service
	Logger *zap.Logger
}

func NewScheduleHandler(svc schedule.Service, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Svc: svc, Logger: logger}
}

// RegisterScheduleHandler handles PUT /api/schedules/:providerID.
func (h *ScheduleHandler) RegisterScheduleHandler(c *gin.Context) {
	providerID := c.Param("providerID")

	var sched models.Schedule
	if err := c.ShouldBindJSON(&sched); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid schedule payload", err.Error())
		return
	}
	sched.ProviderID = providerID

	if err := h.Svc.Register(&sched); err != nil {
		var verr *schedule.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, "malformed schedule", verr.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to register schedule", err.Error())
		return
	}

	h.Logger.Info("schedule registered", zap.String("providerID", providerID))
	c.JSON(http.StatusOK, sched)
}

// GetScheduleHandler handles GET /api/schedules/:providerID.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	providerID := c.Param("providerID")

	sched, err := h.Svc.Get(providerID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			utils.JSONError(c, http.StatusNotFound, "schedule not found", "no schedule registered for provider "+providerID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch schedule", err.Error())
		return
	}

	c.JSON(http.StatusOK, sched)
}

// DeleteScheduleHandler handles DELETE /api/schedules/:providerID.
func (h *ScheduleHandler) DeleteScheduleHandler(c *gin.Context) {
	providerID := c.Param("providerID")

	if err := h.Svc.Delete(providerID); err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			utils.JSONError(c, http.StatusNotFound, "schedule not found", "no schedule registered for provider "+providerID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete schedule", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": providerID})
}

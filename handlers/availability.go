package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"glamora/services/availability"
	"glamora/utils"
)

// AvailabilityHandler exposes the two read-only availability queries consumed
// by the calendar UI.
type AvailabilityHandler struct {
	Engine availability.Engine
	Cache  *redis.Client
	Logger *zap.Logger
}

func NewAvailabilityHandler(engine availability.Engine, cache *redis.Client, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Cache: cache, Logger: logger}
}

// GetDayAvailabilityHandler handles GET /api/availability/:providerID/day.
// Query params: duration (minutes, required), date (2006-01-02, default today).
func (h *AvailabilityHandler) GetDayAvailabilityHandler(c *gin.Context) {
	providerID := c.Param("providerID")

	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil || duration <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid duration", "duration must be a positive number of minutes")
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		date, err = time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date", "date must be formatted as YYYY-MM-DD")
			return
		}
	}

	day, err := h.Engine.GetDayAvailability(providerID, duration, date)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDuration) {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, day)
}

// GetMultiDayAvailabilityHandler handles GET /api/availability/:providerID/range.
// Query params: duration (required), start (default today), days (default 30).
// Results are previews, so they are served from a short-TTL Redis cache when
// possible.
func (h *AvailabilityHandler) GetMultiDayAvailabilityHandler(c *gin.Context) {
	providerID := c.Param("providerID")

	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil || duration <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid duration", "duration must be a positive number of minutes")
		return
	}

	var startDate time.Time
	startParam := c.Query("start")
	if startParam != "" {
		startDate, err = time.ParseInLocation("2006-01-02", startParam, time.Local)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid start", "start must be formatted as YYYY-MM-DD")
			return
		}
	}

	dayCount := 0
	if raw := c.Query("days"); raw != "" {
		dayCount, err = strconv.Atoi(raw)
		if err != nil || dayCount <= 0 || dayCount > 90 {
			utils.JSONError(c, http.StatusBadRequest, "invalid days", "days must be a number between 1 and 90")
			return
		}
	}

	ctx := context.Background()
	cacheKey := multiDayCacheKey(providerID, duration, startParam, dayCount)
	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	days, err := h.Engine.GetMultiDayAvailability(providerID, duration, startDate, dayCount)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDuration) {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}

	payload, err := json.Marshal(gin.H{"providerId": providerID, "days": days})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to encode availability", err.Error())
		return
	}

	if h.Cache != nil {
		if err := h.Cache.Set(ctx, cacheKey, payload, utils.PreviewCacheTTL()).Err(); err != nil {
			h.Logger.Warn("failed to cache availability preview",
				zap.String("providerID", providerID), zap.Error(err))
		}
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

func multiDayCacheKey(providerID string, duration int, start string, days int) string {
	if start == "" {
		// Keyed per day so a stale "today" never leaks across midnight.
		start = time.Now().Format("2006-01-02")
	}
	return fmt.Sprintf("availability:preview:%s:%d:%s:%d", providerID, duration, start, days)
}

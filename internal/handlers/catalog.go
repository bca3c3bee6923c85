package handlers

import (
	"net/http"
	"strconv"
	"time"

	"home_service_booking/internal/availability"
	"home_service_booking/internal/service"

	"github.com/gin-gonic/gin"
)

const maxDaysPerRequest = 60

// listCatalog godoc
// @Summary Job types with duration and cost
// @Tags catalog
// @Produce json
// @Success 200 {array} service.JobTypeView
// @Router /api/v1/catalog [get]
func (h *Handler) listCatalog(c *gin.Context) {
	jobs, err := h.services.ListJobTypes(c.Request.Context())
	if err != nil {
		h.respondError(c, "catalog_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// listDays godoc
// @Summary Upcoming weekdays with occupancy
// @Tags availability
// @Produce json
// @Param from query string false "first date (YYYY-MM-DD), default today"
// @Param count query int false "number of weekdays, default the booking horizon"
// @Success 200 {array} availability.Day
// @Failure 400 {object} errorResponse
// @Router /api/v1/availability/days [get]
func (h *Handler) listDays(c *gin.Context) {
	var from time.Time
	if s := c.Query("from"); s != "" {
		d, err := availability.ParseDate(s)
		if err != nil {
			h.respondError(c, "availability_bad_from", service.ErrInvalidDate, "from", s)
			return
		}
		from = d
	}

	count := 0
	if s := c.Query("count"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > maxDaysPerRequest {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "count must be between 1 and " + strconv.Itoa(maxDaysPerRequest)})
			return
		}
		count = n
	}

	days, err := h.services.UpcomingDays(c.Request.Context(), from, count)
	if err != nil {
		h.respondError(c, "availability_days_failed", err)
		return
	}
	c.JSON(http.StatusOK, days)
}

// listSlots godoc
// @Summary Free slots on a date
// @Tags availability
// @Produce json
// @Param date query string true "date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errorResponse
// @Router /api/v1/availability/slots [get]
func (h *Handler) listSlots(c *gin.Context) {
	date := c.Query("date")
	slots, err := h.services.FreeSlots(c.Request.Context(), date)
	if err != nil {
		h.respondError(c, "availability_slots_failed", err, "date", date)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "free_slots": slots})
}

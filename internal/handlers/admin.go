package handlers

import (
	"net/http"
	"strconv"
	"time"

	"home_service_booking/internal/availability"
	"home_service_booking/internal/models"
	"home_service_booking/internal/service"

	"github.com/gin-gonic/gin"
)

type statusRequest struct {
	Status models.Status `json:"status" binding:"required"`
}

type costsRequest struct {
	Costs map[string]int64 `json:"costs" binding:"required"`
}

// listAppointments godoc
// @Summary Booked appointments, optionally limited to one Monday-Sunday week
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param week query string false "any date (YYYY-MM-DD) inside the wanted week"
// @Success 200 {array} service.AppointmentView
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /api/v1/admin/appointments [get]
func (h *Handler) listAppointments(c *gin.Context) {
	var f service.AppointmentFilter
	if s := c.Query("week"); s != "" {
		d, err := availability.ParseDate(s)
		if err != nil {
			h.respondError(c, "admin_list_bad_week", service.ErrInvalidDate, "week", s)
			return
		}
		f.Week = d
	}

	apps, err := h.services.ListAppointments(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, "admin_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// updateStatus godoc
// @Summary Set an appointment's status
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "appointment id"
// @Param body body statusRequest true "pending | completed | not_completed"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/v1/admin/appointments/{id}/status [patch]
func (h *Handler) updateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid appointment id"})
		return
	}
	var input statusRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	app, err := h.services.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		h.respondError(c, "admin_status_update_failed", err, "id", id, "status", input.Status)
		return
	}
	if h.log != nil {
		h.log.Infow("appointment_status_updated", "id", id, "status", app.Status, "admin", adminEmail(c))
	}
	c.JSON(http.StatusOK, app)
}

// updateCosts godoc
// @Summary Edit job type costs
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body costsRequest true "job id to cost"
// @Success 200 {array} service.JobTypeView
// @Failure 400 {object} errorResponse
// @Router /api/v1/admin/costs [put]
func (h *Handler) updateCosts(c *gin.Context) {
	var input costsRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	jobs, err := h.services.UpdateCosts(c.Request.Context(), input.Costs)
	if err != nil {
		h.respondError(c, "admin_costs_update_failed", err)
		return
	}
	if h.log != nil {
		h.log.Infow("job_costs_updated", "jobs", len(input.Costs), "admin", adminEmail(c))
	}
	c.JSON(http.StatusOK, jobs)
}

// rainDay godoc
// @Summary Move every pending appointment to the next weekday
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int
// @Router /api/v1/admin/rain-day [post]
func (h *Handler) rainDay(c *gin.Context) {
	started := time.Now()
	moved, err := h.services.RainDay(c.Request.Context())
	if err != nil {
		h.respondError(c, "rain_day_failed", err)
		return
	}
	if h.log != nil {
		h.log.Infow("rain_day_applied", "moved", moved, "admin", adminEmail(c), "took", time.Since(started))
	}
	c.JSON(http.StatusOK, gin.H{"moved": moved})
}

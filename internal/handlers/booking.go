package handlers

import (
	"net/http"

	"home_service_booking/internal/service"

	"github.com/gin-gonic/gin"
)

type infoRequest struct {
	ClientName string   `json:"client_name"`
	Address    string   `json:"address"`
	Phone      string   `json:"phone"`
	Jobs       []string `json:"jobs"`
	Quantity   int      `json:"quantity"`
}

type dayRequest struct {
	Date string `json:"date" binding:"required"`
}

type slotsRequest struct {
	TimeSlots []string `json:"time_slots"`
}

type backRequest struct {
	Step int `json:"step" binding:"required"`
}

// sessionView is what a client needs to render the current wizard step.
type sessionView struct {
	ID       string        `json:"id"`
	Step     service.Step  `json:"step"`
	StepName string        `json:"step_name"`
	Draft    service.Draft `json:"draft"`
	Options  interface{}   `json:"options,omitempty"`
}

func newSessionView(id string, w service.Wizard) sessionView {
	return sessionView{ID: id, Step: w.Step, StepName: w.Step.String(), Draft: w.Draft}
}

// loadWizard fetches the session named in the path. Writes 404 and returns false if it is gone.
func (h *Handler) loadWizard(c *gin.Context) (string, service.Wizard, bool) {
	id := c.Param("id")
	w, err := h.sessions.Get(id)
	if err != nil {
		h.respondError(c, "booking_session_lookup_failed", err, "session", id)
		return id, w, false
	}
	return id, w, true
}

// storeWizard saves an advanced wizard back into the registry.
func (h *Handler) storeWizard(c *gin.Context, id string, w service.Wizard) bool {
	if err := h.sessions.Put(id, w); err != nil {
		h.respondError(c, "booking_session_store_failed", err, "session", id)
		return false
	}
	return true
}

// stepOptions returns the choices for the wizard's current step.
func (h *Handler) stepOptions(c *gin.Context, w *service.Wizard) (interface{}, error) {
	ctx := c.Request.Context()
	switch w.Step {
	case service.StepCollectInfo:
		return h.services.ListJobTypes(ctx)
	case service.StepPickDay:
		return h.services.DayOptions(ctx, w)
	case service.StepPickSlot:
		return h.services.SlotOptions(ctx, w)
	case service.StepConfirm:
		return h.services.Review(ctx, w)
	}
	return nil, nil
}

// respondWizard writes the session with the options of its (new) current step.
func (h *Handler) respondWizard(c *gin.Context, code int, id string, w service.Wizard) {
	opts, err := h.stepOptions(c, &w)
	if err != nil {
		h.respondError(c, "booking_step_options_failed", err, "session", id, "step", w.Step.String())
		return
	}
	view := newSessionView(id, w)
	view.Options = opts
	c.JSON(code, view)
}

// createSession godoc
// @Summary Start a booking wizard
// @Tags booking
// @Produce json
// @Success 201 {object} sessionView
// @Router /api/v1/booking/sessions [post]
func (h *Handler) createSession(c *gin.Context) {
	id, w := h.sessions.Create()
	h.respondWizard(c, http.StatusCreated, id, w)
}

// getSession godoc
// @Summary Current step, draft and step options
// @Tags booking
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} sessionView
// @Failure 404 {object} errorResponse
// @Router /api/v1/booking/sessions/{id} [get]
func (h *Handler) getSession(c *gin.Context) {
	id, w, ok := h.loadWizard(c)
	if !ok {
		return
	}
	h.respondWizard(c, http.StatusOK, id, w)
}

// deleteSession godoc
// @Summary Abandon a booking wizard
// @Tags booking
// @Param id path string true "session id"
// @Success 204
// @Router /api/v1/booking/sessions/{id} [delete]
func (h *Handler) deleteSession(c *gin.Context) {
	h.sessions.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// submitInfo godoc
// @Summary Client details and job selection (step 1)
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body infoRequest true "client info"
// @Success 200 {object} sessionView
// @Failure 400 {object} errorResponse
// @Router /api/v1/booking/sessions/{id}/info [post]
func (h *Handler) submitInfo(c *gin.Context) {
	var input infoRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	h.advance(c, "booking_info_rejected", func(w *service.Wizard) error {
		return h.services.SubmitInfo(c.Request.Context(), w, service.ClientInfo{
			ClientName: input.ClientName,
			Address:    input.Address,
			Phone:      input.Phone,
			Jobs:       input.Jobs,
			Quantity:   input.Quantity,
		})
	})
}

// chooseDay godoc
// @Summary Pick a day (step 2)
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body dayRequest true "date"
// @Success 200 {object} sessionView
// @Failure 400 {object} errorResponse
// @Router /api/v1/booking/sessions/{id}/day [post]
func (h *Handler) chooseDay(c *gin.Context) {
	var input dayRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	h.advance(c, "booking_day_rejected", func(w *service.Wizard) error {
		return h.services.ChooseDay(c.Request.Context(), w, input.Date)
	})
}

// chooseSlots godoc
// @Summary Pick one or both time slots (step 3)
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body slotsRequest true "time slots"
// @Success 200 {object} sessionView
// @Failure 400 {object} errorResponse
// @Router /api/v1/booking/sessions/{id}/slots [post]
func (h *Handler) chooseSlots(c *gin.Context) {
	var input slotsRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	h.advance(c, "booking_slots_rejected", func(w *service.Wizard) error {
		return h.services.ChooseSlots(c.Request.Context(), w, input.TimeSlots)
	})
}

// review godoc
// @Summary Summary, capacity check and cost estimate (step 4)
// @Tags booking
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} service.Review
// @Failure 400 {object} errorResponse
// @Router /api/v1/booking/sessions/{id}/review [get]
func (h *Handler) review(c *gin.Context) {
	id, w, ok := h.loadWizard(c)
	if !ok {
		return
	}
	r, err := h.services.Review(c.Request.Context(), &w)
	if err != nil {
		h.respondError(c, "booking_review_failed", err, "session", id)
		return
	}
	c.JSON(http.StatusOK, r)
}

// confirm godoc
// @Summary Book the appointment
// @Tags booking
// @Produce json
// @Param id path string true "session id"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errorResponse
// @Router /api/v1/booking/sessions/{id}/confirm [post]
func (h *Handler) confirm(c *gin.Context) {
	id, w, ok := h.loadWizard(c)
	if !ok {
		return
	}
	app, err := h.services.Confirm(c.Request.Context(), &w)
	if err != nil {
		h.respondError(c, "booking_confirm_failed", err, "session", id)
		return
	}
	if h.log != nil {
		h.log.Infow("appointment_booked", "id", app.ID, "date", app.Date, "slots", app.TimeSlots)
	}
	// the appointment is committed; a session that vanished meanwhile must not hide that
	if err := h.sessions.Put(id, w); err != nil {
		if h.log != nil {
			h.log.Warnw("booking_session_store_failed", "session", id, "appointment", app.ID, "err", err)
		}
		c.JSON(http.StatusCreated, gin.H{"appointment": app})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": app, "session": newSessionView(id, w)})
}

// back godoc
// @Summary Return to an earlier step, keeping the draft
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body backRequest true "target step (1-3)"
// @Success 200 {object} sessionView
// @Failure 400 {object} errorResponse
// @Router /api/v1/booking/sessions/{id}/back [post]
func (h *Handler) back(c *gin.Context) {
	var input backRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	h.advance(c, "booking_back_rejected", func(w *service.Wizard) error {
		return w.Back(service.Step(input.Step))
	})
}

// reset godoc
// @Summary Return to the start and discard the draft
// @Tags booking
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} sessionView
// @Router /api/v1/booking/sessions/{id}/reset [post]
func (h *Handler) reset(c *gin.Context) {
	h.advance(c, "booking_reset_failed", func(w *service.Wizard) error {
		w.Reset()
		return nil
	})
}

// advance applies fn to the session's wizard and stores the result only if fn succeeds.
func (h *Handler) advance(c *gin.Context, logKey string, fn func(w *service.Wizard) error) {
	id, w, ok := h.loadWizard(c)
	if !ok {
		return
	}
	if err := fn(&w); err != nil {
		h.respondError(c, logKey, err, "session", id, "step", w.Step.String())
		return
	}
	if !h.storeWizard(c, id, w) {
		return
	}
	h.respondWizard(c, http.StatusOK, id, w)
}

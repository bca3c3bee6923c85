package service

import (
	"context"
	"fmt"
	"strings"

	"home_service_booking/internal/availability"
	"home_service_booking/internal/models"
)

// BookingService implements the client booking wizard on top of the document store.
type BookingService struct {
	store documentStore
	opts  Options
}

func newBookingService(store documentStore, opts Options) *BookingService {
	return &BookingService{store: store, opts: opts}
}

// SubmitInfo validates the client details and job selection, then moves to PickDay.
func (s *BookingService) SubmitInfo(ctx context.Context, w *Wizard, in ClientInfo) error {
	if err := w.expect(StepCollectInfo); err != nil {
		return err
	}
	doc, err := s.store.read(ctx)
	if err != nil {
		return err
	}
	info, err := normalizeClientInfo(in, doc.Costs)
	if err != nil {
		return err
	}

	w.Draft.ClientName = info.ClientName
	w.Draft.Address = info.Address
	w.Draft.Phone = info.Phone
	w.Draft.Jobs = info.Jobs
	w.Draft.Quantity = info.Quantity
	w.Step = StepPickDay
	return nil
}

// DayOptions lists the upcoming weekdays with their fullness.
func (s *BookingService) DayOptions(ctx context.Context, w *Wizard) ([]availability.Day, error) {
	if err := w.expect(StepPickDay); err != nil {
		return nil, err
	}
	doc, err := s.store.read(ctx)
	if err != nil {
		return nil, err
	}
	return availability.UpcomingDays(doc.Appointments, s.opts.today(), s.opts.HorizonDays), nil
}

// ChooseDay accepts one of the offered, non-full days and moves to PickSlot.
// Picking a different day drops previously chosen slots.
func (s *BookingService) ChooseDay(ctx context.Context, w *Wizard, date string) error {
	if err := w.expect(StepPickDay); err != nil {
		return err
	}
	if _, err := availability.ParseDate(date); err != nil {
		return ErrInvalidDate
	}
	days, err := s.DayOptions(ctx, w)
	if err != nil {
		return err
	}
	if !offered(days, date) {
		return fmt.Errorf("%w: %s", ErrDayUnavailable, date)
	}

	if w.Draft.Date != date {
		w.Draft.TimeSlots = nil
	}
	w.Draft.Date = date
	w.Step = StepPickSlot
	return nil
}

// SlotOptions lists the free slots of the chosen day.
func (s *BookingService) SlotOptions(ctx context.Context, w *Wizard) ([]string, error) {
	if err := w.expect(StepPickSlot); err != nil {
		return nil, err
	}
	doc, err := s.store.read(ctx)
	if err != nil {
		return nil, err
	}
	return availability.FreeSlots(doc.Appointments, w.Draft.Date), nil
}

// ChooseSlots accepts one or more free slots of the chosen day and moves to Confirm.
func (s *BookingService) ChooseSlots(ctx context.Context, w *Wizard, slots []string) error {
	if err := w.expect(StepPickSlot); err != nil {
		return err
	}
	doc, err := s.store.read(ctx)
	if err != nil {
		return err
	}
	chosen, err := checkSlots(doc.Appointments, w.Draft.Date, slots)
	if err != nil {
		return err
	}
	w.Draft.TimeSlots = chosen
	w.Step = StepConfirm
	return nil
}

// Review recomputes required duration against the selected capacity.
// A draft that does not fit is reported through Fits/Problem, not as an error.
func (s *BookingService) Review(ctx context.Context, w *Wizard) (Review, error) {
	if err := w.expect(StepConfirm); err != nil {
		return Review{}, err
	}
	doc, err := s.store.read(ctx)
	if err != nil {
		return Review{}, err
	}
	required, err := availability.RequiredDuration(doc.Costs, w.Draft.Jobs, w.Draft.Quantity)
	if err != nil {
		return Review{}, err
	}
	r := Review{
		Draft:         w.Clone().Draft,
		RequiredHours: required,
		ProvidedHours: availability.ProvidedCapacity(len(w.Draft.TimeSlots)),
		EstimatedCost: totalCost(doc.Costs, w.Draft.Jobs, w.Draft.Quantity),
		Fits:          true,
	}
	if err := availability.CheckCapacity(required, len(w.Draft.TimeSlots)); err != nil {
		r.Fits = false
		r.Problem = err.Error()
	}
	return r, nil
}

// Confirm re-validates the whole draft against the current document, persists a new
// pending appointment and resets the wizard. On any error the wizard is left unchanged.
func (s *BookingService) Confirm(ctx context.Context, w *Wizard) (models.Appointment, error) {
	if err := w.expect(StepConfirm); err != nil {
		return models.Appointment{}, err
	}

	var created models.Appointment
	err := s.store.update(ctx, func(doc *models.Document) error {
		info, err := normalizeClientInfo(ClientInfo{
			ClientName: w.Draft.ClientName,
			Address:    w.Draft.Address,
			Phone:      w.Draft.Phone,
			Jobs:       w.Draft.Jobs,
			Quantity:   w.Draft.Quantity,
		}, doc.Costs)
		if err != nil {
			return err
		}
		day, err := availability.ParseDate(w.Draft.Date)
		if err != nil {
			return ErrInvalidDate
		}
		if day.Before(s.opts.today()) || !availability.IsBookable(doc.Appointments, day) {
			return fmt.Errorf("%w: %s", ErrDayUnavailable, w.Draft.Date)
		}
		slots, err := checkSlots(doc.Appointments, w.Draft.Date, w.Draft.TimeSlots)
		if err != nil {
			return err
		}
		required, err := availability.RequiredDuration(doc.Costs, info.Jobs, info.Quantity)
		if err != nil {
			return err
		}
		if err := availability.CheckCapacity(required, len(slots)); err != nil {
			return err
		}

		created = models.Appointment{
			ID:            nextAppointmentID(doc.Appointments, s.opts.Now().UnixMilli()),
			Status:        models.StatusPending,
			ClientName:    info.ClientName,
			Address:       info.Address,
			Phone:         info.Phone,
			Date:          w.Draft.Date,
			Quantity:      info.Quantity,
			Jobs:          info.Jobs,
			TimeSlots:     slots,
			TotalDuration: required,
		}
		doc.Appointments = append(doc.Appointments, created)
		return nil
	})
	if err != nil {
		return models.Appointment{}, err
	}

	w.Reset()
	return created, nil
}

// normalizeClientInfo trims the text fields, de-duplicates jobs and checks them against the catalog.
func normalizeClientInfo(in ClientInfo, catalog map[string]models.JobType) (ClientInfo, error) {
	out := ClientInfo{
		ClientName: strings.TrimSpace(in.ClientName),
		Address:    strings.TrimSpace(in.Address),
		Phone:      strings.TrimSpace(in.Phone),
		Quantity:   in.Quantity,
	}
	if out.ClientName == "" || out.Address == "" || out.Phone == "" {
		return ClientInfo{}, ErrMissingClientInfo
	}
	seen := make(map[string]struct{}, len(in.Jobs))
	for _, id := range in.Jobs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		if _, ok := catalog[id]; !ok {
			return ClientInfo{}, fmt.Errorf("%w: %q", availability.ErrUnknownJob, id)
		}
		seen[id] = struct{}{}
		out.Jobs = append(out.Jobs, id)
	}
	if len(out.Jobs) == 0 {
		return ClientInfo{}, ErrNoJobs
	}
	if out.Quantity < 1 {
		return ClientInfo{}, ErrInvalidQuantity
	}
	return out, nil
}

// checkSlots validates a slot selection for date and returns it de-duplicated in daily order.
func checkSlots(apps []models.Appointment, date string, slots []string) ([]string, error) {
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}
	want := make(map[string]struct{}, len(slots))
	for _, sl := range slots {
		if !availability.IsSlot(sl) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSlot, sl)
		}
		want[sl] = struct{}{}
	}
	taken := availability.TakenSlots(apps, date)
	chosen := make([]string, 0, len(want))
	for _, sl := range availability.Slots() {
		if _, ok := want[sl]; !ok {
			continue
		}
		if _, busy := taken[sl]; busy {
			return nil, fmt.Errorf("%w: %s on %s", ErrSlotTaken, sl, date)
		}
		chosen = append(chosen, sl)
	}
	return chosen, nil
}

func offered(days []availability.Day, date string) bool {
	for _, d := range days {
		if d.Date == date {
			return !d.Full
		}
	}
	return false
}

// nextAppointmentID derives an id from the creation timestamp, bumping it past any id already in use.
func nextAppointmentID(apps []models.Appointment, stamp int64) int64 {
	used := make(map[int64]struct{}, len(apps))
	for _, a := range apps {
		used[a.ID] = struct{}{}
	}
	id := stamp
	for {
		if _, ok := used[id]; !ok {
			return id
		}
		id++
	}
}

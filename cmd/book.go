package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"home_service_booking/internal/availability"
	"home_service_booking/internal/models"
	"home_service_booking/internal/service"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// reviewAction is the client's decision at the Confirm step.
type reviewAction int

const (
	actionConfirm reviewAction = iota
	actionBack
	actionRestart
)

// backChoice is the sentinel a day or slot prompt returns to go one step back.
const backChoice = "__back__"

var errBookingCancelled = errors.New("booking cancelled")

// prompter collects one step's input from the client.
type prompter interface {
	ClientInfo(jobs []service.JobTypeView, prev service.Draft) (service.ClientInfo, error)
	Day(days []availability.Day) (string, error)
	Slots(free []string) ([]string, error)
	Review(r service.Review) (reviewAction, error)
	Problem(err error)
}

func newBookCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "book",
		Short: "Book an appointment interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, closer, err := a.newServices(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			booked, err := runBooking(cmd.Context(), services, services, &huhPrompter{out: cmd.OutOrStdout()})
			if errors.Is(err, errBookingCancelled) {
				fmt.Fprintln(cmd.OutOrStdout(), "Booking cancelled.")
				return nil
			}
			if err != nil {
				return err
			}
			a.log.Infow("appointment_booked", "id", booked.ID, "date", booked.Date, "slots", booked.TimeSlots)
			fmt.Fprintf(cmd.OutOrStdout(), "Booked #%d on %s (%s).\n", booked.ID, booked.Date, strings.Join(booked.TimeSlots, ", "))
			return nil
		},
	}
}

// runBooking drives one wizard from CollectInfo to a persisted appointment.
// Validation failures are shown and the same step is asked again.
func runBooking(ctx context.Context, wf service.Workflow, cat service.Catalog, p prompter) (models.Appointment, error) {
	w := service.NewWizard()
	for {
		var err error
		switch w.Step {
		case service.StepCollectInfo:
			var jobs []service.JobTypeView
			if jobs, err = cat.ListJobTypes(ctx); err != nil {
				return models.Appointment{}, err
			}
			var info service.ClientInfo
			if info, err = p.ClientInfo(jobs, w.Draft); err != nil {
				return models.Appointment{}, err
			}
			err = wf.SubmitInfo(ctx, &w, info)

		case service.StepPickDay:
			var days []availability.Day
			if days, err = wf.DayOptions(ctx, &w); err != nil {
				return models.Appointment{}, err
			}
			var date string
			if date, err = p.Day(days); err != nil {
				return models.Appointment{}, err
			}
			if date == backChoice {
				err = w.Back(service.StepCollectInfo)
				break
			}
			err = wf.ChooseDay(ctx, &w, date)

		case service.StepPickSlot:
			var free []string
			if free, err = wf.SlotOptions(ctx, &w); err != nil {
				return models.Appointment{}, err
			}
			var slots []string
			if slots, err = p.Slots(free); err != nil {
				return models.Appointment{}, err
			}
			if len(slots) == 1 && slots[0] == backChoice {
				err = w.Back(service.StepPickDay)
				break
			}
			err = wf.ChooseSlots(ctx, &w, slots)

		case service.StepConfirm:
			var r service.Review
			if r, err = wf.Review(ctx, &w); err != nil {
				return models.Appointment{}, err
			}
			var action reviewAction
			if action, err = p.Review(r); err != nil {
				return models.Appointment{}, err
			}
			switch action {
			case actionBack:
				err = w.Back(service.StepPickSlot)
			case actionRestart:
				w.Reset()
			default:
				var booked models.Appointment
				if booked, err = wf.Confirm(ctx, &w); err == nil {
					return booked, nil
				}
			}
		}

		if err != nil {
			if !service.IsValidation(err) {
				return models.Appointment{}, err
			}
			p.Problem(err)
		}
	}
}

// huhPrompter renders each step as a huh form.
type huhPrompter struct {
	out io.Writer
}

var (
	reviewStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	problemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func runForm(fields ...huh.Field) error {
	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errBookingCancelled
		}
		return fmt.Errorf("form: %w", err)
	}
	return nil
}

func notBlank(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func (p *huhPrompter) ClientInfo(jobs []service.JobTypeView, prev service.Draft) (service.ClientInfo, error) {
	info := service.ClientInfo{
		ClientName: prev.ClientName,
		Address:    prev.Address,
		Phone:      prev.Phone,
		Jobs:       prev.Jobs,
	}
	qty := "1"
	if prev.Quantity > 0 {
		qty = strconv.Itoa(prev.Quantity)
	}

	opts := make([]huh.Option[string], 0, len(jobs))
	for _, j := range jobs {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%gh, $%d)", j.Text, j.Duration, j.Cost), j.ID))
	}

	err := runForm(
		huh.NewInput().Title("Name").Value(&info.ClientName).Validate(notBlank("name")),
		huh.NewInput().Title("Address").Value(&info.Address).Validate(notBlank("address")),
		huh.NewInput().Title("Phone").Value(&info.Phone).Validate(notBlank("phone")),
		huh.NewMultiSelect[string]().Title("Jobs").Options(opts...).Value(&info.Jobs),
		huh.NewInput().Title("Quantity").Value(&qty).Validate(func(s string) error {
			if n, err := strconv.Atoi(strings.TrimSpace(s)); err != nil || n < 1 {
				return errors.New("enter a whole number, at least 1")
			}
			return nil
		}),
	)
	if err != nil {
		return service.ClientInfo{}, err
	}
	info.Quantity, _ = strconv.Atoi(strings.TrimSpace(qty))
	return info, nil
}

func (p *huhPrompter) Day(days []availability.Day) (string, error) {
	opts := make([]huh.Option[string], 0, len(days)+1)
	for _, d := range days {
		if d.Full {
			continue
		}
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s %s (%d/%d booked)", d.Weekday, d.Date, d.Occupancy, availability.MaxSlotsPerDay), d.Date))
	}
	opts = append(opts, huh.NewOption("« back", backChoice))

	var date string
	if err := runForm(huh.NewSelect[string]().Title("Day").Options(opts...).Value(&date)); err != nil {
		return "", err
	}
	return date, nil
}

func (p *huhPrompter) Slots(free []string) ([]string, error) {
	goBack := false
	var slots []string
	err := runForm(
		huh.NewMultiSelect[string]().Title("Time slots").Options(huh.NewOptions(free...)...).Value(&slots),
		huh.NewConfirm().Title("Go back to the day list instead?").Affirmative("Back").Negative("Continue").Value(&goBack),
	)
	if err != nil {
		return nil, err
	}
	if goBack {
		return []string{backChoice}, nil
	}
	return slots, nil
}

func (p *huhPrompter) Review(r service.Review) (reviewAction, error) {
	d := r.Draft
	lines := []string{
		fmt.Sprintf("Client:   %s", d.ClientName),
		fmt.Sprintf("Address:  %s", d.Address),
		fmt.Sprintf("Phone:    %s", d.Phone),
		fmt.Sprintf("Jobs:     %s x%d", strings.Join(d.Jobs, ", "), d.Quantity),
		fmt.Sprintf("Date:     %s", d.Date),
		fmt.Sprintf("Slots:    %s", strings.Join(d.TimeSlots, ", ")),
		fmt.Sprintf("Hours:    %g needed / %g booked", r.RequiredHours, r.ProvidedHours),
		fmt.Sprintf("Estimate: $%d", r.EstimatedCost),
	}
	fmt.Fprintln(p.out, reviewStyle.Render(strings.Join(lines, "\n")))
	if !r.Fits {
		fmt.Fprintln(p.out, problemStyle.Render(r.Problem))
	}

	action := actionConfirm
	err := runForm(huh.NewSelect[reviewAction]().Title("Book it?").Options(
		huh.NewOption("Confirm", actionConfirm),
		huh.NewOption("Change time slots", actionBack),
		huh.NewOption("Start over", actionRestart),
	).Value(&action))
	return action, err
}

func (p *huhPrompter) Problem(err error) {
	fmt.Fprintln(p.out, problemStyle.Render(err.Error()))
}

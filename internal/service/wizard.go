package service

import "fmt"

// Step is a position in the linear booking wizard.
type Step int

const (
	StepCollectInfo Step = iota + 1
	StepPickDay
	StepPickSlot
	StepConfirm
)

func (s Step) String() string {
	switch s {
	case StepCollectInfo:
		return "collect_info"
	case StepPickDay:
		return "pick_day"
	case StepPickSlot:
		return "pick_slot"
	case StepConfirm:
		return "confirm"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Valid reports whether s is one of the four wizard steps.
func (s Step) Valid() bool {
	return s >= StepCollectInfo && s <= StepConfirm
}

// Draft is the booking data accumulated across wizard steps. It is never persisted.
type Draft struct {
	ClientName string   `json:"client_name"`
	Address    string   `json:"address"`
	Phone      string   `json:"phone"`
	Jobs       []string `json:"jobs"`
	Quantity   int      `json:"quantity"`
	Date       string   `json:"date,omitempty"`
	TimeSlots  []string `json:"time_slots,omitempty"`
}

// Wizard is one client's booking state machine.
type Wizard struct {
	Step  Step  `json:"step"`
	Draft Draft `json:"draft"`
}

// NewWizard returns a wizard at the first step with an empty draft.
func NewWizard() Wizard {
	return Wizard{Step: StepCollectInfo}
}

// Clone returns a copy that shares no slices with w.
func (w Wizard) Clone() Wizard {
	w.Draft.Jobs = append([]string(nil), w.Draft.Jobs...)
	w.Draft.TimeSlots = append([]string(nil), w.Draft.TimeSlots...)
	return w
}

// Back returns to an earlier, already completed step, keeping the draft for editing.
func (w *Wizard) Back(to Step) error {
	if !to.Valid() {
		return ErrInvalidStep
	}
	if to >= w.Step {
		return fmt.Errorf("%w: cannot go back from %s to %s", ErrInvalidStep, w.Step, to)
	}
	w.Step = to
	return nil
}

// Reset returns to the first step and discards the draft.
func (w *Wizard) Reset() {
	*w = NewWizard()
}

func (w *Wizard) expect(step Step) error {
	if w.Step != step {
		return fmt.Errorf("%w: at %s, need %s", ErrWrongStep, w.Step, step)
	}
	return nil
}

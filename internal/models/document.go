package models

// Document is the whole persisted state: admin account, cost catalog and appointments.
type Document struct {
	AdminCreds   *AdminCredentials  `json:"admin_creds"`
	Costs        map[string]JobType `json:"costs"`
	Appointments []Appointment      `json:"appointments"`
}

// NewDefaultDocument returns the document synthesized when nothing is persisted yet.
func NewDefaultDocument() Document {
	return Document{
		AdminCreds:   nil,
		Costs:        DefaultCatalog(),
		Appointments: []Appointment{},
	}
}

// Normalize replaces nil collections so the document always serializes
// "costs" as an object and "appointments" as an array.
func (d *Document) Normalize() {
	if d.Costs == nil {
		d.Costs = map[string]JobType{}
	}
	if d.Appointments == nil {
		d.Appointments = []Appointment{}
	}
}

// Clone returns a deep copy so callers can mutate it without touching the original.
func (d Document) Clone() Document {
	out := Document{
		Costs:        make(map[string]JobType, len(d.Costs)),
		Appointments: make([]Appointment, len(d.Appointments)),
	}
	if d.AdminCreds != nil {
		creds := *d.AdminCreds
		out.AdminCreds = &creds
	}
	for id, jt := range d.Costs {
		out.Costs[id] = jt
	}
	for i, a := range d.Appointments {
		a.Jobs = cloneStrings(a.Jobs)
		a.TimeSlots = cloneStrings(a.TimeSlots)
		out.Appointments[i] = a
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

package models

import "sort"

// JobType is a catalog entry. Its id is the key it is stored under in Document.Costs.
type JobType struct {
	Text     string  `json:"text"`     // label shown to clients, e.g. "A (2hs)"
	Duration float64 `json:"duration"` // hours per unit
	Cost     int64   `json:"cost"`     // currency units per unit
}

// DefaultCatalog returns the job types seeded on first run.
func DefaultCatalog() map[string]JobType {
	return map[string]JobType{
		"A": {Text: "A (2hs)", Duration: 2.0, Cost: 190000},
		"B": {Text: "B (1.5hs)", Duration: 1.5, Cost: 87000},
		"C": {Text: "C (0.5hs)", Duration: 0.5, Cost: 55000},
		"D": {Text: "D (1h)", Duration: 1.0, Cost: 76000},
	}
}

// SortedJobIDs returns the catalog ids in ascending order.
func SortedJobIDs(costs map[string]JobType) []string {
	ids := make([]string, 0, len(costs))
	for id := range costs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

package service

import (
	"context"
	"fmt"

	"home_service_booking/internal/availability"
	"home_service_booking/internal/models"
)

type CatalogService struct {
	store documentStore
}

func newCatalogService(store documentStore) *CatalogService {
	return &CatalogService{store: store}
}

// ListJobTypes returns the catalog sorted by id.
func (s *CatalogService) ListJobTypes(ctx context.Context) ([]JobTypeView, error) {
	doc, err := s.store.read(ctx)
	if err != nil {
		return nil, err
	}
	return catalogViews(doc.Costs), nil
}

// UpdateCosts replaces the cost of each listed job type. Labels and durations are untouched.
// The update is all-or-nothing.
func (s *CatalogService) UpdateCosts(ctx context.Context, costs map[string]int64) ([]JobTypeView, error) {
	var updated map[string]models.JobType
	err := s.store.update(ctx, func(doc *models.Document) error {
		for id, cost := range costs {
			jt, ok := doc.Costs[id]
			if !ok {
				return fmt.Errorf("%w: %q", availability.ErrUnknownJob, id)
			}
			if cost < 0 {
				return fmt.Errorf("%w: %q", ErrInvalidCost, id)
			}
			jt.Cost = cost
			doc.Costs[id] = jt
		}
		updated = doc.Costs
		if len(costs) == 0 {
			return errNoChange
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return catalogViews(updated), nil
}

func catalogViews(costs map[string]models.JobType) []JobTypeView {
	ids := models.SortedJobIDs(costs)
	out := make([]JobTypeView, 0, len(ids))
	for _, id := range ids {
		jt := costs[id]
		out = append(out, JobTypeView{ID: id, Text: jt.Text, Duration: jt.Duration, Cost: jt.Cost})
	}
	return out
}

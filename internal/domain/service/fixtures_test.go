package service

import (
	"context"
	"sync"

	"Rota-App/internal/domain/model"
)

type fakePlacesRepository struct {
	places []*model.Place
	err    error
}

func (f *fakePlacesRepository) ListAll(ctx context.Context) ([]*model.Place, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.places, nil
}

type fakePlanGenerator struct {
	mu       sync.Mutex
	calls    int
	received []*model.Place
	plan     *model.RawPlan
	err      error
	block    bool
}

func (f *fakePlanGenerator) GeneratePlan(ctx context.Context, activities []*model.Place, prefs *model.RoutePreferences) (*model.RawPlan, error) {
	f.mu.Lock()
	f.calls++
	f.received = activities
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.plan, f.err
}

func (f *fakePlanGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func kadikoyPlace(id, name, category string, rating float64, reviews int, lat, lng float64) *model.Place {
	return &model.Place{
		ID:               id,
		Name:             name,
		Category:         category,
		Rating:           rating,
		UserRatingsTotal: reviews,
		Price:            model.BudgetMid,
		Latitude:         lat,
		Longitude:        lng,
		Province:         "İstanbul",
		District:         "Kadıköy",
		ImageURL:         "https://img.example/" + id + ".jpg",
	}
}

func kadikoyPrefs(days int, accommodation bool, activities ...string) *model.RoutePreferences {
	return &model.RoutePreferences{
		Activities:        activities,
		Province:          "İstanbul",
		District:          "Kadıköy",
		Days:              days,
		WithAccommodation: accommodation,
		Budget:            model.BudgetMid,
	}
}

func f64(v float64) *float64 { return &v }

func stopAt(name, id string, lat, lng float64) model.ActivityStop {
	return model.ActivityStop{Place: name, PlaceID: id, Lat: f64(lat), Lng: f64(lng)}
}

func stopNames(stops []model.ActivityStop) []string {
	names := make([]string, len(stops))
	for i, s := range stops {
		names[i] = s.Place
	}
	return names
}

func stopTimes(stops []model.ActivityStop) []string {
	times := make([]string, len(stops))
	for i, s := range stops {
		times[i] = s.Time
	}
	return times
}

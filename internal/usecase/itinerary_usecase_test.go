package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Rota-App/internal/domain/model"
)

type stubPlanner struct {
	itinerary *model.Itinerary
	err       error
	calls     int
}

func (s *stubPlanner) PlanItinerary(ctx context.Context, prefs *model.RoutePreferences) (*model.Itinerary, error) {
	s.calls++
	return s.itinerary, s.err
}

type stubStore struct {
	saveErr error
	saved   []*model.ItineraryProposal
	ttl     time.Duration
}

func (s *stubStore) SaveItinerary(ctx context.Context, prefs *model.RoutePreferences, itinerary *model.Itinerary, ttl time.Duration) (*model.ItineraryProposal, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	s.ttl = ttl
	p := &model.ItineraryProposal{ProposalID: "itin_test", Preferences: prefs, Route: itinerary, Source: itinerary.Source}
	s.saved = append(s.saved, p)
	return p, nil
}

func (s *stubStore) GetItinerary(ctx context.Context, proposalID string) (*model.ItineraryProposal, error) {
	for _, p := range s.saved {
		if p.ProposalID == proposalID {
			return p, nil
		}
	}
	return nil, model.ErrProposalNotFound
}

func validPrefs() *model.RoutePreferences {
	return &model.RoutePreferences{
		Activities: []string{model.InterestCafe, model.InterestCulture},
		Province:   "İstanbul",
		District:   "Kadıköy",
		Days:       2,
		Budget:     model.BudgetMid,
	}
}

func sampleItinerary() *model.Itinerary {
	return &model.Itinerary{
		Days:   []model.DayPlan{{Day: 1, Activities: []model.ActivityStop{{Time: "10:00", Place: "Moda Sahili"}}}},
		Source: model.PlanSourceOracle,
	}
}

func TestGenerateItinerary_SavesProposal(t *testing.T) {
	planner := &stubPlanner{itinerary: sampleItinerary()}
	store := &stubStore{}
	uc := NewItineraryUseCase(planner, store, nil, ItineraryUseCaseConfig{ProposalTTL: time.Hour})

	resp, err := uc.GenerateItinerary(context.Background(), validPrefs())
	require.NoError(t, err)
	assert.Equal(t, "itin_test", resp.ProposalID)
	assert.Equal(t, model.PlanSourceOracle, resp.Source)
	assert.Len(t, resp.Route.Days, 1)
	assert.Equal(t, time.Hour, store.ttl)

	got, err := uc.GetItinerary(context.Background(), "itin_test")
	require.NoError(t, err)
	assert.Equal(t, "Moda Sahili", got.Route.Days[0].Activities[0].Place)
}

func TestGenerateItinerary_StoreFailureDoesNotFailRequest(t *testing.T) {
	uc := NewItineraryUseCase(&stubPlanner{itinerary: sampleItinerary()}, &stubStore{saveErr: errors.New("firestore down")}, nil, ItineraryUseCaseConfig{})

	resp, err := uc.GenerateItinerary(context.Background(), validPrefs())
	require.NoError(t, err)
	assert.Empty(t, resp.ProposalID)
	assert.NotNil(t, resp.Route)
}

func TestGenerateItinerary_WithoutStore(t *testing.T) {
	uc := NewItineraryUseCase(&stubPlanner{itinerary: sampleItinerary()}, nil, nil, ItineraryUseCaseConfig{})

	resp, err := uc.GenerateItinerary(context.Background(), validPrefs())
	require.NoError(t, err)
	assert.Empty(t, resp.ProposalID)

	_, err = uc.GetItinerary(context.Background(), "itin_test")
	assert.ErrorIs(t, err, model.ErrProposalNotFound)
}

func TestGenerateItinerary_PropagatesPlannerError(t *testing.T) {
	uc := NewItineraryUseCase(&stubPlanner{err: model.ErrNoCandidates}, &stubStore{}, nil, ItineraryUseCaseConfig{})

	_, err := uc.GenerateItinerary(context.Background(), validPrefs())
	assert.ErrorIs(t, err, model.ErrNoCandidates)
}

func TestGetItinerary_NotFound(t *testing.T) {
	uc := NewItineraryUseCase(&stubPlanner{}, &stubStore{}, nil, ItineraryUseCaseConfig{})

	_, err := uc.GetItinerary(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrProposalNotFound)
}

func TestGenerateItinerary_Validation(t *testing.T) {
	lat, lng, badLat, badLng := 40.99, 29.03, 120.0, 200.0

	tests := []struct {
		name   string
		mutate func(p *model.RoutePreferences)
		field  string
	}{
		{"no activities", func(p *model.RoutePreferences) { p.Activities = nil }, "activities"},
		{"unknown activity", func(p *model.RoutePreferences) { p.Activities = []string{"skydiving"} }, "activities"},
		{"blank province", func(p *model.RoutePreferences) { p.Province = "  " }, "province"},
		{"blank district", func(p *model.RoutePreferences) { p.District = "" }, "district"},
		{"zero days", func(p *model.RoutePreferences) { p.Days = 0 }, "days"},
		{"too many days", func(p *model.RoutePreferences) { p.Days = 15 }, "days"},
		{"unknown budget", func(p *model.RoutePreferences) { p.Budget = "Lüks" }, "budget"},
		{"latitude only", func(p *model.RoutePreferences) { p.Latitude = &lat }, "latitude"},
		{"latitude out of range", func(p *model.RoutePreferences) { p.Latitude, p.Longitude = &badLat, &lng }, "latitude"},
		{"longitude out of range", func(p *model.RoutePreferences) { p.Latitude, p.Longitude = &lat, &badLng }, "longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := &stubPlanner{itinerary: sampleItinerary()}
			uc := NewItineraryUseCase(planner, nil, nil, ItineraryUseCaseConfig{MaxTripDays: 14})

			prefs := validPrefs()
			tt.mutate(prefs)

			_, err := uc.GenerateItinerary(context.Background(), prefs)
			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Zero(t, planner.calls)
		})
	}
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Rota-App/internal/domain/model"
	"Rota-App/internal/infrastructure/metrics"
)

type stubUseCase struct {
	response *model.ItineraryResponse
	proposal *model.ItineraryProposal
	err      error
	received *model.RoutePreferences
}

func (s *stubUseCase) GenerateItinerary(ctx context.Context, prefs *model.RoutePreferences) (*model.ItineraryResponse, error) {
	s.received = prefs
	return s.response, s.err
}

func (s *stubUseCase) GetItinerary(ctx context.Context, proposalID string) (*model.ItineraryProposal, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.proposal, nil
}

const validBody = `{"activities":["cafe","culture"],"province":"İstanbul","district":"Kadıköy","days":2,"withAccommodation":true,"budget":"Orta"}`

func newTestRouter(uc *stubUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(NewItineraryHandler(uc), metrics.MetricsHandler(metrics.InitRegistry()), zerolog.Nop())
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostGenerateRoute_OK(t *testing.T) {
	hotel := "Moda Otel"
	lat, lng := 40.98, 29.02
	uc := &stubUseCase{response: &model.ItineraryResponse{
		ProposalID: "itin_1",
		Source:     model.PlanSourceOracle,
		Route: &model.Itinerary{
			Day1Hotel: &hotel,
			Days: []model.DayPlan{{Day: 1, Activities: []model.ActivityStop{
				{Time: "10:00", Place: "Moda Sahili", PlaceID: "p1", Category: "park", Lat: &lat, Lng: &lng},
				{Time: "23:00", Place: hotel, PlaceID: "h1", Category: "accommodation", Lat: &lat, Lng: &lng, IsHotelReturn: true},
			}}},
		},
	}}

	w := doRequest(newTestRouter(uc), http.MethodPost, "/api/generate-route", validBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	var body struct {
		ProposalID string `json:"proposal_id"`
		Route      struct {
			Day1Hotel *string `json:"day_1_hotel"`
			Days      []struct {
				Day        int              `json:"day"`
				Activities []map[string]any `json:"activities"`
			} `json:"days"`
		} `json:"route"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "itin_1", body.ProposalID)
	require.NotNil(t, body.Route.Day1Hotel)
	assert.Equal(t, "Moda Otel", *body.Route.Day1Hotel)
	require.Len(t, body.Route.Days, 1)
	last := body.Route.Days[0].Activities[1]
	assert.Equal(t, true, last["isHotelReturn"])
	assert.Equal(t, "23:00", last["time"])

	require.NotNil(t, uc.received)
	assert.Equal(t, "Kadıköy", uc.received.District)
	assert.True(t, uc.received.WithAccommodation)
}

func TestPostGenerateRoute_ErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantError string
	}{
		{"no candidates", fmt.Errorf("候補選定: %w", model.ErrNoCandidates), http.StatusNotFound, msgNoCandidates},
		{"validation", &model.ValidationError{Field: "days", Message: "out of range"}, http.StatusBadRequest, msgInvalidRequest},
		{"internal", errors.New("firestore unavailable"), http.StatusInternalServerError, msgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(newTestRouter(&stubUseCase{err: tt.err}), http.MethodPost, "/api/generate-route", validBody)
			assert.Equal(t, tt.wantCode, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body["error"])
			route, ok := body["route"]
			assert.True(t, ok)
			assert.Nil(t, route)
		})
	}
}

func TestPostGenerateRoute_MalformedBody(t *testing.T) {
	uc := &stubUseCase{}
	w := doRequest(newTestRouter(uc), http.MethodPost, "/api/generate-route", `{"activities":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.received)
}

func TestGetItinerary(t *testing.T) {
	uc := &stubUseCase{proposal: &model.ItineraryProposal{
		ProposalID: "itin_1",
		Source:     model.PlanSourceFallback,
		Route:      &model.Itinerary{Days: []model.DayPlan{{Day: 1}}},
	}}
	w := doRequest(newTestRouter(uc), http.MethodGet, "/api/itineraries/itin_1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"proposal_id":"itin_1"`)

	w = doRequest(newTestRouter(&stubUseCase{err: fmt.Errorf("取得: %w", model.ErrProposalNotFound)}), http.MethodGet, "/api/itineraries/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(newTestRouter(&stubUseCase{err: errors.New("boom")}), http.MethodGet, "/api/itineraries/x", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(&stubUseCase{})

	w := doRequest(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"Rota-App"}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rota_http_requests_total")
}

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	da "github.com/lintang-b-s/flightplanner/pkg/datastructure"
	"github.com/lintang-b-s/flightplanner/pkg/engine/routing"
	"github.com/lintang-b-s/flightplanner/pkg/http/usecases"
	"github.com/lintang-b-s/flightplanner/pkg/spatialindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	graph := da.NewFlightGraph([]*da.Flight{
		da.NewFlight("A", "B", 100, 2),
		da.NewFlight("A", "C", 10, 5),
		da.NewFlight("C", "B", 10, 1),
	})
	rs, err := usecases.NewRoutingService(zap.NewNop(), routing.NewRoutingEngine(graph, zap.NewNop()),
		spatialindex.NewRtree(), da.NewAirports(nil), 16, 50, 0)
	require.NoError(t, err)
	return NewAPI(zap.NewNop()).Handler(false, rs)
}

func TestHandler(t *testing.T) {
	h := newTestHandler(t)

	testCases := []struct {
		name       string
		method     string
		target     string
		body       string
		header     map[string]string
		wantStatus int
		wantBody   string
	}{
		{name: "healthz", method: http.MethodGet, target: "/healthz", wantStatus: http.StatusOK, wantBody: "."},
		{name: "route", method: http.MethodGet, target: "/api/computeRoutes?origin=A&destination=B&criterion=cost",
			wantStatus: http.StatusOK, wantBody: `"total_cost":20`},
		{name: "unknown path", method: http.MethodGet, target: "/api/nope", wantStatus: http.StatusNotFound},
		{name: "body must be json", method: http.MethodPost, target: "/api/computeRoutes", body: "x=1",
			header: map[string]string{"Content-Type": "text/plain"}, wantStatus: http.StatusUnsupportedMediaType},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, tt.target, body)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotEmpty(t, rec.Header().Get(REQUEST_ID_HEADER))
		})
	}
}

func TestLabelsKeepsIncomingRequestId(t *testing.T) {
	var seen string
	h := Labels(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIdFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(REQUEST_ID_HEADER, "abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", rec.Header().Get(REQUEST_ID_HEADER))
}

func TestRealIP(t *testing.T) {
	testCases := []struct {
		name   string
		header map[string]string
		want   string
	}{
		{name: "x-real-ip", header: map[string]string{"X-Real-IP": "10.0.0.1"}, want: "10.0.0.1"},
		{name: "x-forwarded-for first hop", header: map[string]string{"X-Forwarded-For": "10.0.0.2, 10.0.0.3"},
			want: "10.0.0.2"},
		{name: "garbage is ignored", header: map[string]string{"X-Real-IP": "nope"}, want: "192.0.2.1:1234"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLimiter(t *testing.T) {
	h := NewLimiter(rate.Limit(0.001), 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRecoverPanic(t *testing.T) {
	api := NewAPI(zap.NewNop())
	h := api.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "close", rec.Header().Get("Connection"))
}

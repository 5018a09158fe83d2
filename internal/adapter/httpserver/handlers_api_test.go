package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/pscheid92/greetsum/internal/adapter/metrics"
	"github.com/pscheid92/greetsum/internal/domain"
	apperrors "github.com/pscheid92/greetsum/internal/platform/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- handleGreeting tests ---

func TestHandleGreeting(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	req := httptest.NewRequest(http.MethodGet, "/api/greeting", nil)
	rec := httptest.NewRecorder()
	c := srv.echo.NewContext(req, rec)

	err := srv.handleGreeting(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hello from the backend!"}`, rec.Body.String())
	assert.InDelta(t, 1, testutil.ToFloat64(srv.apiMetrics.Greetings), 0)
}

func TestHandleGreeting_UsesService(t *testing.T) {
	app := &mockAppService{
		greetingFn: func(_ context.Context) domain.Greeting {
			return domain.Greeting{Message: "stubbed"}
		},
	}
	srv := newTestServer(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/greeting", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"stubbed"}`, rec.Body.String())
}

// --- handleAdd tests ---

func TestHandleAdd(t *testing.T) {
	testCases := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "OK",
			query:      "a=2&b=3",
			wantStatus: http.StatusOK,
			wantBody:   `{"a":2,"b":3,"sum":5}`,
		},
		{
			name:       "CancelsOut",
			query:      "a=-4&b=4",
			wantStatus: http.StatusOK,
			wantBody:   `{"a":-4,"b":4,"sum":0}`,
		},
		{
			name:       "ExplicitPlusSign",
			query:      "a=%2B7&b=0",
			wantStatus: http.StatusOK,
			wantBody:   `{"a":7,"b":0,"sum":7}`,
		},
		{
			name:       "ParamOrderIrrelevant",
			query:      "b=10&a=1",
			wantStatus: http.StatusOK,
			wantBody:   `{"a":1,"b":10,"sum":11}`,
		},
		{
			name:       "NonIntegerA",
			query:      "a=foo&b=1",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"query parameter \"a\" must be an integer","type":"validation","context":{"param":"a","value":"foo"}}`,
		},
		{
			name:       "NonIntegerB",
			query:      "a=1&b=2.5",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"query parameter \"b\" must be an integer","type":"validation","context":{"param":"b","value":"2.5"}}`,
		},
		{
			name:       "MissingA",
			query:      "b=1",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"query parameter \"a\" is required","type":"validation","context":{"param":"a"}}`,
		},
		{
			name:       "MissingB",
			query:      "a=1",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"query parameter \"b\" is required","type":"validation","context":{"param":"b"}}`,
		},
		{
			name:       "EmptyA",
			query:      "a=&b=1",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"query parameter \"a\" is required","type":"validation","context":{"param":"a"}}`,
		},
		{
			name:       "BothMissingReportsA",
			query:      "",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"query parameter \"a\" is required","type":"validation","context":{"param":"a"}}`,
		},
		{
			name:       "OutOfRange",
			query:      "a=99999999999999999999&b=1",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"query parameter \"a\" must be an integer","type":"validation","context":{"param":"a","value":"99999999999999999999"}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(t, &mockAppService{})

			req := httptest.NewRequest(http.MethodGet, "/api/add?"+tc.query, nil)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestHandleAdd_PassesOperandsToService(t *testing.T) {
	var gotA, gotB int64
	app := &mockAppService{
		addFn: func(_ context.Context, a, b int64) domain.Sum {
			gotA, gotB = a, b
			return domain.Sum{A: a, B: b, Result: 42}
		},
	}
	srv := newTestServer(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/add?a=40&b=2", nil)
	rec := httptest.NewRecorder()
	c := srv.echo.NewContext(req, rec)

	err := srv.handleAdd(c)

	require.NoError(t, err)
	assert.Equal(t, int64(40), gotA)
	assert.Equal(t, int64(2), gotB)
	assert.JSONEq(t, `{"a":40,"b":2,"sum":42}`, rec.Body.String())
}

func TestHandleAdd_InvalidDoesNotReachService(t *testing.T) {
	app := &mockAppService{
		addFn: func(_ context.Context, _, _ int64) domain.Sum {
			t.Fatal("service must not be called for invalid input")
			return domain.Sum{}
		},
	}
	srv := newTestServer(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/add?a=foo&b=1", nil)
	rec := httptest.NewRecorder()
	c := srv.echo.NewContext(req, rec)

	_ = callHandler(srv.handleAdd, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.TypeValidation, resp.Type)
	assert.Equal(t, "a", resp.Context["param"])
}

func TestHandleAdd_LargeOperands(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	req := httptest.NewRequest(http.MethodGet, "/api/add?a=9223372036854775806&b=1", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp sumResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(9223372036854775806), resp.A)
	assert.Equal(t, int64(9223372036854775807), resp.Sum)
}

func TestHandleAdd_RecordsResults(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	for _, q := range []string{"a=1&b=2", "a=3&b=4", "a=x&b=1"} {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/add?"+q, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(srv.apiMetrics.Additions.WithLabelValues(metrics.ResultOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(srv.apiMetrics.Additions.WithLabelValues(metrics.ResultInvalid)), 0)
}

func TestHandleAdd_WrongMethod(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	req := httptest.NewRequest(http.MethodPost, "/api/add?a=1&b=2", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.TypeClient, resp.Type)
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	req := httptest.NewRequest(http.MethodGet, "/api/subtract", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found","type":"not_found"}`, rec.Body.String())
}

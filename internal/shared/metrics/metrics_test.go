package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestFinished(t *testing.T) {
	m := New()

	m.RequestStarted()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.inFlight))

	m.RequestFinished(http.MethodGet, "GET /people/{id}", http.StatusNotFound, 5*time.Millisecond)
	m.RequestStarted()
	m.RequestFinished(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, float64(0), testutil.ToFloat64(m.inFlight))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("GET", "GET /people/{id}", "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandler(t *testing.T) {
	m := New()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	require.NoError(t, m.RegisterDB(sqlDB, "starwars"))

	m.RequestStarted()
	m.RequestFinished(http.MethodPost, "POST /favorite/planet/{id}", http.StatusCreated, time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "starwars_api_http_requests_total"))
	assert.Contains(t, body, `route="POST /favorite/planet/{id}"`)
	assert.Contains(t, body, `go_sql_open_connections{db_name="starwars"}`)
}

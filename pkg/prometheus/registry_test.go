package prometheus

import (
	"net/http"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arealookup/pkg/utils"
)

func TestCalculatePercent(t *testing.T) {
	tests := []struct {
		name                 string
		t1, t2, t1All, t2All float64
		want                 float64
	}{
		{name: "no_progress", t1: 5, t2: 5, t1All: 10, t2All: 20, want: 0},
		{name: "half", t1: 0, t2: 5, t1All: 0, t2All: 10, want: 50},
		{name: "total_reset", t1: 0, t2: 5, t1All: 10, t2All: 10, want: 0},
		{name: "capped", t1: 0, t2: 50, t1All: 0, t2All: 10, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculatePercent(tt.t1, tt.t2, tt.t1All, tt.t2All))
		})
	}
}

func TestHandler(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	RequestCounterVec.WithLabelValues(http.MethodGet, "/v1/areas/children", "200").Inc()
	w := utils.PerformRequest(Handler(NewRegistry("arealookup", db)), http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "area_http_requests_total"))
	assert.True(t, strings.Contains(body, "go_sql_max_open_connections"))
}

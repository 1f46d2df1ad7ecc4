package segments

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	svc := NewService(NewRepository(setupSQLite(t)), &stubForecaster{out: []int{10, 20}}, time.Minute, zap.NewNop())
	require.NoError(t, svc.repo.Migrate())
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleCreateAndList(t *testing.T) {
	app := setupTestApp(t)

	body := `{"segment_name": "Weekend shoppers", "age_bands": ["25-34"], "interests": ["Fashion"], "min_engagement_minutes": 5}`
	req := httptest.NewRequest("POST", "/segments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var seg Segment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&seg))
	assert.Equal(t, "Weekend shoppers", seg.SegmentName)
	assert.InDelta(t, 625_000, seg.EstimatedReach, 1)

	resp, err = app.Test(httptest.NewRequest("GET", "/segments", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var list []Segment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, seg.SegmentID, list[0].SegmentID)
}

func TestHandleCreate_Invalid(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"age_bands": ["18-24"]}`},
		{name: "negative engagement", body: `{"segment_name": "x", "min_engagement_minutes": -1}`},
		{name: "empty criterion", body: `{"segment_name": "x", "locations": [""]}`},
		{name: "malformed", body: `{"segment_name": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/segments", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)
		})
	}
}

func TestHandleAnalytics(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/segments/abc/analytics", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var res Analytics
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "abc", res.SegmentID)
	assert.Len(t, res.PreviousMonth, historyDays)
	assert.Len(t, res.PredictedMonth, 2)
}

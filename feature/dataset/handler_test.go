package dataset

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"commerce-linker/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, exporter *Exporter) (*fiber.App, *Service) {
	t.Helper()
	app := fiber.New()
	svc := NewService(testGenConfig, nil, exporter, zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app, svc
}

func decode(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

func TestHandleGenerate(t *testing.T) {
	app, svc := setupTestApp(t, nil)

	req := httptest.NewRequest("POST", "/datasets", strings.NewReader(`{"accounts": 4, "sessions": 12, "seed": 3}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp.Body)
	ds := body["dataset"].(map[string]any)
	assert.Equal(t, float64(3), ds["seed"])
	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(4), summary["accounts"].(map[string]any)["total_accounts"])
	assert.Equal(t, float64(12), summary["sessions"].(map[string]any)["total_records"])

	latest, err := svc.Latest()
	require.NoError(t, err)
	assert.Equal(t, ds["dataset_id"], latest.ID)
}

func TestHandleGenerate_EmptyBodyUsesDefaults(t *testing.T) {
	app, svc := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("POST", "/datasets", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	latest, err := svc.Latest()
	require.NoError(t, err)
	assert.Len(t, latest.Accounts, testGenConfig.DefaultAccounts)
}

func TestHandleGenerate_Invalid(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	req := httptest.NewRequest("POST", "/datasets", strings.NewReader(`{"seed": -1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, decode(t, resp.Body)["error"], "seed must be greater than or equal to 0")

	req = httptest.NewRequest("POST", "/datasets", strings.NewReader(`{"accounts": "many"`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleLatest(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/datasets/latest", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	_, err = app.Test(httptest.NewRequest("POST", "/datasets", nil))
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest("GET", "/datasets/latest", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, decode(t, resp.Body), "summary")
}

func TestHandleSchema_NoDatabase(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/datasets/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestHandleSchema_SQLite(t *testing.T) {
	repo := NewRepository(setupSQLite(t))
	require.NoError(t, repo.Migrate())

	app := fiber.New()
	NewHandler(NewService(testGenConfig, repo, nil, zap.NewNop())).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/datasets/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, decode(t, resp.Body)["ok"])
}

func TestHandleExports(t *testing.T) {
	client := new(mocks.Client)
	app, svc := setupTestApp(t, NewExporter(client, "datasets", "", zap.NewNop()))

	resp, err := app.Test(httptest.NewRequest("GET", "/datasets/exports", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	_, err = app.Test(httptest.NewRequest("POST", "/datasets", nil))
	require.NoError(t, err)
	latest, err := svc.Latest()
	require.NoError(t, err)

	client.On("ListObjects", mock.Anything, "datasets", mock.Anything).Return(nil)
	client.On("GetObject", mock.Anything, "datasets", ObjectKey(latest.ID, SessionsFile), mock.Anything).
		Return(io.NopCloser(strings.NewReader("session_id\nabc\n")), nil)

	resp, err = app.Test(httptest.NewRequest("GET", "/datasets/exports", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []any{}, decode(t, resp.Body)["keys"])

	resp, err = app.Test(httptest.NewRequest("GET", "/datasets/exports/"+SessionsFile, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	data, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "session_id\nabc\n", string(data))

	resp, err = app.Test(httptest.NewRequest("GET", "/datasets/exports/other.csv", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleExports_NoStorage(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/datasets/exports", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

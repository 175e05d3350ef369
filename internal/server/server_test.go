package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/job"
	"github.com/eisla/eisla/internal/model"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	return New(catalog.BuiltIn(), t.TempDir(), 2, log.New(io.Discard))
}

func sensorDesign() model.Design {
	return model.Design{
		Name:  "sensor-node",
		Board: model.BoardConfig{DimensionsMM: []float64{60, 40}, Layers: 2, PowerSource: "usb"},
		Components: []model.Instance{
			{ComponentID: "esp32_wroom_32"},
			{ComponentID: "bme280"},
			{ComponentID: "cap_100nf_0402", Quantity: 2},
		},
		MCUID: "esp32_wroom_32",
	}
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rr, req)
	return rr
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func waitForDone(t *testing.T, h http.Handler, id string) map[string]any {
	t.Helper()
	deadline := time.Now().Add(15 * time.Second)
	for time.Now().Before(deadline) {
		rr := get(t, h, "/api/jobs/"+id)
		require.Equal(t, http.StatusOK, rr.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		switch body["status"] {
		case job.StatusDone:
			return body
		case job.StatusFailed:
			t.Fatalf("job %s failed: %v", id, body)
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for job %s", id)
	return nil
}

func TestHealthz(t *testing.T) {
	s := testServer(t)

	rr := get(t, s.Router(), "/healthz")
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Greater(t, body["components"], float64(0))
}

func TestCatalogEndpoint(t *testing.T) {
	s := testServer(t)
	h := s.Router()

	rr := get(t, h, "/api/catalog")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Count      int                  `json:"count"`
		Components []catalog.Definition `json:"components"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, catalog.BuiltIn().Len(), body.Count)
	assert.Len(t, body.Components, body.Count)

	search := get(t, h, "/api/catalog?q=esp32")
	require.Equal(t, http.StatusOK, search.Code)
	require.NoError(t, json.Unmarshal(search.Body.Bytes(), &body))
	require.GreaterOrEqual(t, body.Count, 1)
	assert.Contains(t, body.Components[0].ID, "esp32")
}

func TestCreateJobRejects(t *testing.T) {
	s := testServer(t)
	h := s.Router()

	raw := httptest.NewRecorder()
	h.ServeHTTP(raw, httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, raw.Code)

	noDesign := postJSON(t, h, "/api/jobs", map[string]any{"profile": "fast"})
	assert.Equal(t, http.StatusBadRequest, noDesign.Code)

	empty := postJSON(t, h, "/api/jobs", map[string]any{"design": model.Design{Name: "empty"}})
	assert.Equal(t, http.StatusBadRequest, empty.Code)

	badProfile := postJSON(t, h, "/api/jobs", map[string]any{"design": sensorDesign(), "profile": "warp"})
	assert.Equal(t, http.StatusBadRequest, badProfile.Code)
	assert.Contains(t, badProfile.Body.String(), "unknown profile")
}

func TestGetJobNotFound(t *testing.T) {
	s := testServer(t)
	rr := get(t, s.Router(), "/api/jobs/no-such-job")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateJobAndPoll(t *testing.T) {
	s := testServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.StartWorkers(ctx)
	h := s.Router()

	rr := postJSON(t, h, "/api/jobs", map[string]any{
		"design":  sensorDesign(),
		"profile": "fast",
		"seed":    11,
	})
	require.Equal(t, http.StatusAccepted, rr.Code)

	var accepted Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &accepted))
	require.NotEmpty(t, accepted.ID)
	assert.Equal(t, StatusQueued, accepted.Status)
	assert.Equal(t, "sensor-node", accepted.DesignName)

	final := waitForDone(t, h, accepted.ID)
	assert.NotNil(t, final["score"])
	stages, ok := final["stages"].([]any)
	require.True(t, ok)
	assert.Len(t, stages, 7)

	// The finished job serves its artifacts.
	art := get(t, h, "/api/jobs/"+accepted.ID+"/artifacts/placement.json")
	require.Equal(t, http.StatusOK, art.Code)
	var p model.PlacementResult
	require.NoError(t, json.Unmarshal(art.Body.Bytes(), &p))
	assert.NotEmpty(t, p.Components)

	zipResp := get(t, h, "/api/jobs/"+accepted.ID+"/artifacts/package.zip")
	require.Equal(t, http.StatusOK, zipResp.Code)
	assert.NotZero(t, zipResp.Body.Len())

	list := get(t, h, "/api/jobs")
	require.Equal(t, http.StatusOK, list.Code)
	var listing struct {
		Jobs []Record `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &listing))
	require.Len(t, listing.Jobs, 1)
	assert.Equal(t, job.StatusDone, listing.Jobs[0].Status)
}

func TestParallelJobs(t *testing.T) {
	s := testServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.StartWorkers(ctx)
	h := s.Router()

	ids := make([]string, 0, 3)
	for seed := int64(1); seed <= 3; seed++ {
		rr := postJSON(t, h, "/api/jobs", map[string]any{
			"design":  sensorDesign(),
			"profile": "fast",
			"seed":    seed,
		})
		require.Equal(t, http.StatusAccepted, rr.Code)
		var rec Record
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
		ids = append(ids, rec.ID)
	}

	for _, id := range ids {
		waitForDone(t, h, id)
	}
}

func TestArtifactGuards(t *testing.T) {
	s := testServer(t)
	h := s.Router() // no workers, the job stays queued

	rr := postJSON(t, h, "/api/jobs", map[string]any{"design": sensorDesign()})
	require.Equal(t, http.StatusAccepted, rr.Code)
	var accepted Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &accepted))

	traversal := get(t, h, "/api/jobs/"+accepted.ID+"/artifacts/..%2F..%2Fsecret")
	assert.Equal(t, http.StatusBadRequest, traversal.Code)

	dotfile := get(t, h, "/api/jobs/"+accepted.ID+"/artifacts/.hidden")
	assert.Equal(t, http.StatusBadRequest, dotfile.Code)

	missing := get(t, h, "/api/jobs/"+accepted.ID+"/artifacts/bom.csv")
	assert.Equal(t, http.StatusNotFound, missing.Code)

	unknown := get(t, h, "/api/jobs/no-such-job/artifacts/bom.csv")
	assert.Equal(t, http.StatusNotFound, unknown.Code)
}

func TestQueueFull(t *testing.T) {
	s := testServer(t)
	h := s.Router() // nothing drains the queue

	var lastCode int
	for i := 0; i <= queueDepth; i++ {
		rr := postJSON(t, h, "/api/jobs", map[string]any{"design": sensorDesign()})
		lastCode = rr.Code
	}
	assert.Equal(t, http.StatusServiceUnavailable, lastCode)

	// The rejected submission is not tracked.
	assert.Equal(t, queueDepth, s.registry.Len())
}

package job

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/model"
)

func TestExpandQuantities(t *testing.T) {
	in := []model.Instance{
		{ComponentID: "esp32_wroom_32"},
		{ComponentID: "cap_100nf_0402", Quantity: 3, DisplayName: "bypass"},
		{ComponentID: "bme280", Quantity: 1},
	}

	out := ExpandQuantities(in)

	require.Len(t, out, 5)
	assert.Equal(t, "esp32_wroom_32", out[0].ComponentID)
	assert.Equal(t, "bypass", out[1].DisplayName)
	assert.Equal(t, "bypass", out[3].DisplayName)
	assert.Equal(t, "bme280", out[4].ComponentID)
	for _, inst := range out {
		assert.Equal(t, 1, inst.Count())
		assert.Zero(t, inst.Quantity)
	}

	// The input keeps its quantity form.
	assert.Equal(t, 3, in[1].Quantity)
}

func TestExpandQuantitiesEmpty(t *testing.T) {
	out := ExpandQuantities(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestBackfillPowerDraw(t *testing.T) {
	insts := []model.Instance{
		{ComponentID: "esp32_wroom_32"},
		{ComponentID: "bme280"},
		{ComponentID: "esp32_wroom_32", PowerDrawMA: 600},
		{ComponentID: "no_such_part"},
	}

	BackfillPowerDraw(catalog.BuiltIn(), insts)

	assert.Equal(t, 240, insts[0].PowerDrawMA)
	assert.Equal(t, 1, insts[1].PowerDrawMA)
	assert.Equal(t, 600, insts[2].PowerDrawMA, "explicit draw wins")
	assert.Zero(t, insts[3].PowerDrawMA)
}

func TestSaveAndLoadJob(t *testing.T) {
	dir := t.TempDir()
	j := &Job{
		ID:        "7b0c9e6a",
		CreatedAt: "2026-08-23T10:00:00Z",
		Seed:      42,
		Status:    StatusDone,
		Stages: []Stage{
			{Name: StageValidate, Status: StatusDone, DurationMS: 3},
			{Name: StagePlace, Status: StatusDone, DurationMS: 120},
		},
		Score: &model.ScoreSummary{Initial: 900, Final: 420.5, ImprovementPct: 53.3},
		dir:   dir,
	}
	require.NoError(t, j.save())

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "7b0c9e6a", got.ID)
	assert.Equal(t, dir, got.Dir())
	assert.Equal(t, StatusDone, got.Status)
	require.Len(t, got.Stages, 2)
	assert.Equal(t, int64(120), got.Stages[1].DurationMS)
	require.NotNil(t, got.Score)
	assert.Equal(t, 420.5, got.Score.Final)
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestStageByName(t *testing.T) {
	j := &Job{Stages: []Stage{
		{Name: StageValidate, Status: StatusDone},
		{Name: StagePlace, Status: StatusFailed, Error: "boom"},
	}}

	st := j.StageByName(StagePlace)
	require.NotNil(t, st)
	assert.Equal(t, "boom", st.Error)
	assert.Nil(t, j.StageByName("gerbers"))
}

func TestArtifactPath(t *testing.T) {
	j := &Job{dir: filepath.Join("jobs", "abc")}
	assert.Equal(t, filepath.Join("jobs", "abc", "placement.json"), j.ArtifactPath("placement.json"))
}

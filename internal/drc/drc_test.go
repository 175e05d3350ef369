package drc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `** Drc report for board.kicad_pcb **
** Created on 2026-08-23T08:15:02+0000 **

** Found 3 DRC violations **
[error clearance]: Clearance violation (netclass 'Default' clearance 0.2 mm; actual 0.15 mm)
    @(55.88 mm, 41.91 mm): Track [GND] on F.Cu
    @(55.88 mm, 43.18 mm): Pad 3 [GND] of U1 on F.Cu
[error courtyards_overlap]: Courtyards overlap
    @(60.32 mm, 45.00 mm): Footprint C1 on F.Cu
[warning silk_over_copper]: Silkscreen clipped by solder mask
    @(33.02 mm, 20.00 mm): Text 'U2' on F.Silkscreen

** Found 2 unconnected items **

** End of Report **
`

func TestParse_FullReport(t *testing.T) {
	r := Parse(sampleReport)

	assert.Equal(t, 2, r.ErrorCount)
	assert.Equal(t, 1, r.WarningCount)
	assert.Equal(t, 2, r.UnroutedCount)
	assert.False(t, r.Clean)

	require.Len(t, r.Errors, 2)
	assert.Equal(t, "clearance", r.Errors[0].Type)
	assert.Equal(t,
		"Clearance violation (netclass 'Default' clearance 0.2 mm; actual 0.15 mm)",
		r.Errors[0].Message)
	require.NotNil(t, r.Errors[0].Location)
	assert.Equal(t, "55.88 mm, 41.91 mm", *r.Errors[0].Location)

	assert.Equal(t, "courtyards_overlap", r.Errors[1].Type)
	assert.Equal(t, "Courtyards overlap", r.Errors[1].Message)
	require.NotNil(t, r.Errors[1].Location)
	assert.Equal(t, "60.32 mm, 45.00 mm", *r.Errors[1].Location)

	require.Len(t, r.Warnings, 1)
	assert.Equal(t, "silk_over_copper", r.Warnings[0].Type)
	// Last block: the report footer must not leak into the message.
	assert.Equal(t, "Silkscreen clipped by solder mask", r.Warnings[0].Message)
	require.NotNil(t, r.Warnings[0].Location)
	assert.Equal(t, "33.02 mm, 20.00 mm", *r.Warnings[0].Location)
}

func TestParse_CleanReport(t *testing.T) {
	r := Parse(`** Drc report for board.kicad_pcb **

** Found 0 DRC violations **

** Found 0 unconnected items **

** End of Report **
`)

	assert.Equal(t, 0, r.ErrorCount)
	assert.Equal(t, 0, r.WarningCount)
	assert.Equal(t, 0, r.UnroutedCount)
	assert.True(t, r.Clean)
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
}

func TestParse_SummaryFallbackWhenBlocksUnparseable(t *testing.T) {
	// Headers without a severity word do not match the block pattern; the
	// summary line still supplies the totals.
	r := Parse(`** Found 4 DRC violations **
[clearance]: Clearance violation
    @(1.00 mm, 2.00 mm): Track
[track_width]: Track width too small

** Found 1 unconnected items **
`)

	assert.Equal(t, 4, r.ErrorCount)
	assert.Equal(t, 0, r.WarningCount)
	assert.Equal(t, 1, r.UnroutedCount)
	assert.False(t, r.Clean)
	assert.Empty(t, r.Errors)
}

func TestParse_WarningsCoveredBySummaryStayClean(t *testing.T) {
	r := Parse(`** Found 1 DRC violations **
[warning silk_overlap]: Silkscreen overlap
    @(5.00 mm, 5.00 mm): Text 'C3' on F.Silkscreen

** Found 0 unconnected items **
`)

	assert.Equal(t, 0, r.ErrorCount)
	assert.Equal(t, 1, r.WarningCount)
	assert.True(t, r.Clean)
}

func TestParse_WarningsWithoutSummaryAreNotClean(t *testing.T) {
	r := Parse(`[warning silk_overlap]: Silkscreen overlap
[warning text_height]: Text height out of range
`)

	// Count clamps to zero but the report cannot be called clean.
	assert.Equal(t, 0, r.ErrorCount)
	assert.Equal(t, 2, r.WarningCount)
	assert.False(t, r.Clean)
}

func TestParse_MissingLocation(t *testing.T) {
	r := Parse(`** Found 1 DRC violations **
[error starved_thermal]: Thermal relief connection to zone incomplete`)

	require.Len(t, r.Errors, 1)
	assert.Equal(t, "starved_thermal", r.Errors[0].Type)
	assert.Equal(t, "Thermal relief connection to zone incomplete", r.Errors[0].Message)
	assert.Nil(t, r.Errors[0].Location)
}

func TestParse_InlineLocationStaysInMessage(t *testing.T) {
	r := Parse(`** Found 1 DRC violations **
[error via_dangling]: Via is not connected @(10.00 mm, 12.50 mm): Via [VCC_3V3]`)

	require.Len(t, r.Errors, 1)
	// Only an indented location line splits the message.
	assert.Equal(t, "Via is not connected @(10.00 mm, 12.50 mm): Via [VCC_3V3]", r.Errors[0].Message)
	require.NotNil(t, r.Errors[0].Location)
	assert.Equal(t, "10.00 mm, 12.50 mm", *r.Errors[0].Location)
}

func TestParse_UnroutedOnlyFails(t *testing.T) {
	r := Parse(`** Found 0 DRC violations **

** Found 3 unconnected items **
`)

	assert.Equal(t, 0, r.ErrorCount)
	assert.Equal(t, 3, r.UnroutedCount)
	assert.False(t, r.Clean)
	assert.True(t, r.Failed())
}

func TestParse_CaseInsensitive(t *testing.T) {
	r := Parse(`** Found 1 drc VIOLATIONS **
[ERROR Clearance]: Clearance violation
    @(1.00 mm, 1.00 mm): Pad

** Found 2 UNCONNECTED Items **
`)

	assert.Equal(t, 1, r.ErrorCount)
	assert.Equal(t, 2, r.UnroutedCount)
	require.Len(t, r.Errors, 1)
	// Severity folds to lower case, the type keeps its spelling.
	assert.Equal(t, "Clearance", r.Errors[0].Type)
}

func TestParse_EmptyTextIsClean(t *testing.T) {
	r := Parse("")

	assert.True(t, r.Clean)
	assert.False(t, r.Failed())
	assert.Equal(t, "PASS", r.Verdict())
}

func TestReport_VerdictAndBreakdown(t *testing.T) {
	r := Parse(sampleReport)

	assert.Equal(t, "FAIL", r.Verdict())
	assert.True(t, r.Failed())
	assert.Equal(t, map[string]int{
		"clearance":          1,
		"courtyards_overlap": 1,
		"silk_over_copper":   1,
	}, r.Breakdown())
}

func TestReport_ArtifactShape(t *testing.T) {
	clean, err := json.Marshal(Parse("** Found 0 DRC violations **\n** Found 0 unconnected items **"))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"error_count":0,"warning_count":0,"unrouted_count":0,"errors":[],"warnings":[],"clean":true}`,
		string(clean))

	noLoc, err := json.Marshal(Parse("** Found 1 DRC violations **\n[error starved_thermal]: Thermal relief"))
	require.NoError(t, err)
	assert.Contains(t, string(noLoc), `"location":null`)
}

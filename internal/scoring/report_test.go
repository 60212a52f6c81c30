package scoring

import (
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOutcomes() Outcomes {
	return Outcomes{
		{Result: &Result{Role: "Analyst", TotalScore: 40.25, Percentage: 40.3}},
		{Err: errors.New("boom")},
		{Result: &Result{Role: "Engineer", TotalScore: 82.5, Percentage: 82.5}},
	}
}

func TestOutcomesLabel(t *testing.T) {
	t.Parallel()

	o := sampleOutcomes()
	assert.Equal(t, "#1 Analyst: 40.3%", o.Label(0))
	assert.Equal(t, "#2 failed: ScoringError", o.Label(1))
	assert.Equal(t, "#3 Engineer: 82.5%", o.Label(2))
}

func TestOutcomesSummaryOrdersBestFirst(t *testing.T) {
	t.Parallel()

	summary := sampleOutcomes().Summary()
	require.Len(t, summary, 3)

	assert.Equal(t, 3, summary[0]["index"])
	assert.Equal(t, 1, summary[1]["index"])
	assert.Equal(t, 2, summary[2]["index"])
	assert.Equal(t, "boom", summary[2]["error"])
}

func TestOutcomesDumpToTmpFile(t *testing.T) {
	t.Parallel()

	name, err := sampleOutcomes().DumpToTmpFile()
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(name) })

	data, err := os.ReadFile(name)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "Analyst", decoded[0]["role"])
	assert.Equal(t, "ScoringError", decoded[1]["kind"])
}

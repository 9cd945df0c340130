package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/riskibarqy/cricket-stats/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RegistersEveryStage(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"run", "fetch", "ingest", "silver", "gold", "custom-stats", "dashboard", "refresh"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestRunCmd_Flags(t *testing.T) {
	cmd := runCmd()

	require.NoError(t, cmd.ParseFlags([]string{"--force", "--skip-refresh"}))
	force, err := cmd.Flags().GetBool("force")
	require.NoError(t, err)
	skipFetch, err := cmd.Flags().GetBool("skip-fetch")
	require.NoError(t, err)
	skipRefresh, err := cmd.Flags().GetBool("skip-refresh")
	require.NoError(t, err)

	assert.True(t, force)
	assert.False(t, skipFetch)
	assert.True(t, skipRefresh)
}

func TestSingle_WrapsSummary(t *testing.T) {
	boom := errors.New("boom")
	out, err := single(usecase.StatRunSummary{Name: "silver", Processed: 3}, boom)

	require.ErrorIs(t, err, boom)
	require.Len(t, out, 1)
	assert.Equal(t, "silver", out[0].Name)
}

func TestPrintJSON_UsesSnakeCaseSummary(t *testing.T) {
	cmd := runCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, printJSON(cmd, []usecase.StatRunSummary{{Name: "ingest", Processed: 2, DurationMs: 15, Status: usecase.StatStatusSuccess}}))
	assert.Contains(t, buf.String(), `"duration_ms": 15`)
	assert.Contains(t, buf.String(), `"name": "ingest"`)
}

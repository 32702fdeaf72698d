package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplab/report"
)

func TestResolve_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "tsplab.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: from-file.json\ntime_limit: 1m\n"), 0o644))

	cmd := newRootCmd(context.Background(), "test")
	require.NoError(t, cmd.ParseFlags([]string{"--config", cfgPath, "--time-limit", "2s", "--no-exact", "-v"}))

	f := &rootFlags{}
	f.configPath, _ = cmd.Flags().GetString("config")
	f.timeLimit, _ = cmd.Flags().GetDuration("time-limit")
	f.noExact, _ = cmd.Flags().GetBool("no-exact")
	f.verbose, _ = cmd.Flags().GetBool("verbose")

	cfg, err := f.resolve(cmd)
	require.NoError(t, err)
	assert.Equal(t, "from-file.json", cfg.Output)
	assert.Equal(t, 2*time.Second, cfg.TimeLimit)
	assert.False(t, cfg.RunExact)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "tsp_instances", cfg.InputDir)
}

func TestRootCmd_SingleFile(t *testing.T) {
	dir := t.TempDir()
	inst := filepath.Join(dir, "tri.tsp")
	require.NoError(t, os.WriteFile(inst, []byte("NAME: tri\nNODE_COORD_SECTION\n1 0 0\n2 3 0\n3 0 4\nEOF\n"), 0o644))
	out := filepath.Join(dir, "results.json")

	cmd := newRootCmd(context.Background(), "test")
	cmd.SetArgs([]string{inst, "--output", out, "--optima", filepath.Join(dir, "none.json"), "--log-format", "json"})
	require.NoError(t, cmd.Execute())

	recs, err := report.Read(out)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "tri.tsp", recs[0].FileName)
	assert.Equal(t, "3", recs[0].Cities)
	assert.Equal(t, "12", recs[0].TATCost)
	assert.Equal(t, "12", recs[0].ChristofidesCost)
}

func TestRootCmd_BadLogFormat(t *testing.T) {
	cmd := newRootCmd(context.Background(), "test")
	cmd.SetArgs([]string{"--log-format", "xml", "--input-dir", t.TempDir()})
	cmd.SilenceErrors = true
	require.Error(t, cmd.Execute())
}

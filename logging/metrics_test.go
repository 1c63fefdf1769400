package logging

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsEmittedRecords(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	l := New(Nop, LevelInfo).WithMetrics(m)
	l.Log(LevelDebug, "filtered", "f.go", 1)
	l.Log(LevelInfo, "a", "f.go", 1)
	l.Log(LevelError, "b", "f.go", 1)
	l.HexDumpAt(LevelWarning, "c", "f.go", 1, seq(5))
	var hw HexWriter
	l.HexDumpRaw(LevelInfo, &hw, seq(3))

	snap, err := m.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, map[Level]float64{
		LevelInfo:    1,
		LevelWarning: 1,
		LevelError:   1,
	}, snap.Records)
	assert.Equal(t, float64(8), snap.HexDumpBytes)

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{"xgxmeta_log_records_total", "xgxmeta_hexdump_bytes_total"}, names)
}

func TestMetrics_RegisterTwiceReusesCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	first, err := NewMetrics(reg)
	require.NoError(t, err)
	second, err := NewMetrics(reg)
	require.NoError(t, err)

	New(Nop, LevelDebug).WithMetrics(first).Log(LevelInfo, "x", "f.go", 1)
	snap, err := second.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, float64(1), snap.Records[LevelInfo])
}

func TestMetrics_NilIsInert(t *testing.T) {
	t.Parallel()

	var m *Metrics
	assert.NotPanics(t, func() {
		New(Nop, LevelDebug).WithMetrics(m).Log(LevelError, "x", "f.go", 1)
	})
	snap, err := m.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, snap.Records)

	unregistered, err := NewMetrics(nil)
	require.NoError(t, err)
	assert.NotNil(t, unregistered)
}

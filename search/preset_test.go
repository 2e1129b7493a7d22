package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbortrace/voxelcore/search"
	"github.com/arbortrace/voxelcore/slicemap"
	"github.com/arbortrace/voxelcore/voxel"
)

func TestPreset_RoundTripsThroughYAML(t *testing.T) {
	cfg := search.NewConfig(nil, voxel.Spacing{SX: 1, SY: 1, SZ: 1}, nil, nil,
		search.WithBackend(slicemap.ArrayBackend),
		search.WithConnectivity(voxel.Conn18),
		search.WithTimeout(5*time.Second),
		search.WithProgressInterval(200*time.Millisecond),
		search.WithCheckInterval(500),
	)

	preset := search.NewPreset(cfg)
	data, err := preset.ToYAML()
	require.NoError(t, err)

	parsed, err := search.ParsePreset(data)
	require.NoError(t, err)
	assert.Equal(t, preset, parsed)

	opts, err := parsed.Options()
	require.NoError(t, err)

	rebuilt := search.NewConfig(nil, voxel.Spacing{SX: 1, SY: 1, SZ: 1}, nil, nil, opts...)
	assert.Equal(t, slicemap.ArrayBackend, rebuilt.Backend)
	assert.Equal(t, voxel.Conn18, rebuilt.Connectivity)
	assert.Equal(t, 5*time.Second, rebuilt.Timeout)
	assert.Equal(t, 200*time.Millisecond, rebuilt.ProgressInterval)
	assert.Equal(t, 500, rebuilt.CheckInterval)
}

func TestPreset_OptionsRejectsUnknownBackend(t *testing.T) {
	preset := search.Preset{Backend: "bogus", Connectivity: "26"}
	_, err := preset.Options()
	assert.Error(t, err)
}

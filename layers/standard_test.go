package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandardList_WithoutArgs(t *testing.T) {
	list := NewStandardList(nil, map[string]any{"prop": "v"})

	assert.Equal(t, []string{SystemPropertiesLayerName, SystemEnvironmentLayerName}, list.Names())
}

func TestNewStandardList_WithArgs(t *testing.T) {
	list := NewStandardList(map[string]any{"flag": "on"}, nil)

	assert.Equal(t, []string{
		CommandLineLayerName,
		SystemPropertiesLayerName,
		SystemEnvironmentLayerName,
	}, list.Names())

	v, ok := list.Resolve("flag")
	require.True(t, ok)
	assert.Equal(t, "on", v)
}

func TestEnvironLayer_SnapshotsProcessEnvironment(t *testing.T) {
	t.Setenv("GO_CONF_LAYERS_TEST_VAR", "present")

	layer := EnvironLayer()

	assert.Equal(t, SystemEnvironmentLayerName, layer.Name())
	v, ok := layer.Get("GO_CONF_LAYERS_TEST_VAR")
	require.True(t, ok)
	assert.Equal(t, "present", v)
}

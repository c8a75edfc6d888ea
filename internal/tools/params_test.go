package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredString(t *testing.T) {
	args := map[string]any{
		"cluster_id": "owens",
		"empty":      "",
		"number":     float64(3),
	}

	v, ok := RequiredString(args, "cluster_id")
	assert.True(t, ok)
	assert.Equal(t, "owens", v)

	_, ok = RequiredString(args, "empty")
	assert.False(t, ok, "empty string does not satisfy a required argument")

	_, ok = RequiredString(args, "number")
	assert.False(t, ok)

	_, ok = RequiredString(args, "missing")
	assert.False(t, ok)
}

func TestStringArg(t *testing.T) {
	args := map[string]any{"content": ""}

	v, ok := StringArg(args, "content")
	assert.True(t, ok, "empty string is still present")
	assert.Equal(t, "", v)

	_, ok = StringArg(args, "missing")
	assert.False(t, ok)
}

func TestOptionalArgs(t *testing.T) {
	args := map[string]any{
		"workdir":   "/home/alice",
		"wall_time": float64(3600),
		"recursive": true,
	}

	assert.Equal(t, "/home/alice", OptionalString(args, "workdir"))
	assert.Equal(t, "", OptionalString(args, "missing"))

	assert.Equal(t, int64(3600), OptionalInt(args, "wall_time"))
	assert.Equal(t, int64(0), OptionalInt(args, "missing"))

	assert.True(t, OptionalBool(args, "recursive"))
	assert.False(t, OptionalBool(args, "missing"))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "batch", OrDefault("batch", PlaceholderNA))
	assert.Equal(t, PlaceholderNA, OrDefault("", PlaceholderNA))
	assert.Equal(t, PlaceholderUnknown, OrDefault("", PlaceholderUnknown))
}

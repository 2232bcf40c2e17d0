package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeep_sanitizesStringLeaves(t *testing.T) {
	in := []any{
		"  plain\x00 ",
		map[string]any{
			"label":  "keep me",
			"nested": []any{" a ", float64(3), true, nil},
		},
	}

	out := Deep(in, 1000).([]any)

	assert.Equal(t, "plain", out[0])
	obj := out[1].(map[string]any)
	assert.Equal(t, "keep me", obj["label"])
	nested := obj["nested"].([]any)
	assert.Equal(t, "a", nested[0])
	assert.Equal(t, float64(3), nested[1])
	assert.Equal(t, true, nested[2])
	assert.Nil(t, nested[3])
}

func TestDeep_preservesKeysVerbatim(t *testing.T) {
	in := map[string]any{"  weird key\x00  ": "value"}
	out := Deep(in, 1000).(map[string]any)

	_, ok := out["  weird key\x00  "]
	assert.True(t, ok)
}

func TestDeep_capsStringLength(t *testing.T) {
	out := Deep([]any{strings.Repeat("q", 1500)}, 1000).([]any)
	assert.Len(t, out[0], 1000)
}

func TestDeep_passesThroughScalars(t *testing.T) {
	assert.Equal(t, float64(7), Deep(float64(7), 10))
	assert.Equal(t, false, Deep(false, 10))
	assert.Nil(t, Deep(nil, 10))
}

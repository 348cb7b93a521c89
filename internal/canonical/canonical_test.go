package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_SortsKeys(t *testing.T) {
	got, err := Marshal(map[string]any{
		"type":    "verdict",
		"seq":     int64(4),
		"correct": true,
		"round":   1,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"correct":true,"round":1,"seq":4,"type":"verdict"}`, string(got))
}

func TestMarshal_NoHTMLEscape(t *testing.T) {
	got, err := Marshal("a<b & c>d")
	require.NoError(t, err)
	assert.Equal(t, `"a<b & c>d"`, string(got))
}

func TestMarshal_NFC(t *testing.T) {
	// "e" + combining acute accent composes to U+00E9.
	got, err := Marshal("e\u0301")
	require.NoError(t, err)
	assert.Equal(t, "\"\u00e9\"", string(got))
}

func TestMarshal_NestedArraysAndMaps(t *testing.T) {
	got, err := Marshal(map[string]any{
		"events":   []any{map[string]any{"b": "x", "a": false}},
		"per_kind": map[string]int{"notes": 1, "frets": 2},
		"tags":     []string{"z", "y"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		`{"events":[{"a":false,"b":"x"}],"per_kind":{"frets":2,"notes":1},"tags":["z","y"]}`,
		string(got))
}

func TestMarshal_Rejects(t *testing.T) {
	_, err := Marshal(nil)
	assert.Error(t, err)

	_, err = Marshal(1.5)
	assert.Error(t, err)

	_, err = Marshal(map[string]any{"k": struct{}{}})
	assert.Error(t, err)
}

func TestSortUTF16_SupplementaryPlane(t *testing.T) {
	// U+1F600 encodes as a surrogate pair starting 0xD83D, which sorts
	// before U+FF21 in UTF-16 but after it in UTF-8.
	keys := []string{"Ａ", "\U0001F600"}
	sortUTF16(keys)
	assert.Equal(t, []string{"\U0001F600", "Ａ"}, keys)
}

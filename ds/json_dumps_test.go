package ds

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpJSON(t *testing.T) {
	assert.JSONEq(t, `{"a":1}`, string(DumpJSON(map[string]int{"a": 1})))

	dumped := DumpJSON(func() {})
	require.True(t, json.Valid(dumped))
	var text string
	require.NoError(t, json.Unmarshal(dumped, &text))
	assert.Contains(t, text, "ds.DumpJSON error")
}

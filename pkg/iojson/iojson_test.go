package iojson

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, map[string]int{"a": 1}))
	require.NoError(t, WriteLine(&buf, map[string]int{"b": 2}))

	assert.Equal(t, "{\"a\":1}\n{\"b\":2}\n", buf.String())
}

func TestWriteLine_Unmarshalable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteLine(&buf, map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestWrite_Indents(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, struct {
		Valid bool `json:"valid"`
	}{Valid: true}))

	assert.Equal(t, "{\n  \"valid\": true\n}\n", buf.String())
}

func TestMarshalError(t *testing.T) {
	out := MarshalError("bad manifest", map[string]any{"path": "gallery.yaml"})

	var e Error
	require.NoError(t, json.Unmarshal([]byte(out), &e))
	assert.Equal(t, "bad manifest", e.Message)
	assert.Equal(t, "gallery.yaml", e.Data["path"])
}

func TestMarshalError_Fallback(t *testing.T) {
	out := MarshalError("oops", map[string]any{"ch": make(chan int)})

	var e Error
	require.NoError(t, json.Unmarshal([]byte(out), &e))
	assert.Equal(t, "oops", e.Message)
	assert.Contains(t, e.Data, "json_error")
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteError(&buf, "failed", nil))
	assert.Contains(t, buf.String(), `"message":"failed"`)
}

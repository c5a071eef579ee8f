package httputils

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/backendprobe/internal/utils"
)

func TestDecodePayload(t *testing.T) {
	t.Run("empty body has no payload", func(t *testing.T) {
		assert.Nil(t, DecodePayload(nil))
		assert.Nil(t, DecodePayload([]byte{}))
	})

	t.Run("json object", func(t *testing.T) {
		payload := DecodePayload([]byte(`{"error":"not found"}`))
		assert.Equal(t, map[string]any{"error": "not found"}, payload)
	})

	t.Run("json array keeps numbers exact", func(t *testing.T) {
		payload := DecodePayload([]byte(`[1, 12345678901234567890]`))
		assert.Equal(t, []any{json.Number("1"), json.Number("12345678901234567890")}, payload)
	})

	t.Run("plain text falls back to raw", func(t *testing.T) {
		payload := DecodePayload([]byte("Internal Server Error"))
		assert.Equal(t, map[string]string{"raw": "Internal Server Error"}, payload)
	})

	t.Run("trailing garbage falls back to raw", func(t *testing.T) {
		payload := DecodePayload([]byte(`{"a":1} tail`))
		assert.Equal(t, map[string]string{"raw": `{"a":1} tail`}, payload)
	})
}

func TestIndentPayload(t *testing.T) {
	out, err := IndentPayload(map[string]any{"error": "<not found>"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"error\": \"<not found>\"\n}", out)

	out, err = IndentPayload(map[string]string{"raw": "Internal Server Error"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"raw\": \"Internal Server Error\"\n}", out)
}

func TestIndentPayload_EscapesNonASCII(t *testing.T) {
	payload := DecodePayload([]byte(`{"message":"Saison 24-25 supprimée","tree":"🌳"}`))

	out, err := IndentPayload(payload)
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"message\": \"Saison 24-25 supprim\\u00e9e\",\n  \"tree\": \"\\ud83c\\udf33\"\n}", out)
	assert.True(t, json.Valid([]byte(out)))

	var roundTrip map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &roundTrip))
	assert.Equal(t, "Saison 24-25 supprimée", roundTrip["message"])
	assert.Equal(t, "🌳", roundTrip["tree"])
}

func TestCompactBody(t *testing.T) {
	out, ok := CompactBody([]byte("{\n  \"id\": \"rec1\",\n  \"ok\": true\n}"))
	assert.True(t, ok)
	assert.Equal(t, `{"id":"rec1","ok":true}`, out)

	out, ok = CompactBody([]byte("Bad Gateway"))
	assert.False(t, ok)
	assert.Equal(t, "Bad Gateway", out)

	out, ok = CompactBody(nil)
	assert.False(t, ok)
	assert.Empty(t, out)
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestReadBody(t *testing.T) {
	body := &closeTracker{Reader: strings.NewReader("payload")}
	resp := &http.Response{StatusCode: http.StatusNotFound, Body: body}

	data, err := ReadBody(resp)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.True(t, body.closed)
}

func TestLogResponseBody(t *testing.T) {
	var buf bytes.Buffer
	logger := utils.NewWriterLogger("debug", true, &buf)

	LogResponseBody([]byte(`{"ok":true}`), logger, "req-1")
	assert.Contains(t, buf.String(), `Raw response body: {"ok":true}`)

	buf.Reset()
	quiet := utils.NewWriterLogger("debug", false, &buf)
	LogResponseBody([]byte(`{"ok":true}`), quiet, "req-1")
	assert.Empty(t, buf.String())
}

func TestTransportError(t *testing.T) {
	inner := &url.Error{Op: "Delete", URL: "http://localhost:1", Err: errors.New("connection refused")}
	err := error(&TransportError{Op: http.MethodDelete, URL: "http://localhost:1", Err: inner})

	var urlErr *url.Error
	assert.True(t, errors.As(err, &urlErr))
	assert.Contains(t, err.Error(), "DELETE http://localhost:1")
	assert.Contains(t, err.Error(), "connection refused")
}

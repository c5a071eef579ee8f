package httputils

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/backendprobe/internal/utils"
)

func TestNewJSONRequest(t *testing.T) {
	t.Run("with body", func(t *testing.T) {
		req, encoded, err := NewJSONRequest(context.Background(), http.MethodPost, "http://localhost/x",
			map[string]string{"filename": "a.pdf"})
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"filename":"a.pdf"}`, string(encoded))

		sent, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.Equal(t, encoded, sent)
	})

	t.Run("without body", func(t *testing.T) {
		req, encoded, err := NewJSONRequest(context.Background(), http.MethodDelete, "http://localhost/x", nil)
		require.NoError(t, err)

		assert.Nil(t, encoded)
		assert.Nil(t, req.Body)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	})

	t.Run("unmarshalable body", func(t *testing.T) {
		_, _, err := NewJSONRequest(context.Background(), http.MethodPost, "http://localhost/x", func() {})
		assert.Error(t, err)
	})

	t.Run("bad url", func(t *testing.T) {
		_, _, err := NewJSONRequest(context.Background(), http.MethodPost, "http://[::1", nil)
		assert.Error(t, err)
	})
}

func TestLogRequestBody(t *testing.T) {
	var buf bytes.Buffer
	logger := utils.NewWriterLogger("debug", true, &buf)

	LogRequestBody([]byte(strings.Repeat("A", 2000)), logger, "req-1")

	assert.Contains(t, buf.String(), "2000 bytes")
	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), strings.Repeat("A", 600))
}

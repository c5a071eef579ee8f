package httputils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/wgomg/backendprobe/internal/utils"
)

const maxLoggedBody = 512

// NewJSONRequest builds a request carrying v as a JSON body. A nil v sends
// no body but still declares the JSON content type.
func NewJSONRequest(ctx context.Context, method, url string, v any) (*http.Request, []byte, error) {
	var (
		body    io.Reader
		encoded []byte
	)
	if v != nil {
		var err error
		encoded, err = json.Marshal(v)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return req, encoded, nil
}

func LogRequestBody(body []byte, logger *utils.Logger, reqID string) {
	if !logger.RawBodyLog || len(body) == 0 {
		return
	}

	logger.Debug(&reqID, "Raw request body (%d bytes): %s", len(body), utils.Truncate(string(body), maxLoggedBody))
}

package httputils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/wgomg/backendprobe/internal/utils"
)

// ReadBody drains and closes the response body, whatever the status.
func ReadBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

func LogResponseBody(body []byte, logger *utils.Logger, reqID string) {
	if !logger.RawBodyLog {
		return
	}

	logger.Debug(&reqID, "Raw response body: %s", utils.Truncate(string(body), maxLoggedBody))
}

// DecodePayload returns nil for an empty body, the decoded value for a JSON
// body and {"raw": body} for anything else.
func DecodePayload(body []byte) any {
	if len(body) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil || dec.More() {
		return map[string]string{"raw": string(body)}
	}
	return payload
}

// IndentPayload renders v as JSON indented by two spaces, with every
// non-ASCII character written as a \uXXXX escape.
func IndentPayload(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	return escapeNonASCII(string(bytes.TrimRight(buf.Bytes(), "\n"))), nil
}

// escapeNonASCII is only safe on encoder output: there, non-ASCII runes can
// appear inside string literals and nowhere else.
func escapeNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			fmt.Fprintf(&b, "\\u%04x\\u%04x", r1, r2)
			continue
		}
		fmt.Fprintf(&b, "\\u%04x", r)
	}
	return b.String()
}

// CompactBody reports the body as compact JSON when it parses, and as
// plain text otherwise.
func CompactBody(body []byte) (string, bool) {
	var buf bytes.Buffer
	if len(body) == 0 || json.Compact(&buf, body) != nil {
		return string(body), false
	}
	return buf.String(), true
}

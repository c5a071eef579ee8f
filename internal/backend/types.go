package backend

import "fmt"

const DefaultContentType = "application/octet-stream"

// UploadRequest is the body of POST /projects/{id}/documents. Data holds the
// file bytes in standard base64.
type UploadRequest struct {
	DocumentType string `json:"documentType"`
	Filename     string `json:"filename"`
	ContentType  string `json:"contentType"`
	Data         string `json:"data"`
}

// Response is a completed exchange, whatever its status.
type Response struct {
	StatusCode int
	Body       []byte
	Payload    any
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) String() string {
	return fmt.Sprintf("status %d (%d bytes)", r.StatusCode, len(r.Body))
}

package uploader

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/wgomg/backendprobe/internal/backend"
	"github.com/wgomg/backendprobe/internal/config"
	"github.com/wgomg/backendprobe/internal/utils"
	"github.com/wgomg/backendprobe/internal/utils/httputils"
)

const DefaultDocumentType = "carbonDocs"

var ErrFileNotFound = errors.New("file not found")

type Options struct {
	Config     *config.Config
	Logger     *utils.Logger
	HTTPClient *http.Client
	Stdout     io.Writer
}

// Run uploads one file and reports the result on opts.Stdout. The exit code
// does not depend on the HTTP status. A transport failure is returned as an
// error with exit code 1.
func Run(ctx context.Context, args []string, opts Options) (int, error) {
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDiscardLogger()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if len(args) < 2 {
		fmt.Fprintln(out, "Usage: upload-document <project_record_id> <file_path> [document_type]")
		fmt.Fprintln(out, "Example: upload-document rec123abc ./sample.jpg carbonDocs")
		return 1, nil
	}

	projectID := args[0]
	filePath := args[1]
	documentType := DefaultDocumentType
	if len(args) > 2 {
		documentType = args[2]
	}

	upload, err := BuildRequest(filePath, documentType)
	if errors.Is(err, ErrFileNotFound) {
		fmt.Fprintf(out, "File not found: %s\n", filePath)
		return 1, nil
	}
	if err != nil {
		return 1, err
	}

	reqID := uuid.NewString()

	client, err := backend.NewClient(cfg.Backend.APIBase, cfg, logger, opts.HTTPClient)
	if err != nil {
		return 1, err
	}

	endpoint := backend.DocumentsURL(cfg.Backend.APIBase, projectID)
	fmt.Fprintf(out, "Uploading %s to %s as %s ...\n", filePath, endpoint, documentType)

	resp, err := client.UploadDocument(ctx, projectID, upload, reqID)
	if err != nil {
		return 1, err
	}

	fmt.Fprintf(out, "Status: %d\n", resp.StatusCode)
	body, _ := httputils.CompactBody(resp.Body)
	fmt.Fprintln(out, body)

	logger.Info(&reqID, "Upload finished with %s", resp)

	return 0, nil
}

// BuildRequest reads path and wraps its bytes in an upload payload named
// after the file's base name.
func BuildRequest(path, documentType string) (*backend.UploadRequest, error) {
	data, err := EncodeFile(path)
	if err != nil {
		return nil, err
	}

	return &backend.UploadRequest{
		DocumentType: documentType,
		Filename:     filepath.Base(path),
		ContentType:  backend.DefaultContentType,
		Data:         data,
	}, nil
}

// EncodeFile returns the file contents in standard, unwrapped base64.
func EncodeFile(path string) (string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wgomg/backendprobe/internal/config"
	"github.com/wgomg/backendprobe/internal/utils"
	"github.com/wgomg/backendprobe/internal/utils/httputils"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *utils.Logger
}

// NewClient builds a client rooted at baseURL. A nil httpClient gets one with
// the configured timeout that never follows redirects, so every call is a
// single request and a 3xx is reported as is.
func NewClient(baseURL string, cfg *config.Config, logger *utils.Logger, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: time.Duration(cfg.App.HttpTimeoutSeconds) * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

func DocumentsURL(apiBase, projectID string) string {
	return fmt.Sprintf("%s/projects/%s/documents", apiBase, url.PathEscape(projectID))
}

func SeasonURL(baseURL, seasonID string) string {
	return fmt.Sprintf("%s/api/seasons/%s", strings.TrimRight(baseURL, "/"), url.PathEscape(seasonID))
}

func (c *Client) UploadDocument(ctx context.Context, projectID string, upload *UploadRequest, reqID string) (*Response, error) {
	endpoint := DocumentsURL(c.baseURL, projectID)

	req, body, err := httputils.NewJSONRequest(ctx, http.MethodPost, endpoint, upload)
	if err != nil {
		return nil, err
	}

	c.logger.Debug(&reqID, "Uploading %s (%s) to project %s", upload.Filename, upload.DocumentType, projectID)
	httputils.LogRequestBody(body, c.logger, reqID)

	return c.do(req, reqID)
}

func (c *Client) DeleteSeason(ctx context.Context, seasonID string, reqID string) (*Response, error) {
	endpoint := SeasonURL(c.baseURL, seasonID)

	req, _, err := httputils.NewJSONRequest(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return nil, err
	}

	c.logger.Debug(&reqID, "Deleting season %s", seasonID)

	return c.do(req, reqID)
}

// do sends req once. Only a failure to obtain a status is returned as an
// error; 4xx and 5xx responses come back as a Response.
func (c *Client) do(req *http.Request, reqID string) (*Response, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(&reqID, "%s %s failed after %s: %v", req.Method, req.URL, time.Since(start), err)
		return nil, &httputils.TransportError{Op: req.Method, URL: req.URL.String(), Err: err}
	}

	body, err := httputils.ReadBody(resp)
	if err != nil {
		return nil, err
	}

	c.logger.Debug(&reqID, "%s %s -> %d in %s", req.Method, req.URL, resp.StatusCode, time.Since(start))
	httputils.LogResponseBody(body, c.logger, reqID)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Payload:    httputils.DecodePayload(body),
	}, nil
}

package seasons

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/wgomg/backendprobe/internal/backend"
	"github.com/wgomg/backendprobe/internal/config"
	"github.com/wgomg/backendprobe/internal/utils"
	"github.com/wgomg/backendprobe/internal/utils/httputils"
)

const prompt = "Enter season to delete (e.g. 98-99): "

type Options struct {
	Config     *config.Config
	Logger     *utils.Logger
	HTTPClient *http.Client
	Stdin      io.Reader
	Stdout     io.Writer
}

type arguments struct {
	seasonID string
	baseURL  string
}

// Run deletes one season and returns the process exit code: 0 for a 2xx
// status, 1 for anything else including usage and transport failures.
func Run(ctx context.Context, args []string, opts Options) int {
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	in := opts.Stdin
	if in == nil {
		in = os.Stdin
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDiscardLogger()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	parsed, err := parseArgs(args, cfg.Backend.BaseURL, out)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	seasonID := parsed.seasonID
	if seasonID == "" {
		seasonID = promptSeason(in, out)
	}
	if seasonID == "" {
		fmt.Fprintln(out, "No season provided; aborting.")
		return 1
	}

	reqID := uuid.NewString()

	client, err := backend.NewClient(parsed.baseURL, cfg, logger, opts.HTTPClient)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	fmt.Fprintf(out, "→ DELETE %s\n", backend.SeasonURL(parsed.baseURL, seasonID))

	resp, err := client.DeleteSeason(ctx, seasonID, reqID)
	if err != nil {
		var transportErr *httputils.TransportError
		if errors.As(err, &transportErr) {
			fmt.Fprintf(out, "Request failed: %v\n", transportErr.Err)
		} else {
			fmt.Fprintf(out, "Request failed: %v\n", err)
		}
		return 1
	}

	fmt.Fprintf(out, "← Status %d\n", resp.StatusCode)
	if resp.Payload != nil {
		rendered, err := httputils.IndentPayload(resp.Payload)
		if err != nil {
			logger.Error(&reqID, "Failed to render payload: %v", err)
			rendered = string(resp.Body)
		}
		fmt.Fprintln(out, "Payload:", rendered)
	}

	if !resp.OK() {
		logger.Debug(&reqID, "Season %s not deleted: %s", seasonID, resp)
		return 1
	}

	logger.Info(&reqID, "Season %s deleted", seasonID)
	return 0
}

// parseArgs accepts --base-url on either side of the positional season id.
func parseArgs(args []string, defaultBaseURL string, out io.Writer) (*arguments, error) {
	fs := flag.NewFlagSet("delete-season", flag.ContinueOnError)
	fs.SetOutput(out)
	baseURL := fs.String("base-url", defaultBaseURL, "Backend base URL")
	fs.Usage = func() {
		fmt.Fprintln(out, "Usage: delete-season [season] [--base-url URL]")
		fmt.Fprintln(out, "Deletes a season through DELETE /api/seasons/:seasonId. Prompts for the season if omitted.")
		fs.PrintDefaults()
	}

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	if len(positional) > 1 {
		fmt.Fprintf(out, "unexpected arguments: %s\n", strings.Join(positional[1:], " "))
		fs.Usage()
		return nil, fmt.Errorf("too many arguments")
	}

	parsed := &arguments{baseURL: *baseURL}
	if len(positional) == 1 {
		parsed.seasonID = strings.TrimSpace(positional[0])
	}
	return parsed, nil
}

func promptSeason(in io.Reader, out io.Writer) string {
	fmt.Fprint(out, prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return ""
	}
	return strings.TrimSpace(line)
}

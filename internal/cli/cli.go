package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/studiowebux/placemap/internal/config"
	"github.com/studiowebux/placemap/internal/filter"
	"github.com/studiowebux/placemap/internal/history"
	"github.com/studiowebux/placemap/internal/places"
	"github.com/studiowebux/placemap/internal/search"
	"github.com/studiowebux/placemap/internal/session"
	"github.com/studiowebux/placemap/internal/types"
	"gopkg.in/yaml.v3"
)

// RunOptions contains options for a one-shot query
type RunOptions struct {
	Prompt       string
	Profile      string
	OutputFormat string // json, yaml, text
	Query        string // JMESPath expression applied to the raw payload
	NoHistory    bool
}

// Run submits a single prompt and prints the result
func Run(opts RunOptions) error {
	return run(opts, os.Stdout)
}

func run(opts RunOptions, out io.Writer) error {
	mgr := session.NewManager()
	if err := mgr.Load(); err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	if opts.Profile != "" {
		if err := mgr.SetActiveProfile(opts.Profile); err != nil {
			return fmt.Errorf("failed to set profile: %w", err)
		}
	}
	profile := mgr.GetActiveProfile()

	client := places.NewClient(profile)
	buffer := search.NewBuffer()
	buffer.Set(opts.Prompt)
	orch := search.New(client, buffer)

	// Ctrl+C aborts the in-flight exchange
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	state := orch.Submit(ctx)

	if !opts.NoHistory && mgr.IsHistoryEnabled() && config.DatabasePath != "" {
		if histMgr, err := history.NewManager(config.DatabasePath); err == nil {
			_ = histMgr.Record(state) // best effort, never interrupts output
			_ = histMgr.Close()
		}
	}

	if state.Phase == search.PhaseFailed {
		return fmt.Errorf("%s", state.Message)
	}

	// A JMESPath query works on the raw backend payload, not the view
	if opts.Query != "" {
		filtered, err := filter.Apply(state.Raw, opts.Query)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, filtered)
		return nil
	}

	output, err := FormatView(state, resolveFormat(opts.OutputFormat, profile))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, output)
	return nil
}

func resolveFormat(flagFormat string, profile *types.Profile) string {
	if flagFormat != "" {
		return flagFormat
	}
	if profile.Output != "" {
		return profile.Output
	}
	return "text"
}

// FormatView renders a successful state in the requested output format
func FormatView(state search.State, format string) (string, error) {
	if state.View == nil {
		return "", fmt.Errorf("no result to format")
	}

	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(state.View, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal result: %w", err)
		}
		return string(data), nil

	case "yaml", "yml":
		data, err := yaml.Marshal(state.View)
		if err != nil {
			return "", fmt.Errorf("failed to marshal result: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil

	case "text", "":
		var b strings.Builder
		if state.View.Label != "" {
			fmt.Fprintf(&b, "Location:   %s\n", state.View.Label)
		}
		fmt.Fprintf(&b, "Directions: %s\n", state.View.DirectionsURL)
		fmt.Fprintf(&b, "Embed:      %s\n", state.View.EmbedURL)
		fmt.Fprintf(&b, "Took:       %s", places.FormatDuration(state.Duration))
		return b.String(), nil

	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}

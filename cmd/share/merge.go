package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/share"
)

type mergeOptions struct {
	shared string
	route  string
	codes  []string
	format string
}

func newMergeCmd(verbose *bool) *cobra.Command {
	opts := &mergeOptions{}

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge selected shared responses into a route and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), *verbose)
			return runMerge(cmd.OutOrStdout(), logger, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.shared, "shared", "s", "", "Shared responses file (YAML or JSON)")
	f.StringVarP(&opts.route, "route", "r", "", "Route description file (YAML or JSON)")
	f.StringSliceVarP(&opts.codes, "codes", "c", nil, "Shared status codes to attach, e.g. 400,500,default")
	f.StringVarP(&opts.format, "format", "f", "yaml", "Output format: yaml or json")
	_ = cmd.MarkFlagRequired("shared")
	_ = cmd.MarkFlagRequired("route")
	_ = cmd.MarkFlagFilename("shared", "yaml", "yml", "json")
	_ = cmd.MarkFlagFilename("route", "yaml", "yml", "json")

	return cmd
}

func runMerge(w io.Writer, logger *slog.Logger, opts *mergeOptions) error {
	switch opts.format {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	codes, err := parseCodes(opts.codes)
	if err != nil {
		return err
	}

	responses, err := share.LoadResponsesFile(opts.shared)
	if err != nil {
		return err
	}
	route, err := share.LoadRouteFile(opts.route)
	if err != nil {
		return err
	}

	merged, err := share.New(responses, share.WithLogger(logger)).CreateSchema(route, codes...)
	if err != nil {
		return err
	}

	logger.Debug("merged route",
		"method", merged.Method,
		"path", merged.Path,
		"responses", len(merged.Responses),
	)

	return encode(w, opts.format, merged)
}

// parseCodes rejects anything outside the closed status code set so that a
// typo on the command line is not silently skipped by the merge.
func parseCodes(in []string) ([]share.StatusCode, error) {
	codes := make([]share.StatusCode, 0, len(in))
	for _, s := range in {
		code, err := share.ParseStatusCode(s)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func encode(w io.Writer, format string, route share.Route) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(route)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(route); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

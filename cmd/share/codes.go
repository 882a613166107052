package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bjaus/share"
)

func newCodesCmd() *cobra.Command {
	var shared string

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List the status codes defined in a shared responses file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCodes(cmd.OutOrStdout(), shared)
		},
	}

	cmd.Flags().StringVarP(&shared, "shared", "s", "", "Shared responses file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("shared")

	return cmd
}

func runCodes(w io.Writer, path string) error {
	responses, err := share.LoadResponsesFile(path)
	if err != nil {
		return err
	}

	s := share.New(responses)
	for _, code := range s.Codes() {
		resp, _ := s.Lookup(code)
		desc := resp.Description
		if resp.Ref != "" {
			desc = resp.Ref
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", code, desc); err != nil {
			return err
		}
	}
	return nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jayendramadaram/radpool-dlc/document"
)

const version = "dlcctl v0.1.0"

// errInvalidDocuments is returned by validate when any document fails.
var errInvalidDocuments = errors.New("invalid documents")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dlcctl",
		Short:         "DLC contract document tool",
		Long:          "Validate, format and digest DLC contract documents (JSON or YAML).",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print version information.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	root.AddCommand(newValidateCmd())

	var schemaOff bool
	fmtCmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Print a document as indented JSON",
		Long:  "Decode a document, check it, and print it back as indented JSON in canonical field order.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := document.LoadFile(args[0], document.WithSchemaValidation(!schemaOff))
			if err != nil {
				return err
			}
			return document.Encode(cmd.OutOrStdout(), c, document.WithIndent("", "  "))
		},
	}
	fmtCmd.Flags().BoolVar(&schemaOff, "no-schema", false, "skip JSON-schema validation")
	root.AddCommand(fmtCmd)

	root.AddCommand(&cobra.Command{
		Use:   "digest [file]",
		Short: "Print the digest of a document's terms",
		Long:  "Print the sha256 digest of the terms in a document. Both parties get the same digest for the same terms, whatever the layout or format.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := document.LoadFile(args[0])
			if err != nil {
				return err
			}
			d, err := document.Digest(c)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	})

	return root
}

func newValidateCmd() *cobra.Command {
	var (
		schemaOff bool
		jobs      int
	)
	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check documents against the schema and contract rules",
		Long:  "Check every document and print one line per file: OK with its digest, or the reason it was rejected.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
			}
			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt)
			defer stop()

			results, err := document.ValidateFiles(ctx, args,
				document.WithSchemaValidation(!schemaOff),
				document.WithConcurrency(jobs))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s: %v\n", r.Name, r.Err)
					continue
				}
				fmt.Fprintf(out, "OK   %s %s\n", r.Name, r.Digest)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d: %w", failed, len(results), errInvalidDocuments)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&schemaOff, "no-schema", false, "skip JSON-schema validation")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "documents validated concurrently")

	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/schema"
)

func newValidateCmd(a *app) *cobra.Command {
	var (
		name         string
		file         string
		async        bool
		abortEarly   bool
		stripUnknown bool
		strict       bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a document against a named schema",
		Long: `Validate reads a JSON or YAML document from --file (or stdin) and prints
the result as JSON. The exit status is 1 when the document is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			node, ok := a.registry.Get(name)
			if !ok {
				return fmt.Errorf("unknown schema %q", name)
			}
			value, err := readDocument(cmd, file)
			if err != nil {
				return err
			}

			opts := a.cfg.SchemaOptions(a.log)
			if abortEarly {
				opts = append(opts, schema.WithAbortEarly())
			}
			if stripUnknown {
				opts = append(opts, schema.WithStripUnknown())
			}
			if strict {
				opts = append(opts, schema.WithAllowUnknown(false))
			}

			var res schema.Result
			if async {
				res = schema.ValidateAsync(cmd.Context(), value, node, opts...)
			} else {
				res = schema.Validate(value, node, opts...)
			}
			a.log.Debug("validated", logger.Schema(name), logger.ErrorCount(len(res.Errors)))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}
			if !res.Valid {
				return errInvalid
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "schema", "s", "", "schema name")
	cmd.Flags().StringVarP(&file, "file", "f", "-", "document path, - for stdin")
	cmd.Flags().BoolVar(&async, "async", false, "run asynchronous validators")
	cmd.Flags().BoolVar(&abortEarly, "abort-early", false, "stop at the first violation")
	cmd.Flags().BoolVar(&stripUnknown, "strip-unknown", false, "drop undeclared object keys")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject undeclared object keys")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

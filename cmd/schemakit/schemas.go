package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/schemakit/pkg/jsonschema"
)

func newSchemasCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "List registered schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range a.registry.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.AddCommand(newExportCmd(a))
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		strict bool
		id     string
	)

	cmd := &cobra.Command{
		Use:   "export NAME",
		Short: "Print a schema as a JSON Schema document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, ok := a.registry.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown schema %q", args[0])
			}
			opts := []jsonschema.Option{jsonschema.WithTitle(args[0])}
			if strict {
				opts = append(opts, jsonschema.WithStrict())
			}
			if id != "" {
				opts = append(opts, jsonschema.WithID(id))
			}
			if _, err := jsonschema.Compile(node, opts...); err != nil {
				return err
			}

			var (
				out []byte
				err error
			)
			switch format {
			case "json":
				out, err = jsonschema.MarshalJSON(node, opts...)
			case "yaml":
				out, err = jsonschema.MarshalYAML(node, opts...)
			default:
				return fmt.Errorf("unknown format %q: must be json or yaml", format)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "json or yaml")
	cmd.Flags().BoolVar(&strict, "strict", false, "close objects to undeclared keys")
	cmd.Flags().StringVar(&id, "id", "", "document $id")
	return cmd
}

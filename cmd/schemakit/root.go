package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/dmitrymomot/schemakit/pkg/catalog"
	"github.com/dmitrymomot/schemakit/pkg/config"
	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/server"
)

// errInvalid makes the process exit with status 1 without printing, after
// the command already wrote the failing result.
var errInvalid = errors.New("document is invalid")

// app carries what every subcommand needs once flags and env are resolved.
type app struct {
	cfg      config.Config
	log      *slog.Logger
	registry *catalog.Registry

	envFiles  []string
	schemaDir string
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errInvalid):
		return 1
	default:
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "schemakit",
		Short:         "Validate and sanitize documents against declarative schemas",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "env files to load instead of ./.env")
	root.PersistentFlags().StringVar(&a.schemaDir, "schema-dir", "", "directory of schema documents (overrides SCHEMAKIT_SCHEMA_DIR)")

	root.AddCommand(
		newValidateCmd(a),
		newSanitizeCmd(a),
		newSchemasCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) init(stderr io.Writer) error {
	var err error
	if len(a.envFiles) > 0 {
		a.cfg, err = config.LoadFiles(a.envFiles...)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	a.log = a.cfg.NewLogger(
		logger.WithOutput(stderr),
		logger.WithContextExtractors(server.RequestIDExtractor()),
	)

	a.registry = catalog.Default()
	dir := a.cfg.SchemaDir
	if a.schemaDir != "" {
		dir = a.schemaDir
	}
	if dir != "" {
		n, err := a.registry.LoadDir(dir)
		if err != nil {
			return fmt.Errorf("load schemas: %w", err)
		}
		a.log.Debug("schemas loaded", slog.String("dir", dir), slog.Int("count", n))
	}
	return nil
}

// readDocument decodes JSON or YAML from path, or from stdin when path is
// empty or "-".
func readDocument(cmd *cobra.Command, path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return v, nil
}

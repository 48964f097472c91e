package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/schemakit/pkg/sanitizer"
)

func newSanitizeCmd(a *app) *cobra.Command {
	var rulesPath, file string

	cmd := &cobra.Command{
		Use:   "sanitize",
		Short: "Apply sanitization rules to a document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := loadRules(rulesPath)
			if err != nil {
				return err
			}
			value, err := readDocument(cmd, file)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(sanitizer.Sanitize(value, rules))
		},
	}

	cmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "YAML or JSON rules file")
	cmd.Flags().StringVarP(&file, "file", "f", "-", "document path, - for stdin")
	_ = cmd.MarkFlagRequired("rules")
	return cmd
}

func loadRules(path string) (sanitizer.Rules, error) {
	var rules sanitizer.Rules
	f, err := os.Open(path)
	if err != nil {
		return rules, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&rules); err != nil {
		return rules, fmt.Errorf("decode rules %s: %w", path, err)
	}
	return rules, nil
}

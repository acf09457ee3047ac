package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oxhq/ananke/clew"
	"github.com/oxhq/ananke/internal/constraint"
	"github.com/oxhq/ananke/internal/hybrid"
	"github.com/oxhq/ananke/internal/langtag"
)

func newScanCmd(logger *zap.Logger) *cobra.Command {
	var (
		strategy string
		include  []string
		exclude  []string
	)

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Extract constraints from every matching file under a directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]

			facade, err := clew.New(clew.Config{Strategy: hybrid.Strategy(strategy), Logger: logger})
			if err != nil {
				return fmt.Errorf("build facade: %w", err)
			}
			defer facade.Close()

			results := make(map[string]constraint.ConstraintSet)
			err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
				if err != nil || d.IsDir() {
					return err
				}
				if !matchesFilters(path, include, exclude) {
					return nil
				}
				tag := facade.ResolveLanguageTag(filepath.Ext(path))
				if tag == langtag.None {
					return nil
				}
				source, readErr := os.ReadFile(path)
				if readErr != nil {
					logger.Warn("scan: skipping unreadable file", zap.String("path", path), zap.Error(readErr))
					return nil
				}
				results[path] = facade.ExtractFromCode(context.Background(), source, tag)
				return nil
			})
			if err != nil {
				return err
			}
			return printJSON(results)
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", string(hybrid.Combined), "Extraction strategy.")
	cmd.Flags().StringSliceVar(&include, "include", nil, "Include glob patterns (doublestar syntax).")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Exclude glob patterns (doublestar syntax).")
	return cmd
}

func matchesFilters(path string, include, exclude []string) bool {
	for _, pattern := range exclude {
		if matched, err := doublestar.PathMatch(pattern, path); err == nil && matched {
			return false
		}
	}
	if len(include) == 0 {
		return true
	}
	for _, pattern := range include {
		if matched, err := doublestar.PathMatch(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}

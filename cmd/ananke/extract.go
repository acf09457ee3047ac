package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oxhq/ananke/clew"
	"github.com/oxhq/ananke/internal/hybrid"
	"github.com/oxhq/ananke/internal/langtag"
)

func newExtractCmd(logger *zap.Logger) *cobra.Command {
	var (
		strategy      string
		langOverride  string
		cacheCapacity int
	)

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract constraints from a single source file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			tag := langtag.FromAlias(langOverride)
			if tag == langtag.None {
				tag = langtag.FromExtension(filepath.Ext(path), nil)
			}

			facade, err := clew.New(clew.Config{
				Strategy:      hybrid.Strategy(strategy),
				CacheCapacity: cacheCapacity,
				Logger:        logger,
			})
			if err != nil {
				return fmt.Errorf("build facade: %w", err)
			}
			defer facade.Close()

			set := facade.ExtractFromCode(context.Background(), source, tag)
			logger.Info("extract", zap.String("request_id", set.Diagnostics.RequestID), zap.String("path", path), zap.String("language", string(tag)))
			return printJSON(set)
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", string(hybrid.Combined), "Extraction strategy: tree_sitter_only, pattern_only, tree_sitter_with_fallback, combined.")
	cmd.Flags().StringVarP(&langOverride, "lang", "l", "", "Language override (inferred from extension if omitted).")
	cmd.Flags().IntVar(&cacheCapacity, "cache-capacity", 0, "Constraint cache capacity (0 = default, negative = disabled).")
	return cmd
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command annotate applies annotation gestures to an image and exports the
// result.
//
//	annotate render -i screenshot.png -s gestures.yaml -o out.png
//	annotate config -c annotate.yaml
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/annotate"
)

var rootCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Annotate images from scripted gestures",
	Long: strings.TrimSpace(`
Draw pen strokes, highlights, shapes, arrows and numbered markers on an image
by replaying a gesture script, then export the annotated image.
`),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		var l slog.Level
		if err := l.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", level, err)
		}
		annotate.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: l,
		})))
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "tool settings file (YAML, JSON or TOML)")
	rootCmd.AddCommand(renderCmd, configCmd)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/annotate/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tool settings as YAML",
	Long: `Print the effective tool settings as YAML.

The output merges built-in defaults, the file given with --config and
ANNOTATE_* environment variables. It is a valid --config file itself.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("config")
		settings, err := config.Load(path)
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(config.FromSettings(settings)); err != nil {
			return err
		}
		return enc.Close()
	},
}

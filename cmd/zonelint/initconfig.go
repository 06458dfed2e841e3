package main

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// initConfigCmd writes a starter ~/.zonelint.yaml populated with the
// built-in defaults, so a user has something to edit rather than
// guessing at mapstructure tag names from the docs.
var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a starter config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = "~/.zonelint.yaml"
		}
		resolved, err := homedir.Expand(path)
		if err != nil {
			return err
		}

		if _, err := os.Stat(resolved); err == nil {
			return fmt.Errorf("config already exists at %s", resolved)
		}

		out, err := yaml.Marshal(defaultConfig())
		if err != nil {
			return err
		}
		if err := os.WriteFile(resolved, out, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", resolved)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initConfigCmd)
}

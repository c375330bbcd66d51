package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showConfigCmd = &cobra.Command{
	Use:          "show-config",
	Short:        "Display the effective configuration",
	Long:         `Shows the configuration merged from defaults, the .env file, the config file and K6ALLURE_* variables.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(rootFlags)
		if err != nil {
			return err
		}

		b, err := cfg.YAML()
		if err != nil {
			return fmt.Errorf("failed to show config: %w", err)
		}

		if _, err := cmd.OutOrStdout().Write(b); err != nil {
			return err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showConfigCmd)
}

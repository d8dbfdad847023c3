package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newColorsCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "Print the effective color configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := loadColors(*cfg)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(colors); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

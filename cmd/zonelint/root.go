package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     cliConfig
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "zonelint",
	Short: "Validate, watch, and benchmark RFC 1035 zone files",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(v, cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.zonelint.yaml)")
	rootCmd.PersistentFlags().String("origin", "", "zone origin (overrides config)")
	rootCmd.PersistentFlags().Uint32("default-ttl", 0, "default TTL in seconds (overrides config)")
	rootCmd.PersistentFlags().Bool("friendly-ttls", false, "accept BIND friendly TTL notation (1h2m3s)")
	rootCmd.PersistentFlags().Bool("no-includes", false, "reject $INCLUDE directives")
	rootCmd.PersistentFlags().Bool("secondary", false, "parse as a secondary zone (does not affect $INCLUDE; see --no-includes)")

	v.BindPFlag("origin", rootCmd.PersistentFlags().Lookup("origin"))
	v.BindPFlag("default_ttl", rootCmd.PersistentFlags().Lookup("default-ttl"))
	v.BindPFlag("friendly_ttls", rootCmd.PersistentFlags().Lookup("friendly-ttls"))
	v.BindPFlag("no_includes", rootCmd.PersistentFlags().Lookup("no-includes"))
	v.BindPFlag("secondary", rootCmd.PersistentFlags().Lookup("secondary"))

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(benchCmd)
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

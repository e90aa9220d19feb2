package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alpacahq/bizday/calendar"
	"github.com/alpacahq/bizday/cmd/check"
	"github.com/alpacahq/bizday/cmd/holidays"
	"github.com/alpacahq/bizday/cmd/month"
	"github.com/alpacahq/bizday/cmd/request"
	"github.com/alpacahq/bizday/cmd/span"
	"github.com/alpacahq/bizday/utils"
	"github.com/alpacahq/bizday/utils/log"
)

const configDesc = "set the path for the bizday YAML configuration file"

var (
	// flagPrintVersion set flag to show current bizday version.
	flagPrintVersion bool
	// configFilePath set flag for a path to the config file.
	configFilePath string
)

// Execute builds the command tree and executes commands.
func Execute() error {
	// c is the root command.
	c := &cobra.Command{
		Use:               "bizday",
		Short:             "Business-day and holiday calendar",
		PersistentPreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print version if specified.
			if flagPrintVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "version: %+v\n", utils.Tag)
				fmt.Fprintf(cmd.OutOrStdout(), "commit hash: %+v\n", utils.GitHash)
				fmt.Fprintf(cmd.OutOrStdout(), "utc build time: %+v\n", utils.BuildStamp)
				return nil
			}
			// Print information regarding usage.
			return cmd.Usage()
		},
	}

	// Adds subcommands and flags.
	c.AddCommand(holidays.Cmd)
	c.AddCommand(check.Cmd)
	c.AddCommand(span.Cmd)
	c.AddCommand(month.Cmd)
	c.AddCommand(request.Cmd)
	c.Flags().BoolVarP(&flagPrintVersion, "version", "v", false, "show the version info and exit")
	c.PersistentFlags().StringVarP(&configFilePath, "config", "c", "", configDesc)

	return c.Execute()
}

// loadConfig reads the configuration file if one was given and warms the
// holiday cache when a prewarm window is configured.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if configFilePath == "" {
		return nil
	}
	data, err := os.ReadFile(configFilePath)
	if err != nil {
		return fmt.Errorf("failed to read configuration file error: %w", err)
	}
	config, err := utils.ParseConfig(data)
	if err != nil {
		return fmt.Errorf("failed to parse configuration file error: %w", err)
	}
	utils.InstanceConfig = config
	log.Debug("using %v for configuration", configFilePath)

	if p := config.Prewarm; p.Enabled() {
		calendar.Default.Warm(p.From, p.To, p.Workers)
	}
	return nil
}

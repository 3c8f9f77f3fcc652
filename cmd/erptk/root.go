package main

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/erptools/erptk/internal/addons"
	"github.com/erptools/erptk/internal/config"
	"github.com/erptools/erptk/internal/console"
)

const version = "1.3.0"

// globalOptions carries the persistent flags shared by every command.
type globalOptions struct {
	verbose    bool
	noColor    bool
	configPath string
}

// loadConfig reads the optional erptk.yaml defaults file.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	return config.Load(o.configPath)
}

// fillPaths completes unset path flags from the defaults file, flags
// winning over the file.
func fillPaths(paths *addons.Paths, cfg *config.Config) {
	if paths.Community == "" {
		paths.Community = cfg.CommunityPath
	}
	if paths.Enterprise == "" {
		paths.Enterprise = cfg.EnterprisePath
	}
	paths.Extra = append(paths.Extra, cfg.AddonsPaths...)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           "erptk",
		Short:         "Developer toolkit for ERP translation catalogs",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
			if opts.noColor {
				console.DisableColor()
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to the erptk.yaml defaults file")

	cmd.AddCommand(newPoCmd(opts))
	cmd.AddCommand(newTxCmd(opts))
	return cmd
}

func moduleNames(modules []addons.Module) string {
	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.Name
	}
	return strings.Join(names, ", ")
}

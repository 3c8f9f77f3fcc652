package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/erptools/erptk/catalog"
	"github.com/erptools/erptk/internal/console"
)

// poMergeConfig holds the resolved inputs of po merge.
type poMergeConfig struct {
	files     []string
	output    string
	overwrite bool
	out       io.Writer
}

func newPoMergeCmd(opts *globalOptions) *cobra.Command {
	cfg := &poMergeConfig{}
	cmd := &cobra.Command{
		Use:   "merge FILES...",
		Short: "Merge several catalogs into one by file precedence",
		Long: `Combine the given .po files into a single catalog. The output follows
the first file's entry order, with entries only found in later files
appended. By default the first file holding a translation for an entry
wins; with --overwrite the last one does. The order of FILES is
significant.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.files = args
			return runPoMerge(cfg)
		},
	}
	cmd.Flags().StringVarP(&cfg.output, "output", "o", "merged.po", "path of the merged catalog")
	cmd.Flags().BoolVar(&cfg.overwrite, "overwrite", false, "let later files overwrite earlier translations")
	return cmd
}

func runPoMerge(cfg *poMergeConfig) error {
	if len(cfg.files) == 0 {
		return catalog.ErrNoInputFiles
	}
	inputs := make([]*catalog.Catalog, 0, len(cfg.files))
	for _, path := range cfg.files {
		c, err := catalog.ParseFile(path)
		if err != nil {
			return err
		}
		log.Debugf("merge: read %s (%d entries)", path, c.Len())
		inputs = append(inputs, c)
	}
	merged, err := catalog.Merge(inputs, cfg.overwrite)
	if err != nil {
		return err
	}
	if err := merged.Save(cfg.output); err != nil {
		return err
	}

	out := cfg.out
	if out == nil {
		out = os.Stdout
	}
	console.New(out).Success("wrote " + cfg.output)
	return nil
}

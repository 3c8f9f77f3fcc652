package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/erptools/erptk/catalog"
	"github.com/erptools/erptk/internal/addons"
	"github.com/erptools/erptk/internal/batch"
	"github.com/erptools/erptk/internal/console"
	"github.com/erptools/erptk/lang"
)

// poCreateConfig holds the resolved inputs of po create.
type poCreateConfig struct {
	modules   []string
	languages []string
	paths     addons.Paths
	out       io.Writer
}

func newPoCreateCmd(opts *globalOptions) *cobra.Command {
	cfg := &poCreateConfig{}
	cmd := &cobra.Command{
		Use:   "create MODULES...",
		Short: "Create language catalogs from module templates",
		Long: `Create a clean .po file per requested language for the given modules,
copying every entry from the module's .pot template and filling in the
language metadata. Existing .po files are overwritten. Modules may be
names, or one of "all", "community" and "enterprise".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			cfg.modules = args
			fillPaths(&cfg.paths, fileCfg)
			if len(cfg.languages) == 0 {
				cfg.languages = fileCfg.Languages
			}
			return runPoCreate(cfg)
		},
	}
	cmd.Flags().StringSliceVarP(&cfg.languages, "languages", "l", nil, `languages to create catalogs for, or "all"`)
	cmd.Flags().StringVarP(&cfg.paths.Community, "com-path", "c", "", "path to the community checkout")
	cmd.Flags().StringVarP(&cfg.paths.Enterprise, "ent-path", "e", "", "path to the enterprise checkout")
	cmd.Flags().StringArrayVarP(&cfg.paths.Extra, "addons-path", "a", nil, "extra addons directories")
	return cmd
}

func runPoCreate(cfg *poCreateConfig) error {
	if len(cfg.languages) == 0 {
		return errors.New("create: at least one language is required")
	}
	langs, err := lang.ParseList(cfg.languages)
	if err != nil {
		return err
	}

	out := cfg.out
	if out == nil {
		out = os.Stdout
	}
	c := console.New(out)
	c.Title("PO Create")

	modules, err := resolveModules(c, cfg.modules, cfg.paths)
	if err != nil {
		return err
	}
	c.Printf("Modules: %s\n\n", moduleNames(modules))

	runner := &batch.Runner{Languages: langs, Action: createAction{}, Console: c}
	return finishBatch(c, runner.Run(modules), "created")
}

// createAction writes a fresh catalog per language, template order,
// translations empty.
type createAction struct{}

func (createAction) Languages(m addons.Module, requested []lang.Lang) []lang.Lang {
	return requested
}

func (createAction) Apply(m addons.Module, tmpl *catalog.Catalog, lg lang.Lang) (string, error) {
	out := catalog.FromTemplate(tmpl, lg)
	if err := saveCatalog(out, poPath(m, lg)); err != nil {
		return "", err
	}
	return fmt.Sprintf("i18n/%s.po", lg), nil
}

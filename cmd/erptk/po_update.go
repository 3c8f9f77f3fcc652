package main

import (
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

// poUpdateConfig holds the resolved inputs of po update.
type poUpdateConfig struct {
	modules   []string
	languages []string
	paths     addons.Paths
	out       io.Writer
}

func newPoUpdateCmd(opts *globalOptions) *cobra.Command {
	cfg := &poUpdateConfig{}
	cmd := &cobra.Command{
		Use:   "update MODULES...",
		Short: "Update language catalogs against newer templates",
		Long: `Reconcile each module's .po files with its current .pot template:
new terms are added untranslated, removed terms are dropped, and
existing translations are carried over. Without -l only languages that
already have a catalog in the module are touched; an explicitly named
language without one is created from the template.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			cfg.modules = args
			fillPaths(&cfg.paths, fileCfg)
			explicit := len(cfg.languages) > 0
			if !explicit {
				cfg.languages = fileCfg.Languages
			}
			return runPoUpdate(cfg, explicit)
		},
	}
	cmd.Flags().StringSliceVarP(&cfg.languages, "languages", "l", nil, `languages to update catalogs for, or "all" (default: all existing)`)
	cmd.Flags().StringVarP(&cfg.paths.Community, "com-path", "c", "", "path to the community checkout")
	cmd.Flags().StringVarP(&cfg.paths.Enterprise, "ent-path", "e", "", "path to the enterprise checkout")
	cmd.Flags().StringArrayVarP(&cfg.paths.Extra, "addons-path", "a", nil, "extra addons directories")
	return cmd
}

func runPoUpdate(cfg *poUpdateConfig, explicitLangs bool) error {
	langs, err := lang.ParseList(cfg.languages)
	if err != nil {
		return err
	}

	out := cfg.out
	if out == nil {
		out = os.Stdout
	}
	c := console.New(out)
	c.Title("PO Update")

	modules, err := resolveModules(c, cfg.modules, cfg.paths)
	if err != nil {
		return err
	}
	c.Printf("Modules: %s\n\n", moduleNames(modules))

	runner := &batch.Runner{
		Languages: langs,
		Action:    updateAction{explicit: explicitLangs},
		Console:   c,
	}
	return finishBatch(c, runner.Run(modules), "updated")
}

// updateAction reconciles one language catalog with the module's
// template. With an explicit language selection a missing catalog
// degenerates to create; an implicit "all" touches only catalogs that
// already exist, so updating a module never fabricates ninety files.
type updateAction struct {
	explicit bool
}

func (a updateAction) Languages(m addons.Module, requested []lang.Lang) []lang.Lang {
	if a.explicit {
		return requested
	}
	var out []lang.Lang
	for _, lg := range requested {
		if _, err := os.Stat(poPath(m, lg)); err == nil {
			out = append(out, lg)
		}
	}
	return out
}

func (a updateAction) Apply(m addons.Module, tmpl *catalog.Catalog, lg lang.Lang) (string, error) {
	path := poPath(m, lg)
	var existing *catalog.Catalog
	if _, err := os.Stat(path); err == nil {
		existing, err = catalog.ParseFile(path)
		if err != nil {
			return "", err
		}
	}
	updated := catalog.Update(existing, tmpl, lg)
	if err := saveCatalog(updated, path); err != nil {
		return "", err
	}
	return fmt.Sprintf("i18n/%s.po (%d%% translated)", lg, updated.PercentTranslated()), nil
}

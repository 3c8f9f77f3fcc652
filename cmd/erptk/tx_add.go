package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erptools/erptk/internal/addons"
	"github.com/erptools/erptk/internal/console"
	"github.com/erptools/erptk/internal/txconfig"
)

// txAddConfig holds the resolved inputs of tx add.
type txAddConfig struct {
	modules      []string
	organization string
	project      string
	configFile   string
	paths        addons.Paths
	out          io.Writer
}

func newTxAddCmd(opts *globalOptions) *cobra.Command {
	cfg := &txAddConfig{}
	cmd := &cobra.Command{
		Use:   "add MODULES...",
		Short: "Add module resources to the platform config files",
		Long: `Ensure a resource section for each module in the config file at the
root of the checkout containing it. Sections that already exist are
updated in place.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			cfg.modules = args
			fillPaths(&cfg.paths, fileCfg)
			return runTxAdd(cfg)
		},
	}
	cmd.Flags().StringVarP(&cfg.organization, "organization", "o", "erptools", "translation platform organization")
	cmd.Flags().StringVarP(&cfg.project, "project", "p", "", "translation platform project (required)")
	cmd.Flags().StringVar(&cfg.configFile, "config-file", filepath.Join(".tx", "config"), "config file location inside each checkout")
	cmd.Flags().StringVarP(&cfg.paths.Community, "com-path", "c", "", "path to the community checkout")
	cmd.Flags().StringVarP(&cfg.paths.Enterprise, "ent-path", "e", "", "path to the enterprise checkout")
	cmd.Flags().StringArrayVarP(&cfg.paths.Extra, "addons-path", "a", nil, "extra addons directories")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func runTxAdd(cfg *txAddConfig) error {
	if cfg.project == "" {
		return errors.New("tx add: a project name is required")
	}

	out := cfg.out
	if out == nil {
		out = os.Stdout
	}
	c := console.New(out)
	c.Title("TX Config Add")

	modules, err := resolveModules(c, cfg.modules, cfg.paths)
	if err != nil {
		return err
	}
	c.Printf("Modules: %s\n\n", moduleNames(modules))

	groups, err := groupByCheckout(modules, cfg.paths)
	if err != nil {
		return err
	}
	roots := make([]string, 0, len(groups))
	for root := range groups {
		roots = append(roots, root)
	}
	sort.Strings(roots)

	for _, root := range roots {
		path := filepath.Join(root, cfg.configFile)
		file, err := txconfig.Load(path)
		if err != nil {
			return err
		}
		tree := console.NewTree(path)
		for _, m := range groups[root] {
			created, err := file.AddModule(m, cfg.organization, cfg.project)
			if err != nil {
				return err
			}
			if created {
				tree.Add("%s added", m.Name)
			} else {
				tree.Add("%s updated", m.Name)
			}
		}
		if err := file.Save(); err != nil {
			return err
		}
		c.Tree(tree)
	}
	c.Success("config files updated")
	return nil
}

// groupByCheckout maps each module to the checkout root that contains
// it; that root is where its config file lives.
func groupByCheckout(modules []addons.Module, paths addons.Paths) (map[string][]addons.Module, error) {
	var roots []string
	for _, root := range append([]string{paths.Community, paths.Enterprise}, paths.Extra...) {
		if root == "" {
			continue
		}
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, err
		}
		roots = append(roots, abs)
	}

	groups := make(map[string][]addons.Module)
	for _, m := range modules {
		abs, err := filepath.Abs(m.Path)
		if err != nil {
			return nil, err
		}
		root := containingRoot(roots, abs)
		if root == "" {
			return nil, fmt.Errorf("module %s at %s is outside every checkout", m.Name, m.Path)
		}
		groups[root] = append(groups[root], m)
	}
	return groups, nil
}

func containingRoot(roots []string, path string) string {
	for _, root := range roots {
		if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
			return root
		}
	}
	return ""
}

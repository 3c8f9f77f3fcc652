package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/erptools/erptk/catalog"
	"github.com/erptools/erptk/internal/addons"
	"github.com/erptools/erptk/internal/batch"
	"github.com/erptools/erptk/internal/console"
	"github.com/erptools/erptk/lang"
)

func newPoCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "po",
		Short: "Create, update and merge PO translation catalogs",
	}
	cmd.AddCommand(newPoCreateCmd(opts))
	cmd.AddCommand(newPoUpdateCmd(opts))
	cmd.AddCommand(newPoMergeCmd(opts))
	return cmd
}

// poPath is where a module keeps the catalog for one language.
func poPath(m addons.Module, lg lang.Lang) string {
	return filepath.Join(m.I18nDir(), string(lg)+".po")
}

// resolveModules turns the command's module selectors into a sorted
// module list, warning about names nothing provides.
func resolveModules(c *console.Console, selectors []string, paths addons.Paths) ([]addons.Module, error) {
	modules, unknown := addons.Resolve(selectors, paths)
	for _, name := range unknown {
		c.Warning(fmt.Sprintf("unknown module %q skipped", name))
	}
	if len(modules) == 0 {
		return nil, errors.New("no matching modules found")
	}
	return modules, nil
}

// finishBatch renders the closing status line and maps a failed batch
// to a non-zero exit.
func finishBatch(c *console.Console, status batch.Status, verb string) error {
	switch status {
	case batch.StatusSuccess:
		c.Success(fmt.Sprintf("all translation files were %s", verb))
		return nil
	case batch.StatusPartial:
		c.Warning(fmt.Sprintf("some translation files could not be %s", verb))
	default:
		c.Error(fmt.Sprintf("no translation files were %s", verb))
	}
	return errors.New("finished with failures")
}

// saveCatalog writes a catalog to a module's i18n directory, creating
// the directory on first use.
func saveCatalog(c *catalog.Catalog, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return c.Save(path)
}

// Package addons discovers ERP modules on disk. A module is a
// subdirectory of an addons directory that carries a __manifest__.py
// file; the module name is the directory name.
package addons

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Selectors understood beside explicit module names.
const (
	SelectAll        = "all"
	SelectCommunity  = "community"
	SelectEnterprise = "enterprise"
)

// Module is one discovered module.
type Module struct {
	Name string
	Path string // the module directory itself
}

// I18nDir returns the module's localization directory.
func (m Module) I18nDir() string {
	return filepath.Join(m.Path, "i18n")
}

// TemplatePath returns the conventional location of the module's
// template catalog.
func (m Module) TemplatePath() string {
	return filepath.Join(m.Path, "i18n", m.Name+".pot")
}

// Paths names the checkouts and extra directories to scan for modules.
type Paths struct {
	// Community is the community checkout; its addons live in both
	// <Community>/addons and <Community>/core/addons.
	Community string
	// Enterprise is the enterprise checkout, itself an addons dir.
	Enterprise string
	// Extra lists additional addons directories.
	Extra []string
}

func (p Paths) communityDirs() []string {
	if p.Community == "" {
		return nil
	}
	return []string{
		filepath.Join(p.Community, "core", "addons"),
		filepath.Join(p.Community, "addons"),
	}
}

func (p Paths) enterpriseDirs() []string {
	if p.Enterprise == "" {
		return nil
	}
	return []string{p.Enterprise}
}

// Scan lists the modules under dir. A missing or unreadable directory
// scans as empty: checkouts are optional and their absence only narrows
// the selection.
func Scan(dir string) []Module {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Debugf("addons: skipping %s: %v", dir, err)
		return nil
	}
	var modules []Module
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if _, err := os.Stat(filepath.Join(path, "__manifest__.py")); err != nil {
			continue
		}
		modules = append(modules, Module{Name: entry.Name(), Path: path})
	}
	log.Debugf("addons: %s holds %d modules", dir, len(modules))
	return modules
}

// Resolve maps the requested selectors to modules. Selectors may be
// explicit module names (optionally comma-separated) or one of the
// sentinels "all", "community" and "enterprise". Unknown names are
// returned separately so the caller can warn and go on; they never fail
// the resolution. The result is sorted by module name, each name listed
// once — the first directory that provides a module wins.
func Resolve(selectors []string, paths Paths) (modules []Module, unknown []string) {
	scan := func(dirs []string) map[string]Module {
		found := make(map[string]Module)
		for _, dir := range dirs {
			for _, m := range Scan(dir) {
				if _, ok := found[m.Name]; !ok {
					found[m.Name] = m
				}
			}
		}
		return found
	}

	community := scan(paths.communityDirs())
	enterprise := scan(paths.enterpriseDirs())
	extra := scan(paths.Extra)

	available := make(map[string]Module)
	for _, set := range []map[string]Module{community, enterprise, extra} {
		for name, m := range set {
			if _, ok := available[name]; !ok {
				available[name] = m
			}
		}
	}

	selected := make(map[string]Module)
	for _, selector := range splitSelectors(selectors) {
		switch selector {
		case SelectAll:
			for name, m := range available {
				selected[name] = m
			}
		case SelectCommunity:
			for name, m := range community {
				selected[name] = m
			}
		case SelectEnterprise:
			for name, m := range enterprise {
				selected[name] = m
			}
		default:
			if m, ok := available[selector]; ok {
				selected[selector] = m
			} else {
				unknown = append(unknown, selector)
			}
		}
	}

	modules = make([]Module, 0, len(selected))
	for _, m := range selected {
		modules = append(modules, m)
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i].Name < modules[j].Name })
	sort.Strings(unknown)
	return modules, unknown
}

func splitSelectors(selectors []string) []string {
	var out []string
	for _, s := range selectors {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

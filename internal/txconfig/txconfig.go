// Package txconfig edits the translation platform's INI configuration
// file (.tx/config): one [main] section plus one resource section per
// module. Adding a module that is already configured updates its
// section in place, so the edit is idempotent.
package txconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"github.com/erptools/erptk/internal/addons"
)

const defaultHost = "https://app.transifex.com"

// File is one .tx/config being edited.
type File struct {
	path string
	ini  *ini.File
}

// Load opens the config at path, or starts an empty one when the file
// does not exist yet. The [main] section and its host key are ensured
// either way.
func Load(path string) (*File, error) {
	var cfg *ini.File
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		cfg = ini.Empty()
	} else {
		cfg, err = ini.Load(path)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	main := cfg.Section("main")
	if !main.HasKey("host") {
		main.Key("host").SetValue(defaultHost)
	}
	return &File{path: path, ini: cfg}, nil
}

// AddModule ensures a resource section for the module under the given
// organization and project. Paths inside the section are written
// relative to the directory holding the .tx directory. It reports
// whether the section was newly created.
func (f *File) AddModule(m addons.Module, org, project string) (created bool, err error) {
	rel, err := f.relModulePath(m)
	if err != nil {
		return false, err
	}
	name := resourceSection(org, project, m.Name)
	_, getErr := f.ini.GetSection(name)
	created = getErr != nil
	sec := f.ini.Section(name)
	sec.Key("file_filter").SetValue(filepath.ToSlash(filepath.Join(rel, "i18n", "<lang>.po")))
	sec.Key("source_file").SetValue(filepath.ToSlash(filepath.Join(rel, "i18n", m.Name+".pot")))
	sec.Key("type").SetValue("PO")
	sec.Key("minimum_perc").SetValue("0")
	sec.Key("resource_name").SetValue(m.Name)
	sec.Key("replace_edited_strings").SetValue("false")
	sec.Key("keep_translations").SetValue("true")
	log.Debugf("txconfig: configured %s in %s", name, f.path)
	return created, nil
}

// Save writes the file, creating the .tx directory when needed.
func (f *File) Save() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return f.ini.SaveTo(f.path)
}

// Path returns the config file's location.
func (f *File) Path() string {
	return f.path
}

// root is the directory the .tx directory lives in; resource paths are
// written relative to it.
func (f *File) root() string {
	return filepath.Dir(filepath.Dir(f.path))
}

func (f *File) relModulePath(m addons.Module) (string, error) {
	root, err := filepath.Abs(f.root())
	if err != nil {
		return "", err
	}
	module, err := filepath.Abs(m.Path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, module)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("module %s at %s is outside the config root %s", m.Name, m.Path, root)
	}
	return rel, nil
}

func resourceSection(org, project, module string) string {
	return fmt.Sprintf("o:%s:p:%s:r:%s", org, project, module)
}

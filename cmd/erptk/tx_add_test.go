package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/ini.v1"

	"github.com/erptools/erptk/internal/addons"
	tktest "github.com/erptools/erptk/test"
)

func TestTxAddWritesConfigAtCheckoutRoot(t *testing.T) {
	root := t.TempDir()
	community := filepath.Join(root, "community")
	for _, name := range []string{"mail", "crm"} {
		if _, err := tktest.WriteModule(filepath.Join(community, "addons"), name, tktest.TemplatePO); err != nil {
			t.Fatal(err)
		}
	}

	cfg := &txAddConfig{
		modules:      []string{"mail", "crm"},
		organization: "erptools",
		project:      "erp-19",
		configFile:   filepath.Join(".tx", "config"),
		paths:        addons.Paths{Community: community},
		out:          io.Discard,
	}
	if err := runTxAdd(cfg); err != nil {
		t.Fatalf("tx add failed: %v", err)
	}

	file, err := ini.Load(filepath.Join(community, ".tx", "config"))
	if err != nil {
		t.Fatalf("config does not parse: %v", err)
	}
	sec := file.Section("o:erptools:p:erp-19:r:mail")
	if got := sec.Key("file_filter").String(); got != "addons/mail/i18n/<lang>.po" {
		t.Errorf("file_filter = %q", got)
	}
	if got := sec.Key("source_file").String(); got != "addons/mail/i18n/mail.pot" {
		t.Errorf("source_file = %q", got)
	}
	if file.Section("o:erptools:p:erp-19:r:crm").Key("type").String() != "PO" {
		t.Error("crm resource section missing")
	}
}

func TestTxAddRerunIsIdempotent(t *testing.T) {
	root := t.TempDir()
	enterprise := filepath.Join(root, "enterprise")
	if _, err := tktest.WriteModule(enterprise, "accounting", tktest.TemplatePO); err != nil {
		t.Fatal(err)
	}

	cfg := &txAddConfig{
		modules:      []string{"accounting"},
		organization: "erptools",
		project:      "erp-19",
		configFile:   filepath.Join(".tx", "config"),
		paths:        addons.Paths{Enterprise: enterprise},
		out:          io.Discard,
	}
	if err := runTxAdd(cfg); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(enterprise, ".tx", "config")
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := runTxAdd(cfg); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("re-running tx add changed the config:\n%s\nvs\n%s", first, second)
	}
}

func TestTxAddRequiresProject(t *testing.T) {
	cfg := &txAddConfig{
		modules:      []string{"mail"},
		organization: "erptools",
		out:          io.Discard,
	}
	if err := runTxAdd(cfg); err == nil {
		t.Fatal("tx add without a project should fail")
	}
}

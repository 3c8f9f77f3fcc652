package po_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/erptools/erptk/catalog"
	"github.com/erptools/erptk/internal/addons"
	"github.com/erptools/erptk/lang"
	tktest "github.com/erptools/erptk/test"
)

var _ = Describe("PO workflow", func() {
	var (
		tmpDir string
		module addons.Module
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "erptk-po-*")
		Expect(err).NotTo(HaveOccurred())
		path, err := tktest.WriteModule(tmpDir, "mail", tktest.TemplatePO)
		Expect(err).NotTo(HaveOccurred())
		module = addons.Module{Name: "mail", Path: path}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	readTemplate := func() *catalog.Catalog {
		tmpl, err := catalog.ParseFile(module.TemplatePath())
		Expect(err).NotTo(HaveOccurred())
		return tmpl
	}

	poPath := func(lg lang.Lang) string {
		return filepath.Join(module.I18nDir(), string(lg)+".po")
	}

	It("creates, updates and merges catalogs end to end", func() {
		By("creating a French catalog from the template")
		tmpl := readTemplate()
		fr := catalog.FromTemplate(tmpl, "fr")
		Expect(fr.Save(poPath("fr"))).To(Succeed())

		onDisk, err := catalog.ParseFile(poPath("fr"))
		Expect(err).NotTo(HaveOccurred())
		Expect(onDisk.Header().Get("Language")).To(Equal("fr"))
		Expect(onDisk.Header().Get("Plural-Forms")).To(Equal(lang.PluralForms("fr")))
		Expect(onDisk.Len()).To(Equal(tmpl.Len()))
		Expect(onDisk.PercentTranslated()).To(Equal(0))

		By("translating an entry and updating against a grown template")
		entry, ok := onDisk.Get(catalog.Key{ID: "Send a message"})
		Expect(ok).To(BeTrue())
		entry.Str = "Envoyer un message"
		Expect(onDisk.Save(poPath("fr"))).To(Succeed())

		tmpl.Add(&catalog.Entry{ID: "Mark as read"})
		existing, err := catalog.ParseFile(poPath("fr"))
		Expect(err).NotTo(HaveOccurred())
		updated := catalog.Update(existing, tmpl, "fr")
		Expect(updated.Save(poPath("fr"))).To(Succeed())

		reread, err := catalog.ParseFile(poPath("fr"))
		Expect(err).NotTo(HaveOccurred())
		kept, ok := reread.Get(catalog.Key{ID: "Send a message"})
		Expect(ok).To(BeTrue())
		Expect(kept.Str).To(Equal("Envoyer un message"))
		added, ok := reread.Get(catalog.Key{ID: "Mark as read"})
		Expect(ok).To(BeTrue())
		Expect(added.Str).To(BeEmpty())

		By("merging a Belgian variant over the base language")
		be := catalog.FromTemplate(tmpl, "fr_BE")
		beEntry, ok := be.Get(catalog.Key{ID: "Mark as read"})
		Expect(ok).To(BeTrue())
		beEntry.Str = "Marquer comme lu"

		merged, err := catalog.Merge([]*catalog.Catalog{reread, be}, false)
		Expect(err).NotTo(HaveOccurred())
		Expect(merged.Header().Get("Language")).To(Equal("fr"))
		base, _ := merged.Get(catalog.Key{ID: "Send a message"})
		Expect(base.Str).To(Equal("Envoyer un message"))
		variant, _ := merged.Get(catalog.Key{ID: "Mark as read"})
		Expect(variant.Str).To(Equal("Marquer comme lu"))

		mergedPath := filepath.Join(tmpDir, "merged.po")
		Expect(merged.Save(mergedPath)).To(Succeed())
		data, err := os.ReadFile(mergedPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`msgid "Send a message"`))
	})

	It("round-trips the template byte-stably", func() {
		tmpl := readTemplate()
		written := tmpl.String()
		again, err := catalog.Parse(strings.NewReader(written))
		Expect(err).NotTo(HaveOccurred())
		Expect(again.String()).To(Equal(written))
	})

	It("rejects unsupported languages before touching any file", func() {
		_, err := lang.Parse("xx")
		var unsupported *lang.UnsupportedError
		Expect(err).To(HaveOccurred())
		Expect(errors.As(err, &unsupported)).To(BeTrue())
		Expect(unsupported.Code).To(Equal("xx"))
	})
})

// Package batch drives a catalog operation across many modules. One
// module's failure never aborts the batch; outcomes are collected per
// module and rendered as result trees, and the aggregate status tells
// the caller whether everything, something or nothing succeeded.
package batch

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/erptools/erptk/catalog"
	"github.com/erptools/erptk/internal/addons"
	"github.com/erptools/erptk/internal/console"
	"github.com/erptools/erptk/lang"
)

//go:generate mockgen -source=$GOFILE -package mock_batch -destination=../../test/mock/$GOFILE

// MissingTemplateError reports a module without a template catalog at
// its conventional location. It fails that module only; the batch
// continues with the next one.
type MissingTemplateError struct {
	Module string
	Path   string
}

func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("no template catalog for %s at %s", e.Module, e.Path)
}

// Action is the per-language operation a batch applies to each module.
type Action interface {
	// Languages narrows the requested languages for one module, e.g.
	// update restricted to catalogs that already exist on disk.
	Languages(m addons.Module, requested []lang.Lang) []lang.Lang
	// Apply runs the operation for one language against the module's
	// parsed template and returns the result line to render.
	Apply(m addons.Module, tmpl *catalog.Catalog, lg lang.Lang) (string, error)
}

// Status is the aggregate outcome of a batch or of one module.
type Status int

const (
	StatusSuccess Status = iota // every operation succeeded
	StatusPartial               // some succeeded, some failed
	StatusFailure               // nothing succeeded
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusPartial:
		return "partial"
	default:
		return "failure"
	}
}

// Failed reports whether the status carries at least one failure and
// the process should exit non-zero.
func (s Status) Failed() bool {
	return s != StatusSuccess
}

// Runner applies an action to every module in turn.
type Runner struct {
	Languages []lang.Lang
	Action    Action
	Console   *console.Console
}

// Run processes the modules in order and returns the aggregate status.
func (r *Runner) Run(modules []addons.Module) Status {
	status := StatusSuccess
	for i, m := range modules {
		tree := console.NewTree(m.Name)
		moduleStatus := r.runModule(m, tree)
		r.Console.Tree(tree)
		if i == 0 {
			status = moduleStatus
		} else if status != moduleStatus {
			status = StatusPartial
		}
	}
	return status
}

func (r *Runner) runModule(m addons.Module, tree *console.Tree) Status {
	potPath := m.TemplatePath()
	if _, err := os.Stat(potPath); err != nil {
		terr := &MissingTemplateError{Module: m.Name, Path: potPath}
		log.Debugf("batch: %v", terr)
		tree.Fail("%v", terr)
		return StatusFailure
	}
	tmpl, err := catalog.ParseFile(potPath)
	if err != nil {
		tree.Fail("%v", err)
		return StatusFailure
	}
	if tmpl.Len() == 0 {
		tree.Add("no translatable strings")
	}

	langs := r.Action.Languages(m, r.Languages)
	if len(langs) == 0 {
		tree.Add("nothing to do")
		return StatusSuccess
	}

	ok, failed := 0, 0
	for _, lg := range langs {
		line, err := r.Action.Apply(m, tmpl, lg)
		if err != nil {
			tree.Fail("%s: %v", lg, err)
			failed++
			continue
		}
		tree.Add("%s", line)
		ok++
	}
	switch {
	case failed == 0:
		return StatusSuccess
	case ok == 0:
		return StatusFailure
	default:
		return StatusPartial
	}
}

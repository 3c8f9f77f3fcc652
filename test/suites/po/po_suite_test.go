package po_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestPoSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "PO Workflow Suite")
}

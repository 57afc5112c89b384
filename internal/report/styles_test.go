package report_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/clireader/internal/report"
)

func TestPlainStylesLeaveTextUntouched(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := report.PlainStyles()
	for _, style := range []string{
		s.Header.Render("[Flattened]"),
		s.Flag.Render("-b"),
		s.Value.Render("747"),
		s.Muted.Render("blank"),
	} {
		g.Expect(style).To(Equal(report.StripANSI(style)))
	}
}

func TestDefaultStylesKeepText(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := report.DefaultStyles()
	g.Expect(report.StripANSI(s.Flag.Render("--range"))).To(Equal("--range"))
}

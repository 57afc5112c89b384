package core_test

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/clireader/internal/core"
	"github.com/toejough/clireader/internal/flags"
	"github.com/toejough/clireader/internal/report"
)

func TestOutcomeAccessors(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	p := newParser(t,
		rule{"-v", flags.Blank},
		rule{"--range", flags.SepRequired},
		rule{"-k", flags.ArgOptional},
	)
	g.Expect(p.SetOperandLimit(2)).To(Succeed())

	out, err := p.Parse([]string{"in.txt", "-v", "--range=", "12,24,36", "out.txt"})
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(out.Tokens()).To(Equal([]string{"in.txt", "-v", "--range=12,24,36", "out.txt"}))
	g.Expect(out.Flattened()).To(Equal("in.txt -v --range=12,24,36 out.txt"))

	g.Expect(out.OperandCount()).To(Equal(2))
	g.Expect(out.FirstOperand()).To(Equal("in.txt"))
	g.Expect(out.LastOperand()).To(Equal("out.txt"))
	g.Expect(out.Operand(1)).To(Equal("out.txt"))
	g.Expect(out.Operand(2)).To(BeEmpty())
	g.Expect(out.Operand(-1)).To(BeEmpty())

	g.Expect(out.HandledCount()).To(Equal(2))
	g.Expect(out.Handled("k")).To(BeFalse())

	for _, name := range []string{"range", "-range", "--range"} {
		g.Expect(out.Value(name)).To(Equal("12"), "name %q", name)
		g.Expect(out.ValueAt(name, 2)).To(Equal("36"))
		g.Expect(out.ValueCount(name)).To(Equal(3))
	}

	g.Expect(out.ValueAt("--range", 3)).To(BeEmpty())
	g.Expect(out.Value("--missing")).To(BeEmpty())
	g.Expect(out.ValueCount("--missing")).To(BeZero())
	g.Expect(out.Values("--missing")).To(BeNil())
	g.Expect(out.Handled("--missing")).To(BeFalse())
	g.Expect(out.Values("-v")).To(BeNil())
}

func TestOutcomeIsImmutable(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	p := newParser(t, rule{"-b", flags.SepOptional})

	out, err := p.Parse([]string{"-b=1,2", "x"})
	g.Expect(err).NotTo(HaveOccurred())

	values := out.Values("-b")
	values[0] = "changed"

	operands := out.Operands()
	operands[0] = "changed"

	results := out.Flags()
	results[0].Values[1] = "changed"

	g.Expect(out.Values("-b")).To(Equal([]string{"1", "2"}))
	g.Expect(out.Operands()).To(Equal([]string{"x"}))
}

func TestOutcomeFlagsFollowRegistrationOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	p := newParser(t,
		rule{"--zeta", flags.Blank},
		rule{"-a", flags.Blank},
		rule{"-mid", flags.ArgOptional},
	)

	out, err := p.Parse([]string{"-a", "-mid", "4"})
	g.Expect(err).NotTo(HaveOccurred())

	results := out.Flags()
	g.Expect(results).To(HaveLen(3))
	g.Expect(results[0].Spelling).To(Equal("--zeta"))
	g.Expect(results[0].Handled).To(BeFalse())
	g.Expect(results[1].Category).To(Equal(flags.Short))
	g.Expect(results[2]).To(Equal(core.FlagResult{
		Spelling: "-mid",
		Name:     "mid",
		Category: flags.ExtendedShort,
		Behavior: flags.ArgOptional,
		Usage:    "[-mid <value>]",
		Values:   []string{"4"},
		Handled:  true,
	}))
}

func TestOutcomeReport(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	p := newParser(t,
		rule{"-v", flags.Blank},
		rule{"--range", flags.SepRequired},
		rule{"-q", flags.Blank},
	)

	out, err := p.Parse([]string{"-v", "--range=12,24", "notes.txt"})
	g.Expect(err).NotTo(HaveOccurred())

	text := out.Report(report.PlainStyles())

	g.Expect(text).To(HavePrefix("[Flattened]\n   -v --range=12,24 notes.txt\n"))
	g.Expect(text).To(ContainSubstring("[Flag mapping list]"))
	g.Expect(text).To(ContainSubstring("--range=<value>[,<value>...]  sep-required  12, 24 (list)"))
	g.Expect(text).To(ContainSubstring("Argument:   notes.txt"))
	g.Expect(text).NotTo(ContainSubstring("-q"))

	styled := out.Report(report.DefaultStyles())
	g.Expect(report.StripANSI(styled)).To(Equal(text))
	g.Expect(strings.Count(text, "\n[")).To(Equal(2))
}

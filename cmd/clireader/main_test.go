package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
)

const rules = `
operand_limit = 1

[[rules]]
spelling = "-v"
behavior = "blank"

[[rules]]
spelling = "--range"
behavior = "sep-required"
`

func TestRunPrintsReport(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := writeRules(t)

	code, stdout, stderr := run("--rules", path, "--plain", "--", "-v", "--range=", "12,24", "notes.txt")
	g.Expect(code).To(Equal(exitOK), stderr)
	g.Expect(stderr).To(BeEmpty())
	g.Expect(stdout).To(HavePrefix("[Flattened]\n   -v --range=12,24 notes.txt\n"))
	g.Expect(stdout).To(ContainSubstring("12, 24 (list)"))
	g.Expect(stdout).To(ContainSubstring("Argument:   notes.txt"))
}

func TestRunReportsParseFailure(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, stdout, stderr := run("--rules", writeRules(t), "--", "-v", "--range", "12")
	g.Expect(code).To(Equal(exitParseFailed))
	g.Expect(stdout).To(BeEmpty())
	g.Expect(stderr).To(ContainSubstring("error:"))
	g.Expect(stderr).To(ContainSubstring("flag needs a value separator ('='): --range"))
}

func TestRunWithoutRulesTreatsFlagsAsUnknown(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, _, stderr := run("--", "-v")
	g.Expect(code).To(Equal(exitParseFailed))
	g.Expect(stderr).To(ContainSubstring("flag provided but not defined: -v"))

	code, stdout, _ := run("--plain", "--limit", "2", "--", "a", "b")
	g.Expect(code).To(Equal(exitOK))
	g.Expect(stdout).To(ContainSubstring("Argument:   b"))
}

func TestRunUsageFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"UnknownOwnFlag", []string{"--verbose", "--", "x"}, "flag provided but not defined: --verbose"},
		{"StrayOperand", []string{"oops", "--", "x"}, "too many operands"},
		{"BadLimit", []string{"--limit", "many"}, "--limit"},
		{"NegativeLimit", []string{"--limit", "-1"}, "operand limit must not be negative"},
		{"BadLogFormat", []string{"--logformat", "xml"}, "unknown log format"},
		{"NoRuleFiles", []string{"--rules", "does/not/exist/*.toml"}, "no rule files matched"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			code, stdout, stderr := run(tt.args...)
			g.Expect(code).To(Equal(exitUsage))
			g.Expect(stdout).To(BeEmpty())
			g.Expect(stderr).To(ContainSubstring(tt.want))
		})
	}
}

func TestRunDebugLogging(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	code, _, stderr := run("--rules", writeRules(t), "--debug", "--logformat", "json", "--", "-v")
	g.Expect(code).To(Equal(exitOK))

	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	g.Expect(lines).NotTo(BeEmpty())

	for _, line := range lines {
		g.Expect(line).To(HavePrefix("{"))
	}

	g.Expect(stderr).To(ContainSubstring(`"msg":"dispatch"`))
	g.Expect(stderr).To(ContainSubstring(`"msg":"loaded rule files"`))
}

func TestSplitArgs(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	own, subject := splitArgs([]string{"--plain", "--", "-v", "--", "x"})
	g.Expect(own).To(Equal([]string{"--plain"}))
	g.Expect(subject).To(Equal([]string{"-v", "--", "x"}))

	own, subject = splitArgs([]string{"--plain"})
	g.Expect(own).To(Equal([]string{"--plain"}))
	g.Expect(subject).To(BeNil())
}

func run(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer

	r := &runner{args: args, out: &out, errOut: &errOut}
	code = r.run()

	return code, out.String(), errOut.String()
}

func writeRules(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rules.toml")

	err := os.WriteFile(path, []byte(rules), 0o600)
	if err != nil {
		t.Fatalf("write error: %v", err)
	}

	return path
}

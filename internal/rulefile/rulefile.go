// Package rulefile loads flag rule tables from TOML or YAML files.
//
// A TOML rule file:
//
//	operand_limit = 2
//
//	[[rules]]
//	spelling = "--range"
//	behavior = "sep-required"
//
// The YAML form uses the same keys, with "rules" as a list.
package rulefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/toejough/clireader/internal/flags"
)

// Exported variables.
var (
	ErrNoRuleFiles       = errors.New("no rule files matched")
	ErrUnknownKey        = errors.New("unknown key in rule file")
	ErrUnsupportedFormat = errors.New("unsupported rule file format")
	//nolint:gosec // G304: reading user-named rule files is the point.
	ReadFile = os.ReadFile
)

// File is one decoded rule file.
type File struct {
	Path         string `toml:"-"             yaml:"-"`
	OperandLimit *int   `toml:"operand_limit" yaml:"operand_limit"`
	Rules        []Rule `toml:"rules"         yaml:"rules"`
}

// Rule is one flag declaration. Behavior is a kebab-case name such as "arg-required".
type Rule struct {
	Spelling string `toml:"spelling" yaml:"spelling"`
	Behavior string `toml:"behavior" yaml:"behavior"`
}

// Registrar is what Apply needs from a parser.
type Registrar interface {
	Register(spelling string, behavior flags.Behavior) error
	SetOperandLimit(limit int) error
}

// Apply registers every rule of every file, in order. The last file that sets an
// operand limit wins. The first failure stops the walk and names its file.
func Apply(files []*File, reg Registrar) error {
	for _, f := range files {
		for _, r := range f.Rules {
			behavior, err := flags.ParseBehavior(r.Behavior)
			if err != nil {
				return fmt.Errorf("%s: rule %q: %w", f.Path, r.Spelling, err)
			}

			err = reg.Register(r.Spelling, behavior)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Path, err)
			}
		}

		if f.OperandLimit != nil {
			err := reg.SetOperandLimit(*f.OperandLimit)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Path, err)
			}
		}
	}

	return nil
}

// Load reads a single rule file, choosing the decoder by extension
// (.toml, .yaml or .yml). Unknown keys are rejected.
func Load(path string) (*File, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule file: %w", err)
	}

	f := &File{Path: path}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, f)
	case ".yaml", ".yml":
		err = decodeYAML(data, f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return f, nil
}

// LoadAll loads every file matched by patterns, in sorted path order.
func LoadAll(patterns ...string) ([]*File, error) {
	paths, err := Match(patterns...)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRuleFiles, strings.Join(patterns, " "))
	}

	files := make([]*File, 0, len(paths))

	for _, path := range paths {
		f, err := Load(path)
		if err != nil {
			return nil, err
		}

		files = append(files, f)
	}

	return files, nil
}

func decodeTOML(data []byte, f *File) error {
	md, err := toml.Decode(string(data), f)
	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownKey, undecoded[0].String())
	}

	return nil
}

func decodeYAML(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(f)
	if errors.Is(err, io.EOF) {
		// empty document
		return nil
	}

	return err
}

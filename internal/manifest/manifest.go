// Package manifest loads relations.yaml files describing which unit relations
// a package declares and where their operators are generated.
package manifest

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/measures/pkg/relation"
)

const (
	DefaultOutput        = "zz_generated.relations.go"
	DefaultMeasureImport = "github.com/zeusync/measures/pkg/measure"
	DefaultNumImport     = "github.com/zeusync/measures/pkg/num"
)

var ErrInvalidManifest = errors.New("invalid manifest")

// Uncertainty names the uncertainty model of the declared measures. It is
// validated and recorded in the generated file but changes no arithmetic.
type Uncertainty string

const (
	UncertaintyNone      Uncertainty = "none"
	UncertaintySymmetric Uncertainty = "symmetric"
	UncertaintyTwoSided  Uncertainty = "two_sided"
)

func (u Uncertainty) Valid() bool {
	switch u {
	case UncertaintyNone, UncertaintySymmetric, UncertaintyTwoSided:
		return true
	default:
		return false
	}
}

// Manifest represents one relations.yaml file
type Manifest struct {
	Package       string      `yaml:"package"`
	Output        string      `yaml:"output,omitempty"`
	MeasureImport string      `yaml:"measure_import,omitempty"`
	NumImport     string      `yaml:"num_import,omitempty"`
	Uncertainty   Uncertainty `yaml:"uncertainty,omitempty"`
	Relations     []string    `yaml:"relations"`

	// Path is the file the manifest was read from, empty for readers. Dir,
	// when set, overrides the directory of the generated file.
	Path string `yaml:"-"`
	Dir  string `yaml:"-"`
}

// LoadYAML loads a manifest from a YAML reader, fills in defaults and
// validates it. Unknown keys are rejected.
func LoadYAML(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidManifest)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile loads the manifest stored at path.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	m, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

func (m *Manifest) applyDefaults() {
	if m.Output == "" {
		m.Output = DefaultOutput
	}
	if m.MeasureImport == "" {
		m.MeasureImport = DefaultMeasureImport
	}
	if m.NumImport == "" {
		m.NumImport = DefaultNumImport
	}
	if m.Uncertainty == "" {
		m.Uncertainty = UncertaintyNone
	}
}

// Validate checks the manifest fields. Relations themselves are checked by
// Resolve.
func (m *Manifest) Validate() error {
	if !token.IsIdentifier(m.Package) {
		return fmt.Errorf("%w: package %q is not a Go identifier", ErrInvalidManifest, m.Package)
	}
	if filepath.Base(m.Output) != m.Output || !strings.HasSuffix(m.Output, ".go") || strings.HasSuffix(m.Output, "_test.go") {
		return fmt.Errorf("%w: output %q must be a non-test .go file name", ErrInvalidManifest, m.Output)
	}
	if m.MeasureImport == "" || m.NumImport == "" {
		return fmt.Errorf("%w: import paths must not be empty", ErrInvalidManifest)
	}
	if !m.Uncertainty.Valid() {
		return fmt.Errorf("%w: uncertainty %q is not one of none, symmetric, two_sided", ErrInvalidManifest, m.Uncertainty)
	}
	if len(m.Relations) == 0 {
		return fmt.Errorf("%w: no relations declared", ErrInvalidManifest)
	}
	return nil
}

// Resolve compiles every relation into a single set, failing on the first
// rejected relation.
func (m *Manifest) Resolve() (*relation.Set, error) {
	set := relation.NewSet()
	for i, text := range m.Relations {
		if _, err := set.Add(text); err != nil {
			return nil, fmt.Errorf("%w: relations[%d]: %w", ErrInvalidManifest, i, err)
		}
	}
	return set, nil
}

// OutputPath is the generated file location: in Dir when set, otherwise next
// to the manifest.
func (m *Manifest) OutputPath() string {
	if m.Dir != "" {
		return filepath.Join(m.Dir, m.Output)
	}
	return filepath.Join(filepath.Dir(m.Path), m.Output)
}

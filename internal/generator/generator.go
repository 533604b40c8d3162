// Package generator renders resolved relation operators as Go source.
package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zeusync/measures/internal/manifest"
	"github.com/zeusync/measures/internal/observability/log"
	"github.com/zeusync/measures/pkg/relation"
)

type Generator struct {
	log log.Log
}

// New returns a Generator logging to logger, or to the process logger when
// logger is nil.
func New(logger log.Log) *Generator {
	if logger == nil {
		logger = log.Provide()
	}
	return &Generator{log: logger}
}

type fileData struct {
	Source        string
	Uncertainty   manifest.Uncertainty
	Package       string
	MeasureImport string
	NumImport     string
	Funcs         []funcData
}

type funcData struct {
	Name     string
	Doc      string
	Relation string
	Params   string
	Result   string
	Body     string
}

// Generate renders one function per operator, in the given order, as a
// gofmt'ed Go file of the manifest's package.
func (g *Generator) Generate(m *manifest.Manifest, ops []relation.Operator) ([]byte, error) {
	data := fileData{
		Uncertainty:   m.Uncertainty,
		Package:       m.Package,
		MeasureImport: m.MeasureImport,
		NumImport:     m.NumImport,
		Funcs:         make([]funcData, 0, len(ops)),
	}
	if m.Path != "" {
		data.Source = filepath.Base(m.Path)
	}

	for _, op := range ops {
		fn, err := render(op)
		if err != nil {
			return nil, err
		}
		g.log.Debug("operator",
			log.String("name", fn.Name),
			log.String("relation", op.Relation),
			log.Bool("dimensionless", op.Dimensionless()),
		)
		data.Funcs = append(data.Funcs, fn)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("generator: execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generator: format %s: %w", m.Output, err)
	}
	return src, nil
}

// Write resolves the manifest, generates its file and writes it next to the
// manifest. It returns the written path.
func (g *Generator) Write(m *manifest.Manifest) (string, error) {
	start := time.Now()

	set, err := m.Resolve()
	if err != nil {
		return "", err
	}
	g.log.Debug("resolved", log.String("manifest", m.Path), log.Strings("relations", m.Relations))

	src, err := g.Generate(m, set.Operators())
	if err != nil {
		return "", err
	}

	path := m.OutputPath()
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("generator: write: %w", err)
	}

	g.log.Info("generated",
		log.String("manifest", m.Path),
		log.String("output", path),
		log.Int("relations", len(m.Relations)),
		log.Int("operators", set.Len()),
		log.Any("uncertainty", m.Uncertainty),
		log.Duration("took", time.Since(start)),
	)
	return path, nil
}

// Explain resolves a single relation and returns a line per operator with its
// function name and meaning.
func Explain(text string) ([]string, error) {
	r, err := relation.Parse(text)
	if err != nil {
		return nil, err
	}
	ops := relation.Resolve(r)
	lines := make([]string, 0, len(ops)+1)
	lines = append(lines, "normalised: "+r.String())
	for _, op := range ops {
		lines = append(lines, op.Name()+": "+op.String())
	}
	return lines, nil
}

func render(op relation.Operator) (funcData, error) {
	fn := funcData{
		Name:     op.Name(),
		Doc:      op.String(),
		Relation: op.Relation,
		Result:   typeOf(op.Result),
	}
	l, r := op.Left, op.Right

	switch op.Kind {
	case relation.KindInv:
		fn.Params = param("l", l)
		fn.Body = literal(op.Result, "1 / l.Value")
		return fn, nil

	case relation.KindMul, relation.KindDiv:
		if r.Dim != 1 && l.Dim != 1 {
			break
		}
		sym := " * "
		if op.Kind == relation.KindDiv {
			sym = " / "
		}
		fn.Params = param("l", l) + ", " + param("r", r)
		switch {
		case op.Dimensionless():
			fn.Body = "l.Value" + sym + "r.Value"
		case l.Dim == 1 && r.Dim == 1:
			fn.Body = literal(op.Result, "l.Value"+sym+"r.Value")
		case l.Dim == 1:
			fn.Body = literal(op.Result, componentwise(r.Dim, func(c string) string { return "l.Value" + sym + "r." + c })...)
		default:
			fn.Body = literal(op.Result, componentwise(l.Dim, func(c string) string { return "l." + c + sym + "r.Value" })...)
		}
		return fn, nil

	case relation.KindDot:
		if l.Dim != r.Dim || l.Dim == 1 {
			break
		}
		terms := componentwise(l.Dim, func(c string) string { return "l." + c + "*r." + c })
		fn.Params = param("l", l) + ", " + param("r", r)
		fn.Body = literal(op.Result, strings.Join(terms, " + "))
		return fn, nil

	case relation.KindCross:
		fn.Params = param("l", l) + ", " + param("r", r)
		switch {
		case l.Dim == 2 && r.Dim == 2:
			fn.Body = literal(op.Result, "l.X*r.Y - l.Y*r.X")
			return fn, nil
		case l.Dim == 3 && r.Dim == 3:
			fn.Body = literal(op.Result, "l.Y*r.Z - l.Z*r.Y", "l.Z*r.X - l.X*r.Z", "l.X*r.Y - l.Y*r.X")
			return fn, nil
		}
	}
	return funcData{}, fmt.Errorf("generator: cannot render %s", op.Signature())
}

var components = []string{"X", "Y", "Z"}

func componentwise(dim int, f func(c string) string) []string {
	out := make([]string, dim)
	for i := range dim {
		out[i] = f(components[i])
	}
	return out
}

func typeOf(o relation.Operand) string {
	switch {
	case o.Unit == "":
		return "N"
	case o.Dim == 2:
		return "measure.Measure2d[" + o.Unit + ", N]"
	case o.Dim == 3:
		return "measure.Measure3d[" + o.Unit + ", N]"
	default:
		return "measure.Measure[" + o.Unit + ", N]"
	}
}

func param(name string, o relation.Operand) string {
	return name + " " + typeOf(o)
}

// literal builds the composite literal of a measure of o's type from one
// expression per component.
func literal(o relation.Operand, exprs ...string) string {
	if o.Unit == "" {
		return exprs[0]
	}
	if o.Dim == 1 {
		return typeOf(o) + "{Value: " + exprs[0] + "}"
	}
	fields := make([]string, len(exprs))
	for i, e := range exprs {
		fields[i] = components[i] + ": " + e
	}
	return typeOf(o) + "{" + strings.Join(fields, ", ") + "}"
}

package generator

import "text/template"

var fileTemplate = template.Must(template.New("relations").Parse(`// Code generated by unitsgen. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}
// Uncertainty: {{.Uncertainty}}

package {{.Package}}

import (
	measure "{{.MeasureImport}}"
	num "{{.NumImport}}"
)
{{range .Funcs}}
// {{.Name}} computes {{.Doc}}.
// Declared by {{printf "%q" .Relation}}.
func {{.Name}}[N num.Float]({{.Params}}) {{.Result}} {
	return {{.Body}}
}
{{end}}`))

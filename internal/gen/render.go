// Package gen renders Go client methods from restspec endpoint definitions.
//
// One file is emitted per namespace. Method bodies are deliberately thin:
// guard required arguments, build the URL path, populate query parameters,
// delegate to the transport. Regenerating against an unchanged spec produces
// byte-identical output, and methods keep their prior declaration order when
// the spec changes.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"

	"github.com/matthewbaird/searchclient/internal/restspec"
)

// Generate renders every module. existing maps file names to prior generated
// content, used to preserve method order. The result maps file names to
// gofmt-formatted source.
func Generate(endpoints []restspec.Endpoint, s Settings, existing map[string][]byte) (map[string][]byte, error) {
	out := map[string][]byte{}
	for _, m := range group(endpoints, s) {
		m.reorder(priorOrder(existing[m.FileName()]))
		src, err := Render(m, s.Output.Package)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", m.FileName(), err)
		}
		out[m.FileName()] = src
	}
	return out, nil
}

// Render emits one generated file for the module.
func Render(m Module, pkg string) ([]byte, error) {
	fd := fileData{
		Package:   pkg,
		Namespace: m.Namespace,
		TypeName:  m.TypeName(),
	}
	if m.Namespace != "" {
		fd.NewFunc = "new" + fd.TypeName
	}
	for _, ep := range m.Endpoints {
		fd.Methods = append(fd.Methods, buildMethod(ep, fd.TypeName))
	}
	fd.Imports = imports(fd)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, fd); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting output: %w\n%s", err, buf.String())
	}
	return src, nil
}

// ─── Render model ────────────────────────────────────────────────────────────

type fileData struct {
	Package   string
	Imports   []string
	Namespace string
	TypeName  string
	NewFunc   string
	Methods   []methodData
}

// fieldData is one request-struct field. Fields render with a blank line
// between them so no two fields share a gofmt alignment run; output is then
// stable regardless of neighboring field name lengths.
type fieldData struct {
	Name    string
	Type    string
	Comment string
}

type methodData struct {
	Name       string
	StructName string
	Signature  string
	DocLines   []string
	Fields     []fieldData
	Body       []string // pre-indented statement lines
}

// ─── Method construction ─────────────────────────────────────────────────────

func buildMethod(ep restspec.Endpoint, typeName string) methodData {
	md := methodData{Name: ep.MethodName}
	md.StructName = restspec.ToPascal(strings.ReplaceAll(ep.Name, ".", "_")) + "Request"

	required := ep.RequiredParts()
	optional := ep.OptionalParts()

	// Struct fields: parts in path order, then Body, then query params.
	for _, part := range append(append([]restspec.Part{}, required...), optional...) {
		md.Fields = append(md.Fields, fieldData{
			Name:    restspec.ToPascal(part.Name),
			Type:    partGoType(part),
			Comment: ensurePeriod(part.Description),
		})
	}
	if ep.Body != nil {
		md.Fields = append(md.Fields, fieldData{
			Name:    "Body",
			Type:    "io.Reader",
			Comment: ensurePeriod(ep.Body.Description),
		})
	}
	for _, p := range ep.Params {
		md.Fields = append(md.Fields, fieldData{
			Name:    restspec.ToPascal(p.Name),
			Type:    paramGoType(p),
			Comment: paramComment(p),
		})
	}

	headOnly := isHeadOnly(ep)
	retType := "(*Response, error)"
	if headOnly {
		retType = "(bool, error)"
	}
	md.Signature = fmt.Sprintf("func (c *%s) %s(ctx context.Context, req *%s, opts ...RequestOption) %s {",
		typeName, ep.MethodName, md.StructName, retType)

	md.DocLines = docLines(ep)
	md.Body = buildBody(ep, md.StructName, required, headOnly)
	return md
}

func buildBody(ep restspec.Endpoint, structName string, required []restspec.Part, headOnly bool) []string {
	var b []string
	zero := "nil"
	if headOnly {
		zero = "false"
	}

	// Guards for required parts and required body.
	type guard struct{ cond, arg string }
	var guards []guard
	for _, part := range required {
		guards = append(guards, guard{emptyCheck("req."+restspec.ToPascal(part.Name), part.Type == "list"), part.Name})
	}
	if ep.Body != nil && ep.Body.Required {
		guards = append(guards, guard{"req.Body == nil", "body"})
	}
	if len(guards) > 0 {
		for i, g := range guards {
			cond := g.cond
			if i == 0 {
				cond = "req == nil || " + cond
			}
			b = append(b,
				"\tif "+cond+" {",
				fmt.Sprintf("\t\treturn %s, errMissing(%q, %q)", zero, ep.MethodName, g.arg),
				"\t}")
		}
	} else {
		b = append(b,
			"\tif req == nil {",
			"\t\treq = &"+structName+"{}",
			"\t}")
	}
	b = append(b, "")

	// Path (and method, when it varies by path variant).
	variants := append([]restspec.Path{}, ep.Paths...)
	sort.SliceStable(variants, func(i, j int) bool { return len(variants[i].Parts) > len(variants[j].Parts) })
	methodVaries := false
	for _, v := range variants[1:] {
		if primaryMethod(v) != primaryMethod(variants[0]) {
			methodVaries = true
		}
	}
	postWithBody := ep.Body != nil && !ep.Body.Required && hasMethods(ep, "GET", "POST") && !methodVaries

	if len(variants) == 1 {
		b = append(b, "\tpath := "+pathExpr(variants[0]))
	} else {
		decl := "\tvar path string"
		if methodVaries {
			decl = "\tvar path, method string"
		}
		b = append(b, decl, "\tswitch {")
		for i, v := range variants {
			if i < len(variants)-1 {
				b = append(b, "\tcase "+variantCond(v, required)+":")
			} else {
				b = append(b, "\tdefault:")
			}
			b = append(b, "\t\tpath = "+pathExpr(v))
			if methodVaries {
				b = append(b, fmt.Sprintf("\t\tmethod = %q", primaryMethod(v)))
			}
		}
		b = append(b, "\t}")
	}
	if postWithBody {
		b = append(b, "", "\tmethod := \"GET\"", "\tif req.Body != nil {", "\t\tmethod = \"POST\"", "\t}")
	}
	b = append(b, "")

	// Query parameters.
	b = append(b, "\tparams := url.Values{}")
	for _, p := range ep.Params {
		field := "req." + restspec.ToPascal(p.Name)
		var cond, value string
		switch p.Type {
		case "boolean":
			cond = field + " != nil"
			value = "strconv.FormatBool(*" + field + ")"
		case "number":
			cond = field + " != nil"
			value = "strconv.Itoa(*" + field + ")"
		case "list":
			cond = "len(" + field + ") > 0"
			value = "strings.Join(" + field + ", \",\")"
		default: // string, enum, time
			cond = field + ` != ""`
			value = field
		}
		b = append(b,
			"\tif "+cond+" {",
			fmt.Sprintf("\t\tparams.Set(%q, %s)", p.Name, value),
			"\t}")
	}
	b = append(b, "")

	// Request construction and dispatch.
	methodExpr := fmt.Sprintf("%q", primaryMethod(variants[0]))
	if methodVaries || postWithBody {
		methodExpr = "method"
	}
	reqExpr := fmt.Sprintf("\tr := &Request{Method: %s, Path: path, Params: params", methodExpr)
	if ep.Body != nil {
		contentType := "application/json"
		if ep.Body.NDJSON {
			contentType = "application/x-ndjson"
		}
		reqExpr += fmt.Sprintf(", Body: req.Body, ContentType: %q", contentType)
	}
	reqExpr += "}"
	b = append(b, reqExpr, "\tapplyOptions(r, opts)")

	switch {
	case ep.Name == "ping":
		b = append(b,
			"\tres, err := c.tp.Perform(ctx, r)",
			"\tif err != nil {",
			"\t\treturn false, nil",
			"\t}",
			"\treturn res.StatusCode < 300, nil")
	case headOnly:
		b = append(b,
			"\tres, err := c.tp.Perform(ctx, r)",
			"\tif err != nil {",
			"\t\treturn false, err",
			"\t}",
			"\treturn res.StatusCode < 300, nil")
	default:
		b = append(b, "\treturn c.tp.Perform(ctx, r)")
	}
	return b
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func isHeadOnly(ep restspec.Endpoint) bool {
	for _, p := range ep.Paths {
		for _, m := range p.Methods {
			if m != "HEAD" {
				return false
			}
		}
	}
	return true
}

func hasMethods(ep restspec.Endpoint, want ...string) bool {
	seen := map[string]bool{}
	for _, p := range ep.Paths {
		for _, m := range p.Methods {
			seen[m] = true
		}
	}
	for _, m := range want {
		if !seen[m] {
			return false
		}
	}
	return true
}

func primaryMethod(p restspec.Path) string {
	return p.Methods[0]
}

func emptyCheck(field string, list bool) string {
	if list {
		return "len(" + field + ") == 0"
	}
	return field + ` == ""`
}

// variantCond selects this path variant when all its non-required parts are set.
func variantCond(p restspec.Path, required []restspec.Part) string {
	req := map[string]bool{}
	for _, r := range required {
		req[r.Name] = true
	}
	var conds []string
	for _, part := range p.Parts {
		if req[part.Name] {
			continue
		}
		field := "req." + restspec.ToPascal(part.Name)
		if part.Type == "list" {
			conds = append(conds, "len("+field+") > 0")
		} else {
			conds = append(conds, field+` != ""`)
		}
	}
	return strings.Join(conds, " && ")
}

// pathExpr builds the Go concatenation expression for a path variant.
func pathExpr(p restspec.Path) string {
	var parts []string
	rest := p.Path
	for {
		i := strings.IndexByte(rest, '{')
		if i < 0 {
			if rest != "" {
				parts = append(parts, fmt.Sprintf("%q", rest))
			}
			break
		}
		if i > 0 {
			parts = append(parts, fmt.Sprintf("%q", rest[:i]))
		}
		j := strings.IndexByte(rest, '}')
		name := rest[i+1 : j]
		field := "req." + restspec.ToPascal(name)
		if partType(p, name) == "list" {
			parts = append(parts, "strings.Join("+field+", \",\")")
		} else {
			parts = append(parts, "url.PathEscape("+field+")")
		}
		rest = rest[j+1:]
	}
	return strings.Join(parts, " + ")
}

func partType(p restspec.Path, name string) string {
	for _, part := range p.Parts {
		if part.Name == name {
			return part.Type
		}
	}
	return "string"
}

func partGoType(p restspec.Part) string {
	if p.Type == "list" {
		return "[]string"
	}
	return "string"
}

func paramGoType(p restspec.Param) string {
	switch p.Type {
	case "boolean":
		return "*bool"
	case "number":
		return "*int"
	case "list":
		return "[]string"
	default:
		return "string"
	}
}

func paramComment(p restspec.Param) string {
	c := strings.TrimSuffix(p.Description, ".")
	if p.Type == "enum" && len(p.Options) > 0 {
		c += " (" + strings.Join(p.Options, ", ") + ")"
	}
	return ensurePeriod(c)
}

func ensurePeriod(s string) string {
	if s == "" || strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}

func docLines(ep restspec.Endpoint) []string {
	line := "// " + ep.MethodName
	if desc := ep.Documentation.Description; desc != "" {
		line += " " + strings.ToLower(desc[:1]) + desc[1:]
	} else {
		line += " calls the " + ep.Name + " API."
	}
	lines := []string{line}
	if ep.Documentation.URL != "" {
		lines = append(lines, "//", "// See "+ep.Documentation.URL+" for details.")
	}
	return lines
}

// imports computes the import block from rendered content.
func imports(fd fileData) []string {
	need := map[string]bool{"context": true, "net/url": true}
	scan := func(line string) {
		if strings.Contains(line, "strconv.") {
			need["strconv"] = true
		}
		if strings.Contains(line, "strings.") {
			need["strings"] = true
		}
	}
	for _, m := range fd.Methods {
		for _, line := range m.Body {
			scan(line)
		}
		for _, f := range m.Fields {
			if f.Type == "io.Reader" {
				need["io"] = true
			}
		}
	}
	var out []string
	for imp := range need {
		out = append(out, imp)
	}
	sort.Strings(out)
	return out
}

// ─── Template ────────────────────────────────────────────────────────────────

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by cmd/apigen from apispec definitions. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{if .NewFunc}}
// {{.TypeName}} groups the {{.Namespace}} endpoints.
type {{.TypeName}} struct {
	tp Transport
}

func {{.NewFunc}}(tp Transport) *{{.TypeName}} {
	return &{{.TypeName}}{tp: tp}
}
{{end}}
{{- range .Methods}}
// {{.StructName}} holds the parameters for {{.Name}}.
type {{.StructName}} struct {
{{- range $i, $f := .Fields}}
{{- if $i}}
{{end}}
{{- if $f.Comment}}
	// {{$f.Name}}: {{$f.Comment}}
{{- end}}
	{{$f.Name}} {{$f.Type}}
{{- end}}
}

{{range .DocLines}}{{.}}
{{end -}}
{{.Signature}}
{{- range .Body}}
{{.}}
{{- end}}
}

{{end -}}
`))

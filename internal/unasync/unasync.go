// Package unasync mechanically derives the no-context client surface from
// the canonical context-first generated sources.
//
// The rewrite is ordered token replacement with identifier-boundary checks,
// applied line by line. Nothing else changes: comments, blank lines, and
// declaration order survive, so the output is line-for-line structurally
// identical to its input modulo the replaced tokens.
package unasync

import (
	"bytes"
	"strings"
)

// Rule replaces one source token with another. A match is rejected when the
// adjacent source characters would extend an identifier across the token
// edge, so "ctx" never matches inside "pctx" or "ctxt".
type Rule struct {
	From string
	To   string
}

// DefaultRules derives package simple from package searchapi: the generated
// methods lose their context.Context parameter and dispatch with
// context.Background() instead. Rules apply in order on each line, so no
// rule's replacement text may contain a later rule's token; the header rule
// runs last because its replacement names package searchapi.
var DefaultRules = []Rule{
	{From: "package searchapi", To: "package simple"},
	{From: "ctx context.Context, ", To: ""},
	{From: "c.tp.Perform(ctx, r)", To: "c.tp.Perform(context.Background(), r)"},
	{
		From: "// Code generated by cmd/apigen from apispec definitions. DO NOT EDIT.",
		To:   "// Code generated by cmd/syncgen from package searchapi. DO NOT EDIT.",
	},
}

// Apply rewrites src with the given rules and returns the result.
func Apply(src []byte, rules []Rule) []byte {
	lines := bytes.Split(src, []byte("\n"))
	for i, line := range lines {
		lines[i] = []byte(applyLine(string(line), rules))
	}
	return bytes.Join(lines, []byte("\n"))
}

// File rewrites one generated source file with DefaultRules.
func File(src []byte) []byte {
	return Apply(src, DefaultRules)
}

func applyLine(line string, rules []Rule) string {
	for _, r := range rules {
		line = replaceBounded(line, r.From, r.To)
	}
	return line
}

// replaceBounded replaces every occurrence of from whose identifier-edged
// ends sit on identifier boundaries in line.
func replaceBounded(line, from, to string) string {
	if from == "" {
		return line
	}
	var b strings.Builder
	for {
		i := strings.Index(line, from)
		if i < 0 {
			b.WriteString(line)
			return b.String()
		}
		ok := true
		if isIdentByte(from[0]) && i > 0 && isIdentByte(line[i-1]) {
			ok = false
		}
		end := i + len(from)
		if isIdentByte(from[len(from)-1]) && end < len(line) && isIdentByte(line[end]) {
			ok = false
		}
		if ok {
			b.WriteString(line[:i])
			b.WriteString(to)
		} else {
			b.WriteString(line[:end])
		}
		line = line[end:]
	}
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

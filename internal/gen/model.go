package gen

import (
	"regexp"
	"sort"

	"github.com/matthewbaird/searchclient/internal/restspec"
)

// Module is one generated file: a namespace and its endpoints in emit order.
type Module struct {
	Namespace string // "" for root endpoints
	Endpoints []restspec.Endpoint
}

// FileName returns the generated file name for the module.
func (m Module) FileName() string {
	if m.Namespace == "" {
		return "api.go"
	}
	return "api." + m.Namespace + ".go"
}

// TypeName returns the receiver type the module's methods hang off.
// Root endpoints are methods on Client itself.
func (m Module) TypeName() string {
	if m.Namespace == "" {
		return "Client"
	}
	return restspec.ToPascal(m.Namespace) + "API"
}

// group splits endpoints into modules by namespace, root module first, the
// rest sorted by namespace. Endpoints within a module stay in input
// (name-sorted) order; reorder against prior output happens separately.
func group(endpoints []restspec.Endpoint, s Settings) []Module {
	byNS := map[string][]restspec.Endpoint{}
	for _, ep := range endpoints {
		if s.skipped(ep.Name) {
			continue
		}
		byNS[ep.Namespace] = append(byNS[ep.Namespace], ep)
	}
	var names []string
	for ns := range byNS {
		names = append(names, ns)
	}
	sort.Strings(names)
	modules := make([]Module, 0, len(names))
	for _, ns := range names {
		modules = append(modules, Module{Namespace: ns, Endpoints: byNS[ns]})
	}
	return modules
}

var methodDeclRe = regexp.MustCompile(`(?m)^func \(c \*\w+\) (\w+)\(`)

// priorOrder extracts method declaration order from a previously generated
// file so regeneration preserves it.
func priorOrder(src []byte) []string {
	var names []string
	for _, m := range methodDeclRe.FindAllSubmatch(src, -1) {
		names = append(names, string(m[1]))
	}
	return names
}

// reorder arranges the module's endpoints so methods that survived from the
// prior generated file keep their old positions; new methods append in spec
// order.
func (m *Module) reorder(prior []string) {
	if len(prior) == 0 {
		return
	}
	rank := map[string]int{}
	for i, name := range prior {
		rank[name] = i
	}
	sort.SliceStable(m.Endpoints, func(i, j int) bool {
		ri, iOld := rank[m.Endpoints[i].MethodName]
		rj, jOld := rank[m.Endpoints[j].MethodName]
		switch {
		case iOld && jOld:
			return ri < rj
		case iOld:
			return true
		case jOld:
			return false
		default:
			return false // both new: keep spec order
		}
	})
}

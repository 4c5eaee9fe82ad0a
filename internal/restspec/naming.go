package restspec

import "strings"

// goInitialisms matches standard Go initialism casing in generated names.
var goInitialisms = map[string]bool{
	"api": true, "http": true, "id": true, "ip": true, "json": true,
	"sql": true, "tls": true, "ttl": true, "ui": true, "uid": true,
	"uuid": true, "uri": true, "url": true, "xml": true,
}

// ToPascal converts a snake_case spec name to a Go identifier.
func ToPascal(s string) string {
	parts := strings.Split(s, "_")
	for i, p := range parts {
		if len(p) == 0 {
			continue
		}
		if goInitialisms[p] {
			parts[i] = strings.ToUpper(p)
		} else {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "")
}

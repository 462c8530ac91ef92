package resolver

import "strings"

const tokenMarker = "var(--"

// substitute rewrites a value that references a token. The marker is removed
// wholesale, so only values that are exactly one reference resolve; anything
// else (unknown names, compound expressions) passes through unchanged.
func (r *Resolver) substitute(value string) string {
	if !strings.Contains(value, tokenMarker) {
		return value
	}

	name := strings.ReplaceAll(value, tokenMarker, "")
	name = strings.ReplaceAll(name, ")", "")

	if v, ok := r.theme.Token(name); ok {
		return v
	}

	if r.strict {
		r.unresolved.Store(name, struct{}{})
	}
	return value
}

func (r *Resolver) substituteMap(props map[string]string) map[string]string {
	out := make(map[string]string, len(props))
	for k, v := range props {
		out[k] = r.substitute(v)
	}
	return out
}

package generator

import (
	"maps"
	"regexp"

	"github.com/go-faster/errors"
)

// Vars is the substitution table of one field. Templates refer to entries
// as $name$.
type Vars map[string]string

var varPattern = regexp.MustCompile(`\$([a-z_]+)\$`)

// With returns a copy of v extended with the given key/value pairs.
func (v Vars) With(kv ...string) Vars {
	out := make(Vars, len(v)+len(kv)/2)
	maps.Copy(out, v)
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i]] = kv[i+1]
	}
	return out
}

// Expand substitutes every $name$ in s. An unknown name is a generator bug
// and panics.
func (v Vars) Expand(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(m string) string {
		key := m[1 : len(m)-1]
		val, ok := v[key]
		if !ok {
			panic(errors.Errorf("template variable %q is not defined", key))
		}
		return val
	})
}

// Printer receives generated lines. *protogen.GeneratedFile satisfies it.
type Printer interface {
	P(v ...any)
}

// pv prints each line of a template after substitution.
func pv(p Printer, vars Vars, lines ...string) {
	for _, line := range lines {
		p.P(vars.Expand(line))
	}
}

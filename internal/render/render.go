// Package render substitutes {name} placeholders in message templates.
//
// Bindings whose name starts with ColorPrefix carry display markup (a color,
// "bold", "reset") and are emitted in brackets, e.g. {cl1} with value "#ff0000"
// becomes "[#ff0000]". The presentation layer interprets the bracket form.
package render

import (
	"fmt"
	"strings"
)

// ColorPrefix marks bindings that hold color-slot tokens.
const ColorPrefix = "cl"

// Bindings maps placeholder names to their values for one render pass.
type Bindings map[string]string

// Set binds name to the string form of v.
func (b Bindings) Set(name string, v any) Bindings {
	b[name] = fmt.Sprint(v)

	return b
}

// With returns a copy of b extended with name bound to v.
// The receiver is not modified.
func (b Bindings) With(name string, v any) Bindings {
	out := make(Bindings, len(b)+1)
	for k, val := range b {
		out[k] = val
	}

	return out.Set(name, v)
}

// Render replaces every {name} in tmpl with its binding.
// Unknown placeholders and stray braces are copied verbatim, and substituted
// text is never scanned again.
func Render(tmpl string, b Bindings) string {
	var out strings.Builder

	out.Grow(len(tmpl))

	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			out.WriteString(tmpl)

			return out.String()
		}

		out.WriteString(tmpl[:open])
		tmpl = tmpl[open:]

		end := strings.IndexByte(tmpl, '}')
		if end < 0 {
			out.WriteString(tmpl)

			return out.String()
		}

		name := tmpl[1:end]

		value, ok := b[name]
		if !ok {
			out.WriteByte('{')

			tmpl = tmpl[1:]

			continue
		}

		if strings.HasPrefix(name, ColorPrefix) {
			out.WriteString("[" + value + "]")
		} else {
			out.WriteString(value)
		}

		tmpl = tmpl[end+1:]
	}
}

package embed

import "maps"

// Context maps variable names to their values for one resolution scope.
type Context map[string]string

// With returns a copy of c with params overlaid. Later params win.
// The receiver is never modified.
func (c Context) With(params ...Param) Context {
	out := make(Context, len(c)+len(params))
	maps.Copy(out, c)
	for _, p := range params {
		out[p.Key] = p.Value
	}
	return out
}

// Lookup returns the value bound to name.
func (c Context) Lookup(name string) (string, bool) {
	v, ok := c[name]
	return v, ok
}

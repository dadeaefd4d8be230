package eval

import (
	"github.com/timon-lang/timon/lang/parser"
	"github.com/timon-lang/timon/lang/value"
)

// frame is a single lexical scope: a mapping from identifier to value.
type frame struct {
	vars map[string]value.Value
}

func newFrame() *frame {
	return &frame{vars: make(map[string]value.Value)}
}

// Environment is the frame stack plus the global function namespace (spec
// section 3: "Environment"). Function calls only ever see their own call
// frame and the global frame, never the caller's block frames; this is
// implemented by swapping out the active frame stack for the duration of
// a call and restoring it on return.
type Environment struct {
	global    *frame
	functions map[string]*parser.FunctionDef
	active    []*frame // active[0] is always global
}

// NewEnvironment creates an Environment with an empty global frame.
func NewEnvironment() *Environment {
	g := newFrame()
	return &Environment{
		global:    g,
		functions: make(map[string]*parser.FunctionDef),
		active:    []*frame{g},
	}
}

// PushBlock opens a new lexical scope atop the current activation.
func (e *Environment) PushBlock() {
	e.active = append(e.active, newFrame())
}

// PopBlock closes the most recently opened scope.
func (e *Environment) PopBlock() {
	e.active = e.active[:len(e.active)-1]
}

// EnterCall replaces the visible frame stack with [global, call frame] for
// the duration of a function activation, returning a function that
// restores the caller's stack.
func (e *Environment) EnterCall(params map[string]value.Value) func() {
	saved := e.active
	f := newFrame()
	for k, v := range params {
		f.vars[k] = v
	}
	e.active = []*frame{e.global, f}
	return func() { e.active = saved }
}

func (e *Environment) top() *frame {
	return e.active[len(e.active)-1]
}

// Lookup searches visible frames innermost-outward, per spec section 3.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	for i := len(e.active) - 1; i >= 0; i-- {
		if v, ok := e.active[i].vars[name]; ok {
			return v, true
		}
	}
	return value.Value{}, false
}

// DefineLocal introduces name in the current (topmost) frame, reporting
// whether the binding was made. It returns false if the name was already
// bound there (a redeclaration), in which case the binding is left
// untouched.
func (e *Environment) DefineLocal(name string, v value.Value) bool {
	top := e.top()
	if _, exists := top.vars[name]; exists {
		return false
	}
	top.vars[name] = v
	return true
}

// Assign overwrites the nearest enclosing binding of name, reporting
// whether such a binding was found.
func (e *Environment) Assign(name string, v value.Value) bool {
	for i := len(e.active) - 1; i >= 0; i-- {
		if _, ok := e.active[i].vars[name]; ok {
			e.active[i].vars[name] = v
			return true
		}
	}
	return false
}

// HasVariable reports whether name is bound in any currently visible
// frame, used to enforce the variable/function namespace separation.
func (e *Environment) HasVariable(name string) bool {
	_, ok := e.Lookup(name)
	return ok
}

// DefineFunction registers fn in the global namespace, reporting whether
// it was registered; it returns false if the name was already taken by
// another function.
func (e *Environment) DefineFunction(fn *parser.FunctionDef) bool {
	if _, exists := e.functions[fn.Name]; exists {
		return false
	}
	e.functions[fn.Name] = fn
	return true
}

// LookupFunction finds a globally registered function by name.
func (e *Environment) LookupFunction(name string) (*parser.FunctionDef, bool) {
	fn, ok := e.functions[name]
	return fn, ok
}

// HasFunction reports whether name is a registered function.
func (e *Environment) HasFunction(name string) bool {
	_, ok := e.functions[name]
	return ok
}

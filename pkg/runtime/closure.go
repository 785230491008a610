package runtime

//-----------------------------------------------------------------------------
// Capture cells and environments
//-----------------------------------------------------------------------------

// Cell is the shared storage slot for one variable. Lowering promotes every
// captured variable to a cell at closure construction, so a closure that
// escapes its defining scope keeps the variable alive and both sides keep
// observing the same storage.
type Cell struct {
	value Value
}

func NewCell(v Value) *Cell {
	return &Cell{value: v}
}

func (c *Cell) Get() Value {
	return c.value
}

func (c *Cell) Set(v Value) {
	c.value = v
}

// Environment is the captured-environment record: the named cells a scope
// owns, linked to the enclosing scope's record.
type Environment struct {
	parent *Environment
	cells  map[string]*Cell
}

func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, cells: make(map[string]*Cell)}
}

// Child opens a nested scope record.
func (e *Environment) Child() *Environment {
	return NewEnvironment(e)
}

// Define allocates a fresh cell for name in this scope and returns it.
func (e *Environment) Define(name string, v Value) *Cell {
	cell := NewCell(v)
	e.cells[name] = cell
	return cell
}

// Bind shares an existing cell under name in this scope. Capture lowering
// uses it to alias an outer variable instead of copying its value.
func (e *Environment) Bind(name string, cell *Cell) {
	e.cells[name] = cell
}

// Resolve finds the cell for name, searching enclosing scopes outward.
func (e *Environment) Resolve(name string) (*Cell, bool) {
	for env := e; env != nil; env = env.parent {
		if cell, ok := env.cells[name]; ok {
			return cell, true
		}
	}
	return nil, false
}

// Get reads the current value of name at call time.
func (e *Environment) Get(name string) (Value, bool) {
	cell, ok := e.Resolve(name)
	if !ok {
		return nil, false
	}
	return cell.Get(), true
}

// Set writes through to the nearest definition of name, reporting whether
// one exists. The write is visible to every scope sharing the cell.
func (e *Environment) Set(name string, v Value) bool {
	cell, ok := e.Resolve(name)
	if !ok {
		return false
	}
	cell.Set(v)
	return true
}

//-----------------------------------------------------------------------------
// Closures
//-----------------------------------------------------------------------------

// Code is the uniform two-slot entry point every lowered function literal
// compiles to. arg carries the first logical parameter; pad carries the
// second or, for one-parameter bodies, the unused padding value. The fixed
// shape lets heterogeneous closures share one callable type.
type Code func(env *Environment, arg, pad Value) Value

// Closure pairs a code reference with the environment captured where the
// function literal appeared. Captures are by reference: the closure reads
// and writes the live cells, not snapshots taken at creation time.
type Closure struct {
	Name string
	Code Code
	Env  *Environment
}

func NewClosure(name string, code Code, env *Environment) *Closure {
	return &Closure{Name: name, Code: code, Env: env}
}

func (c *Closure) Kind() Kind { return KindClosure }

// Invoke calls through the uniform convention, filling the padding slot.
func (c *Closure) Invoke(arg Value) Value {
	return c.Code(c.Env, arg, NilValue{})
}

// Invoke2 passes both slots for two-parameter bodies.
func (c *Closure) Invoke2(a, b Value) Value {
	return c.Code(c.Env, a, b)
}

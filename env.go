package jaksel

import "fmt"

// Environment is one lexical scope frame with a link to its enclosing scope.
// Lookups and assignments walk outward through the chain; declarations
// always bind in the innermost frame, shadowing any outer binding.
type Environment struct {
	enclosing *Environment
	values    map[string]Value
}

// NewEnvironment creates a frame nested inside enclosing (nil for the
// global frame).
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]Value)}
}

// Define binds name in this frame, overwriting any existing binding here.
func (e *Environment) Define(name string, v Value) {
	e.values[name] = v
}

// Get returns the nearest visible binding for name, walking outward until
// the chain is exhausted.
func (e *Environment) Get(name Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return Nil, undefined(name)
}

// Assign mutates the nearest existing binding of name. Assignment never
// implicitly creates a binding; only Define (literally) does.
func (e *Environment) Assign(name Token, v Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = v
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return undefined(name)
}

func undefined(name Token) *RuntimeError {
	return &RuntimeError{Token: name, Msg: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

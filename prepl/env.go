package main

import (
	"fmt"
)

// Variable environment for the REPL. The calculator language knows
// let-statements, which bind single-letter variables; bindings live in a
// single flat scope.
//

// --- Vars -------------------------------------------------------

// Var is a variable binding to be stored into an environment. Variables of
// the calculator always hold integer values.
type Var struct {
	name  string
	Value int
}

// NewVar creates a new variable binding.
func NewVar(nm string) *Var {
	var v = &Var{
		name: nm,
	}
	return v
}

// WithValue sets the initial value of a variable. Use as
//
//    v := NewVar("x").WithValue(7)
//
func (v *Var) WithValue(n int) *Var {
	v.Value = n
	return v
}

// String is a debug Stringer for variables.
func (v *Var) String() string {
	return fmt.Sprintf("<var '%s'=%d>", v.Name(), v.Value)
}

// Name gets the variable's name.
func (v *Var) Name() string {
	return v.name
}

// === Environments ==========================================================

// Env is an environment to store variables (map-like semantics). It also
// carries the last evaluation error: semantic actions cannot abort a
// parse, so actions flag failures here and the REPL checks after the
// parse.
type Env struct {
	Table map[string]*Var
	err   error
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	var env = Env{
		Table: make(map[string]*Var),
	}
	return &env
}

// Resolve checks for a variable in the environment.
// Returns a variable or nil.
func (e *Env) Resolve(name string) *Var {
	v := e.Table[name] // get variable by name
	return v
}

// Def creates a new variable to store into the environment.
// The variable's name may not be empty.
// Overwrites an existing variable with this name, if any.
// Returns the new variable and the previously stored one (or nil).
func (e *Env) Def(name string) (*Var, *Var) {
	if len(name) == 0 {
		return nil, nil
	}
	v := NewVar(name)
	old := e.Resolve(name)
	e.Table[name] = v
	return v, old
}

// Size counts the variables in an environment.
func (e *Env) Size() int {
	return len(e.Table)
}

// Each iterates over each variable in the environment, executing a mapper
// function.
func (e *Env) Each(mapper func(string, *Var)) {
	for k, v := range e.Table {
		mapper(k, v)
	}
}

// Error flags an evaluation error, or clears it with nil.
func (e *Env) Error(err error) {
	e.err = err
}

// LastError returns the error of the last evaluation, if any.
func (e *Env) LastError() error {
	return e.err
}

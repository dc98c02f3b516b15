package pcc

import "fmt"

// NameError reports a name which cannot be used for a grammar symbol or a
// lexical rule, either because it is malformed or because it is reserved.
type NameError struct {
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("invalid name %q: %s", e.Name, e.Reason)
}

// DuplicateNameError reports a lexical rule name which is already
// registered with the scanner.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("name %q is already registered", e.Name)
}

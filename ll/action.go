package ll

import "fmt"

// --- Semantic actions ------------------------------------------------------

// Action is the semantic action attached to a production. Actions are
// evaluated bottom-up while parsing: a production's action runs after the
// complete right-hand side has been matched and all child values exist.
//
// Action is a closed union of Compute and Constant. A nil action is
// treated as Constant{} by the grammar builder.
type Action interface {
	isAction()
}

// Compute is an action which derives the production's value from the
// values of its right-hand side. Matched terminals contribute their
// lexeme text as string values, nonterminals contribute the result of
// their own production's action, and epsilon contributes nothing.
type Compute func(children []interface{}) interface{}

func (c Compute) isAction() {}

// Constant is an action with a fixed value, ignoring the children.
type Constant struct {
	Value interface{}
}

func (c Constant) isAction() {}

// eval evaluates an action over the children's values.
func eval(a Action, children []interface{}) interface{} {
	switch action := a.(type) {
	case Compute:
		return action(children)
	case Constant:
		return action.Value
	case nil:
		return nil
	}
	panic(fmt.Sprintf("unknown action type %T", a))
}

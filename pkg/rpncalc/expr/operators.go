package expr

import "fmt"

// Assoc is the associativity class of an operator.
type Assoc int

const (
	// LeftAssoc groups repeated operators left to right.
	LeftAssoc Assoc = iota
	// RightAssoc groups repeated operators right to left.
	RightAssoc
)

// OpInfo describes how an operator binds.
type OpInfo struct {
	Precedence int
	Assoc      Assoc
}

// Table maps operator symbols to their binding rules.
// Tables are immutable; the zero value has no operators.
type Table struct {
	name string
	ops  map[string]OpInfo
}

// NewTable creates a table from a copy of ops.
func NewTable(name string, ops map[string]OpInfo) Table {
	m := make(map[string]OpInfo, len(ops))
	for k, v := range ops {
		m[k] = v
	}
	return Table{name: name, ops: m}
}

// Name returns the table name.
func (t Table) Name() string {
	return t.name
}

// IsZero reports whether t is the zero Table, which has no operators.
func (t Table) IsZero() bool {
	return t.ops == nil
}

// Lookup returns the binding rules for op.
func (t Table) Lookup(op string) (OpInfo, bool) {
	info, ok := t.ops[op]
	return info, ok
}

// UniformTable ranks every operator equally, all left-associative.
var UniformTable = NewTable("uniform", map[string]OpInfo{
	"+": {Precedence: 1, Assoc: LeftAssoc},
	"-": {Precedence: 1, Assoc: LeftAssoc},
	"*": {Precedence: 1, Assoc: LeftAssoc},
	"/": {Precedence: 1, Assoc: LeftAssoc},
})

// StandardTable ranks * and / above + and -, all left-associative.
var StandardTable = NewTable("standard", map[string]OpInfo{
	"+": {Precedence: 2, Assoc: LeftAssoc},
	"-": {Precedence: 2, Assoc: LeftAssoc},
	"*": {Precedence: 3, Assoc: LeftAssoc},
	"/": {Precedence: 3, Assoc: LeftAssoc},
})

// TableByName returns the built-in table called name ("uniform" or "standard").
// An empty name selects UniformTable.
func TableByName(name string) (Table, error) {
	switch name {
	case "", UniformTable.name:
		return UniformTable, nil
	case StandardTable.name:
		return StandardTable, nil
	default:
		return Table{}, fmt.Errorf("unknown precedence table: %s", name)
	}
}

// isOperator reports whether r is one of the four arithmetic operators.
func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/':
		return true
	}
	return false
}

// apply computes a op b with IEEE-754 semantics.
func apply(op string, a, b float64) float64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	default:
		return a / b
	}
}

// outranks reports whether the stacked operator top must be emitted before
// cur is pushed.
func (t Table) outranks(top, cur string) bool {
	topInfo, ok := t.Lookup(top)
	if !ok {
		return false
	}
	curInfo, ok := t.Lookup(cur)
	if !ok {
		return false
	}
	if curInfo.Assoc == LeftAssoc {
		return curInfo.Precedence <= topInfo.Precedence
	}
	return curInfo.Precedence < topInfo.Precedence
}

package peg

// memoKey identifies one rule invocation: the rule name, the argument
// fingerprint for parameterized primitives, and the cursor position
// at the time of the call.
type memoKey struct {
	name string
	arg  string
	pos  int
}

// memoEntry records the outcome of a rule invocation. Entries are
// stored by pointer: the growth engine updates a left-recursive
// rule's entry in place, and re-entrant calls at the same position
// must observe the latest grown result, not a snapshot.
type memoEntry struct {
	result *Node
	pos    int
}

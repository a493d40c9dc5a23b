// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package automaton

// Edge is one outgoing transition: reading Letter moves to To.
type Edge[A any, S any] struct {
	Letter A
	To     S
}

// Automaton is a nondeterministic automaton over states of type S and an
// alphabet of type A (spec.md section 3): a set of states, a subset marked
// initial, a subset marked accepting, the alphabet actually used, and a
// transition relation S -> []Edge[A,S].
//
// S is not required to be a comparable Go type (the GBA's states are
// fset.Set values, which embed a map and so cannot be map keys directly),
// so the transition relation is indexed by a caller-supplied Key function
// rather than by S itself.
type Automaton[S any, A any] struct {
	States   []S
	Init     []S
	Accept   []S
	Alphabet []A

	key   func(S) string
	trans map[string][]Edge[A, S]
}

// New returns an empty Automaton whose transition relation is indexed by
// key. key must return equal strings for states that should be treated as
// identical.
func New[S any, A any](key func(S) string) *Automaton[S, A] {
	return &Automaton[S, A]{key: key, trans: map[string][]Edge[A, S]{}}
}

// AddState records s among a's states. Callers are responsible for not
// adding the same logical state twice (the worklist-style construction in
// vwaa/gba already deduplicates before calling AddState).
func (a *Automaton[S, A]) AddState(s S) { a.States = append(a.States, s) }

// AddInit marks s as an initial state.
func (a *Automaton[S, A]) AddInit(s S) { a.Init = append(a.Init, s) }

// AddAccept marks s as accepting.
func (a *Automaton[S, A]) AddAccept(s S) { a.Accept = append(a.Accept, s) }

// AddTransition adds the edge from -letter-> to.
func (a *Automaton[S, A]) AddTransition(from S, letter A, to S) {
	k := a.key(from)
	a.trans[k] = append(a.trans[k], Edge[A, S]{Letter: letter, To: to})
}

// Successors returns the outgoing edges of s.
func (a *Automaton[S, A]) Successors(s S) []Edge[A, S] {
	return a.trans[a.key(s)]
}

// Key exposes the automaton's canonical state key, so callers building
// visited-state sets over S can reuse it.
func (a *Automaton[S, A]) Key(s S) string { return a.key(s) }

// NumStates returns len(a.States).
func (a *Automaton[S, A]) NumStates() int { return len(a.States) }

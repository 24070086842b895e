package nfa

import "github.com/arr-ai/frozen"

// genClosureTable computes the epsilon closure of every state by a breadth-first traversal of
// the epsilon transitions. When the traversal reaches a state whose closure is already known,
// that closure is merged instead of being traversed again.
func genClosureTable(states frozen.Set[State], trans map[transitionKey]frozen.Set[State]) map[State]frozen.Set[State] {
	closures := make(map[State]frozen.Set[State], states.Count())
	for _, s := range sortedStates(states) {
		closures[s] = genClosure(s, trans, closures)
	}
	return closures
}

func genClosure(s State, trans map[transitionKey]frozen.Set[State], closures map[State]frozen.Set[State]) frozen.Set[State] {
	if c, ok := closures[s]; ok {
		return c
	}

	closure := frozen.NewSet(s)
	queue := []State{s}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		dests, ok := trans[transitionKey{
			from: current,
			sym:  Epsilon,
		}]
		if !ok {
			continue
		}
		for _, next := range dests.Elements() {
			if closure.Has(next) {
				continue
			}
			if c, ok := closures[next]; ok {
				closure = closure.Union(c)
				continue
			}
			closure = closure.With(next)
			queue = append(queue, next)
		}
	}
	return closure
}

// EpsilonClosure returns the set of states reachable from s using only epsilon transitions,
// including s itself.
func (n *NFA) EpsilonClosure(s State) frozen.Set[State] {
	if c, ok := n.closures[s]; ok {
		return c
	}
	return frozen.NewSet(s)
}

// closureOf returns the union of the epsilon closures of the members of states.
func (n *NFA) closureOf(states frozen.Set[State]) frozen.Set[State] {
	closure := frozen.NewSet[State]()
	for _, s := range states.Elements() {
		closure = closure.Union(n.EpsilonClosure(s))
	}
	return closure
}

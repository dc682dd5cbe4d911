package fuzzy

// Hook intercepts every node visit. k performs the default traversal of the
// node's children: call it to recurse, skip it to prune, or wrap it with
// work on either side. The single family keeps the contract identical to the
// typed tree's hooks, just smaller.
type Hook func(k func(Tree), t Tree)

// Visit walks t depth-first, firing hook at every node. A nil hook is the
// plain recursion.
func Visit(hook Hook, t Tree) {
	if t == nil {
		return
	}
	step := func(n Tree) {
		for _, c := range Children(n) {
			Visit(hook, c)
		}
	}
	if hook == nil {
		step(t)
		return
	}
	hook(step, t)
}

// VisitAll visits a forest in order.
func VisitAll(hook Hook, ts []Tree) {
	for _, t := range ts {
		Visit(hook, t)
	}
}

// Leaves collects every leaf token in source order.
func Leaves(t Tree) []*Leaf {
	var out []*Leaf
	Visit(func(k func(Tree), n Tree) {
		if l, ok := n.(*Leaf); ok {
			out = append(out, l)
		}
		k(n)
	}, t)
	return out
}

// Depth reports the maximum group-nesting depth: 0 for a leaf, 1 for an
// empty group.
func Depth(t Tree) int {
	deepest, depth := 0, 0
	Visit(func(k func(Tree), n Tree) {
		if _, ok := n.(*Leaf); ok {
			k(n)
			return
		}
		depth++
		if depth > deepest {
			deepest = depth
		}
		k(n)
		depth--
	}, t)
	return deepest
}

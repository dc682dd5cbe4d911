package ast

// ResolvedKind says what an identifier use was found to denote.
type ResolvedKind uint8

const (
	NotResolved ResolvedKind = iota
	ResolvedLocal
	ResolvedParameter
	ResolvedModule // imported module alias
	ResolvedGlobal // unit-level symbol, declared here or imported
)

var resolvedNames = map[ResolvedKind]string{
	NotResolved:       "unresolved",
	ResolvedLocal:     "local",
	ResolvedParameter: "param",
	ResolvedModule:    "module",
	ResolvedGlobal:    "global",
}

func (k ResolvedKind) String() string {
	if name, ok := resolvedNames[k]; ok {
		return name
	}
	return "unresolved"
}

// ResolvedName is the resolution slot carried by identifier leaves. A fresh
// leaf starts NotResolved. Exactly one pass may resolve a leaf, once, after
// the tree is built; everyone else only reads, and traversal ignores the slot
// entirely. Single writer, no locking.
type ResolvedName struct {
	kind ResolvedKind
}

// Kind reports the current resolution, NotResolved for the zero value.
func (r *ResolvedName) Kind() ResolvedKind {
	if r == nil {
		return NotResolved
	}
	return r.kind
}

// Resolve writes the slot. The first write wins: resolving an
// already-resolved slot is a no-op and reports false.
func (r *ResolvedName) Resolve(k ResolvedKind) bool {
	if r.kind != NotResolved || k == NotResolved {
		return false
	}
	r.kind = k
	return true
}

//go:build flui_fast_arity && !flui_strict_arity

package arity

// checkArity is a no-op in the fast build: the caller is trusted to have
// already validated the child count at the tree-mutation boundary (see
// pkg/tree), and this function is expected to inline away to nothing.
func checkArity(d Descriptor, got int, debugName string) {}

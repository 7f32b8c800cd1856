package arbor

import "iter"

// Tree is an intrusive parent/child/sibling link set with ordered children.
// The concrete node type embeds a Tree and stores itself in Value so that
// traversals can hand back the owning node.
//
// A node has at most one parent and can never become its own ancestor.
// Structural edits that would break either rule are rejected with a false
// return and leave the tree untouched.
type Tree[T any] struct {
	Value T

	parent      *Tree[T]
	first, last *Tree[T]
	prev, next  *Tree[T]
	count       int
}

// Parent returns the parent link, or nil for a root.
func (t *Tree[T]) Parent() *Tree[T] { return t.parent }

// FirstChild returns the first (bottom-most) child link.
func (t *Tree[T]) FirstChild() *Tree[T] { return t.first }

// LastChild returns the last (top-most) child link.
func (t *Tree[T]) LastChild() *Tree[T] { return t.last }

// PrevSibling returns the sibling before this one.
func (t *Tree[T]) PrevSibling() *Tree[T] { return t.prev }

// NextSibling returns the sibling after this one.
func (t *Tree[T]) NextSibling() *Tree[T] { return t.next }

// Len returns the number of direct children.
func (t *Tree[T]) Len() int { return t.count }

// IsRoot reports whether the node has no parent.
func (t *Tree[T]) IsRoot() bool { return t.parent == nil }

// Root returns the top-most ancestor, which is t itself for a root.
func (t *Tree[T]) Root() *Tree[T] {
	r := t
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Depth returns the number of ancestors.
func (t *Tree[T]) Depth() int {
	d := 0
	for p := t.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Contains reports whether n is t or one of t's descendants.
func (t *Tree[T]) Contains(n *Tree[T]) bool {
	for p := n; p != nil; p = p.parent {
		if p == t {
			return true
		}
	}
	return false
}

// Add inserts child before next, or appends it when next is nil.
// It fails if child is nil, already linked into a tree, is t or an ancestor
// of t, or if next is not a child of t.
func (t *Tree[T]) Add(child, next *Tree[T]) bool {
	if !t.canAdd(child, next) {
		return false
	}

	child.parent = t
	if next == nil {
		child.prev = t.last
		if t.last != nil {
			t.last.next = child
		} else {
			t.first = child
		}
		t.last = child
	} else {
		child.next = next
		child.prev = next.prev
		if next.prev != nil {
			next.prev.next = child
		} else {
			t.first = child
		}
		next.prev = child
	}
	t.count++
	return true
}

// canAdd reports whether Add(child, next) would succeed.
func (t *Tree[T]) canAdd(child, next *Tree[T]) bool {
	if child == nil || child.parent != nil || child.prev != nil || child.next != nil {
		return false
	}
	if child.Contains(t) {
		return false
	}
	return next == nil || next.parent == t
}

// Remove unlinks child from t. It fails if child is not a child of t.
func (t *Tree[T]) Remove(child *Tree[T]) bool {
	if child == nil || child.parent != t {
		return false
	}
	if child.prev != nil {
		child.prev.next = child.next
	} else {
		t.first = child.next
	}
	if child.next != nil {
		child.next.prev = child.prev
	} else {
		t.last = child.prev
	}
	child.parent = nil
	child.prev = nil
	child.next = nil
	t.count--
	return true
}

// Detach removes t from its parent. It fails if t is a root.
func (t *Tree[T]) Detach() bool {
	if t.parent == nil {
		return false
	}
	return t.parent.Remove(t)
}

// RemoveAll unlinks every child. The children become roots.
func (t *Tree[T]) RemoveAll() {
	for c := t.first; c != nil; {
		next := c.next
		c.parent = nil
		c.prev = nil
		c.next = nil
		c = next
	}
	t.first = nil
	t.last = nil
	t.count = 0
}

// Children iterates child values in order (bottom-most first). The current
// child may be removed during iteration.
func (t *Tree[T]) Children() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := t.first; c != nil; {
			next := c.next
			if !yield(c.Value) {
				return
			}
			c = next
		}
	}
}

// Backward iterates child values from the top-most child down.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := t.last; c != nil; {
			prev := c.prev
			if !yield(c.Value) {
				return
			}
			c = prev
		}
	}
}

// Package cotree manipulates nested tree data — sequences, mappings and
// opaque leaves — addressed by path, without ever mutating its inputs.
//
// Every write produces a new root.  Only the nodes on the path to the change
// are cloned; every other subtree is shared by reference between the old and
// the new root, so versions are cheap and old roots stay valid.  Readers may
// share roots freely across goroutines.
//
// Trees are ir.Node values.  Package gotree converts plain Go values, JSON
// and YAML to and from trees.
package cotree

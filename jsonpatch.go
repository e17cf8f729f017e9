package cotree

import (
	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/cotree/cotree/debug"
	"github.com/cotree/cotree/gotree"
	"github.com/cotree/cotree/ir"
)

// ApplyPatch applies an RFC 6902 JSON patch document to a tree and returns
// the patched tree.  The input tree is not modified.  Leaf values round-trip
// through JSON, so non-JSON leaves (times, regexps, markers) come back as
// their JSON renderings.
func ApplyPatch(root *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	d, err := gotree.ToJSON(root)
	if err != nil {
		return nil, err
	}
	if debug.Op() {
		debug.Logf("json-patch %s on %s\n", patch, d)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return gotree.FromJSON(out)
}

// ApplyMergePatch applies an RFC 7386 JSON merge patch to a tree.  Unlike
// Merge, a null in the patch deletes the key it addresses.
func ApplyMergePatch(root *ir.Node, patch []byte) (*ir.Node, error) {
	d, err := gotree.ToJSON(root)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, err
	}
	return gotree.FromJSON(out)
}

package marionette

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// globalDebug enables extra consistency checks on tree operations.
// Off by default; they cost a walk up the tree per AddChild.
var globalDebug bool

// SetDebug toggles debug checks. Marionette is single-threaded; flip this
// during setup.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugMaxTreeDepth is the depth past which a rig is almost certainly
// miswired rather than intentionally deep.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(d *Drawable) {
	depth := 0
	for p := d; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[marionette] warning: tree depth %d exceeds %d (drawable %q)\n",
			depth, debugMaxTreeDepth, d.name)
	}
}

// DumpTree writes an indented listing of the drawable tree to w: one line
// per part with its type, local position, and rotation. Intended for
// debugging rig construction.
func DumpTree(w io.Writer, d *Drawable) {
	dumpTree(w, d, 0)
}

func dumpTree(w io.Writer, d *Drawable, depth int) {
	_, _ = fmt.Fprintf(w, "%s%s [%s] pos=(%g, %g) rot=%g\n",
		strings.Repeat("  ", depth), d.name, typeName(d.Type),
		d.position.X, d.position.Y, d.rotation)
	for _, child := range d.children {
		dumpTree(w, child, depth+1)
	}
}

func typeName(t DrawableType) string {
	switch t {
	case DrawableTypeGroup:
		return "group"
	case DrawableTypePolygon:
		return "polygon"
	case DrawableTypeSprite:
		return "sprite"
	default:
		return "unknown"
	}
}

package fieldpath

import (
	"strconv"
	"strings"
)

// Path is an immutable JSON field path. The zero value is the document root
// and renders as "$". Every builder method returns a new Path; the receiver
// is never modified, so a Path may be shared across decoding branches.
type Path struct {
	parts []string
}

// Root returns the document root path.
func Root() Path {
	return Path{}
}

// Field appends an object field name to the path.
func (p Path) Field(name string) Path {
	return Path{parts: p.extend("." + name)}
}

// Index appends an array element index to the path.
func (p Path) Index(i int) Path {
	return Path{parts: p.extend("[" + strconv.Itoa(i) + "]")}
}

// Key appends a quoted object key to the path. Used for maps keyed by
// arbitrary strings (frame names), where dot notation would be ambiguous.
func (p Path) Key(key string) Path {
	return Path{parts: p.extend("[" + strconv.Quote(key) + "]")}
}

func (p Path) extend(part string) []string {
	parts := make([]string, len(p.parts), len(p.parts)+1)
	copy(parts, p.parts)
	return append(parts, part)
}

// IsRoot returns true if the path has no segments.
func (p Path) IsRoot() bool {
	return len(p.parts) == 0
}

// String returns the full path string. A leading dot is dropped so that
// "frames[2].frame.x" reads like the document, and the bare root is "$".
func (p Path) String() string {
	if len(p.parts) == 0 {
		return "$"
	}

	joined := strings.Join(p.parts, "")

	return strings.TrimPrefix(joined, ".")
}

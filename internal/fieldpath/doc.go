// Package fieldpath builds readable JSON field paths for decode errors.
//
// Paths follow the shape of the document being decoded:
//   - "frames" for a top-level field
//   - "frames[2]" for an array element
//   - "frames[2].frame.x" for a field within an element
//   - `frames["player 0.ase"]` for an object keyed by frame name
package fieldpath

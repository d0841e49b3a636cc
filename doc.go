// Package aseprite loads metadata exported by the Aseprite sprite editor.
// It should go along well with a tile-map loader, one hopes.
//
// It does not load any actual images, just the JSON metadata that describes
// where each frame sits in the sheet, plus animation tags, layers and slices.
// Both of Aseprite's export shapes are understood: the "array" layout
// (--format json-array) and the "hash" layout where frames is an object keyed
// by filename. The shape is detected from the document itself.
//
// Exporting a sprite in a suitable format from the command line looks like:
//
//	aseprite -b boonga.ase --sheet boonga.png --format json-array --data boonga.json
//
// Otherwise go to File -> Export Sprite Sheet and pick "Array" or "Hash" under
// JSON Data.
//
// # Usage
//
//	data, err := os.ReadFile("boonga.json")
//	if err != nil { ... }
//	sheet, err := aseprite.Parse(data)
//	if err != nil { ... }
//	for _, frame := range sheet.Frames.Slice() {
//		// frame.Frame locates the sprite within the sheet image
//	}
//
// Parsing is a pure function over the input bytes: no I/O, no shared state,
// and the returned value is never mutated by this package, so it is safe to
// read from any number of goroutines.
package aseprite

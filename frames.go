package aseprite

import (
	"bytes"
	"encoding/json"

	"github.com/ggez/aseprite/internal/fieldpath"
)

//go:generate go tool stringer -type=FramesForm -output=framesform_string.go

// FramesForm identifies which of the two export shapes a FrameSet came from.
type FramesForm int

const (
	// FormArray is the "array" export layout: frames is a JSON array.
	FormArray FramesForm = iota
	// FormHash is the "hash" export layout: frames is a JSON object keyed
	// by frame name.
	FormHash
)

// FrameSet is the frame collection of a spritesheet export. It is a tagged
// variant over the two shapes Aseprite can emit; the shape is detected from
// the JSON value itself, never declared by the caller. Iteration order is the
// export order for the array shape and the document's key order for the hash
// shape.
type FrameSet struct {
	form   FramesForm
	frames []Frame
	index  map[string]int // hash form: filename -> position
}

// NewFrameArray builds an array-form FrameSet for programmatic producers.
func NewFrameArray(frames []Frame) FrameSet {
	return FrameSet{
		form:   FormArray,
		frames: append([]Frame(nil), frames...),
	}
}

// NewFrameHash builds a hash-form FrameSet keyed by each frame's Filename.
// Order of the given slice is preserved.
func NewFrameHash(frames []Frame) FrameSet {
	fs := FrameSet{
		form:   FormHash,
		frames: append([]Frame(nil), frames...),
		index:  make(map[string]int, len(frames)),
	}

	for i, f := range fs.frames {
		fs.index[f.Filename] = i
	}

	return fs
}

// Form reports which export shape the set came from.
func (fs FrameSet) Form() FramesForm {
	return fs.form
}

// Len returns the number of frames.
func (fs FrameSet) Len() int {
	return len(fs.frames)
}

// At returns the frame at position i in iteration order.
func (fs FrameSet) At(i int) Frame {
	return fs.frames[i]
}

// Slice returns the frames in iteration order. The result is a copy; the set
// itself is never mutated.
func (fs FrameSet) Slice() []Frame {
	return append([]Frame(nil), fs.frames...)
}

// ByName looks a frame up by filename. For the hash shape this is the
// object key; for the array shape the filename fields are scanned.
func (fs FrameSet) ByName(name string) (Frame, bool) {
	if fs.index != nil {
		i, ok := fs.index[name]
		if !ok {
			return Frame{}, false
		}

		return fs.frames[i], true
	}

	for _, f := range fs.frames {
		if f.Filename == name {
			return f, true
		}
	}

	return Frame{}, false
}

// frameBody is a frame as it appears inside the hash shape, where the
// filename lives in the enclosing key instead of the body.
type frameBody struct {
	Frame            Rect       `json:"frame"`
	Rotated          bool       `json:"rotated"`
	Trimmed          bool       `json:"trimmed"`
	SpriteSourceSize Rect       `json:"spriteSourceSize"`
	SourceSize       Dimensions `json:"sourceSize"`
	Duration         int32      `json:"duration"`
}

// MarshalJSON reproduces the original shape: a JSON array for FormArray, an
// object in preserved key order for FormHash (with the filename as the key
// and omitted from the body, matching Aseprite's hash export).
func (fs FrameSet) MarshalJSON() ([]byte, error) {
	if fs.form == FormArray {
		if fs.frames == nil {
			return []byte("[]"), nil
		}

		return json.Marshal(fs.frames)
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, f := range fs.frames {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(f.Filename)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		body, err := json.Marshal(frameBody{
			Frame:            f.Frame,
			Rotated:          f.Rotated,
			Trimmed:          f.Trimmed,
			SpriteSourceSize: f.SpriteSourceSize,
			SourceSize:       f.SourceSize,
			Duration:         f.Duration,
		})
		if err != nil {
			return nil, err
		}

		buf.Write(body)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON detects the shape structurally and decodes accordingly.
func (fs *FrameSet) UnmarshalJSON(data []byte) error {
	decoded, err := decodeFrameSet(fieldpath.Root().Field("frames"), data)
	if err != nil {
		return err
	}

	*fs = decoded

	return nil
}

// decodeFrameSet dispatches on the structural kind of the frames value.
func decodeFrameSet(path fieldpath.Path, raw json.RawMessage) (FrameSet, error) {
	switch jsonShape(raw) {
	case "array":
		return decodeFrameArray(path, raw)
	case "object":
		return decodeFrameHash(path, raw)
	default:
		return FrameSet{}, errShape(path, "array or object", raw)
	}
}

func decodeFrameArray(path fieldpath.Path, raw json.RawMessage) (FrameSet, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return FrameSet{}, errShape(path, "array", raw)
	}

	fs := FrameSet{
		form:   FormArray,
		frames: make([]Frame, 0, len(items)),
	}

	for i, item := range items {
		f, err := decodeFrame(path.Index(i), item, true)
		if err != nil {
			return FrameSet{}, err
		}

		fs.frames = append(fs.frames, f)
	}

	return fs, nil
}

// decodeFrameHash walks the object with a token decoder so that the
// document's key order is preserved; Go maps would lose it.
func decodeFrameHash(path fieldpath.Path, raw json.RawMessage) (FrameSet, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	// Opening brace; shape was already checked by the caller.
	if _, err := dec.Token(); err != nil {
		return FrameSet{}, errShape(path, "object", raw)
	}

	fs := FrameSet{
		form:   FormHash,
		frames: []Frame{},
		index:  map[string]int{},
	}

	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return FrameSet{}, errShape(path, "object", raw)
		}

		key, ok := keyToken.(string)
		if !ok {
			return FrameSet{}, errShape(path, "object", raw)
		}

		var body json.RawMessage
		if err := dec.Decode(&body); err != nil {
			return FrameSet{}, &MalformedInputError{
				Path:     path.Key(key).String(),
				Expected: "object",
				Err:      err,
			}
		}

		f, err := decodeFrame(path.Key(key), body, false)
		if err != nil {
			return FrameSet{}, err
		}

		if f.Filename == "" {
			f.Filename = key
		}

		fs.index[f.Filename] = len(fs.frames)
		fs.frames = append(fs.frames, f)
	}

	return fs, nil
}

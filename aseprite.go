package aseprite

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ggez/aseprite/internal/fieldpath"
)

// Parse decodes a complete spritesheet metadata document. It is a pure
// function over the input bytes: either the whole document maps onto the data
// model or a *MalformedInputError describes the first offending field; no
// partially populated value is ever returned.
//
// Unknown fields at any level are ignored, so exports from newer Aseprite
// versions that add fields still parse.
func Parse(input []byte) (*SpritesheetData, error) {
	if !json.Valid(input) {
		return nil, syntaxError(input)
	}

	root, err := newObjDecoder(fieldpath.Root(), input)
	if err != nil {
		return nil, err
	}

	framesRaw, framesPath, ok := root.rawField("frames")
	if !ok {
		return nil, errMissing(framesPath, "array or object")
	}

	frames, err := decodeFrameSet(framesPath, framesRaw)
	if err != nil {
		return nil, err
	}

	metaRaw, metaPath, ok := root.rawField("meta")
	if !ok {
		return nil, errMissing(metaPath, "object")
	}

	meta, err := decodeMetadata(metaPath, metaRaw)
	if err != nil {
		return nil, err
	}

	return &SpritesheetData{Frames: frames, Meta: meta}, nil
}

// ParseReader reads the whole stream and parses it. The reader is the only
// I/O this package ever touches; obtaining the bytes is the caller's job.
func ParseReader(r io.Reader) (*SpritesheetData, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read spritesheet data: %w", err)
	}

	return Parse(input)
}

// Serialize encodes the data model back to JSON text in the same structural
// shape it was parsed from. Optional fields absent from the model are omitted
// from the output, never emitted as null.
func Serialize(data *SpritesheetData) ([]byte, error) {
	return json.Marshal(data)
}

// UnmarshalJSON makes json.Unmarshal as strict as Parse.
func (s *SpritesheetData) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}

	*s = *parsed

	return nil
}

package aseprite

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/ggez/aseprite/internal/fieldpath"
)

// jsonShape names the JSON kind of a raw value for error messages.
func jsonShape(raw json.RawMessage) string {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return "nothing"
	}

	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func errShape(path fieldpath.Path, expected string, raw json.RawMessage) error {
	return &MalformedInputError{
		Path:     path.String(),
		Expected: expected,
		Actual:   jsonShape(raw),
	}
}

func errMissing(path fieldpath.Path, expected string) error {
	return &MalformedInputError{
		Path:     path.String(),
		Expected: expected,
		Actual:   "nothing",
	}
}

// objDecoder reads typed fields out of one JSON object. Fields not asked for
// are ignored, which is what keeps newer export versions parseable.
type objDecoder struct {
	path fieldpath.Path
	obj  map[string]json.RawMessage
}

func newObjDecoder(path fieldpath.Path, raw json.RawMessage) (*objDecoder, error) {
	// Unmarshal treats null as a no-op, so shape-check first.
	if jsonShape(raw) != "object" {
		return nil, errShape(path, "object", raw)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, errShape(path, "object", raw)
	}

	return &objDecoder{path: path, obj: obj}, nil
}

// rawField returns the raw value of a field together with its path.
func (d *objDecoder) rawField(name string) (json.RawMessage, fieldpath.Path, bool) {
	raw, ok := d.obj[name]
	return raw, d.path.Field(name), ok
}

func (d *objDecoder) stringField(name string) (string, error) {
	raw, path, ok := d.rawField(name)
	if !ok {
		return "", errMissing(path, "string")
	}

	return decodeString(path, raw)
}

// optStringField returns nil when the field is absent, so callers can
// distinguish "not exported" from "exported as empty".
func (d *objDecoder) optStringField(name string) (*string, error) {
	raw, path, ok := d.rawField(name)
	if !ok {
		return nil, nil
	}

	s, err := decodeString(path, raw)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (d *objDecoder) boolField(name string) (bool, error) {
	raw, path, ok := d.rawField(name)
	if !ok {
		return false, errMissing(path, "boolean")
	}

	if jsonShape(raw) != "boolean" {
		return false, errShape(path, "boolean", raw)
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, errShape(path, "boolean", raw)
	}

	return b, nil
}

func (d *objDecoder) intField(name string) (int32, error) {
	raw, path, ok := d.rawField(name)
	if !ok {
		return 0, errMissing(path, "non-negative integer")
	}

	return decodeInt(path, raw)
}

func decodeString(path fieldpath.Path, raw json.RawMessage) (string, error) {
	if jsonShape(raw) != "string" {
		return "", errShape(path, "string", raw)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errShape(path, "string", raw)
	}

	return s, nil
}

// decodeInt accepts the pixel/index range of the export: whole, non-negative
// numbers that fit in 32 bits.
func decodeInt(path fieldpath.Path, raw json.RawMessage) (int32, error) {
	if jsonShape(raw) != "number" {
		return 0, errShape(path, "non-negative integer", raw)
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return 0, errShape(path, "non-negative integer", raw)
	}

	v, err := strconv.ParseInt(num.String(), 10, 32)
	if err != nil || v < 0 {
		return 0, &MalformedInputError{
			Path:     path.String(),
			Expected: "non-negative integer",
			Actual:   num.String(),
		}
	}

	return int32(v), nil
}

func decodeRect(path fieldpath.Path, raw json.RawMessage) (Rect, error) {
	d, err := newObjDecoder(path, raw)
	if err != nil {
		return Rect{}, err
	}

	var r Rect

	if r.X, err = d.intField("x"); err != nil {
		return Rect{}, err
	}

	if r.Y, err = d.intField("y"); err != nil {
		return Rect{}, err
	}

	if r.W, err = d.intField("w"); err != nil {
		return Rect{}, err
	}

	if r.H, err = d.intField("h"); err != nil {
		return Rect{}, err
	}

	return r, nil
}

func decodeDimensions(path fieldpath.Path, raw json.RawMessage) (Dimensions, error) {
	d, err := newObjDecoder(path, raw)
	if err != nil {
		return Dimensions{}, err
	}

	var size Dimensions

	if size.W, err = d.intField("w"); err != nil {
		return Dimensions{}, err
	}

	if size.H, err = d.intField("h"); err != nil {
		return Dimensions{}, err
	}

	return size, nil
}

func decodePoint(path fieldpath.Path, raw json.RawMessage) (Point, error) {
	d, err := newObjDecoder(path, raw)
	if err != nil {
		return Point{}, err
	}

	var p Point

	if p.X, err = d.intField("x"); err != nil {
		return Point{}, err
	}

	if p.Y, err = d.intField("y"); err != nil {
		return Point{}, err
	}

	return p, nil
}

// decodeFrame decodes one frame body. In the hash shape the filename lives in
// the enclosing object key, so its absence from the body is tolerated there.
func decodeFrame(path fieldpath.Path, raw json.RawMessage, requireFilename bool) (Frame, error) {
	d, err := newObjDecoder(path, raw)
	if err != nil {
		return Frame{}, err
	}

	var f Frame

	if requireFilename {
		if f.Filename, err = d.stringField("filename"); err != nil {
			return Frame{}, err
		}
	} else if name, err := d.optStringField("filename"); err != nil {
		return Frame{}, err
	} else if name != nil {
		f.Filename = *name
	}

	frameRaw, framePath, ok := d.rawField("frame")
	if !ok {
		return Frame{}, errMissing(framePath, "object")
	}

	if f.Frame, err = decodeRect(framePath, frameRaw); err != nil {
		return Frame{}, err
	}

	if f.Rotated, err = d.boolField("rotated"); err != nil {
		return Frame{}, err
	}

	if f.Trimmed, err = d.boolField("trimmed"); err != nil {
		return Frame{}, err
	}

	sssRaw, sssPath, ok := d.rawField("spriteSourceSize")
	if !ok {
		return Frame{}, errMissing(sssPath, "object")
	}

	if f.SpriteSourceSize, err = decodeRect(sssPath, sssRaw); err != nil {
		return Frame{}, err
	}

	sizeRaw, sizePath, ok := d.rawField("sourceSize")
	if !ok {
		return Frame{}, errMissing(sizePath, "object")
	}

	if f.SourceSize, err = decodeDimensions(sizePath, sizeRaw); err != nil {
		return Frame{}, err
	}

	if f.Duration, err = d.intField("duration"); err != nil {
		return Frame{}, err
	}

	return f, nil
}

func decodeFrameTag(path fieldpath.Path, raw json.RawMessage) (FrameTag, error) {
	d, err := newObjDecoder(path, raw)
	if err != nil {
		return FrameTag{}, err
	}

	var tag FrameTag

	if tag.Name, err = d.stringField("name"); err != nil {
		return FrameTag{}, err
	}

	if tag.From, err = d.intField("from"); err != nil {
		return FrameTag{}, err
	}

	if tag.To, err = d.intField("to"); err != nil {
		return FrameTag{}, err
	}

	token, err := d.stringField("direction")
	if err != nil {
		return FrameTag{}, err
	}

	tag.Direction, err = ParseDirection(token)
	if err != nil {
		return FrameTag{}, &MalformedInputError{
			Path:     d.path.Field("direction").String(),
			Expected: `"forward", "reverse" or "pingpong"`,
			Actual:   strconv.Quote(token),
		}
	}

	return tag, nil
}

func decodeLayer(path fieldpath.Path, raw json.RawMessage) (Layer, error) {
	d, err := newObjDecoder(path, raw)
	if err != nil {
		return Layer{}, err
	}

	var l Layer

	if l.Name, err = d.stringField("name"); err != nil {
		return Layer{}, err
	}

	// Group rows carry neither opacity nor blendMode. A row with exactly one
	// of the two is neither a layer nor a group.
	_, _, hasOpacity := d.rawField("opacity")
	_, _, hasBlend := d.rawField("blendMode")

	switch {
	case hasOpacity && hasBlend:
		if l.Opacity, err = d.intField("opacity"); err != nil {
			return Layer{}, err
		}

		mode, err := d.stringField("blendMode")
		if err != nil {
			return Layer{}, err
		}

		l.BlendMode = BlendMode(mode)
	case hasOpacity:
		return Layer{}, errMissing(d.path.Field("blendMode"), "string")
	case hasBlend:
		return Layer{}, errMissing(d.path.Field("opacity"), "non-negative integer")
	}

	if l.Group, err = d.optStringField("group"); err != nil {
		return Layer{}, err
	}

	if celsRaw, celsPath, ok := d.rawField("cels"); ok {
		l.Cels, err = decodeSeq(celsPath, celsRaw, decodeCel)
		if err != nil {
			return Layer{}, err
		}
	}

	if l.Color, err = d.optStringField("color"); err != nil {
		return Layer{}, err
	}

	if l.Data, err = d.optStringField("data"); err != nil {
		return Layer{}, err
	}

	return l, nil
}

func decodeCel(path fieldpath.Path, raw json.RawMessage) (Cel, error) {
	d, err := newObjDecoder(path, raw)
	if err != nil {
		return Cel{}, err
	}

	var c Cel

	if c.Frame, err = d.intField("frame"); err != nil {
		return Cel{}, err
	}

	if c.Color, err = d.stringField("color"); err != nil {
		return Cel{}, err
	}

	if c.Data, err = d.optStringField("data"); err != nil {
		return Cel{}, err
	}

	return c, nil
}

func decodeSlice(path fieldpath.Path, raw json.RawMessage) (Slice, error) {
	d, err := newObjDecoder(path, raw)
	if err != nil {
		return Slice{}, err
	}

	var s Slice

	if s.Name, err = d.stringField("name"); err != nil {
		return Slice{}, err
	}

	if s.Color, err = d.stringField("color"); err != nil {
		return Slice{}, err
	}

	keysRaw, keysPath, ok := d.rawField("keys")
	if !ok {
		return Slice{}, errMissing(keysPath, "array")
	}

	if s.Keys, err = decodeSeq(keysPath, keysRaw, decodeSliceKey); err != nil {
		return Slice{}, err
	}

	if s.Data, err = d.optStringField("data"); err != nil {
		return Slice{}, err
	}

	return s, nil
}

func decodeSliceKey(path fieldpath.Path, raw json.RawMessage) (SliceKey, error) {
	d, err := newObjDecoder(path, raw)
	if err != nil {
		return SliceKey{}, err
	}

	var key SliceKey

	if key.Frame, err = d.intField("frame"); err != nil {
		return SliceKey{}, err
	}

	boundsRaw, boundsPath, ok := d.rawField("bounds")
	if !ok {
		return SliceKey{}, errMissing(boundsPath, "object")
	}

	if key.Bounds, err = decodeRect(boundsPath, boundsRaw); err != nil {
		return SliceKey{}, err
	}

	if centerRaw, centerPath, ok := d.rawField("center"); ok {
		center, err := decodeRect(centerPath, centerRaw)
		if err != nil {
			return SliceKey{}, err
		}

		key.Center = &center
	}

	if pivotRaw, pivotPath, ok := d.rawField("pivot"); ok {
		pivot, err := decodePoint(pivotPath, pivotRaw)
		if err != nil {
			return SliceKey{}, err
		}

		key.Pivot = &pivot
	}

	return key, nil
}

// decodeSeq decodes a JSON array element by element, extending the path with
// the element index so failures point at the exact entry.
func decodeSeq[T any](path fieldpath.Path, raw json.RawMessage, elem func(fieldpath.Path, json.RawMessage) (T, error)) ([]T, error) {
	if jsonShape(raw) != "array" {
		return nil, errShape(path, "array", raw)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errShape(path, "array", raw)
	}

	result := make([]T, 0, len(items))

	for i, item := range items {
		v, err := elem(path.Index(i), item)
		if err != nil {
			return nil, err
		}

		result = append(result, v)
	}

	return result, nil
}

func decodeMetadata(path fieldpath.Path, raw json.RawMessage) (Metadata, error) {
	d, err := newObjDecoder(path, raw)
	if err != nil {
		return Metadata{}, err
	}

	var meta Metadata

	if meta.App, err = d.stringField("app"); err != nil {
		return Metadata{}, err
	}

	if meta.Version, err = d.stringField("version"); err != nil {
		return Metadata{}, err
	}

	// The original tool omits "image" when no sheet image was written.
	if image, err := d.optStringField("image"); err != nil {
		return Metadata{}, err
	} else if image != nil {
		meta.Image = *image
	}

	if meta.Format, err = d.stringField("format"); err != nil {
		return Metadata{}, err
	}

	sizeRaw, sizePath, ok := d.rawField("size")
	if !ok {
		return Metadata{}, errMissing(sizePath, "object")
	}

	if meta.Size, err = decodeDimensions(sizePath, sizeRaw); err != nil {
		return Metadata{}, err
	}

	if meta.Scale, err = d.stringField("scale"); err != nil {
		return Metadata{}, err
	}

	if tagsRaw, tagsPath, ok := d.rawField("frameTags"); ok {
		if meta.FrameTags, err = decodeSeq(tagsPath, tagsRaw, decodeFrameTag); err != nil {
			return Metadata{}, err
		}
	}

	if layersRaw, layersPath, ok := d.rawField("layers"); ok {
		if meta.Layers, err = decodeSeq(layersPath, layersRaw, decodeLayer); err != nil {
			return Metadata{}, err
		}
	}

	if slicesRaw, slicesPath, ok := d.rawField("slices"); ok {
		if meta.Slices, err = decodeSeq(slicesPath, slicesRaw, decodeSlice); err != nil {
			return Metadata{}, err
		}
	}

	return meta, nil
}

// syntaxError reports why a document is not valid JSON at all.
func syntaxError(input []byte) error {
	var probe any

	err := json.Unmarshal(input, &probe)
	if err == nil {
		err = errors.New("unexpected trailing data")
	}

	return &MalformedInputError{
		Path:     fieldpath.Root().String(),
		Expected: "valid JSON",
		Err:      err,
	}
}

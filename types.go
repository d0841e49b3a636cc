package aseprite

// SpritesheetData is the root of a parsed export: the frame collection and
// the sheet-level metadata.
type SpritesheetData struct {
	Frames FrameSet `json:"frames"`
	Meta   Metadata `json:"meta"`
}

// Rect is an axis-aligned rectangle in pixel units.
type Rect struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	W int32 `json:"w"`
	H int32 `json:"h"`
}

// Dimensions is a width/height pair in pixel units.
type Dimensions struct {
	W int32 `json:"w"`
	H int32 `json:"h"`
}

// Point is an x/y pair in pixel units.
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Frame describes one sprite-sheet region.
type Frame struct {
	// Filename identifies the frame. In the hash export shape it is the
	// object key rather than a field of the frame body.
	Filename string `json:"filename"`
	// Frame is the region of the sheet image holding this sprite.
	Frame   Rect `json:"frame"`
	Rotated bool `json:"rotated"`
	Trimmed bool `json:"trimmed"`
	// SpriteSourceSize is the frame's bounds within the original
	// untrimmed sprite.
	SpriteSourceSize Rect `json:"spriteSourceSize"`
	// SourceSize is the size of the original untrimmed sprite.
	SourceSize Dimensions `json:"sourceSize"`
	// Duration is the display time of this frame in milliseconds.
	Duration int32 `json:"duration"`
}

// Metadata is the sheet-level information under the "meta" key.
//
// FrameTags, Layers and Slices are nil when the corresponding section was not
// requested at export time, and non-nil (possibly empty) when it was. The
// distinction survives a round trip: nil sections are omitted from the
// serialized output, empty ones are emitted as [].
type Metadata struct {
	App     string     `json:"app"`
	Version string     `json:"version"`
	Image   string     `json:"image,omitempty"`
	Format  string     `json:"format"`
	Size    Dimensions `json:"size"`
	// Scale is kept as a string because Aseprite renders it as a decimal
	// string ("1", "0.5") and round-tripping it exactly matters more than
	// arithmetic use.
	Scale     string     `json:"scale"`
	FrameTags []FrameTag `json:"frameTags,omitempty"`
	Layers    []Layer    `json:"layers,omitempty"`
	Slices    []Slice    `json:"slices,omitempty"`
}

// FrameTag is a named range of frames representing one animation sequence.
// From and To are inclusive frame indices. From <= To is a data-quality
// expectation on the producer, not enforced here.
type FrameTag struct {
	Name      string    `json:"name"`
	From      int32     `json:"from"`
	To        int32     `json:"to"`
	Direction Direction `json:"direction"`
}

// Layer is one entry of the exported layer list. Group rows carry only
// name/color/data; see IsGroup.
type Layer struct {
	Name string `json:"name"`
	// Group names the parent group for nested layers, nil for top-level ones.
	Group     *string   `json:"group,omitempty"`
	Opacity   int32     `json:"opacity"`
	BlendMode BlendMode `json:"blendMode"`
	// Cels lists per-frame cel metadata, present only when the export
	// included user data on cels.
	Cels  []Cel   `json:"cels,omitempty"`
	Color *string `json:"color,omitempty"`
	Data  *string `json:"data,omitempty"`
}

// IsGroup reports whether this entry is a layer group rather than an image
// layer. Aseprite emits group rows without opacity and blendMode.
func (l Layer) IsGroup() bool {
	return l.BlendMode == ""
}

// Cel is per-frame metadata attached to one cel of a layer.
type Cel struct {
	Frame int32   `json:"frame"`
	Color string  `json:"color"`
	Data  *string `json:"data,omitempty"`
}

// Slice is a named, possibly per-frame-varying sub-rectangle used for
// gameplay metadata such as hitboxes.
type Slice struct {
	Name  string     `json:"name"`
	Color string     `json:"color"`
	Keys  []SliceKey `json:"keys"`
	Data  *string    `json:"data,omitempty"`
}

// SliceKey is the geometry of a slice from a given frame onward.
type SliceKey struct {
	Frame  int32  `json:"frame"`
	Bounds Rect   `json:"bounds"`
	Center *Rect  `json:"center,omitempty"`
	Pivot  *Point `json:"pivot,omitempty"`
}

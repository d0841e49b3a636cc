package aseprite

import "encoding/json"

// The shadow structs below exist because `omitempty` cannot tell a nil slice
// from an empty one: a section exported as [] must survive a round trip,
// while a section that was never exported must stay absent. Pointer-to-slice
// fields preserve that distinction.

type metadataJSON struct {
	App       string      `json:"app"`
	Version   string      `json:"version"`
	Image     string      `json:"image,omitempty"`
	Format    string      `json:"format"`
	Size      Dimensions  `json:"size"`
	Scale     string      `json:"scale"`
	FrameTags *[]FrameTag `json:"frameTags,omitempty"`
	Layers    *[]Layer    `json:"layers,omitempty"`
	Slices    *[]Slice    `json:"slices,omitempty"`
}

// MarshalJSON omits the optional sections when they are nil and emits them
// as [] when they are present but empty.
func (m Metadata) MarshalJSON() ([]byte, error) {
	enc := metadataJSON{
		App:     m.App,
		Version: m.Version,
		Image:   m.Image,
		Format:  m.Format,
		Size:    m.Size,
		Scale:   m.Scale,
	}

	if m.FrameTags != nil {
		enc.FrameTags = &m.FrameTags
	}

	if m.Layers != nil {
		enc.Layers = &m.Layers
	}

	if m.Slices != nil {
		enc.Slices = &m.Slices
	}

	return json.Marshal(enc)
}

type layerJSON struct {
	Name      string     `json:"name"`
	Group     *string    `json:"group,omitempty"`
	Opacity   *int32     `json:"opacity,omitempty"`
	BlendMode *BlendMode `json:"blendMode,omitempty"`
	Cels      *[]Cel     `json:"cels,omitempty"`
	Color     *string    `json:"color,omitempty"`
	Data      *string    `json:"data,omitempty"`
}

// MarshalJSON emits group rows without opacity and blendMode, the way
// Aseprite writes them.
func (l Layer) MarshalJSON() ([]byte, error) {
	enc := layerJSON{
		Name:  l.Name,
		Group: l.Group,
		Color: l.Color,
		Data:  l.Data,
	}

	if !l.IsGroup() {
		enc.Opacity = &l.Opacity
		enc.BlendMode = &l.BlendMode
	}

	if l.Cels != nil {
		enc.Cels = &l.Cels
	}

	return json.Marshal(enc)
}

package aseprite

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrames() []Frame {
	return []Frame{
		{
			Filename:         "run 0.ase",
			Frame:            Rect{X: 0, Y: 0, W: 8, H: 8},
			SpriteSourceSize: Rect{X: 0, Y: 0, W: 8, H: 8},
			SourceSize:       Dimensions{W: 8, H: 8},
			Duration:         100,
		},
		{
			Filename:         "run 1.ase",
			Frame:            Rect{X: 8, Y: 0, W: 8, H: 8},
			SpriteSourceSize: Rect{X: 0, Y: 0, W: 8, H: 8},
			SourceSize:       Dimensions{W: 8, H: 8},
			Duration:         150,
		},
	}
}

func TestFrameSet_ArrayMarshal(t *testing.T) {
	fs := NewFrameArray(testFrames())
	assert.Equal(t, FormArray, fs.Form())

	out, err := json.Marshal(fs)
	require.NoError(t, err)

	// Array form keeps the filename inside each element.
	assert.Equal(t, byte('['), out[0])
	assert.Contains(t, string(out), `"filename":"run 0.ase"`)

	var again FrameSet
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, fs, again)
}

func TestFrameSet_HashMarshal(t *testing.T) {
	fs := NewFrameHash(testFrames())
	assert.Equal(t, FormHash, fs.Form())

	out, err := json.Marshal(fs)
	require.NoError(t, err)

	// Hash form hoists the filename into the key.
	assert.Equal(t, byte('{'), out[0])
	assert.Contains(t, string(out), `"run 0.ase":{`)
	assert.NotContains(t, string(out), `"filename"`)

	var again FrameSet
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, fs, again)
}

func TestFrameSet_ByName(t *testing.T) {
	for _, fs := range []FrameSet{NewFrameArray(testFrames()), NewFrameHash(testFrames())} {
		f, ok := fs.ByName("run 1.ase")
		require.True(t, ok, "form %s", fs.Form())
		assert.Equal(t, int32(150), f.Duration)

		_, ok = fs.ByName("run 2.ase")
		assert.False(t, ok)
	}
}

func TestFrameSet_SliceIsACopy(t *testing.T) {
	fs := NewFrameArray(testFrames())

	s := fs.Slice()
	s[0].Duration = 9999

	assert.Equal(t, int32(100), fs.At(0).Duration)
}

func TestFrameSet_ZeroValue(t *testing.T) {
	var fs FrameSet

	assert.Equal(t, FormArray, fs.Form())
	assert.Equal(t, 0, fs.Len())

	out, err := json.Marshal(fs)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestFramesForm_String(t *testing.T) {
	assert.Equal(t, "FormArray", FormArray.String())
	assert.Equal(t, "FormHash", FormHash.String())
	assert.Equal(t, "FramesForm(9)", FramesForm(9).String())
}

func TestFrameSet_RejectsScalar(t *testing.T) {
	var fs FrameSet
	err := json.Unmarshal([]byte(`"frames.png"`), &fs)

	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "frames", malformed.Path)
	assert.Equal(t, "array or object", malformed.Expected)
}

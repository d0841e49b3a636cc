package aseprite

// BlendMode names a layer blend mode. The sixteen identifiers below are the
// ones Aseprite emits; the field stays a string on decode so that exports
// from newer versions with additional modes still parse.
type BlendMode string

const (
	BlendNormal        BlendMode = "normal"
	BlendMultiply      BlendMode = "multiply"
	BlendScreen        BlendMode = "screen"
	BlendOverlay       BlendMode = "overlay"
	BlendDarken        BlendMode = "darken"
	BlendLighten       BlendMode = "lighten"
	BlendColorDodge    BlendMode = "colorDodge"
	BlendColorBurn     BlendMode = "colorBurn"
	BlendHardLight     BlendMode = "hardLight"
	BlendSoftLight     BlendMode = "softLight"
	BlendDifference    BlendMode = "difference"
	BlendExclusion     BlendMode = "exclusion"
	BlendHslHue        BlendMode = "hslHue"
	BlendHslSaturation BlendMode = "hslSaturation"
	BlendHslColor      BlendMode = "hslColor"
	BlendHslLuminosity BlendMode = "hslLuminosity"
)

// IsKnown returns true if the blend mode is one of the identifiers Aseprite
// is known to emit.
func (b BlendMode) IsKnown() bool {
	switch b {
	case BlendNormal, BlendMultiply, BlendScreen, BlendOverlay,
		BlendDarken, BlendLighten, BlendColorDodge, BlendColorBurn,
		BlendHardLight, BlendSoftLight, BlendDifference, BlendExclusion,
		BlendHslHue, BlendHslSaturation, BlendHslColor, BlendHslLuminosity:
		return true
	default:
		return false
	}
}

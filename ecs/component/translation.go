package component

// AnimateTranslation moves an entity along an ellipse around its offset:
//
//	x = OffsetX + AmplitudeX*sin(Speed*t)
//	y = OffsetY + AmplitudeY*cos(Speed*t)
//
// When Script is set the named tengo script computes x and y instead.
type AnimateTranslation struct {
	AmplitudeX float64
	AmplitudeY float64
	OffsetX    float64
	OffsetY    float64
	Speed      float64
	Script     string
}

var AnimateTranslationComponent = NewComponent[AnimateTranslation]()

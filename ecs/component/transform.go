package component

// Transform places an entity in world space. The origin is the centre of the
// screen and +Y points up.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()

package maya

// Channel is an animated attribute of the exported locator or camera.
type Channel string

const (
	TranslateX             Channel = "translateX"
	TranslateY             Channel = "translateY"
	TranslateZ             Channel = "translateZ"
	RotateX                Channel = "rotateX"
	RotateY                Channel = "rotateY"
	RotateZ                Channel = "rotateZ"
	ScaleX                 Channel = "scaleX"
	ScaleY                 Channel = "scaleY"
	ScaleZ                 Channel = "scaleZ"
	FocalLength            Channel = "focalLength"
	HorizontalFilmAperture Channel = "horizontalFilmAperture"
)

// Channels lists every recognized channel: the nine transform channels
// followed by the two optional lens channels.
var Channels = []Channel{
	TranslateX, TranslateY, TranslateZ,
	RotateX, RotateY, RotateZ,
	ScaleX, ScaleY, ScaleZ,
	FocalLength, HorizontalFilmAperture,
}

// ParseChannel reports whether name is one of the recognized channels.
func ParseChannel(name string) (Channel, bool) {
	for _, c := range Channels {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// Buffer maps a channel to its raw keyframe string ("frame value frame value ...").
// A channel declared twice keeps the last block read.
type Buffer map[Channel]string

// Locator is what a scan extracts from one scene.
type Locator struct {
	Object   string
	Channels Buffer
}

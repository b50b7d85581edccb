package reference

type Config struct {
	File     string `envconfig:"GESTURE_REFERENCE_FILE"`
	Set      string `envconfig:"GESTURE_REFERENCE_SET" default:"default"`
	Gestures string `envconfig:"GESTURE_GESTURES"`
}

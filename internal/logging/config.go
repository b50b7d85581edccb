package logging

type Config struct {
	Level       string `envconfig:"GESTURE_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"GESTURE_LOG_DEVELOPMENT" default:"false"`
}

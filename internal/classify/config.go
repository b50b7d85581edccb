package classify

import "time"

type Config struct {
	RequestTimeout time.Duration `envconfig:"GESTURE_CLASSIFY_REQUEST_TIMEOUT" default:"30s"`
	MaxSamples     int           `envconfig:"GESTURE_CLASSIFY_MAX_SAMPLES" default:"64"`
	MaxConcurrency int           `envconfig:"GESTURE_CLASSIFY_MAX_CONCURRENCY" default:"8"`
}

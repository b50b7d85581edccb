package database

import "time"

type Config struct {
	FileName string        `envconfig:"GESTURE_DB_FILE"`
	ReadOnly bool          `envconfig:"GESTURE_DB_READ_ONLY" default:"false"`
	Timeout  time.Duration `envconfig:"GESTURE_DB_TIMEOUT" default:"1s"`
}

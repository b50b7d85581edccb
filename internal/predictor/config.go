package predictor

type AlgType string

const (
	AlgTypeKNN AlgType = "KNN"
)

type Config struct {
	Type AlgType `envconfig:"GESTURE_CLASSIFIER_TYPE" default:"KNN"`
}

func (c Config) PredictorType() AlgType {
	return c.Type
}

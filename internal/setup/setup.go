package setup

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/go-sod/gesture/internal/database"
	"github.com/go-sod/gesture/internal/gesture"
	"github.com/go-sod/gesture/internal/logging"
	"github.com/go-sod/gesture/internal/predictor"
	"github.com/go-sod/gesture/internal/predictor/knn"
	"github.com/go-sod/gesture/internal/reference"
	refDb "github.com/go-sod/gesture/internal/reference/database"
	"github.com/go-sod/gesture/internal/srvenv"
)

type LoggingConfigProvider interface {
	LoggingConfig() *logging.Config
}

type ClassifierConfigProvider interface {
	ClassifierConfig() *knn.Config
	PredictType() predictor.AlgType
}

type DatabaseConfigProvider interface {
	DatabaseConfig() *database.Config
}

type ReferenceConfigProvider interface {
	ReferenceConfig() *reference.Config
}

// Setup reads the environment into config and wires the service dependencies it describes.
func Setup(ctx context.Context, config interface{}) (*srvenv.SrvEnv, error) {
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	var (
		serverEnvOpts []srvenv.Option
		db            *database.DB
		set           *reference.Set
	)

	logger := logging.FromContext(ctx)
	if logConfigProvider, ok := config.(LoggingConfigProvider); ok {
		cfg := logConfigProvider.LoggingConfig()
		logger = logging.NewLogger(cfg.Level, cfg.Development)
		ctx = logging.WithLogger(ctx, logger)
	}
	serverEnvOpts = append(serverEnvOpts, srvenv.WithLogger(logger))

	if dbConfigProvider, ok := config.(DatabaseConfigProvider); ok && dbConfigProvider.DatabaseConfig().FileName != "" {
		logger.Info("Configuring db")
		dbFromEnv, err := database.NewFromEnv(ctx, dbConfigProvider.DatabaseConfig())
		if err != nil {
			return nil, fmt.Errorf("unable to connect to database: %w", err)
		}
		db = dbFromEnv
		serverEnvOpts = append(serverEnvOpts, srvenv.WithDatabase(db))
	}

	if refConfigProvider, ok := config.(ReferenceConfigProvider); ok {
		logger.Info("Loading reference set")
		loaded, err := LoadReference(refConfigProvider.ReferenceConfig(), db)
		if err != nil {
			return nil, closeOnErr(ctx, db, err)
		}
		set = loaded
		logger.Infof("reference set %s: %d points, %d gestures", set.Name, len(set.Points), len(set.Gestures))
		serverEnvOpts = append(serverEnvOpts, srvenv.WithReference(set), srvenv.WithLookup(set.Gestures))
	}

	if classifierConfigProvider, ok := config.(ClassifierConfigProvider); ok {
		logger.Info("Configuring classifier")
		if set == nil {
			return nil, closeOnErr(ctx, db, fmt.Errorf("classifier requires a reference set"))
		}
		provideFn, err := ProvideClassifierFor(ctx, classifierConfigProvider, set)
		if err != nil {
			return nil, closeOnErr(ctx, db, fmt.Errorf("unable create classifier provide function: %w", err))
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithClassifier(provideFn))
	}

	return srvenv.New(serverEnvOpts...), nil
}

// LoadReference reads the reference set from the configured file, falling back to the store.
// A non-empty gesture list in cfg overrides the names shipped with the set.
func LoadReference(cfg *reference.Config, db *database.DB) (*reference.Set, error) {
	var (
		set *reference.Set
		err error
	)
	switch {
	case cfg.File != "":
		set, err = reference.LoadFile(cfg.File)
	case db != nil:
		set, err = refDb.New(db).LoadSet(cfg.Set)
	default:
		err = fmt.Errorf("neither a reference file nor a database is configured")
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load reference set: %w", err)
	}
	if names := gesture.ParseList(cfg.Gestures); len(names) > 0 {
		set.Gestures = names
	}
	return set, nil
}

func ProvideClassifierFor(ctx context.Context, provider ClassifierConfigProvider, set *reference.Set) (predictor.ProvideFn, error) {
	logger := logging.FromContext(ctx)
	switch provider.PredictType() {
	case predictor.AlgTypeKNN:
		cfg := provider.ClassifierConfig()
		distFunc, err := knn.DistanceFuncFor(cfg.MetricFuncType)
		if err != nil {
			return nil, fmt.Errorf("unable provide distance function: %w", err)
		}
		policy, err := knn.PolicyFor(cfg.Policy)
		if err != nil {
			return nil, err
		}
		classes := cfg.Classes
		if classes <= 0 {
			classes = set.Classes()
		}
		if cfg.K > len(set.Points) {
			logger.Warnf("k=%d exceeds the %d reference points, policy %s applies", cfg.K, len(set.Points), policy)
		}
		return func() (predictor.Classifier, error) {
			c, err := knn.New(
				set.Points,
				knn.WithK(cfg.K),
				knn.WithClasses(classes),
				knn.WithPolicy(policy),
				knn.WithDistance(distFunc),
			)
			if err != nil {
				return nil, fmt.Errorf("unable create knn instance: %w", err)
			}
			return c, nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown classifier type: %s", provider.PredictType())
	}
}

func closeOnErr(ctx context.Context, db *database.DB, err error) error {
	if db != nil {
		if closeErr := db.Close(ctx); closeErr != nil {
			logging.FromContext(ctx).Errorf("unable close db: %v", closeErr)
		}
	}
	return err
}

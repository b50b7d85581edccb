package srvenv

import (
	"context"

	"go.uber.org/zap"

	"github.com/go-sod/gesture/internal/database"
	"github.com/go-sod/gesture/internal/gesture"
	"github.com/go-sod/gesture/internal/predictor"
	"github.com/go-sod/gesture/internal/reference"
)

type Option func(*SrvEnv) *SrvEnv

func New(opts ...Option) *SrvEnv {
	env := &SrvEnv{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

type SrvEnv struct {
	database   *database.DB
	logger     *zap.SugaredLogger
	reference  *reference.Set
	lookup     gesture.Lookup
	classifier predictor.ProvideFn
}

func (s *SrvEnv) ProvideClassifier() predictor.ProvideFn {
	return s.classifier
}

func (s *SrvEnv) Reference() *reference.Set {
	return s.reference
}

func (s *SrvEnv) Lookup() gesture.Lookup {
	return s.lookup
}

func (s *SrvEnv) Logger() *zap.SugaredLogger {
	return s.logger
}

func (s *SrvEnv) Database() *database.DB {
	return s.database
}

func WithClassifier(fn predictor.ProvideFn) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.classifier = fn
		return s
	}
}

func WithReference(set *reference.Set) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.reference = set
		return s
	}
}

func WithLookup(l gesture.Lookup) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.lookup = l
		return s
	}
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.logger = l
		return s
	}
}

func WithDatabase(db *database.DB) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.database = db
		return s
	}
}

func (s *SrvEnv) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}

	if s.database != nil {
		return s.database.Close(ctx)
	}
	return nil
}

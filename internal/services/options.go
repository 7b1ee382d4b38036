package services

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"userblog/internal/metrics"
)

// Publisher receives an event after every successful append.
type Publisher interface {
	Publish(topic string, payload any) error
}

type options struct {
	validate      *validator.Validate
	publisher     Publisher
	metrics       *metrics.Metrics
	logger        zerolog.Logger
	hashPasswords bool
}

// Option configures a UserService or PostService.
type Option func(*options)

// WithPublisher sends created-record events to p.
func WithPublisher(p Publisher) Option {
	return func(o *options) { o.publisher = p }
}

// WithMetrics records appends and validation failures in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithLogger replaces the global logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithValidator shares one validator between services.
func WithValidator(v *validator.Validate) Option {
	return func(o *options) { o.validate = v }
}

// WithPasswordHashing makes UserService store bcrypt hashes. PostService
// ignores it.
func WithPasswordHashing(enabled bool) Option {
	return func(o *options) { o.hashPasswords = enabled }
}

func buildOptions(opts []Option) options {
	o := options{logger: log.Logger}
	for _, opt := range opts {
		opt(&o)
	}
	if o.validate == nil {
		o.validate = NewValidator()
	}
	return o
}

func (o *options) publish(topic string, payload any) {
	if o.publisher == nil {
		return
	}
	if err := o.publisher.Publish(topic, payload); err != nil {
		o.logger.Warn().Err(err).Str("topic", topic).Msg("failed to publish event")
	}
}

package huddle

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string // "memory" or "valkey"
	addrs    []string
	password string

	keyPrefix        string
	readinessTimeout time.Duration

	seedPath string
	seedData []byte

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithMemory keeps the catalog in process memory. This is the default.
func WithMemory() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverMemory
		c.addrs = nil
	})
}

// WithValkey stores the catalog in a Valkey (or Redis) instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverValkey
		c.addrs = nil
		if addr != "" {
			c.addrs = []string{addr}
		}
		c.password = password
	})
}

// WithKeyPrefix sets the store key prefix. Default "huddle:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithReadinessTimeout bounds the wait for the store on New. Default 10s.
func WithReadinessTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.readinessTimeout = d
	})
}

// WithSeedFile loads a YAML seed file into the catalog on New.
func WithSeedFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.seedPath = path
		c.seedData = nil
	})
}

// WithSeedYAML loads an in-memory YAML seed document into the catalog on New.
func WithSeedYAML(data []byte) Option {
	return optionFunc(func(c *clientConfig) {
		c.seedData = data
		c.seedPath = ""
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}

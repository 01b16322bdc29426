package validate

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/ledgercheck/internal/ledger"
	"github.com/hedisam/ledgercheck/internal/signing"
)

const (
	// DefaultWorkers checks the blocks of a chain one after another.
	DefaultWorkers = 1
)

// Verifier checks a signature by publicKey over message.
type Verifier interface {
	Verify(publicKey, message, signature string) bool
}

// VerifierFunc adapts a plain function to Verifier.
type VerifierFunc func(publicKey, message, signature string) bool

func (f VerifierFunc) Verify(publicKey, message, signature string) bool {
	return f(publicKey, message, signature)
}

type config struct {
	logger   *logrus.Logger
	encoding ledger.Encoding
	verifier Verifier
	workers  int
}

type Option func(*config)

// WithLogger sets the logger rejections are reported to at debug level.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEncoding sets the layout used to rebuild transaction messages and block hash inputs.
func WithEncoding(encoding ledger.Encoding) Option {
	return func(c *config) {
		c.encoding = encoding
	}
}

// WithVerifier replaces the secp256k1 signature check.
func WithVerifier(verifier Verifier) Option {
	return func(c *config) {
		if verifier != nil {
			c.verifier = verifier
		}
	}
}

// WithWorkers sets how many blocks of a chain are checked at the same time.
// Values below 1 are ignored.
func WithWorkers(workers int) Option {
	return func(c *config) {
		if workers >= 1 {
			c.workers = workers
		}
	}
}

func defaultConfig() *config {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &config{
		logger:   logger,
		encoding: ledger.EncodingConcat,
		verifier: VerifierFunc(signing.Verify),
		workers:  DefaultWorkers,
	}
}

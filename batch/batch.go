// Package batch drives the key generator for a requested number of pairs and
// writes each pair as soon as it is derived.
package batch

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ethkeygen/crypto"
	"ethkeygen/internal/metrics"
	"ethkeygen/shared"
)

// Options configures a Runner. Zero values fall back to defaults.
type Options struct {
	Out         io.Writer        // Destination for records (required)
	Rand        io.Reader        // Entropy source, crypto/rand.Reader by default
	Logger      *zap.Logger      // No-op logger by default
	Metrics     *metrics.Metrics // Fresh registry by default
	Format      string           // shared.OutputFormatText (default) or shared.OutputFormatJSON
	RangeFilter bool             // Re-roll scalars outside [1, N-1]
}

// Runner generates batches of key pairs. It keeps no generated material
// between records.
type Runner struct {
	out         io.Writer
	enc         *json.Encoder
	rand        io.Reader
	logger      *zap.Logger
	metrics     *metrics.Metrics
	format      string
	rangeFilter bool
}

// NewRunner validates opts and returns a Runner
func NewRunner(opts Options) (*Runner, error) {
	if opts.Out == nil {
		return nil, fmt.Errorf("output writer required")
	}

	r := &Runner{
		out:         opts.Out,
		enc:         json.NewEncoder(opts.Out),
		rand:        opts.Rand,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		format:      opts.Format,
		rangeFilter: opts.RangeFilter,
	}
	if r.rand == nil {
		r.rand = cryptorand.Reader
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if r.metrics == nil {
		r.metrics = metrics.New()
	}
	switch r.format {
	case "":
		r.format = shared.OutputFormatText
	case shared.OutputFormatText, shared.OutputFormatJSON:
	default:
		return nil, fmt.Errorf("unknown output format %q", r.format)
	}

	return r, nil
}

// GenerateBatch writes count key pairs, one record per line.
// count is validated before anything is generated, so an invalid count
// produces no output. Any later failure aborts the batch.
func (r *Runner) GenerateBatch(ctx context.Context, count int) error {
	logger := r.logger.With(
		zap.String("batch_id", uuid.New().String()),
		zap.Int("count", count),
	)

	if err := shared.ValidateCount(count); err != nil {
		r.fail(logger, metrics.ReasonInvalidCount, err)
		return err
	}

	start := time.Now()
	defer func() {
		r.metrics.BatchDuration.Observe(time.Since(start).Seconds())
	}()

	logger.Info("Generating key pairs",
		zap.String("format", r.format),
		zap.Bool("range_filter", r.rangeFilter),
	)

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			r.fail(logger, metrics.ReasonCanceled, err)
			return err
		}
		if err := r.generateOne(logger); err != nil {
			return err
		}
	}

	logger.Info("Batch complete", zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (r *Runner) generateOne(logger *zap.Logger) error {
	priv, rejected, err := crypto.GeneratePrivateKey(r.rand, r.rangeFilter)
	if rejected > 0 {
		r.metrics.ScalarsRejected.Add(float64(rejected))
		logger.Debug("Discarded out-of-range scalars", zap.Int("rerolls", rejected))
	}
	if err != nil {
		r.fail(logger, metrics.ReasonRandomSource, err)
		return err
	}
	defer crypto.Zero(priv)

	kp, err := crypto.DeriveKeyPair(priv)
	if err != nil {
		r.fail(logger, metrics.ReasonDerivation, err)
		return err
	}

	if err := r.write(kp); err != nil {
		r.fail(logger, metrics.ReasonOutput, err)
		return fmt.Errorf("write key pair: %w", err)
	}
	r.metrics.PairsGenerated.Inc()
	return nil
}

func (r *Runner) write(kp *crypto.KeyPair) error {
	if r.format == shared.OutputFormatJSON {
		return r.enc.Encode(kp)
	}
	_, err := fmt.Fprintln(r.out, kp.String())
	return err
}

func (r *Runner) fail(logger *zap.Logger, reason string, err error) {
	r.metrics.BatchFailures.WithLabelValues(reason).Inc()
	logger.Error("Batch failed", zap.String("reason", reason), zap.Error(err))
}

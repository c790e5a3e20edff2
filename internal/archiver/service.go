package archiver

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gabapcia/blockarchive/internal/block"
	"github.com/gabapcia/blockarchive/internal/pkg/logger"
	"github.com/gabapcia/blockarchive/internal/pkg/resilience/retry"
)

// Service runs and inspects the archiving streams.
type Service interface {
	// Start launches both streams in the background. Every stream that halts
	// reports its ArchiveFailure on the returned channel, which is closed by Close.
	// It fails without launching anything when a stream cannot submit.
	Start(ctx context.Context) (<-chan *ArchiveFailure, error)

	// Close stops both streams and waits for them to return.
	Close()

	// Run drives a single stream until ctx is canceled (returning nil) or the
	// stream halts on a permanent error (returning an *ArchiveFailure).
	Run(ctx context.Context, kind StreamKind) error

	// ArchiveHeight archives one height for kind outside of the stream loop
	// and returns its transaction id.
	ArchiveHeight(ctx context.Context, kind StreamKind, height uint64) (string, error)

	// Status returns the latest known status of a stream.
	Status(kind StreamKind) StreamStatus

	// Schedule returns the bounds the streams run with.
	Schedule() Schedule
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	blockchain Blockchain
	submitter  Submitter
	storage    ProgressStorage
	schedule   Schedule

	retryOpts []retry.Option
	status    *statusBoard
	metrics   *metrics
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) (<-chan *ArchiveFailure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return nil, ErrServiceAlreadyStarted
	}

	for _, kind := range Streams {
		if err := s.submitter.Ready(kind); err != nil {
			return nil, fmt.Errorf("%s stream: %w", kind, err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	failureCh := make(chan *ArchiveFailure, len(Streams))

	var wg sync.WaitGroup
	for _, kind := range Streams {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var failure *ArchiveFailure
			if err := s.Run(ctx, kind); errors.As(err, &failure) {
				failureCh <- failure // buffered for every stream
			}
		}()
	}

	s.closeFunc = func() {
		cancel()
		wg.Wait()
		close(failureCh)
	}

	s.isStarted = true
	return failureCh, nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

func (s *service) Status(kind StreamKind) StreamStatus {
	return s.status.get(kind)
}

func (s *service) Schedule() Schedule {
	return s.schedule
}

// IsPermanent reports whether err can never succeed by retrying the same height.
func IsPermanent(err error) bool {
	return errors.Is(err, block.ErrMalformedBlock) ||
		errors.Is(err, block.ErrCorruptPayload) ||
		errors.Is(err, ErrContinuityViolation) ||
		errors.Is(err, ErrSubmitterUnavailable) ||
		errors.Is(err, ErrHeightOutOfRange)
}

type config struct {
	retryOpts []retry.Option
}

// Option customizes a service created by New.
type Option func(*config)

// WithRetry tunes the retry policy wrapped around every fetch, submit and record
// call. Permanent errors are never retried regardless of the options.
func WithRetry(opts ...retry.Option) Option {
	return func(c *config) {
		c.retryOpts = append(c.retryOpts, opts...)
	}
}

// retrier returns the retry policy for one call. Retried attempts are logged on ctx.
func (s *service) retrier(ctx context.Context) retry.Retry {
	opts := append(slices.Clone(s.retryOpts),
		retry.WithRetryIf(func(err error) bool { return !IsPermanent(err) }),
		retry.WithOnRetry(func(attempt uint, err error) {
			logger.Debug(ctx, "retrying archive step", "retry.attempt", attempt+1, "error", err)
		}),
	)

	return retry.New(opts...)
}

// New creates the coordinator for a network.
func New(blockchain Blockchain, submitter Submitter, storage ProgressStorage, schedule Schedule, opts ...Option) (*service, error) {
	if err := schedule.validate(); err != nil {
		return nil, err
	}

	cfg := config{
		retryOpts: []retry.Option{retry.WithAttempts(5)},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		blockchain: blockchain,
		submitter:  submitter,
		storage:    storage,
		schedule:   schedule,
		retryOpts:  cfg.retryOpts,
		status:     newStatusBoard(),
		metrics:    newMetrics(),
	}, nil
}

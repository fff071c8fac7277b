package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"hubops/internal/core/domain/model/sequence"
	"hubops/internal/core/ports"
	"hubops/internal/pkg/errs"
)

// DefaultMaxAttempts bounds collision retries per allocation.
const DefaultMaxAttempts = 8

// NumberingMode selects where the digits of a code come from.
type NumberingMode int

const (
	// Sequential draws from the per (kind, year) counter.
	Sequential NumberingMode = iota
	// Random draws uniformly from [0, 10^width).
	Random
)

// ParseNumberingMode accepts "sequential" and "random".
func ParseNumberingMode(s string) (NumberingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sequential":
		return Sequential, nil
	case "random":
		return Random, nil
	default:
		return Sequential, errs.NewValueIsInvalidErrorWithCause("sequence mode",
			fmt.Errorf("%q is not sequential or random", s))
	}
}

type AllocatorConfig struct {
	Mode        NumberingMode
	MaxAttempts int
	Width       int
}

// CodeAllocator mints codes of the form <prefix><yy><digits>. Every
// candidate is reserved in the issued-codes record before it is returned, so
// a code is never handed out twice for a kind. Allocations that share kind
// and scope key run one at a time.
type CodeAllocator struct {
	locker      ports.ScopeLocker
	mode        NumberingMode
	maxAttempts int
	width       int
	clock       func() time.Time
	random      func(n int64) int64
}

func NewCodeAllocator(locker ports.ScopeLocker, cfg AllocatorConfig) *CodeAllocator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Width <= 0 {
		cfg.Width = sequence.DefaultWidth
	}
	if cfg.Width > sequence.MaxWidth {
		cfg.Width = sequence.MaxWidth
	}
	return &CodeAllocator{
		locker:      locker,
		mode:        cfg.Mode,
		maxAttempts: cfg.MaxAttempts,
		width:       cfg.Width,
		clock:       time.Now,
		random:      rand.Int64N,
	}
}

// WithClock replaces the allocation clock.
func (a *CodeAllocator) WithClock(clock func() time.Time) *CodeAllocator {
	a.clock = clock
	return a
}

// WithRandom replaces the random digit source used in Random mode.
func (a *CodeAllocator) WithRandom(random func(n int64) int64) *CodeAllocator {
	a.random = random
	return a
}

// Allocate reserves and returns a new code for kind. store must be bound to
// the caller's transaction so the reservation commits or rolls back with the
// entity that uses the code.
//
//	code, err := allocator.Allocate(ctx, uow.SequenceRepository(), sequence.KindArrival, "LHE01")
//	if errors.Is(err, errs.ErrAllocationExhausted) {
//	    // every attempt collided
//	}
func (a *CodeAllocator) Allocate(
	ctx context.Context,
	store ports.SequenceRepository,
	kind sequence.Kind,
	scopeKey string,
) (string, error) {
	if err := kind.Validate(); err != nil {
		return "", err
	}
	scopeKey = strings.TrimSpace(scopeKey)

	release, err := a.locker.Lock(ctx, kind.String()+":"+scopeKey)
	if err != nil {
		return "", err
	}
	defer release()

	now := a.clock()
	yy := sequence.Year(now)
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		number, err := a.next(ctx, store, kind, yy)
		if err != nil {
			return "", err
		}

		code := sequence.Format(kind, yy, number, a.width)
		reserved, err := store.Reserve(ctx, kind, code, scopeKey, now)
		if err != nil {
			return "", err
		}
		if reserved {
			return code, nil
		}
	}

	return "", errs.NewAllocationExhaustedError(kind.String(), scopeKey, a.maxAttempts)
}

func (a *CodeAllocator) next(ctx context.Context, store ports.SequenceRepository, kind sequence.Kind, yy int) (int64, error) {
	if a.mode == Random {
		upper := int64(1)
		for range a.width {
			upper *= 10
		}
		return a.random(upper), nil
	}
	return store.NextNumber(ctx, kind, yy)
}

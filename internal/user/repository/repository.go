package repository

import (
	"context"
	"time"

	"github.com/nvoskov/userhub/internal/common/clock"
	"github.com/nvoskov/userhub/internal/observability/metrics"
	"github.com/nvoskov/userhub/internal/user/domain"
)

// Repository is the capability surface a store exposes for one entity type.
// GetByID returns a reference to the stored entity; Add inserts or silently
// overwrites the entry keyed by the entity's identifier.
type Repository[T any] interface {
	GetByID(id domain.ID) (*T, bool)
	Add(entity T)
}

// MemRepository keeps users in a map keyed by ID. It is written through
// exactly one UserService at a time; there is no internal locking.
type MemRepository struct {
	users   map[domain.ID]*domain.User
	clock   clock.Clock
	sleeper clock.Sleeper
	delay   time.Duration
}

var _ Repository[domain.User] = (*MemRepository)(nil)

func NewMemRepository(clk clock.Clock, sleeper clock.Sleeper, delay time.Duration) *MemRepository {
	return &MemRepository{
		users:   make(map[domain.ID]*domain.User),
		clock:   clk,
		sleeper: sleeper,
		delay:   delay,
	}
}

func (r *MemRepository) GetByID(id domain.ID) (*domain.User, bool) {
	user, ok := r.users[id]
	if !ok {
		metrics.StoreLookupsTotal.WithLabelValues(metrics.LookupResultMiss).Inc()
		return nil, false
	}
	metrics.StoreLookupsTotal.WithLabelValues(metrics.LookupResultHit).Inc()
	return user, true
}

func (r *MemRepository) Add(user domain.User) {
	r.users[user.ID] = &user
	metrics.StoreInsertsTotal.Inc()
}

func (r *MemRepository) Len() int {
	return len(r.users)
}

// GetByIDAsync performs the same lookup as GetByID after waiting the
// configured delay, then yields an independently owned copy of the entity.
// The delay awaits no real I/O. Cancellation during the wait returns ctx.Err()
// with no result; the lookup is read-only so no partial state is possible.
func (r *MemRepository) GetByIDAsync(ctx context.Context, id domain.ID) (domain.User, bool, error) {
	start := r.clock.Now()

	if err := r.sleeper.Sleep(ctx, r.delay); err != nil {
		return domain.User{}, false, err
	}

	user, ok := r.users[id]
	metrics.StoreLookupDurationSeconds.
		WithLabelValues(metrics.LookupModeAsync).
		Observe(r.clock.Since(start).Seconds())

	if !ok {
		metrics.StoreLookupsTotal.WithLabelValues(metrics.LookupResultMiss).Inc()
		return domain.User{}, false, nil
	}

	metrics.StoreLookupsTotal.WithLabelValues(metrics.LookupResultHit).Inc()
	return *user, true, nil
}

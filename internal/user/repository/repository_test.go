package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/nvoskov/userhub/internal/common/clock"
	"github.com/nvoskov/userhub/internal/common/constants"
	"github.com/nvoskov/userhub/internal/user/domain"
	"github.com/nvoskov/userhub/internal/user/repository"
)

func setupRepository() (*repository.MemRepository, *clock.MockSleeper) {
	sleeper := clock.NewMockSleeper()
	mockClock := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	repo := repository.NewMemRepository(mockClock, sleeper, constants.AsyncLookupDelay)
	return repo, sleeper
}

func TestMemRepository_AddAndGetByID(t *testing.T) {
	repo, _ := setupRepository()

	repo.Add(domain.User{ID: 1, Name: "Test", Email: "test@example.com"})

	user, ok := repo.GetByID(1)
	if !ok {
		t.Fatal("expected user to be found")
	}
	if user.Name != "Test" || user.Email != "test@example.com" {
		t.Errorf("unexpected user data: %+v", user)
	}
}

func TestMemRepository_GetByID_Absent(t *testing.T) {
	repo, _ := setupRepository()

	if _, ok := repo.GetByID(42); ok {
		t.Error("expected absent result for never-inserted id")
	}
}

func TestMemRepository_Add_OverwritesSameID(t *testing.T) {
	repo, _ := setupRepository()

	repo.Add(domain.User{ID: 7, Name: "First", Email: "first@example.com"})
	repo.Add(domain.User{ID: 7, Name: "Second", Email: "second@example.com"})

	if got := repo.Len(); got != 1 {
		t.Fatalf("expected len 1 after overwrite, got %d", got)
	}

	user, ok := repo.GetByID(7)
	if !ok {
		t.Fatal("expected user to be found")
	}
	if user.Name != "Second" {
		t.Errorf("expected overwriting entity to win, got %q", user.Name)
	}
}

func TestMemRepository_GetByIDAsync_ReturnsCopy(t *testing.T) {
	repo, sleeper := setupRepository()

	repo.Add(domain.User{ID: 3, Name: "Ann", Email: "ann@x.com"})

	user, ok, err := repo.GetByIDAsync(context.Background(), 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !ok {
		t.Fatal("expected user to be found")
	}
	if user.Name != "Ann" || user.Email != "ann@x.com" {
		t.Errorf("unexpected user data: %+v", user)
	}

	if len(sleeper.Slept) != 1 || sleeper.Slept[0] != constants.AsyncLookupDelay {
		t.Errorf("expected a single sleep of %v, got %v", constants.AsyncLookupDelay, sleeper.Slept)
	}

	// The result is independently owned.
	user.Name = "Mutated"
	stored, _ := repo.GetByID(3)
	if stored.Name != "Ann" {
		t.Errorf("mutating the returned copy changed the stored entity: %q", stored.Name)
	}
}

func TestMemRepository_GetByIDAsync_Absent(t *testing.T) {
	repo, _ := setupRepository()

	_, ok, err := repo.GetByIDAsync(context.Background(), 9)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ok {
		t.Error("expected absent result for never-inserted id")
	}
}

func TestMemRepository_GetByIDAsync_Canceled(t *testing.T) {
	repo, _ := setupRepository()

	repo.Add(domain.User{ID: 1, Name: "Ann", Email: "ann@x.com"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := repo.GetByIDAsync(ctx, 1)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if ok {
		t.Error("expected no result for canceled lookup")
	}
}

func TestMemRepository_RealSleeperHonorsCancellation(t *testing.T) {
	repo := repository.NewMemRepository(clock.NewRealClock(), clock.NewRealSleeper(), time.Minute)
	repo.Add(domain.User{ID: 1, Name: "Ann", Email: "ann@x.com"})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := repo.GetByIDAsync(ctx, 1)
	if err == nil {
		t.Fatal("expected error for timed-out context")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("cancellation took too long: %v", elapsed)
	}
}

package stats_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/userhive/usersvc/internal/domain"
	"github.com/userhive/usersvc/internal/metrics"
	"github.com/userhive/usersvc/internal/repository"
	"github.com/userhive/usersvc/internal/stats"
)

type fakeUserRepo struct {
	count    int64
	countErr error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) FindByEmailExcluding(ctx context.Context, email, excludeID string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, upd repository.UserUpdate) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return f.count, f.countErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewCollector_RejectsBadCronSpec(t *testing.T) {
	_, err := stats.NewCollector(&fakeUserRepo{}, discardLogger(), "not a cron spec")
	if err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}

func TestCollector_RefreshesGaugeOnStartup(t *testing.T) {
	metrics.UsersTotal.Set(0)

	collector, err := stats.NewCollector(&fakeUserRepo{count: 7}, discardLogger(), "*/5 * * * *")
	if err != nil {
		t.Fatalf("new collector: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		collector.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for testutil.ToFloat64(metrics.UsersTotal) != 7 {
		select {
		case <-deadline:
			t.Fatalf("gauge = %v, want 7", testutil.ToFloat64(metrics.UsersTotal))
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("collector did not stop after cancel")
	}
}

func TestCollector_KeepsGaugeOnCountError(t *testing.T) {
	metrics.UsersTotal.Set(3)

	collector, err := stats.NewCollector(&fakeUserRepo{countErr: errors.New("db down")}, discardLogger(), "*/5 * * * *")
	if err != nil {
		t.Fatalf("new collector: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		collector.Start(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	if got := testutil.ToFloat64(metrics.UsersTotal); got != 3 {
		t.Errorf("gauge = %v, want unchanged 3", got)
	}
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

// A nil Redis client turns every dashboard cache method into a no-op.
func TestDashboardCache_NilRedis(t *testing.T) {
	t.Parallel()

	d := NewDashboardCache(nil)
	ctx := context.Background()

	if b, ok := d.Get(ctx); ok || b != nil {
		t.Errorf("Get with nil client = %q, %v", b, ok)
	}
	d.Set(ctx, []byte(`{"as_of":"2025-01-05"}`), time.Minute)
	d.Invalidate(ctx)
}

func TestDashboardCache_GetSet(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	payload := []byte(`{"as_of":"2025-01-05"}`)

	mock.ExpectGet(dashboardKey).RedisNil()
	mock.ExpectSet(dashboardKey, payload, time.Minute).SetVal("OK")
	mock.ExpectGet(dashboardKey).SetVal(string(payload))

	d := NewDashboardCache(rdb)
	ctx := context.Background()

	if _, ok := d.Get(ctx); ok {
		t.Error("expected cache miss before Set")
	}

	d.Set(ctx, payload, time.Minute)

	got, ok := d.Get(ctx)
	if !ok || string(got) != string(payload) {
		t.Errorf("Get = %q, %v", got, ok)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestDashboardCache_Invalidate(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel(dashboardKey).SetVal(1)

	NewDashboardCache(rdb).Invalidate(context.Background())

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// Empty payloads are never written; a stale-but-valid snapshot beats an
// empty one.
func TestDashboardCache_Set_EmptyPayload(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	NewDashboardCache(rdb).Set(context.Background(), nil, time.Minute)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected redis call: %v", err)
	}
}

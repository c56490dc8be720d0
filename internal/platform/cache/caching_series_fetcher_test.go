package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"nikkei_backend/internal/feature/candles/domain/entity"
)

// mockRemoteFetcher はテスト用のRemoteFetcherモック実装です。
type mockRemoteFetcher struct {
	fetchFn func(ctx context.Context, code string) ([]entity.Candle, error)
}

func (m *mockRemoteFetcher) FetchDaily(ctx context.Context, code string) ([]entity.Candle, error) {
	if m.fetchFn != nil {
		return m.fetchFn(ctx, code)
	}
	return nil, nil
}

// TestNewCachingSeriesFetcher_Defaults はデフォルトのnamespaceが設定されることを検証します。
func TestNewCachingSeriesFetcher_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		namespace         string
		expectedNamespace string
	}{
		{
			name:              "default namespace when empty",
			namespace:         "",
			expectedNamespace: "series",
		},
		{
			name:              "custom namespace preserved",
			namespace:         "custom",
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := NewCachingSeriesFetcher(nil, 0, &mockRemoteFetcher{}, tt.namespace)

			if f.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, f.namespace)
			}
		})
	}
}

// TestCachingSeriesFetcher_EffectiveTTL はTTL未設定時に翌朝8時までの期間が使われることを検証します。
func TestCachingSeriesFetcher_EffectiveTTL(t *testing.T) {
	t.Parallel()

	fixed := NewCachingSeriesFetcher(nil, 10*time.Minute, &mockRemoteFetcher{}, "")
	if got := fixed.effectiveTTL(); got != 10*time.Minute {
		t.Errorf("ttl = %v, want 10m", got)
	}

	deferred := NewCachingSeriesFetcher(nil, 0, &mockRemoteFetcher{}, "")
	got := deferred.effectiveTTL()
	if got <= 0 || got > 24*time.Hour {
		t.Errorf("deferred ttl out of range: %v", got)
	}
}

// TestCachingSeriesFetcher_NilRedis はRedisがnilの場合にキャッシュをバイパスして内部フェッチャーを直接呼び出すことを検証します。
func TestCachingSeriesFetcher_NilRedis(t *testing.T) {
	t.Parallel()

	expected := []entity.Candle{
		{Time: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Open: 150.0, Close: 155.0},
	}

	inner := &mockRemoteFetcher{
		fetchFn: func(ctx context.Context, code string) ([]entity.Candle, error) {
			return expected, nil
		},
	}

	f := NewCachingSeriesFetcher(nil, 5*time.Minute, inner, "series")

	candles, err := f.FetchDaily(context.Background(), "7203")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candles) != len(expected) {
		t.Errorf("expected %d candles, got %d", len(expected), len(candles))
	}
}

// TestCachingSeriesFetcher_CacheHit はキャッシュヒット時に内部フェッチャーを呼ばないことを検証します。
func TestCachingSeriesFetcher_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached := []entity.Candle{
		{Time: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Open: 150.0, Close: 155.0},
	}
	cachedJSON, _ := json.Marshal(cached)

	mock.ExpectGet("series:7203:d").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockRemoteFetcher{
		fetchFn: func(ctx context.Context, code string) ([]entity.Candle, error) {
			innerCalled = true
			return nil, nil
		},
	}

	f := NewCachingSeriesFetcher(rdb, 5*time.Minute, inner, "series")
	candles, err := f.FetchDaily(context.Background(), "7203")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner fetcher should not be called on cache hit")
	}
	if len(candles) != 1 {
		t.Errorf("expected 1 candle, got %d", len(candles))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingSeriesFetcher_CacheMiss はキャッシュミス時にアップストリームから取得し、キャッシュに保存することを検証します。
func TestCachingSeriesFetcher_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := []entity.Candle{
		{Time: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Open: 150.0, Close: 155.0},
	}
	expectedJSON, _ := json.Marshal(expected)

	// Cache miss
	mock.ExpectGet("series:7203:d").RedisNil()
	// Set cache after fetching upstream
	mock.ExpectSet("series:7203:d", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockRemoteFetcher{
		fetchFn: func(ctx context.Context, code string) ([]entity.Candle, error) {
			return expected, nil
		},
	}

	f := NewCachingSeriesFetcher(rdb, 5*time.Minute, inner, "series")
	candles, err := f.FetchDaily(context.Background(), "7203")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candles) != 1 {
		t.Errorf("expected 1 candle, got %d", len(candles))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingSeriesFetcher_InnerError はアップストリームのエラーが伝播されることを検証します。
func TestCachingSeriesFetcher_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("quota exceeded")

	mock.ExpectGet("series:7203:d").RedisNil()

	inner := &mockRemoteFetcher{
		fetchFn: func(ctx context.Context, code string) ([]entity.Candle, error) {
			return nil, expectedErr
		},
	}

	f := NewCachingSeriesFetcher(rdb, 5*time.Minute, inner, "series")
	_, err := f.FetchDaily(context.Background(), "7203")

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

// TestCachingSeriesFetcher_CorruptedCache は破損したキャッシュを削除し、アップストリームにフォールバックすることを検証します。
func TestCachingSeriesFetcher_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := []entity.Candle{
		{Time: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Open: 150.0, Close: 155.0},
	}
	expectedJSON, _ := json.Marshal(expected)

	// Return invalid JSON from cache
	mock.ExpectGet("series:7203:d").SetVal("invalid json")
	// Delete corrupted cache
	mock.ExpectDel("series:7203:d").SetVal(1)
	// Set new cache after fetching upstream
	mock.ExpectSet("series:7203:d", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockRemoteFetcher{
		fetchFn: func(ctx context.Context, code string) ([]entity.Candle, error) {
			return expected, nil
		},
	}

	f := NewCachingSeriesFetcher(rdb, 5*time.Minute, inner, "series")
	candles, err := f.FetchDaily(context.Background(), "7203")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candles) != 1 {
		t.Errorf("expected 1 candle, got %d", len(candles))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestSafe はsafe関数がRedisキーで問題となる文字を正しくエスケープすることを検証します。
func TestSafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"7203", "7203"},
		{"key:value", "key_value"},
		{"a b:c", "a_b_c"},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			result := safe(tt.input)
			if result != tt.expected {
				t.Errorf("safe(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

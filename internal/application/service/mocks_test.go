package service_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"repo-catalog/internal/domain/repo"
)

// Mock implementations

// mockStore rejects calls on a done context like a real backend would.
// afterDelete, when set, runs once a Delete has removed the key.
type mockStore struct {
	mu          sync.Mutex
	data        map[string][]byte
	failGet     bool
	failSet     bool
	deletes     int
	afterDelete func(m *mockStore)
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string][]byte)}
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, false, errors.New("store unavailable")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mockStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return errors.New("quota exceeded")
	}
	m.data[key] = value
	return nil
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	m.deletes++
	delete(m.data, key)
	hook := m.afterDelete
	m.mu.Unlock()

	if hook != nil {
		hook(m)
	}
	return nil
}

func (m *mockStore) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

// mockFetcher holds FetchAll on block, when set, until it is closed or ctx ends
type mockFetcher struct {
	mu       sync.Mutex
	repos    []*repo.Repository
	err      error
	calls    int
	progress []repo.Progress
	block    chan struct{}
}

func (m *mockFetcher) FetchAll(ctx context.Context, onProgress repo.ProgressFunc) ([]*repo.Repository, error) {
	m.mu.Lock()
	m.calls++
	block := m.block
	result, err, progress := m.repos, m.err, m.progress
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	for _, p := range progress {
		if onProgress != nil {
			onProgress(p)
		}
	}

	return result, err
}

// cancellingFetcher cancels the caller's context before handing back repos,
// like an HTTP client that disconnects while the last page is in flight
type cancellingFetcher struct {
	cancel context.CancelFunc
	repos  []*repo.Repository
}

func (f *cancellingFetcher) FetchAll(ctx context.Context, onProgress repo.ProgressFunc) ([]*repo.Repository, error) {
	f.cancel()
	return f.repos, nil
}

func (m *mockFetcher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingObserver struct {
	mu      sync.Mutex
	updates []repo.Progress
}

func (o *recordingObserver) PublishProgress(p repo.Progress) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.updates = append(o.updates, p)
}

func mustRepo(id int64, name string, openIssues int, topics ...string) *repo.Repository {
	r, err := repo.NewRepository(repo.Attributes{
		ID:              id,
		Name:            name,
		FullName:        "azerothcore/" + name,
		HTMLURL:         "https://github.com/azerothcore/" + name,
		Topics:          topics,
		OpenIssuesCount: openIssues,
		StargazersCount: int(id) * 2,
		ForksCount:      int(id),
		UpdatedAt:       time.Date(2024, 2, 1, 8, 30, 0, 0, time.UTC),
	})
	if err != nil {
		panic(err)
	}
	return r
}

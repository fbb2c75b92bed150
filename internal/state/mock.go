// internal/state/mock.go
package state

// Mock is an in-memory test double for Manager.
type Mock struct {
	feed   *FeedState
	saves  []FeedState
	views  map[string]int
	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{views: make(map[string]int)}
}

// SetFeed seeds the state returned by GetFeed.
func (m *Mock) SetFeed(s *FeedState) { m.feed = s }

func (m *Mock) SaveFeed(s FeedState) {
	m.saves = append(m.saves, s)
	m.feed = &s
}

func (m *Mock) GetFeed() (*FeedState, error) {
	return m.feed, nil
}

func (m *Mock) RecordView(source string) (int, error) {
	m.views[source]++
	return m.views[source], nil
}

func (m *Mock) Views(source string) (int, error) {
	return m.views[source], nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Saves returns every state passed to SaveFeed.
func (m *Mock) Saves() []FeedState { return m.saves }

// Closed reports whether Close was called.
func (m *Mock) Closed() bool { return m.closed }

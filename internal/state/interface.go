// internal/state/interface.go
package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveFeed(state FeedState)
	GetFeed() (*FeedState, error)
	RecordView(source string) (int, error)
	Views(source string) (int, error)
	Close() error
}

// Verify implementations satisfy Interface at compile time.
var (
	_ Interface = (*Manager)(nil)
	_ Interface = (*Mock)(nil)
)

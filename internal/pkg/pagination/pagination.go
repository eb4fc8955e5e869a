// Package pagination holds the offset/limit window for the public feed. The
// position is owned by the caller; exhaustion is signaled by a batch shorter
// than the requested limit, there is no separate "has more" flag.
package pagination

const (
	DefaultLimit = 9
	MaxLimit     = 100
)

type Window struct {
	Offset int
	Limit  int
}

func NewWindow(offset, limit int) Window {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Window{Offset: offset, Limit: limit}
}

package fibheap

import "errors"

// Sentinel errors returned by Heap. None of them leave the heap's
// internal structure corrupted — a rejected call is always a no-op.
var (
	// ErrEmptyHeap is returned by ExtractMin when the heap holds no
	// entries.
	ErrEmptyHeap = errors.New("fibheap: heap is empty")

	// ErrNaNKey is returned by Insert and DecreaseKey when the supplied
	// key is NaN. NaN keys have no well-defined ordering, so they are
	// rejected outright rather than silently corrupting comparisons.
	ErrNaNKey = errors.New("fibheap: key must not be NaN")

	// ErrStaleHandle is returned when a nil Handle or a Handle that has
	// already been extracted is passed to DecreaseKey. A live Handle that
	// belongs to a different Heap is not detected.
	ErrStaleHandle = errors.New("fibheap: handle is stale or already extracted")

	// ErrKeyIncrease is returned by DecreaseKey when newKey is greater
	// than the handle's current key. DecreaseKey only ever lowers a key
	// (or leaves it unchanged); raising one would require a cut-and-
	// reinsert this package does not implement, since no pathwalk engine
	// needs it.
	ErrKeyIncrease = errors.New("fibheap: new key must not be greater than the current key")
)

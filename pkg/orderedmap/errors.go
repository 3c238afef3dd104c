package orderedmap

import "github.com/pkg/errors"

var (
	// ErrConcurrentModification is the panic value raised when an iterator
	// observes a structural change made after it was created.
	ErrConcurrentModification = errors.New("orderedmap: map structurally modified during iteration")

	// ErrNilHasher is the panic value raised when a nil hashing strategy is supplied.
	ErrNilHasher = errors.New("orderedmap: nil hasher")

	// ErrInconsistent is returned by Verify when the index and the order
	// sequence disagree.
	ErrInconsistent = errors.New("orderedmap: index and order are inconsistent")
)

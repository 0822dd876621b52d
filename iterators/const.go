package iterators

import (
	"github.com/Freelancerhu/trx"
)

const (
	// ErrNotFound is the value that will be returned when the iterator has no element for the request
	ErrNotFound trx.Error = "NotFound"
)

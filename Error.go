package trx

// Error is an implementation for the error interface that allow you to declare exported sentinel errors with the `const` keyword.
//
//	const ErrNotFound trx.Error = `entity not found`
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

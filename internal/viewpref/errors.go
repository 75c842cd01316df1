package viewpref

import "fmt"

// backendPanic wraps a panic raised inside a storage backend.
type backendPanic struct {
	op    string
	value any
}

func (e *backendPanic) Error() string {
	return fmt.Sprintf("storage %s panicked: %v", e.op, e.value)
}

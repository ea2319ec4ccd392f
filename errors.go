package tacore

import (
	"errors"
	"fmt"
)

// Sentinel errors for every precondition-violation category of §7.1.
// Convert recovers a panic carrying one of these (wrapped with context)
// and returns it as a plain error, so a batch caller such as the replay
// harness can report a bad capture without crashing.
var (
	ErrCapacityExceeded    = errors.New("tacore: capacity exceeded")
	ErrUnsupportedPolyType = errors.New("tacore: unsupported poly type")
	ErrUnsupportedVertType = errors.New("tacore: unsupported vert type")
	ErrObjListSet          = errors.New("tacore: OBJ_LIST_SET in stream")
	ErrNilTextureEntry     = errors.New("tacore: find_texture returned nil")
	ErrSpriteMissingEOS    = errors.New("tacore: sprite vertex without end-of-strip")
	ErrSortVertCount       = errors.New("tacore: sort input surface does not have 3 vertices")
)

// precondition is the panic payload used for every fatal invariant
// breach. It wraps a sentinel error with the structured context that
// makes the failure diagnosable (stream offset, observed value).
type precondition struct {
	sentinel error
	detail   string
}

func (p *precondition) Error() string {
	if p.detail == "" {
		return p.sentinel.Error()
	}
	return fmt.Sprintf("%s: %s", p.sentinel.Error(), p.detail)
}

func (p *precondition) Unwrap() error { return p.sentinel }

// fail panics with a precondition violation. Every call site in this
// package that raises a §7.1 error kind goes through this one function.
func fail(sentinel error, detail string) {
	panic(&precondition{sentinel: sentinel, detail: detail})
}

// recoverPrecondition turns a panic raised by fail into a returned error.
// Any other panic value is re-raised: only the precondition-violation
// category is meant to be recoverable at a conversion boundary.
func recoverPrecondition(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	p, ok := r.(*precondition)
	if !ok {
		panic(r)
	}
	*errp = fmt.Errorf("tacore: %w", p)
}

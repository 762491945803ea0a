package leakcheck

import (
	"errors"
	"fmt"
)

// ErrTagAmbiguous is matched (via errors.Is) by every *TagAmbiguousError.
var ErrTagAmbiguous = errors.New("leakcheck: ambiguous tag")

// TagAmbiguousError is returned by CountByTag when more than one identity recorded
// events under the same tag during the current session.
type TagAmbiguousError struct {
	Tag string
	// Identities lists every distinct identity seen under Tag, in first-seen order.
	Identities []Identity
}

func (e *TagAmbiguousError) Error() string {
	return fmt.Sprintf("leakcheck: tag %q is ambiguous: %v", e.Tag, e.Identities)
}

// Is reports whether target is ErrTagAmbiguous.
func (e *TagAmbiguousError) Is(target error) bool {
	return target == ErrTagAmbiguous
}

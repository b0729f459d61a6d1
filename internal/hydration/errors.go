package hydration

import "errors"

// ErrInvalidArgument marks caller mistakes such as a non-positive window or
// goal. The core never touches storage, so it has no other failure mode.
var ErrInvalidArgument = errors.New("invalid argument")

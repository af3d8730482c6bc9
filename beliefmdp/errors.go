package beliefmdp

import "errors"

// ErrNoReachableStart indicates the source model has no state with
// positive initial probability, so no belief support can be formed.
var ErrNoReachableStart = errors.New("beliefmdp: no state has positive initial probability")

package colony

import "errors"

// ErrCapacityOverflow is panicked by Reserve when the requested capacity
// would exceed the maximum representable capacity (spec.md §7).
var ErrCapacityOverflow = errors.New("colony: requested capacity exceeds the maximum representable capacity")

// ErrPoolIdentityExhausted is panicked when a GenerationPool would need to
// mint more pool identities than the identity space holds. spec.md §7
// documents this as effectively unreachable in normal use.
var ErrPoolIdentityExhausted = errors.New("colony: pool identity space exhausted")

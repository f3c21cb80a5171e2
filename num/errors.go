package num

import "errors"

// ErrNoConvergence indicates the eigensolver failed to factorize J·Jᵗ.
var ErrNoConvergence = errors.New("num: eigen decomposition did not converge")

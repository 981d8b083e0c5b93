package wrap

import (
	"github.com/iov-one/weave/errors"
)

// ErrInactiveVault is returned when depositing into or withdrawing from a
// vault that was switched off by its admin.
var ErrInactiveVault = errors.Register(1000, "vault is not active")

package derivative

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"

	"github.com/wrapnet/wrapd/x/wrap"
)

// PredictVaultAddress computes the account address a derivative vault will
// be deployed at for the given parameters. The computation is pure so that
// callers can mine a salt off chain before submitting the deployment.
func PredictVaultAddress(parent weave.Address, name, symbol string, maxSupply int64, salt []byte) weave.Address {
	h := sha256.New()
	h.Write(parent)
	h.Write([]byte(name))
	h.Write([]byte(symbol))
	var supply [8]byte
	binary.BigEndian.PutUint64(supply[:], uint64(maxSupply))
	h.Write(supply[:])
	h.Write(salt)
	return wrap.VaultAccount(h.Sum(nil))
}

// MineSalt searches for a salt whose predicted vault address compares
// strictly greater than the parent vault address. The pool layer requires
// this ordering between the paired tokens. Roughly every second salt
// qualifies, maxTries only guards against spinning forever.
func MineSalt(parent weave.Address, name, symbol string, maxSupply int64, maxTries int) ([]byte, weave.Address, error) {
	for i := 0; i < maxTries; i++ {
		salt := make([]byte, 8)
		binary.BigEndian.PutUint64(salt, uint64(i))
		addr := PredictVaultAddress(parent, name, symbol, maxSupply, salt)
		if bytes.Compare(addr, parent) > 0 {
			return salt, addr, nil
		}
	}
	return nil, nil, errors.Wrapf(errors.ErrState, "no salt found in %d tries", maxTries)
}

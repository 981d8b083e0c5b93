package derivative

import (
	"bytes"
	"testing"

	"github.com/iov-one/weave/weavetest"
	"github.com/stretchr/testify/require"
)

func TestPredictVaultAddressIsDeterministic(t *testing.T) {
	parent := weavetest.NewCondition().Address()
	salt := []byte("a salt")

	a := PredictVaultAddress(parent, "Punk Shards", "SHRD", 100, salt)
	b := PredictVaultAddress(parent, "Punk Shards", "SHRD", 100, salt)
	require.Equal(t, a, b)

	// Any input change moves the address.
	c := PredictVaultAddress(parent, "Punk Shards", "SHRD", 101, salt)
	require.NotEqual(t, a, c)
	d := PredictVaultAddress(parent, "Punk Shards", "SHRD", 100, []byte("other"))
	require.NotEqual(t, a, d)
}

func TestMineSaltOrdersAboveParent(t *testing.T) {
	parent := weavetest.NewCondition().Address()

	salt, addr, err := MineSalt(parent, "Punk Shards", "SHRD", 100, 1000)
	require.NoError(t, err)
	require.Equal(t, addr, PredictVaultAddress(parent, "Punk Shards", "SHRD", 100, salt))
	if bytes.Compare(addr, parent) <= 0 {
		t.Fatalf("mined address %q does not order above parent %q", addr, parent)
	}
}

func TestMineSaltGivesUp(t *testing.T) {
	parent := weavetest.NewCondition().Address()
	if _, _, err := MineSalt(parent, "Punk Shards", "SHRD", 100, 0); err == nil {
		t.Fatal("mining with no tries must fail")
	}
}

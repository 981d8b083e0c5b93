package pull

import (
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/tendermint/tendermint/libs/common"
)

type testRecipient struct {
	addr  weave.Address
	calls int
}

var _ Recipient = (*testRecipient)(nil)
var _ Resolver = (*testRecipient)(nil)

func (r *testRecipient) Resolve(db weave.ReadOnlyKVStore, destination weave.Address) (Recipient, error) {
	if !r.addr.Equals(destination) {
		return nil, errors.ErrNotFound
	}
	return r, nil
}

func (r *testRecipient) PullRewards(db weave.KVStore, source, destination weave.Address, amount coin.Coin) ([]common.KVPair, error) {
	r.calls++
	return nil, nil
}

func TestRegistryResolve(t *testing.T) {
	first := &testRecipient{addr: weavetest.NewCondition().Address()}
	second := &testRecipient{addr: weavetest.NewCondition().Address()}

	var reg Registry
	reg.Add(first)
	reg.Add(second)

	rec, err := reg.Resolve(nil, second.addr)
	if err != nil {
		t.Fatalf("resolve: %s", err)
	}
	if rec != second {
		t.Fatal("resolved the wrong recipient")
	}

	if _, err := reg.Resolve(nil, weavetest.NewCondition().Address()); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestGuardRejectsRecursiveEntry(t *testing.T) {
	addr := weavetest.NewCondition().Address()
	other := weavetest.NewCondition().Address()

	g := NewGuard()
	if err := g.Enter(addr); err != nil {
		t.Fatalf("first enter: %s", err)
	}
	if err := g.Enter(addr); !ErrReentrancy.Is(err) {
		t.Fatalf("want reentrancy error, got %v", err)
	}
	// An unrelated entity is not affected.
	if err := g.Enter(other); err != nil {
		t.Fatalf("unrelated enter: %s", err)
	}
	g.Exit(addr)
	if err := g.Enter(addr); err != nil {
		t.Fatalf("enter after exit: %s", err)
	}
}

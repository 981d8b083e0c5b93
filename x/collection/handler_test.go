package collection

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
)

func TestHandlers(t *testing.T) {
	issuer := weavetest.NewCondition()
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	ctrl := NewController()

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	RegisterRoutes(rt, auth, ctrl)

	db := store.MemStore()
	migration.MustInitPkg(db, "collection")

	ctx := weave.WithHeight(context.Background(), 1)
	ctx = weave.WithChainID(ctx, "testchain-123")

	deliver := func(t *testing.T, conds []weave.Condition, msg weave.Msg) (*weave.DeliverResult, error) {
		t.Helper()
		tx := &weavetest.Tx{Msg: msg}
		return rt.Deliver(auth.SetConditions(ctx, conds...), db, tx)
	}

	res, err := deliver(t, []weave.Condition{issuer}, &CreateCollectionMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		Name:      "Punk Things",
		Symbol:    "PUNK",
		BaseUri:   "ipfs://punks/",
		Issuer:    issuer.Address(),
		MaxSupply: 2,
	})
	if err != nil {
		t.Fatalf("create collection: %s", err)
	}
	colID := res.Data

	// Only the issuer can mint.
	if _, err := deliver(t, []weave.Condition{alice}, &IssueTokenMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: colID,
		TokenId:    []byte("punk-1"),
		Owner:      alice.Address(),
	}); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %v", err)
	}

	for _, id := range []string{"punk-1", "punk-2"} {
		if _, err := deliver(t, []weave.Condition{issuer}, &IssueTokenMsg{
			Metadata:   &weave.Metadata{Schema: 1},
			Collection: colID,
			TokenId:    []byte(id),
			Owner:      alice.Address(),
		}); err != nil {
			t.Fatalf("issue %s: %s", id, err)
		}
	}

	// Supply is capped at two.
	if err := ctrl.IssueToken(db, colID, []byte("punk-3"), issuer.Address(), alice.Address()); !errors.ErrState.Is(err) {
		t.Fatalf("want supply exhausted, got %v", err)
	}

	// Duplicate IDs are rejected before the supply check matters.
	var col Collection
	if err := ctrl.collections.One(db, colID, &col); err != nil {
		t.Fatalf("collection: %s", err)
	}
	if col.Issued != 2 {
		t.Fatalf("want 2 issued, got %d", col.Issued)
	}

	// Only the current owner can transfer.
	if _, err := deliver(t, []weave.Condition{bob}, &TransferTokenMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Collection:  colID,
		TokenId:     []byte("punk-1"),
		Destination: bob.Address(),
	}); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %v", err)
	}
	if _, err := deliver(t, []weave.Condition{alice}, &TransferTokenMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Collection:  colID,
		TokenId:     []byte("punk-1"),
		Destination: bob.Address(),
	}); err != nil {
		t.Fatalf("transfer: %s", err)
	}

	owner, err := ctrl.TokenOwner(db, colID, []byte("punk-1"))
	if err != nil {
		t.Fatalf("token owner: %s", err)
	}
	if !owner.Equals(bob.Address()) {
		t.Fatalf("want bob as owner, got %s", owner)
	}
}

func TestMoveTokenUnknownToken(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "collection")

	ctrl := NewController()
	src := weavetest.NewCondition().Address()
	dst := weavetest.NewCondition().Address()
	if err := ctrl.MoveToken(db, []byte("no-such"), []byte("id"), src, dst); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %v", err)
	}
}

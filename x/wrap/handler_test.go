package wrap

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"

	"github.com/wrapnet/wrapd/x/collection"
	"github.com/wrapnet/wrapd/x/pull"
)

type testEnv struct {
	db       weave.KVStore
	rt       *app.Router
	auth     *weavetest.CtxAuth
	ctx      weave.Context
	cash     CashController
	tokens   *collection.Controller
	ctrl     *Controller
	colID    []byte
	issuer   weave.Condition
	registry *pull.Registry
}

func newTestEnv(t testing.TB) *testEnv {
	t.Helper()

	db := store.MemStore()
	migration.MustInitPkg(db, "wrap", "collection")

	cashCtrl := cash.NewController(cash.NewBucket())
	tokens := collection.NewController()
	registry := &pull.Registry{}
	ctrl := NewController(cashCtrl, tokens, registry)
	registry.Add(ctrl)

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	RegisterRoutes(rt, auth, ctrl)

	ctx := weave.WithHeight(context.Background(), 1)
	ctx = weave.WithChainID(ctx, "testchain-123")

	issuer := weavetest.NewCondition()
	colID, err := tokens.CreateCollection(db, "Punk Things", "PUNK", "ipfs://punks/", issuer.Address(), 100)
	if err != nil {
		t.Fatalf("create collection: %s", err)
	}

	return &testEnv{
		db:       db,
		rt:       rt,
		auth:     auth,
		ctx:      ctx,
		cash:     cashCtrl,
		tokens:   tokens,
		ctrl:     ctrl,
		colID:    colID,
		issuer:   issuer,
		registry: registry,
	}
}

func (e *testEnv) deliver(t testing.TB, cond weave.Condition, msg weave.Msg) *weave.DeliverResult {
	t.Helper()
	res, err := e.rt.Deliver(e.auth.SetConditions(e.ctx, cond), e.db, &weavetest.Tx{Msg: msg})
	if err != nil {
		t.Fatalf("deliver %T: %s", msg, err)
	}
	return res
}

func (e *testEnv) deliverErr(t testing.TB, cond weave.Condition, msg weave.Msg) error {
	t.Helper()
	_, err := e.rt.Deliver(e.auth.SetConditions(e.ctx, cond), e.db, &weavetest.Tx{Msg: msg})
	return err
}

func (e *testEnv) issueTokens(t testing.TB, owner weave.Address, ids ...string) [][]byte {
	t.Helper()
	raw := make([][]byte, 0, len(ids))
	for _, id := range ids {
		if err := e.tokens.IssueToken(e.db, e.colID, []byte(id), e.issuer.Address(), owner); err != nil {
			t.Fatalf("issue %s: %s", id, err)
		}
		raw = append(raw, []byte(id))
	}
	return raw
}

func (e *testEnv) balance(t testing.TB, addr weave.Address) coin.Coin {
	t.Helper()
	coins, err := e.cash.Balance(e.db, addr)
	switch {
	case errors.ErrNotFound.Is(err):
		return coin.Coin{Ticker: "WPNK"}
	case err != nil:
		t.Fatalf("balance %s: %s", addr, err)
	}
	for _, c := range coins {
		if c.Ticker == "WPNK" {
			return *c
		}
	}
	return coin.Coin{Ticker: "WPNK"}
}

func (e *testEnv) createVault(t testing.TB, admin weave.Condition, feeReceiver weave.Address) []byte {
	t.Helper()
	res := e.deliver(t, admin, &CreateVaultMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		Collection:   e.colID,
		Ticker:       "WPNK",
		ExchangeUnit: coin.NewCoinp(1000, 0, "WPNK"),
		MintFee:      coin.NewCoinp(10, 0, "WPNK"),
		RedeemFee:    coin.NewCoinp(5, 0, "WPNK"),
		Admin:        admin.Address(),
		FeeReceiver:  feeReceiver,
	})
	return res.Data
}

func TestWrapLifecycle(t *testing.T) {
	e := newTestEnv(t)

	admin := weavetest.NewCondition()
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	feeRec := weavetest.NewCondition().Address()

	vaultID := e.createVault(t, admin, feeRec)
	vault, err := e.ctrl.GetVault(e.db, vaultID)
	if err != nil {
		t.Fatalf("vault: %s", err)
	}
	if !vault.Address.Equals(VaultAccount(vaultID)) {
		t.Fatalf("want derived vault address, got %s", vault.Address)
	}

	tokens := e.issueTokens(t, alice.Address(), "punk-1", "punk-2", "punk-3")

	// Wrapping three assets at a 1000 unit exchange rate with a fee of
	// 10 per asset pays out 2970 and retains 30.
	res := e.deliver(t, alice, &MintBatchMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		VaultId:     vaultID,
		TokenIds:    tokens,
		Destination: bob.Address(),
	})
	if want, got := 4, len(res.Tags); want != got {
		t.Fatalf("want %d tags, got %d", want, got)
	}
	if b := e.balance(t, bob.Address()); !b.Equals(coin.NewCoin(2970, 0, "WPNK")) {
		t.Fatalf("want bob at 2970, got %s", b)
	}
	vault, _ = e.ctrl.GetVault(e.db, vaultID)
	if !vault.PendingFee.Equals(coin.NewCoin(30, 0, "WPNK")) {
		t.Fatalf("want 30 pending, got %s", vault.PendingFee)
	}
	owner, err := e.tokens.TokenOwner(e.db, e.colID, tokens[0])
	if err != nil {
		t.Fatalf("token owner: %s", err)
	}
	if !owner.Equals(vault.Address) {
		t.Fatalf("want vault custody, got %s", owner)
	}

	// Unwrapping one asset charges 1000 + 5 and hands the asset over.
	e.deliver(t, bob, &RedeemMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		VaultId:     vaultID,
		TokenId:     tokens[0],
		Destination: bob.Address(),
	})
	if b := e.balance(t, bob.Address()); !b.Equals(coin.NewCoin(1965, 0, "WPNK")) {
		t.Fatalf("want bob at 1965, got %s", b)
	}
	owner, _ = e.tokens.TokenOwner(e.db, e.colID, tokens[0])
	if !owner.Equals(bob.Address()) {
		t.Fatalf("want bob as owner, got %s", owner)
	}
	vault, _ = e.ctrl.GetVault(e.db, vaultID)
	if !vault.PendingFee.Equals(coin.NewCoin(35, 0, "WPNK")) {
		t.Fatalf("want 35 pending, got %s", vault.PendingFee)
	}

	// Distribution moves exactly the pending fee to the receiver and
	// resets the pending balance.
	e.deliver(t, alice, &DistributeFeesMsg{
		Metadata: &weave.Metadata{Schema: 1},
		VaultId:  vaultID,
	})
	if b := e.balance(t, feeRec); !b.Equals(coin.NewCoin(35, 0, "WPNK")) {
		t.Fatalf("want receiver at 35, got %s", b)
	}
	vault, _ = e.ctrl.GetVault(e.db, vaultID)
	if !vault.PendingFee.IsZero() {
		t.Fatalf("want zero pending, got %s", vault.PendingFee)
	}

	// A second distribution has nothing to move.
	e.deliver(t, alice, &DistributeFeesMsg{
		Metadata: &weave.Metadata{Schema: 1},
		VaultId:  vaultID,
	})
	if b := e.balance(t, feeRec); !b.Equals(coin.NewCoin(35, 0, "WPNK")) {
		t.Fatalf("want receiver still at 35, got %s", b)
	}
}

func TestFeeExemption(t *testing.T) {
	e := newTestEnv(t)

	admin := weavetest.NewCondition()
	alice := weavetest.NewCondition()
	feeRec := weavetest.NewCondition().Address()

	vaultID := e.createVault(t, admin, feeRec)
	tokens := e.issueTokens(t, alice.Address(), "punk-1", "punk-2")

	e.deliver(t, admin, &SetFeeExemptMsg{
		Metadata: &weave.Metadata{Schema: 1},
		VaultId:  vaultID,
		Address:  alice.Address(),
		Exempt:   true,
	})

	// Exempt wrap pays out the full exchange amount.
	e.deliver(t, alice, &MintMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		VaultId:     vaultID,
		TokenId:     tokens[0],
		Destination: alice.Address(),
	})
	if b := e.balance(t, alice.Address()); !b.Equals(coin.NewCoin(1000, 0, "WPNK")) {
		t.Fatalf("want 1000, got %s", b)
	}

	// ForceFee restores the nominal rate for an exempt caller.
	e.deliver(t, alice, &MintBatchMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		VaultId:     vaultID,
		TokenIds:    [][]byte{tokens[1]},
		Destination: alice.Address(),
		ForceFee:    true,
	})
	if b := e.balance(t, alice.Address()); !b.Equals(coin.NewCoin(1990, 0, "WPNK")) {
		t.Fatalf("want 1990, got %s", b)
	}

	vault, err := e.ctrl.GetVault(e.db, vaultID)
	if err != nil {
		t.Fatalf("vault: %s", err)
	}
	if !vault.PendingFee.Equals(coin.NewCoin(10, 0, "WPNK")) {
		t.Fatalf("want 10 pending, got %s", vault.PendingFee)
	}

	// Revoking the exemption brings the fee back.
	e.deliver(t, admin, &SetFeeExemptMsg{
		Metadata: &weave.Metadata{Schema: 1},
		VaultId:  vaultID,
		Address:  alice.Address(),
		Exempt:   false,
	})
	vault, _ = e.ctrl.GetVault(e.db, vaultID)
	if vault.IsFeeExempt(alice.Address()) {
		t.Fatal("exemption was not revoked")
	}
}

func TestInactiveVaultRejectsWrapping(t *testing.T) {
	e := newTestEnv(t)

	admin := weavetest.NewCondition()
	alice := weavetest.NewCondition()
	feeRec := weavetest.NewCondition().Address()

	vaultID := e.createVault(t, admin, feeRec)
	tokens := e.issueTokens(t, alice.Address(), "punk-1")

	// Only the admin can deactivate.
	if err := e.deliverErr(t, alice, &SetActiveMsg{
		Metadata: &weave.Metadata{Schema: 1},
		VaultId:  vaultID,
		Active:   false,
	}); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %v", err)
	}
	e.deliver(t, admin, &SetActiveMsg{
		Metadata: &weave.Metadata{Schema: 1},
		VaultId:  vaultID,
		Active:   false,
	})

	if err := e.deliverErr(t, alice, &MintMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		VaultId:     vaultID,
		TokenId:     tokens[0],
		Destination: alice.Address(),
	}); !ErrInactiveVault.Is(err) {
		t.Fatalf("want inactive vault, got %v", err)
	}

	e.deliver(t, admin, &SetActiveMsg{
		Metadata: &weave.Metadata{Schema: 1},
		VaultId:  vaultID,
		Active:   true,
	})
	e.deliver(t, alice, &MintMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		VaultId:     vaultID,
		TokenId:     tokens[0],
		Destination: alice.Address(),
	})
}

func TestChargeFeeAccrues(t *testing.T) {
	e := newTestEnv(t)

	admin := weavetest.NewCondition()
	alice := weavetest.NewCondition()
	feeRec := weavetest.NewCondition().Address()

	vaultID := e.createVault(t, admin, feeRec)

	if err := e.cash.CoinMint(e.db, alice.Address(), coin.NewCoin(50, 0, "WPNK")); err != nil {
		t.Fatalf("fund alice: %s", err)
	}
	e.deliver(t, alice, &ChargeFeeMsg{
		Metadata: &weave.Metadata{Schema: 1},
		VaultId:  vaultID,
		Amount:   coin.NewCoinp(50, 0, "WPNK"),
	})
	vault, err := e.ctrl.GetVault(e.db, vaultID)
	if err != nil {
		t.Fatalf("vault: %s", err)
	}
	if !vault.PendingFee.Equals(coin.NewCoin(50, 0, "WPNK")) {
		t.Fatalf("want 50 pending, got %s", vault.PendingFee)
	}

	// A foreign currency is rejected.
	if err := e.cash.CoinMint(e.db, alice.Address(), coin.NewCoin(1, 0, "IOV")); err != nil {
		t.Fatalf("fund alice: %s", err)
	}
	if err := e.deliverErr(t, alice, &ChargeFeeMsg{
		Metadata: &weave.Metadata{Schema: 1},
		VaultId:  vaultID,
		Amount:   coin.NewCoinp(1, 0, "IOV"),
	}); !errors.ErrCurrency.Is(err) {
		t.Fatalf("want currency error, got %v", err)
	}
}

func TestDistributeIntoPullRecipientVault(t *testing.T) {
	e := newTestEnv(t)

	admin := weavetest.NewCondition()
	alice := weavetest.NewCondition()

	// The sink vault receives the fees of the source vault through the
	// pull protocol and accrues them as its own pending fee.
	sinkID := e.createVault(t, admin, weavetest.NewCondition().Address())
	sink, err := e.ctrl.GetVault(e.db, sinkID)
	if err != nil {
		t.Fatalf("sink: %s", err)
	}
	srcID := e.createVault(t, admin, sink.Address)

	tokens := e.issueTokens(t, alice.Address(), "punk-1")
	e.deliver(t, alice, &MintMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		VaultId:     srcID,
		TokenId:     tokens[0],
		Destination: alice.Address(),
	})
	res := e.deliver(t, alice, &DistributeFeesMsg{
		Metadata: &weave.Metadata{Schema: 1},
		VaultId:  srcID,
	})
	if want, got := 1, len(res.Tags); want != got {
		t.Fatalf("want %d tags, got %d", want, got)
	}
	if want, got := "10 WPNK", string(res.Tags[0].Value); want != got {
		t.Fatalf("want %q distributed, got %q", want, got)
	}

	sink, _ = e.ctrl.GetVault(e.db, sinkID)
	if !sink.PendingFee.Equals(coin.NewCoin(10, 0, "WPNK")) {
		t.Fatalf("want 10 pending on sink, got %s", sink.PendingFee)
	}
	if b := e.balance(t, sink.Address); !b.Equals(coin.NewCoin(10, 0, "WPNK")) {
		t.Fatalf("want 10 on sink account, got %s", b)
	}
}

func TestUpdateAdminTransfersControl(t *testing.T) {
	e := newTestEnv(t)

	admin := weavetest.NewCondition()
	successor := weavetest.NewCondition()

	vaultID := e.createVault(t, admin, weavetest.NewCondition().Address())

	e.deliver(t, admin, &UpdateAdminMsg{
		Metadata: &weave.Metadata{Schema: 1},
		VaultId:  vaultID,
		Admin:    successor.Address(),
	})

	// The previous admin lost control.
	if err := e.deliverErr(t, admin, &UpdateFeesMsg{
		Metadata: &weave.Metadata{Schema: 1},
		VaultId:  vaultID,
		MintFee:  coin.NewCoinp(1, 0, "WPNK"),
	}); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %v", err)
	}
	e.deliver(t, successor, &UpdateFeesMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		VaultId:   vaultID,
		MintFee:   coin.NewCoinp(1, 0, "WPNK"),
		RedeemFee: coin.NewCoinp(1, 0, "WPNK"),
	})

	vault, err := e.ctrl.GetVault(e.db, vaultID)
	if err != nil {
		t.Fatalf("vault: %s", err)
	}
	if !vault.MintFee.Equals(coin.NewCoin(1, 0, "WPNK")) {
		t.Fatalf("want updated mint fee, got %s", vault.MintFee)
	}
}

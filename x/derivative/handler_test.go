package derivative

import (
	"bytes"
	"context"
	"encoding/binary"
	"math/big"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrapnet/wrapd/x/collection"
	"github.com/wrapnet/wrapd/x/pull"
	"github.com/wrapnet/wrapd/x/wrap"
)

// The bootstrap position below covers the price range 1 to 100 derivative
// units per parent unit, with the pool opened at price 10.
const (
	priceTenX96    = "250541448375047946302209916928"
	rangeLowerTick = 0
	rangeUpperTick = 46020
)

type testEnv struct {
	db     weave.KVStore
	rt     *app.Router
	auth   *weavetest.CtxAuth
	ctx    weave.Context
	cash   cash.Controller
	vaults *wrap.Controller
	tokens *collection.Controller
	engine PoolEngine
	ctrl   *Controller
	owner  weave.Condition
}

func newTestEnv(t testing.TB) *testEnv {
	t.Helper()

	db := store.MemStore()
	migration.MustInitPkg(db, "wrap", "collection", "derivative")

	cashCtrl := cash.NewController(cash.NewBucket())
	tokens := collection.NewController()
	registry := &pull.Registry{}
	vaults := wrap.NewController(cashCtrl, tokens, registry)
	registry.Add(vaults)
	engine := NewBootstrapEngine(cashCtrl)
	ctrl := NewController(vaults, tokens, cashCtrl, engine)

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	RegisterRoutes(rt, auth, ctrl)

	owner := weavetest.NewCondition()
	conf := Configuration{
		Metadata:    &weave.Metadata{Schema: 1},
		Owner:       owner.Address(),
		QuoteTicker: "IOV",
	}
	if err := gconf.Save(db, "derivative", &conf); err != nil {
		t.Fatalf("save configuration: %s", err)
	}

	ctx := weave.WithHeight(context.Background(), 1)
	ctx = weave.WithChainID(ctx, "testchain-123")

	return &testEnv{
		db:     db,
		rt:     rt,
		auth:   auth,
		ctx:    ctx,
		cash:   cashCtrl,
		vaults: vaults,
		tokens: tokens,
		engine: engine,
		ctrl:   ctrl,
		owner:  owner,
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

func (e *testEnv) balance(t testing.TB, addr weave.Address, ticker string) coin.Coin {
	t.Helper()
	coins, err := e.cash.Balance(e.db, addr)
	switch {
	case errors.ErrNotFound.Is(err):
		return coin.Coin{Ticker: ticker}
	case err != nil:
		t.Fatalf("balance %s: %s", addr, err)
	}
	for _, c := range coins {
		if c.Ticker == ticker {
			return *c
		}
	}
	return coin.Coin{Ticker: ticker}
}

// createRoot deploys a collection and a root vault trading WPNK against
// the IOV quote currency, returning the vault ID and the vault.
func (e *testEnv) createRoot(t testing.TB, admin weave.Condition) ([]byte, *wrap.Vault) {
	t.Helper()
	issuer := weavetest.NewCondition()
	colID, err := e.tokens.CreateCollection(e.db, "Punk Things", "PUNK", "ipfs://punks/", issuer.Address(), 1000)
	if err != nil {
		t.Fatalf("create collection: %s", err)
	}
	res := e.deliver(t, admin, &CreateRootMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		Collection:   colID,
		Ticker:       "WPNK",
		ExchangeUnit: coin.NewCoinp(1000, 0, "WPNK"),
		MintFee:      coin.NewCoinp(10, 0, "WPNK"),
		RedeemFee:    coin.NewCoinp(5, 0, "WPNK"),
		Admin:        admin.Address(),
		FeeReceiver:  admin.Address(),
		SqrtPriceX96: "79228162514264337593543950336",
	})
	vault, err := e.vaults.GetVault(e.db, res.Data)
	if err != nil {
		t.Fatalf("get vault: %s", err)
	}
	return res.Data, vault
}

func (e *testEnv) derivativeMsg(parentID []byte, parent *wrap.Vault, salt []byte) *CreateDerivativeMsg {
	return &CreateDerivativeMsg{
		Metadata:           &weave.Metadata{Schema: 1},
		ParentId:           parentID,
		Name:               "Punk Shards",
		Symbol:             "SHRD",
		BaseUri:            "ipfs://shards/",
		Ticker:             "DPNK",
		ExchangeUnit:       coin.NewCoinp(1000, 0, "DPNK"),
		Fee:                coin.NewCoinp(1, 0, "DPNK"),
		FeeReceiver:        parent.Address,
		MaxSupply:          100,
		SqrtPriceX96:       priceTenX96,
		TickLower:          rangeLowerTick,
		TickUpper:          rangeUpperTick,
		Liquidity:          "1000",
		ParentContribution: coin.NewCoinp(500, 0, "WPNK"),
		Salt:               salt,
	}
}

func TestCreateRootRegistersPool(t *testing.T) {
	env := newTestEnv(t)
	admin := weavetest.NewCondition()

	_, vault := env.createRoot(t, admin)

	root, err := env.ctrl.GetRootPool(env.db, vault.Address)
	require.NoError(t, err)
	pool, err := env.engine.GetPool(env.db, root.PoolId)
	require.NoError(t, err)
	assert.Equal(t, "IOV", pool.Token0)
	assert.Equal(t, "WPNK", pool.Token1)
	assert.Equal(t, "0", pool.Liquidity)
}

func TestCreateRootRequiresAdminSignature(t *testing.T) {
	env := newTestEnv(t)
	admin := weavetest.NewCondition()
	stranger := weavetest.NewCondition()

	issuer := weavetest.NewCondition()
	colID, err := env.tokens.CreateCollection(env.db, "Punk Things", "PUNK", "", issuer.Address(), 1000)
	require.NoError(t, err)
	err = env.deliverErr(t, stranger, &CreateRootMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		Collection:   colID,
		Ticker:       "WPNK",
		ExchangeUnit: coin.NewCoinp(1000, 0, "WPNK"),
		Admin:        admin.Address(),
		FeeReceiver:  admin.Address(),
		SqrtPriceX96: "79228162514264337593543950336",
	})
	if !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}
}

func TestCreateDerivativeBootstrapsPool(t *testing.T) {
	env := newTestEnv(t)
	admin := weavetest.NewCondition()
	caller := weavetest.NewCondition()

	parentID, parent := env.createRoot(t, admin)
	require.NoError(t, env.cash.CoinMint(env.db, caller.Address(), coin.NewCoin(500, 0, "WPNK")))

	salt, addr, err := MineSalt(parent.Address, "Punk Shards", "SHRD", 100, 1000)
	require.NoError(t, err)

	res := env.deliver(t, caller, env.derivativeMsg(parentID, parent, salt))

	vault, err := env.vaults.GetVault(env.db, res.Data)
	require.NoError(t, err)
	assert.Equal(t, addr, vault.Address)
	assert.Equal(t, caller.Address(), vault.Admin)
	assert.True(t, vault.Active)

	child, err := env.ctrl.GetChildPool(env.db, addr)
	require.NoError(t, err)
	assert.Equal(t, parent.Address, child.ParentAddress)
	assert.Equal(t, "1000", child.Liquidity)

	pool, err := env.engine.GetPool(env.db, child.PoolId)
	require.NoError(t, err)
	assert.Equal(t, "WPNK", pool.Token0)
	assert.Equal(t, "DPNK", pool.Token1)
	assert.Equal(t, "1000", pool.Liquidity)

	// At price 10 over the range 1 to 100 the position takes about 216
	// parent units and about 2162 derivative units.
	assert.Equal(t, int64(216), env.balance(t, pool.Address, "WPNK").Whole)
	assert.Equal(t, int64(2162), env.balance(t, pool.Address, "DPNK").Whole)
	// Only the consumed part of the contribution leaves the caller.
	assert.Equal(t, int64(283), env.balance(t, caller.Address(), "WPNK").Whole)
	// Preminted supply not retained by the pool goes to the caller.
	assert.Equal(t, int64(97837), env.balance(t, caller.Address(), "DPNK").Whole)

	// The bootstrap position can be opened only once.
	_, err = env.engine.AddLiquidity(env.db, child.PoolId, LiquidityRequest{
		TickLower: rangeLowerTick,
		TickUpper: rangeUpperTick,
		Liquidity: big.NewInt(10),
		Payer0:    caller.Address(),
		Max0:      coin.NewCoin(100, 0, "WPNK"),
		Payer1:    caller.Address(),
		Max1:      coin.NewCoin(100, 0, "DPNK"),
	})
	if !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %+v", err)
	}
}

func TestCreateDerivativeBoundsLiquidityByContribution(t *testing.T) {
	env := newTestEnv(t)
	admin := weavetest.NewCondition()
	caller := weavetest.NewCondition()

	parentID, parent := env.createRoot(t, admin)
	require.NoError(t, env.cash.CoinMint(env.db, caller.Address(), coin.NewCoin(500, 0, "WPNK")))

	salt, addr, err := MineSalt(parent.Address, "Punk Shards", "SHRD", 100, 1000)
	require.NoError(t, err)

	msg := env.derivativeMsg(parentID, parent, salt)
	msg.Liquidity = "1000000"
	msg.ParentContribution = coin.NewCoinp(100, 0, "WPNK")
	env.deliver(t, caller, msg)

	child, err := env.ctrl.GetChildPool(env.db, addr)
	require.NoError(t, err)
	achieved, ok := new(big.Int).SetString(child.Liquidity, 10)
	require.True(t, ok)
	if achieved.Sign() <= 0 || achieved.Cmp(big.NewInt(1000000)) >= 0 {
		t.Fatalf("achieved liquidity %s must be positive and below the request", achieved)
	}
	// The contribution maximum caps the spend, the rest never moves.
	assert.Equal(t, int64(400), env.balance(t, caller.Address(), "WPNK").Whole)
}

func TestCreateDerivativeRequiresRootPool(t *testing.T) {
	env := newTestEnv(t)
	admin := weavetest.NewCondition()
	caller := weavetest.NewCondition()

	// A plain vault without a registered root pool cannot be built upon.
	issuer := weavetest.NewCondition()
	colID, err := env.tokens.CreateCollection(env.db, "Punk Things", "PUNK", "", issuer.Address(), 1000)
	require.NoError(t, err)
	vaultID, err := env.vaults.CreateVault(env.db, &wrap.Vault{
		Metadata:     &weave.Metadata{Schema: 1},
		Collection:   colID,
		Ticker:       "WPNK",
		ExchangeUnit: coin.NewCoinp(1000, 0, "WPNK"),
		Active:       true,
		Admin:        admin.Address(),
		FeeReceiver:  admin.Address(),
	})
	require.NoError(t, err)
	vault, err := env.vaults.GetVault(env.db, vaultID)
	require.NoError(t, err)

	salt, _, err := MineSalt(vault.Address, "Punk Shards", "SHRD", 100, 1000)
	require.NoError(t, err)
	err = env.deliverErr(t, caller, env.derivativeMsg(vaultID, vault, salt))
	if !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %+v", err)
	}
}

func TestCreateDerivativeRejectsUnorderedSalt(t *testing.T) {
	env := newTestEnv(t)
	admin := weavetest.NewCondition()
	caller := weavetest.NewCondition()

	parentID, parent := env.createRoot(t, admin)
	require.NoError(t, env.cash.CoinMint(env.db, caller.Address(), coin.NewCoin(500, 0, "WPNK")))

	salt := mineUnorderedSalt(t, parent.Address)
	err := env.deliverErr(t, caller, env.derivativeMsg(parentID, parent, salt))
	if !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %+v", err)
	}
}

func TestCreateDerivativeRejectsMalformedLiquidity(t *testing.T) {
	env := newTestEnv(t)
	admin := weavetest.NewCondition()
	caller := weavetest.NewCondition()

	parentID, parent := env.createRoot(t, admin)
	require.NoError(t, env.cash.CoinMint(env.db, caller.Address(), coin.NewCoin(500, 0, "WPNK")))

	salt, _, err := MineSalt(parent.Address, "Punk Shards", "SHRD", 100, 1000)
	require.NoError(t, err)

	msg := env.derivativeMsg(parentID, parent, salt)
	msg.Liquidity = "bogus"
	if _, _, _, err := env.ctrl.CreateDerivative(env.db, caller.Address(), msg); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
}

func TestCreateDerivativeRejectsForeignContribution(t *testing.T) {
	env := newTestEnv(t)
	admin := weavetest.NewCondition()
	caller := weavetest.NewCondition()

	parentID, parent := env.createRoot(t, admin)
	salt, _, err := MineSalt(parent.Address, "Punk Shards", "SHRD", 100, 1000)
	require.NoError(t, err)

	msg := env.derivativeMsg(parentID, parent, salt)
	msg.ParentContribution = coin.NewCoinp(500, 0, "IOV")
	err = env.deliverErr(t, caller, msg)
	if !errors.ErrCurrency.Is(err) {
		t.Fatalf("want currency error, got %+v", err)
	}
}

// mineUnorderedSalt searches for a salt whose predicted address does not
// order above the parent, the mirror image of MineSalt.
func mineUnorderedSalt(t testing.TB, parent weave.Address) []byte {
	t.Helper()
	for i := 0; i < 100000; i++ {
		salt := make([]byte, 8)
		binary.BigEndian.PutUint64(salt, uint64(i))
		addr := PredictVaultAddress(parent, "Punk Shards", "SHRD", 100, salt)
		if bytes.Compare(addr, parent) <= 0 {
			return salt
		}
	}
	t.Fatal("no unordered salt found")
	return nil
}

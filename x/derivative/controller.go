package derivative

import (
	"bytes"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"

	"github.com/wrapnet/wrapd/x/wrap"
)

// VaultRegistry allows to deploy and inspect vaults. Required
// functionality is implemented by the x/wrap extension.
type VaultRegistry interface {
	CreateVault(db weave.KVStore, v *wrap.Vault) ([]byte, error)
	GetVault(db weave.ReadOnlyKVStore, vaultID []byte) (*wrap.Vault, error)
}

// CollectionRegistry allows to deploy collections. Required functionality
// is implemented by the x/collection extension.
type CollectionRegistry interface {
	CreateCollection(db weave.KVStore, name, symbol, baseURI string, issuer weave.Address, maxSupply int64) ([]byte, error)
}

// CashController is the coin functionality the factory needs, implemented
// by the x/cash extension.
type CashController interface {
	CoinMover
	CoinMint(weave.KVStore, weave.Address, coin.Coin) error
}

// Controller implements the factory and coordinator rules.
type Controller struct {
	roots    orm.ModelBucket
	children orm.ModelBucket
	vaults   VaultRegistry
	tokens   CollectionRegistry
	cash     CashController
	engine   PoolEngine
}

func NewController(vaults VaultRegistry, tokens CollectionRegistry, cash CashController, engine PoolEngine) *Controller {
	return &Controller{
		roots:    NewRootPoolBucket(),
		children: NewChildPoolBucket(),
		vaults:   vaults,
		tokens:   tokens,
		cash:     cash,
		engine:   engine,
	}
}

// CreateRoot deploys a new vault over an existing collection and registers
// the pool trading its unit against the quote currency as a root pool.
func (c *Controller) CreateRoot(db weave.KVStore, msg *CreateRootMsg) ([]byte, *RootPool, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	vault := &wrap.Vault{
		Metadata:     &weave.Metadata{Schema: 1},
		Collection:   msg.Collection,
		Ticker:       msg.Ticker,
		ExchangeUnit: msg.ExchangeUnit,
		MintFee:      msg.MintFee,
		RedeemFee:    msg.RedeemFee,
		Active:       true,
		Admin:        msg.Admin,
		FeeReceiver:  msg.FeeReceiver,
	}
	vaultID, err := c.vaults.CreateVault(db, vault)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot deploy vault")
	}
	switch err := c.roots.Has(db, vault.Address); {
	case err == nil:
		return nil, nil, errors.Wrapf(errors.ErrDuplicate, "root pool for %q", vault.Address)
	case errors.ErrNotFound.Is(err):
		// First registration for this vault.
	default:
		return nil, nil, errors.Wrap(err, "root pool")
	}
	sqrtPrice, err := parseSqrtPriceX96(msg.SqrtPriceX96)
	if err != nil {
		return nil, nil, err
	}
	poolID, err := c.engine.CreatePool(db, conf.QuoteTicker, msg.Ticker, sqrtPrice)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot create pool")
	}
	root := &RootPool{
		Metadata:     &weave.Metadata{Schema: 1},
		VaultId:      vaultID,
		VaultAddress: vault.Address,
		PoolId:       poolID,
		SqrtPriceX96: msg.SqrtPriceX96,
	}
	if _, err := c.roots.Put(db, vault.Address, root); err != nil {
		return nil, nil, errors.Wrap(err, "cannot store root pool")
	}
	return vaultID, root, nil
}

// CreateDerivative deploys a fresh collection and a vault at the salt
// determined address, premints the full supply, bootstraps a pool against
// the parent vault's unit and registers it as a child of the parent's root
// pool. Preminted units not retained by the pool are handed to the caller.
func (c *Controller) CreateDerivative(db weave.KVStore, caller weave.Address, msg *CreateDerivativeMsg) ([]byte, *ChildPool, *LiquidityResult, error) {
	parent, err := c.vaults.GetVault(db, msg.ParentId)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "parent vault")
	}
	switch err := c.roots.Has(db, parent.Address); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "no root pool for %q", parent.Address)
	default:
		return nil, nil, nil, errors.Wrap(err, "root pool")
	}
	if msg.ParentContribution.Ticker != parent.Ticker {
		return nil, nil, nil, errors.Wrapf(errors.ErrCurrency, "contribution must be %q", parent.Ticker)
	}

	// The caller mined the salt, here it is only verified. The pool layer
	// requires the derivative unit to be the higher ordered token.
	addr := PredictVaultAddress(parent.Address, msg.Name, msg.Symbol, msg.MaxSupply, msg.Salt)
	if bytes.Compare(addr, parent.Address) <= 0 {
		return nil, nil, nil, errors.Wrapf(errors.ErrState, "vault address %q does not order above the parent", addr)
	}

	collectionID, err := c.tokens.CreateCollection(db, msg.Name, msg.Symbol, msg.BaseUri, addr, msg.MaxSupply)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot deploy collection")
	}
	vault := &wrap.Vault{
		Metadata:     &weave.Metadata{Schema: 1},
		Collection:   collectionID,
		Ticker:       msg.Ticker,
		ExchangeUnit: msg.ExchangeUnit,
		MintFee:      msg.Fee,
		RedeemFee:    msg.Fee,
		Active:       true,
		Admin:        caller,
		FeeReceiver:  msg.FeeReceiver,
		Address:      addr,
	}
	vaultID, err := c.vaults.CreateVault(db, vault)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot deploy vault")
	}

	premint, err := msg.ExchangeUnit.Multiply(msg.MaxSupply)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "premint")
	}
	if err := c.cash.CoinMint(db, addr, premint); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot premint supply")
	}

	sqrtPrice, err := parseSqrtPriceX96(msg.SqrtPriceX96)
	if err != nil {
		return nil, nil, nil, err
	}
	poolID, err := c.engine.CreatePool(db, parent.Ticker, msg.Ticker, sqrtPrice)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot create pool")
	}
	liquidity, ok := parseLiquidity(msg.Liquidity)
	if !ok {
		return nil, nil, nil, errors.Wrapf(errors.ErrInput, "liquidity %q", msg.Liquidity)
	}
	result, err := c.engine.AddLiquidity(db, poolID, LiquidityRequest{
		TickLower: msg.TickLower,
		TickUpper: msg.TickUpper,
		Liquidity: liquidity,
		Payer0:    caller,
		Max0:      *msg.ParentContribution,
		Payer1:    addr,
		Max1:      premint,
	})
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot bootstrap pool")
	}

	// Whatever the pool did not retain goes to the caller.
	handout, err := premint.Subtract(result.Used1)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "supply split")
	}
	if handout.IsPositive() {
		if err := c.cash.MoveCoins(db, addr, caller, handout); err != nil {
			return nil, nil, nil, errors.Wrap(err, "cannot hand out supply")
		}
	}

	child := &ChildPool{
		Metadata:      &weave.Metadata{Schema: 1},
		VaultId:       vaultID,
		VaultAddress:  addr,
		ParentAddress: parent.Address,
		PoolId:        poolID,
		Liquidity:     result.Liquidity.String(),
	}
	if _, err := c.children.Put(db, addr, child); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot store child pool")
	}
	return vaultID, child, result, nil
}

// GetRootPool returns the root pool registered for the given vault
// address.
func (c *Controller) GetRootPool(db weave.ReadOnlyKVStore, vaultAddress weave.Address) (*RootPool, error) {
	var root RootPool
	if err := c.roots.One(db, vaultAddress, &root); err != nil {
		return nil, errors.Wrapf(err, "root pool %q", vaultAddress)
	}
	return &root, nil
}

// GetChildPool returns the child pool registered for the given derivative
// vault address.
func (c *Controller) GetChildPool(db weave.ReadOnlyKVStore, vaultAddress weave.Address) (*ChildPool, error) {
	var child ChildPool
	if err := c.children.One(db, vaultAddress, &child); err != nil {
		return nil, errors.Wrapf(err, "child pool %q", vaultAddress)
	}
	return &child, nil
}

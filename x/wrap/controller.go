package wrap

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
	"github.com/tendermint/tendermint/libs/common"

	"github.com/wrapnet/wrapd/x/pull"
)

// CashController allows to manage coins stored by the accounts without the
// need to directly access the bucket.
// Required functionality is implemented by the x/cash extension.
type CashController interface {
	Balance(weave.KVStore, weave.Address) (coin.Coins, error)
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
	CoinMint(weave.KVStore, weave.Address, coin.Coin) error
	CoinBurn(weave.KVStore, weave.Address, coin.Coin) error
}

// TokenRegistry allows to move discrete assets between accounts. Required
// functionality is implemented by the x/collection extension.
type TokenRegistry interface {
	MoveToken(db weave.KVStore, collection, tokenID []byte, src, dst weave.Address) error
}

// Controller implements the vault accounting rules on top of the fungible
// and discrete ledgers. All balance changing operations of this extension
// must go through it.
type Controller struct {
	vaults orm.ModelBucket
	cash   CashController
	tokens TokenRegistry
	pulls  pull.Resolver
	guard  *pull.Guard
}

func NewController(cash CashController, tokens TokenRegistry, pulls pull.Resolver) *Controller {
	return &Controller{
		vaults: NewVaultBucket(),
		cash:   cash,
		tokens: tokens,
		pulls:  pulls,
		guard:  pull.NewGuard(),
	}
}

var _ pull.Resolver = (*Controller)(nil)

// CreateVault persists a new vault. When the vault address is left empty it
// is derived from the assigned vault ID. An explicit address is used by the
// derivative factory which mines salt determined addresses.
func (c *Controller) CreateVault(db weave.KVStore, v *Vault) ([]byte, error) {
	key, err := vaultSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "vault sequence")
	}
	if len(v.Address) == 0 {
		v.Address = VaultAccount(key)
	}
	if err := v.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid vault")
	}
	if _, err := c.vaults.Put(db, key, v); err != nil {
		return nil, errors.Wrap(err, "cannot store vault")
	}
	return key, nil
}

// GetVault returns the vault with the given ID.
func (c *Controller) GetVault(db weave.ReadOnlyKVStore, vaultID []byte) (*Vault, error) {
	var v Vault
	if err := c.vaults.One(db, vaultID, &v); err != nil {
		return nil, errors.Wrapf(err, "vault %x", vaultID)
	}
	return &v, nil
}

// VaultByAddress returns the vault holding its funds under the given
// account address, together with its ID.
func (c *Controller) VaultByAddress(db weave.ReadOnlyKVStore, addr weave.Address) ([]byte, *Vault, error) {
	var vaults []*Vault
	keys, err := c.vaults.ByIndex(db, "address", addr, &vaults)
	if err != nil {
		return nil, nil, errors.Wrap(err, "address index")
	}
	if len(vaults) == 0 {
		return nil, nil, errors.Wrapf(errors.ErrNotFound, "no vault at %q", addr)
	}
	return keys[0], vaults[0], nil
}

// Mint takes custody of the given tokens from the caller and releases newly
// minted fungible units, net of the mint fee, to the destination. It
// returns the forwarded payout and the retained fee.
func (c *Controller) Mint(db weave.KVStore, caller weave.Address, vaultID []byte, tokenIDs [][]byte, destination weave.Address, forceFee bool) (payout, fee coin.Coin, err error) {
	v, err := c.GetVault(db, vaultID)
	if err != nil {
		return payout, fee, err
	}
	if !v.Active {
		return payout, fee, errors.Wrapf(ErrInactiveVault, "vault %x", vaultID)
	}
	for _, id := range tokenIDs {
		if err := c.tokens.MoveToken(db, v.Collection, id, caller, v.Address); err != nil {
			return payout, fee, errors.Wrapf(err, "deposit token %x", id)
		}
	}
	payout, fee, err = v.QuoteMint(caller, int64(len(tokenIDs)), forceFee)
	if err != nil {
		return payout, fee, err
	}
	minted, err := v.ExchangeUnit.Multiply(int64(len(tokenIDs)))
	if err != nil {
		return payout, fee, errors.Wrap(err, "minted amount")
	}
	if err := c.cash.CoinMint(db, v.Address, minted); err != nil {
		return payout, fee, errors.Wrap(err, "cannot mint")
	}
	if payout.IsPositive() {
		if err := c.cash.MoveCoins(db, v.Address, destination, payout); err != nil {
			return payout, fee, errors.Wrap(err, "cannot forward payout")
		}
	}
	if err := v.accrueFee(fee); err != nil {
		return payout, fee, err
	}
	if _, err := c.vaults.Put(db, vaultID, v); err != nil {
		return payout, fee, errors.Wrap(err, "cannot update vault")
	}
	return payout, fee, nil
}

// Redeem burns fungible units pulled from the caller and releases the given
// tokens from custody to the destination. It returns the total amount
// charged and the retained fee.
func (c *Controller) Redeem(db weave.KVStore, caller weave.Address, vaultID []byte, tokenIDs [][]byte, destination weave.Address, forceFee bool) (charge, fee coin.Coin, err error) {
	v, err := c.GetVault(db, vaultID)
	if err != nil {
		return charge, fee, err
	}
	if !v.Active {
		return charge, fee, errors.Wrapf(ErrInactiveVault, "vault %x", vaultID)
	}
	charge, fee, err = v.QuoteRedeem(caller, int64(len(tokenIDs)), forceFee)
	if err != nil {
		return charge, fee, err
	}
	if err := c.cash.MoveCoins(db, caller, v.Address, charge); err != nil {
		return charge, fee, errors.Wrap(err, "cannot collect charge")
	}
	burned, err := v.ExchangeUnit.Multiply(int64(len(tokenIDs)))
	if err != nil {
		return charge, fee, errors.Wrap(err, "burned amount")
	}
	if err := c.cash.CoinBurn(db, v.Address, burned); err != nil {
		return charge, fee, errors.Wrap(err, "cannot burn")
	}
	for _, id := range tokenIDs {
		if err := c.tokens.MoveToken(db, v.Collection, id, v.Address, destination); err != nil {
			return charge, fee, errors.Wrapf(err, "release token %x", id)
		}
	}
	if err := v.accrueFee(fee); err != nil {
		return charge, fee, err
	}
	if _, err := c.vaults.Put(db, vaultID, v); err != nil {
		return charge, fee, errors.Wrap(err, "cannot update vault")
	}
	return charge, fee, nil
}

// ChargeFee pulls the amount from the caller into the vault account and
// accrues it to the pending fee balance.
func (c *Controller) ChargeFee(db weave.KVStore, caller weave.Address, vaultID []byte, amount coin.Coin) error {
	v, err := c.GetVault(db, vaultID)
	if err != nil {
		return err
	}
	if amount.Ticker != v.Ticker {
		return errors.Wrapf(errors.ErrCurrency, "vault accepts %q", v.Ticker)
	}
	if err := c.cash.MoveCoins(db, caller, v.Address, amount); err != nil {
		return errors.Wrap(err, "cannot collect fee")
	}
	if err := v.accrueFee(amount); err != nil {
		return err
	}
	if _, err := c.vaults.Put(db, vaultID, v); err != nil {
		return errors.Wrap(err, "cannot update vault")
	}
	return nil
}

// DistributeFees hands the accrued pending fee over to the fee receiver and
// returns the distributed amount together with any tags produced by a pull
// capable receiver. The pending balance is zeroed before any funds move so
// that a receiver calling back into the vault observes no distributable
// fee. A zero pending fee is a no-op.
func (c *Controller) DistributeFees(db weave.KVStore, vaultID []byte) (coin.Coin, []common.KVPair, error) {
	v, err := c.GetVault(db, vaultID)
	if err != nil {
		return coin.Coin{}, nil, err
	}
	amount := coin.Coin{Ticker: v.Ticker}
	if v.PendingFee != nil {
		amount = *v.PendingFee
	}
	if amount.IsZero() {
		return amount, nil, nil
	}
	v.PendingFee = &coin.Coin{Ticker: v.Ticker}
	if _, err := c.vaults.Put(db, vaultID, v); err != nil {
		return coin.Coin{}, nil, errors.Wrap(err, "cannot update vault")
	}
	tags, err := c.payOut(db, v.Address, v.FeeReceiver, amount)
	if err != nil {
		return coin.Coin{}, nil, errors.Wrap(err, "cannot pay fee receiver")
	}
	return amount, tags, nil
}

// payOut delivers funds from a vault account to a destination. A
// destination claimed by a pull capable module is paid through its pull
// callback, anything else receives a plain transfer. The guard rejects a
// callback that recursively distributes from the same vault account.
func (c *Controller) payOut(db weave.KVStore, source, destination weave.Address, amount coin.Coin) ([]common.KVPair, error) {
	rec, err := c.pulls.Resolve(db, destination)
	switch {
	case err == nil:
		if err := c.guard.Enter(source); err != nil {
			return nil, err
		}
		defer c.guard.Exit(source)
		return rec.PullRewards(db, source, destination, amount)
	case errors.ErrNotFound.Is(err):
		return nil, c.cash.MoveCoins(db, source, destination, amount)
	default:
		return nil, errors.Wrap(err, "resolve destination")
	}
}

// Resolve implements pull.Resolver so that vault accounts can be funded
// through the pull protocol, for example by a parent pool fee flow.
func (c *Controller) Resolve(db weave.ReadOnlyKVStore, destination weave.Address) (pull.Recipient, error) {
	vaultID, _, err := c.VaultByAddress(db, destination)
	if err != nil {
		return nil, err
	}
	return &vaultRecipient{ctrl: c, vaultID: vaultID}, nil
}

// vaultRecipient accepts inbound pull funding for a single vault. Funds
// received this way accrue to the pending fee balance, same as ChargeFee.
type vaultRecipient struct {
	ctrl    *Controller
	vaultID []byte
}

var _ pull.Recipient = (*vaultRecipient)(nil)

func (r *vaultRecipient) PullRewards(db weave.KVStore, source, destination weave.Address, amount coin.Coin) ([]common.KVPair, error) {
	return nil, r.ctrl.ChargeFee(db, source, r.vaultID, amount)
}

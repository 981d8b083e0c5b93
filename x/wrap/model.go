package wrap

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Vault{}, migration.NoModification)
}

var _ orm.Model = (*Vault)(nil)

func (v *Vault) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", v.Metadata.Validate())
	if len(v.Collection) == 0 {
		errs = errors.AppendField(errs, "Collection", errors.ErrEmpty)
	}
	if !coin.IsCC(v.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", v.Ticker))
	}
	if v.ExchangeUnit == nil || !v.ExchangeUnit.IsPositive() {
		errs = errors.AppendField(errs, "ExchangeUnit", errors.Wrap(errors.ErrAmount, "must be a positive amount"))
	}
	if v.MintFee != nil && !v.MintFee.IsNonNegative() {
		errs = errors.AppendField(errs, "MintFee", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	if v.RedeemFee != nil && !v.RedeemFee.IsNonNegative() {
		errs = errors.AppendField(errs, "RedeemFee", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	if v.PendingFee != nil && !v.PendingFee.IsNonNegative() {
		errs = errors.AppendField(errs, "PendingFee", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	errs = errors.AppendField(errs, "Admin", v.Admin.Validate())
	errs = errors.AppendField(errs, "FeeReceiver", v.FeeReceiver.Validate())
	errs = errors.AppendField(errs, "Address", v.Address.Validate())
	return errs
}

func (v *Vault) Copy() orm.CloneableData {
	exempt := make([]weave.Address, len(v.FeeExempt))
	for i := range v.FeeExempt {
		exempt[i] = v.FeeExempt[i].Clone()
	}
	return &Vault{
		Metadata:     v.Metadata.Copy(),
		Collection:   v.Collection,
		Ticker:       v.Ticker,
		ExchangeUnit: v.ExchangeUnit.Clone(),
		MintFee:      v.MintFee.Clone(),
		RedeemFee:    v.RedeemFee.Clone(),
		Active:       v.Active,
		Admin:        v.Admin.Clone(),
		FeeReceiver:  v.FeeReceiver.Clone(),
		PendingFee:   v.PendingFee.Clone(),
		FeeExempt:    exempt,
		Address:      v.Address.Clone(),
	}
}

// IsFeeExempt returns true if the account wraps and unwraps free of charge.
func (v *Vault) IsFeeExempt(addr weave.Address) bool {
	for _, a := range v.FeeExempt {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

// MintCharge returns the fee retained by the vault when the caller wraps
// count tokens. Exemption zeroes the fee; forceFee restores the nominal
// rate for an exempt caller and has no effect otherwise.
func (v *Vault) MintCharge(caller weave.Address, count int64, forceFee bool) (coin.Coin, error) {
	return v.charge(v.MintFee, caller, count, forceFee)
}

// RedeemCharge returns the fee retained by the vault when the caller
// unwraps count tokens. Fee status is read from the caller, not from the
// destination of the released tokens.
func (v *Vault) RedeemCharge(caller weave.Address, count int64, forceFee bool) (coin.Coin, error) {
	return v.charge(v.RedeemFee, caller, count, forceFee)
}

func (v *Vault) charge(rate *coin.Coin, caller weave.Address, count int64, forceFee bool) (coin.Coin, error) {
	if v.IsFeeExempt(caller) && !forceFee {
		return coin.Coin{Ticker: v.Ticker}, nil
	}
	if rate == nil {
		return coin.Coin{Ticker: v.Ticker}, nil
	}
	fee, err := rate.Multiply(count)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "fee")
	}
	return fee, nil
}

// QuoteMint returns the exact fungible amount forwarded to the destination
// and the fee retained when the caller wraps count tokens. Pure read, used
// by clients to pre-validate transfer amounts.
func (v *Vault) QuoteMint(caller weave.Address, count int64, forceFee bool) (payout, fee coin.Coin, err error) {
	minted, err := v.ExchangeUnit.Multiply(count)
	if err != nil {
		return coin.Coin{}, coin.Coin{}, errors.Wrap(err, "minted amount")
	}
	fee, err = v.MintCharge(caller, count, forceFee)
	if err != nil {
		return coin.Coin{}, coin.Coin{}, err
	}
	payout, err = minted.Subtract(fee)
	if err != nil {
		return coin.Coin{}, coin.Coin{}, errors.Wrap(err, "payout")
	}
	if !payout.IsNonNegative() {
		return coin.Coin{}, coin.Coin{}, errors.Wrap(errors.ErrAmount, "fee exceeds minted amount")
	}
	return payout, fee, nil
}

// QuoteRedeem returns the exact fungible amount pulled from the caller and
// the fee retained when unwrapping count tokens.
func (v *Vault) QuoteRedeem(caller weave.Address, count int64, forceFee bool) (charge, fee coin.Coin, err error) {
	burned, err := v.ExchangeUnit.Multiply(count)
	if err != nil {
		return coin.Coin{}, coin.Coin{}, errors.Wrap(err, "burned amount")
	}
	fee, err = v.RedeemCharge(caller, count, forceFee)
	if err != nil {
		return coin.Coin{}, coin.Coin{}, err
	}
	charge, err = burned.Add(fee)
	if err != nil {
		return coin.Coin{}, coin.Coin{}, errors.Wrap(err, "charge")
	}
	return charge, fee, nil
}

// accrueFee adds the fee to the pending balance. Fee bookkeeping must never
// go through any other path so that PendingFee stays covered by the vault
// account balance.
func (v *Vault) accrueFee(fee coin.Coin) error {
	if fee.IsZero() {
		return nil
	}
	pending := coin.Coin{Ticker: v.Ticker}
	if v.PendingFee != nil {
		pending = *v.PendingFee
	}
	sum, err := pending.Add(fee)
	if err != nil {
		return errors.Wrap(err, "pending fee")
	}
	v.PendingFee = &sum
	return nil
}

func NewVaultBucket() orm.ModelBucket {
	b := orm.NewModelBucket("vault", &Vault{},
		orm.WithIDSequence(vaultSeq),
		orm.WithIndex("address", idxVaultAddress, true),
	)
	return migration.NewModelBucket("wrap", b)
}

var vaultSeq = orm.NewSequence("vault", "id")

func idxVaultAddress(obj orm.Object) ([]byte, error) {
	v, ok := obj.Value().(*Vault)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "can only take index of Vault")
	}
	return v.Address, nil
}

// VaultAccount returns the deterministic account address of a vault. The
// condition data is the vault ID for plain vaults and a salt digest for
// vaults deployed by the derivative factory.
func VaultAccount(data []byte) weave.Address {
	return weave.NewCondition("wrap", "vault", data).Address()
}

package derivative

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateRootMsg{}, migration.NoModification)
	migration.MustRegister(1, &CreateDerivativeMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*CreateRootMsg)(nil)

func (CreateRootMsg) Path() string {
	return "derivative/create_root"
}

func (msg *CreateRootMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.Collection) == 0 {
		errs = errors.AppendField(errs, "Collection", errors.ErrEmpty)
	}
	if !coin.IsCC(msg.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", msg.Ticker))
	}
	if msg.ExchangeUnit == nil || !msg.ExchangeUnit.IsPositive() {
		errs = errors.AppendField(errs, "ExchangeUnit", errors.Wrap(errors.ErrAmount, "must be a positive amount"))
	}
	if msg.MintFee != nil && !msg.MintFee.IsNonNegative() {
		errs = errors.AppendField(errs, "MintFee", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	if msg.RedeemFee != nil && !msg.RedeemFee.IsNonNegative() {
		errs = errors.AppendField(errs, "RedeemFee", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	errs = errors.AppendField(errs, "Admin", msg.Admin.Validate())
	errs = errors.AppendField(errs, "FeeReceiver", msg.FeeReceiver.Validate())
	if _, err := parseSqrtPriceX96(msg.SqrtPriceX96); err != nil {
		errs = errors.AppendField(errs, "SqrtPriceX96", err)
	}
	return errs
}

var _ weave.Msg = (*CreateDerivativeMsg)(nil)

func (CreateDerivativeMsg) Path() string {
	return "derivative/create_derivative"
}

func (msg *CreateDerivativeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.ParentId) == 0 {
		errs = errors.AppendField(errs, "ParentId", errors.ErrEmpty)
	}
	if msg.Name == "" {
		errs = errors.AppendField(errs, "Name", errors.ErrEmpty)
	}
	if msg.Symbol == "" {
		errs = errors.AppendField(errs, "Symbol", errors.ErrEmpty)
	}
	if !coin.IsCC(msg.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", msg.Ticker))
	}
	if msg.ExchangeUnit == nil || !msg.ExchangeUnit.IsPositive() {
		errs = errors.AppendField(errs, "ExchangeUnit", errors.Wrap(errors.ErrAmount, "must be a positive amount"))
	}
	if msg.Fee != nil && !msg.Fee.IsNonNegative() {
		errs = errors.AppendField(errs, "Fee", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	errs = errors.AppendField(errs, "FeeReceiver", msg.FeeReceiver.Validate())
	if msg.MaxSupply <= 0 {
		errs = errors.AppendField(errs, "MaxSupply", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	if _, err := parseSqrtPriceX96(msg.SqrtPriceX96); err != nil {
		errs = errors.AppendField(errs, "SqrtPriceX96", err)
	}
	if msg.TickLower >= msg.TickUpper {
		errs = errors.AppendField(errs, "TickUpper", errors.Wrap(errors.ErrInput, "tick range is empty"))
	}
	if _, ok := parseLiquidity(msg.Liquidity); !ok {
		errs = errors.AppendField(errs, "Liquidity", errors.Wrap(errors.ErrInput, "not a positive decimal number"))
	}
	if msg.ParentContribution == nil || !msg.ParentContribution.IsNonNegative() {
		errs = errors.AppendField(errs, "ParentContribution", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	if len(msg.Salt) == 0 {
		errs = errors.AppendField(errs, "Salt", errors.ErrEmpty)
	}
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "derivative/update_configuration"
}

func (msg *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if msg.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	return errs
}

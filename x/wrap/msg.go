package wrap

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateVaultMsg{}, migration.NoModification)
	migration.MustRegister(1, &MintMsg{}, migration.NoModification)
	migration.MustRegister(1, &MintBatchMsg{}, migration.NoModification)
	migration.MustRegister(1, &RedeemMsg{}, migration.NoModification)
	migration.MustRegister(1, &RedeemBatchMsg{}, migration.NoModification)
	migration.MustRegister(1, &ChargeFeeMsg{}, migration.NoModification)
	migration.MustRegister(1, &DistributeFeesMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateFeesMsg{}, migration.NoModification)
	migration.MustRegister(1, &SetActiveMsg{}, migration.NoModification)
	migration.MustRegister(1, &SetFeeExemptMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateFeeReceiverMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateAdminMsg{}, migration.NoModification)
}

// maxBatchSize bounds the number of tokens a single batch operation can
// move, to keep the per transaction work sane.
const maxBatchSize = 100

var _ weave.Msg = (*CreateVaultMsg)(nil)

func (CreateVaultMsg) Path() string {
	return "wrap/create_vault"
}

func (msg *CreateVaultMsg) Validate() error {
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
	return errs
}

var _ weave.Msg = (*MintMsg)(nil)

func (MintMsg) Path() string {
	return "wrap/mint"
}

func (msg *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.VaultId) == 0 {
		errs = errors.AppendField(errs, "VaultId", errors.ErrEmpty)
	}
	if len(msg.TokenId) == 0 {
		errs = errors.AppendField(errs, "TokenId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Destination", msg.Destination.Validate())
	return errs
}

var _ weave.Msg = (*MintBatchMsg)(nil)

func (MintBatchMsg) Path() string {
	return "wrap/mint_batch"
}

func (msg *MintBatchMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.VaultId) == 0 {
		errs = errors.AppendField(errs, "VaultId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "TokenIds", validateTokenIDs(msg.TokenIds))
	errs = errors.AppendField(errs, "Destination", msg.Destination.Validate())
	return errs
}

var _ weave.Msg = (*RedeemMsg)(nil)

func (RedeemMsg) Path() string {
	return "wrap/redeem"
}

func (msg *RedeemMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.VaultId) == 0 {
		errs = errors.AppendField(errs, "VaultId", errors.ErrEmpty)
	}
	if len(msg.TokenId) == 0 {
		errs = errors.AppendField(errs, "TokenId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Destination", msg.Destination.Validate())
	return errs
}

var _ weave.Msg = (*RedeemBatchMsg)(nil)

func (RedeemBatchMsg) Path() string {
	return "wrap/redeem_batch"
}

func (msg *RedeemBatchMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.VaultId) == 0 {
		errs = errors.AppendField(errs, "VaultId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "TokenIds", validateTokenIDs(msg.TokenIds))
	errs = errors.AppendField(errs, "Destination", msg.Destination.Validate())
	return errs
}

func validateTokenIDs(ids [][]byte) error {
	switch n := len(ids); {
	case n == 0:
		return errors.Wrap(errors.ErrEmpty, "no token IDs")
	case n > maxBatchSize:
		return errors.Wrapf(errors.ErrInput, "more than %d token IDs", maxBatchSize)
	}
	for i, id := range ids {
		if len(id) == 0 {
			return errors.Wrapf(errors.ErrEmpty, "token ID %d", i)
		}
	}
	return nil
}

var _ weave.Msg = (*ChargeFeeMsg)(nil)

func (ChargeFeeMsg) Path() string {
	return "wrap/charge_fee"
}

func (msg *ChargeFeeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.VaultId) == 0 {
		errs = errors.AppendField(errs, "VaultId", errors.ErrEmpty)
	}
	if msg.Amount == nil || !msg.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be a positive amount"))
	}
	return errs
}

var _ weave.Msg = (*DistributeFeesMsg)(nil)

func (DistributeFeesMsg) Path() string {
	return "wrap/distribute_fees"
}

func (msg *DistributeFeesMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.VaultId) == 0 {
		errs = errors.AppendField(errs, "VaultId", errors.ErrEmpty)
	}
	return errs
}

var _ weave.Msg = (*UpdateFeesMsg)(nil)

func (UpdateFeesMsg) Path() string {
	return "wrap/update_fees"
}

func (msg *UpdateFeesMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.VaultId) == 0 {
		errs = errors.AppendField(errs, "VaultId", errors.ErrEmpty)
	}
	if msg.MintFee != nil && !msg.MintFee.IsNonNegative() {
		errs = errors.AppendField(errs, "MintFee", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	if msg.RedeemFee != nil && !msg.RedeemFee.IsNonNegative() {
		errs = errors.AppendField(errs, "RedeemFee", errors.Wrap(errors.ErrAmount, "must not be negative"))
	}
	return errs
}

var _ weave.Msg = (*SetActiveMsg)(nil)

func (SetActiveMsg) Path() string {
	return "wrap/set_active"
}

func (msg *SetActiveMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.VaultId) == 0 {
		errs = errors.AppendField(errs, "VaultId", errors.ErrEmpty)
	}
	return errs
}

var _ weave.Msg = (*SetFeeExemptMsg)(nil)

func (SetFeeExemptMsg) Path() string {
	return "wrap/set_fee_exempt"
}

func (msg *SetFeeExemptMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.VaultId) == 0 {
		errs = errors.AppendField(errs, "VaultId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Address", msg.Address.Validate())
	return errs
}

var _ weave.Msg = (*UpdateFeeReceiverMsg)(nil)

func (UpdateFeeReceiverMsg) Path() string {
	return "wrap/update_fee_receiver"
}

func (msg *UpdateFeeReceiverMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.VaultId) == 0 {
		errs = errors.AppendField(errs, "VaultId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "FeeReceiver", msg.FeeReceiver.Validate())
	return errs
}

var _ weave.Msg = (*UpdateAdminMsg)(nil)

func (UpdateAdminMsg) Path() string {
	return "wrap/update_admin"
}

func (msg *UpdateAdminMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.VaultId) == 0 {
		errs = errors.AppendField(errs, "VaultId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Admin", msg.Admin.Validate())
	return errs
}

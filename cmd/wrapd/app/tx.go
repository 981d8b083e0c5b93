package app

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/multisig"
	"github.com/iov-one/weave/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it.
func TxDecoder(bz []byte) (weave.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

var (
	_ weave.Tx            = (*Tx)(nil)
	_ cash.FeeTx          = (*Tx)(nil)
	_ sigs.SignedTx       = (*Tx)(nil)
	_ multisig.MultiSigTx = (*Tx)(nil)
)

// GetMsg switches over all types defined in the protobuf file.
func (tx *Tx) GetMsg() (weave.Msg, error) {
	sum := tx.GetSum()
	if sum == nil {
		return nil, errors.Wrap(errors.ErrInput, "unable to decode")
	}

	switch t := sum.(type) {
	case *Tx_CashSendMsg:
		return t.CashSendMsg, nil
	case *Tx_MigrationUpgradeSchemaMsg:
		return t.MigrationUpgradeSchemaMsg, nil
	case *Tx_ValidatorsApplyDiffMsg:
		return t.ValidatorsApplyDiffMsg, nil
	case *Tx_MultisigCreateMsg:
		return t.MultisigCreateMsg, nil
	case *Tx_MultisigUpdateMsg:
		return t.MultisigUpdateMsg, nil

	case *Tx_CollectionCreateCollectionMsg:
		return t.CollectionCreateCollectionMsg, nil
	case *Tx_CollectionIssueTokenMsg:
		return t.CollectionIssueTokenMsg, nil
	case *Tx_CollectionTransferTokenMsg:
		return t.CollectionTransferTokenMsg, nil

	case *Tx_WrapCreateVaultMsg:
		return t.WrapCreateVaultMsg, nil
	case *Tx_WrapMintMsg:
		return t.WrapMintMsg, nil
	case *Tx_WrapMintBatchMsg:
		return t.WrapMintBatchMsg, nil
	case *Tx_WrapRedeemMsg:
		return t.WrapRedeemMsg, nil
	case *Tx_WrapRedeemBatchMsg:
		return t.WrapRedeemBatchMsg, nil
	case *Tx_WrapChargeFeeMsg:
		return t.WrapChargeFeeMsg, nil
	case *Tx_WrapDistributeFeesMsg:
		return t.WrapDistributeFeesMsg, nil
	case *Tx_WrapUpdateFeesMsg:
		return t.WrapUpdateFeesMsg, nil
	case *Tx_WrapSetActiveMsg:
		return t.WrapSetActiveMsg, nil
	case *Tx_WrapSetFeeExemptMsg:
		return t.WrapSetFeeExemptMsg, nil
	case *Tx_WrapUpdateFeeReceiverMsg:
		return t.WrapUpdateFeeReceiverMsg, nil
	case *Tx_WrapUpdateAdminMsg:
		return t.WrapUpdateAdminMsg, nil

	case *Tx_FeedistSetRecipientsMsg:
		return t.FeedistSetRecipientsMsg, nil
	case *Tx_FeedistAddRecipientMsg:
		return t.FeedistAddRecipientMsg, nil
	case *Tx_FeedistAdjustPointsMsg:
		return t.FeedistAdjustPointsMsg, nil
	case *Tx_FeedistDistributeMsg:
		return t.FeedistDistributeMsg, nil
	case *Tx_FeedistUpdateConfigurationMsg:
		return t.FeedistUpdateConfigurationMsg, nil

	case *Tx_DerivativeCreateRootMsg:
		return t.DerivativeCreateRootMsg, nil
	case *Tx_DerivativeCreateDerivativeMsg:
		return t.DerivativeCreateDerivativeMsg, nil
	case *Tx_DerivativeUpdateConfigurationMsg:
		return t.DerivativeUpdateConfigurationMsg, nil
	}

	return nil, errors.Wrapf(errors.ErrMsg, "unknown transaction type %T", sum)
}

// GetSignBytes returns the bytes to sign. Signatures are not part of the
// signed payload.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	tx.Signatures = sigs
	return bz, err
}

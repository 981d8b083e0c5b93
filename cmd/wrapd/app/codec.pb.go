// Code generated by protoc-gen-gogo. DO NOT EDIT.
// source: cmd/wrapd/app/codec.proto

package app

import (
	fmt "fmt"
	proto "github.com/gogo/protobuf/proto"
	migration "github.com/iov-one/weave/migration"
	cash "github.com/iov-one/weave/x/cash"
	multisig "github.com/iov-one/weave/x/multisig"
	sigs "github.com/iov-one/weave/x/sigs"
	validators "github.com/iov-one/weave/x/validators"
	collection "github.com/wrapnet/wrapd/x/collection"
	derivative "github.com/wrapnet/wrapd/x/derivative"
	feedist "github.com/wrapnet/wrapd/x/feedist"
	wrap "github.com/wrapnet/wrapd/x/wrap"
	io "io"
	math "math"
)

// Reference imports to suppress errors if they are not otherwise used.
var _ = proto.Marshal
var _ = fmt.Errorf
var _ = math.Inf

// This is a compile-time assertion to ensure that this generated file
// is compatible with the proto package it is being compiled against.
// A compilation error at this line likely means your copy of the
// proto package needs to be updated.
const _ = proto.GoGoProtoPackageIsVersion2 // please upgrade the proto package

// Tx contains the message.
type Tx struct {
	Fees       *cash.FeeInfo        `protobuf:"bytes,1,opt,name=fees,proto3" json:"fees,omitempty"`
	Signatures []*sigs.StdSignature `protobuf:"bytes,2,rep,name=signatures,proto3" json:"signatures,omitempty"`
	// ID of a multisig contract.
	Multisig [][]byte `protobuf:"bytes,4,rep,name=multisig,proto3" json:"multisig,omitempty"`
	// msg is a sum type over all allowed messages on this chain.
	//
	// Types that are valid to be assigned to Sum:
	//	*Tx_CashSendMsg
	//	*Tx_MigrationUpgradeSchemaMsg
	//	*Tx_ValidatorsApplyDiffMsg
	//	*Tx_MultisigCreateMsg
	//	*Tx_MultisigUpdateMsg
	//	*Tx_CollectionCreateCollectionMsg
	//	*Tx_CollectionIssueTokenMsg
	//	*Tx_CollectionTransferTokenMsg
	//	*Tx_WrapCreateVaultMsg
	//	*Tx_WrapMintMsg
	//	*Tx_WrapMintBatchMsg
	//	*Tx_WrapRedeemMsg
	//	*Tx_WrapRedeemBatchMsg
	//	*Tx_WrapChargeFeeMsg
	//	*Tx_WrapDistributeFeesMsg
	//	*Tx_WrapUpdateFeesMsg
	//	*Tx_WrapSetActiveMsg
	//	*Tx_WrapSetFeeExemptMsg
	//	*Tx_WrapUpdateFeeReceiverMsg
	//	*Tx_WrapUpdateAdminMsg
	//	*Tx_FeedistSetRecipientsMsg
	//	*Tx_FeedistAddRecipientMsg
	//	*Tx_FeedistAdjustPointsMsg
	//	*Tx_FeedistDistributeMsg
	//	*Tx_FeedistUpdateConfigurationMsg
	//	*Tx_DerivativeCreateRootMsg
	//	*Tx_DerivativeCreateDerivativeMsg
	//	*Tx_DerivativeUpdateConfigurationMsg
	Sum isTx_Sum `protobuf_oneof:"sum"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}
func (*Tx) Descriptor() ([]byte, []int) {
	return fileDescriptor_9a7426dff4135dbd, []int{0}
}
func (m *Tx) XXX_Unmarshal(b []byte) error {
	return m.Unmarshal(b)
}
func (m *Tx) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	if deterministic {
		return xxx_messageInfo_Tx.Marshal(b, m, deterministic)
	} else {
		b = b[:cap(b)]
		n, err := m.MarshalTo(b)
		if err != nil {
			return nil, err
		}
		return b[:n], nil
	}
}
func (m *Tx) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Tx.Merge(m, src)
}
func (m *Tx) XXX_Size() int {
	return m.Size()
}
func (m *Tx) XXX_DiscardUnknown() {
	xxx_messageInfo_Tx.DiscardUnknown(m)
}

var xxx_messageInfo_Tx proto.InternalMessageInfo

type isTx_Sum interface {
	isTx_Sum()
	MarshalTo([]byte) (int, error)
	Size() int
}

type Tx_CashSendMsg struct {
	CashSendMsg *cash.SendMsg `protobuf:"bytes,51,opt,name=cash_send_msg,json=cashSendMsg,proto3,oneof"`
}
type Tx_MigrationUpgradeSchemaMsg struct {
	MigrationUpgradeSchemaMsg *migration.UpgradeSchemaMsg `protobuf:"bytes,52,opt,name=migration_upgrade_schema_msg,json=migrationUpgradeSchemaMsg,proto3,oneof"`
}
type Tx_ValidatorsApplyDiffMsg struct {
	ValidatorsApplyDiffMsg *validators.ApplyDiffMsg `protobuf:"bytes,53,opt,name=validators_apply_diff_msg,json=validatorsApplyDiffMsg,proto3,oneof"`
}
type Tx_MultisigCreateMsg struct {
	MultisigCreateMsg *multisig.CreateMsg `protobuf:"bytes,54,opt,name=multisig_create_msg,json=multisigCreateMsg,proto3,oneof"`
}
type Tx_MultisigUpdateMsg struct {
	MultisigUpdateMsg *multisig.UpdateMsg `protobuf:"bytes,55,opt,name=multisig_update_msg,json=multisigUpdateMsg,proto3,oneof"`
}
type Tx_CollectionCreateCollectionMsg struct {
	CollectionCreateCollectionMsg *collection.CreateCollectionMsg `protobuf:"bytes,60,opt,name=collection_create_collection_msg,json=collectionCreateCollectionMsg,proto3,oneof"`
}
type Tx_CollectionIssueTokenMsg struct {
	CollectionIssueTokenMsg *collection.IssueTokenMsg `protobuf:"bytes,61,opt,name=collection_issue_token_msg,json=collectionIssueTokenMsg,proto3,oneof"`
}
type Tx_CollectionTransferTokenMsg struct {
	CollectionTransferTokenMsg *collection.TransferTokenMsg `protobuf:"bytes,62,opt,name=collection_transfer_token_msg,json=collectionTransferTokenMsg,proto3,oneof"`
}
type Tx_WrapCreateVaultMsg struct {
	WrapCreateVaultMsg *wrap.CreateVaultMsg `protobuf:"bytes,70,opt,name=wrap_create_vault_msg,json=wrapCreateVaultMsg,proto3,oneof"`
}
type Tx_WrapMintMsg struct {
	WrapMintMsg *wrap.MintMsg `protobuf:"bytes,71,opt,name=wrap_mint_msg,json=wrapMintMsg,proto3,oneof"`
}
type Tx_WrapMintBatchMsg struct {
	WrapMintBatchMsg *wrap.MintBatchMsg `protobuf:"bytes,72,opt,name=wrap_mint_batch_msg,json=wrapMintBatchMsg,proto3,oneof"`
}
type Tx_WrapRedeemMsg struct {
	WrapRedeemMsg *wrap.RedeemMsg `protobuf:"bytes,73,opt,name=wrap_redeem_msg,json=wrapRedeemMsg,proto3,oneof"`
}
type Tx_WrapRedeemBatchMsg struct {
	WrapRedeemBatchMsg *wrap.RedeemBatchMsg `protobuf:"bytes,74,opt,name=wrap_redeem_batch_msg,json=wrapRedeemBatchMsg,proto3,oneof"`
}
type Tx_WrapChargeFeeMsg struct {
	WrapChargeFeeMsg *wrap.ChargeFeeMsg `protobuf:"bytes,75,opt,name=wrap_charge_fee_msg,json=wrapChargeFeeMsg,proto3,oneof"`
}
type Tx_WrapDistributeFeesMsg struct {
	WrapDistributeFeesMsg *wrap.DistributeFeesMsg `protobuf:"bytes,76,opt,name=wrap_distribute_fees_msg,json=wrapDistributeFeesMsg,proto3,oneof"`
}
type Tx_WrapUpdateFeesMsg struct {
	WrapUpdateFeesMsg *wrap.UpdateFeesMsg `protobuf:"bytes,77,opt,name=wrap_update_fees_msg,json=wrapUpdateFeesMsg,proto3,oneof"`
}
type Tx_WrapSetActiveMsg struct {
	WrapSetActiveMsg *wrap.SetActiveMsg `protobuf:"bytes,78,opt,name=wrap_set_active_msg,json=wrapSetActiveMsg,proto3,oneof"`
}
type Tx_WrapSetFeeExemptMsg struct {
	WrapSetFeeExemptMsg *wrap.SetFeeExemptMsg `protobuf:"bytes,79,opt,name=wrap_set_fee_exempt_msg,json=wrapSetFeeExemptMsg,proto3,oneof"`
}
type Tx_WrapUpdateFeeReceiverMsg struct {
	WrapUpdateFeeReceiverMsg *wrap.UpdateFeeReceiverMsg `protobuf:"bytes,80,opt,name=wrap_update_fee_receiver_msg,json=wrapUpdateFeeReceiverMsg,proto3,oneof"`
}
type Tx_WrapUpdateAdminMsg struct {
	WrapUpdateAdminMsg *wrap.UpdateAdminMsg `protobuf:"bytes,81,opt,name=wrap_update_admin_msg,json=wrapUpdateAdminMsg,proto3,oneof"`
}
type Tx_FeedistSetRecipientsMsg struct {
	FeedistSetRecipientsMsg *feedist.SetRecipientsMsg `protobuf:"bytes,90,opt,name=feedist_set_recipients_msg,json=feedistSetRecipientsMsg,proto3,oneof"`
}
type Tx_FeedistAddRecipientMsg struct {
	FeedistAddRecipientMsg *feedist.AddRecipientMsg `protobuf:"bytes,91,opt,name=feedist_add_recipient_msg,json=feedistAddRecipientMsg,proto3,oneof"`
}
type Tx_FeedistAdjustPointsMsg struct {
	FeedistAdjustPointsMsg *feedist.AdjustPointsMsg `protobuf:"bytes,92,opt,name=feedist_adjust_points_msg,json=feedistAdjustPointsMsg,proto3,oneof"`
}
type Tx_FeedistDistributeMsg struct {
	FeedistDistributeMsg *feedist.DistributeMsg `protobuf:"bytes,93,opt,name=feedist_distribute_msg,json=feedistDistributeMsg,proto3,oneof"`
}
type Tx_FeedistUpdateConfigurationMsg struct {
	FeedistUpdateConfigurationMsg *feedist.UpdateConfigurationMsg `protobuf:"bytes,94,opt,name=feedist_update_configuration_msg,json=feedistUpdateConfigurationMsg,proto3,oneof"`
}
type Tx_DerivativeCreateRootMsg struct {
	DerivativeCreateRootMsg *derivative.CreateRootMsg `protobuf:"bytes,100,opt,name=derivative_create_root_msg,json=derivativeCreateRootMsg,proto3,oneof"`
}
type Tx_DerivativeCreateDerivativeMsg struct {
	DerivativeCreateDerivativeMsg *derivative.CreateDerivativeMsg `protobuf:"bytes,101,opt,name=derivative_create_derivative_msg,json=derivativeCreateDerivativeMsg,proto3,oneof"`
}
type Tx_DerivativeUpdateConfigurationMsg struct {
	DerivativeUpdateConfigurationMsg *derivative.UpdateConfigurationMsg `protobuf:"bytes,102,opt,name=derivative_update_configuration_msg,json=derivativeUpdateConfigurationMsg,proto3,oneof"`
}

func (*Tx_CashSendMsg) isTx_Sum()                      {}
func (*Tx_MigrationUpgradeSchemaMsg) isTx_Sum()        {}
func (*Tx_ValidatorsApplyDiffMsg) isTx_Sum()           {}
func (*Tx_MultisigCreateMsg) isTx_Sum()                {}
func (*Tx_MultisigUpdateMsg) isTx_Sum()                {}
func (*Tx_CollectionCreateCollectionMsg) isTx_Sum()    {}
func (*Tx_CollectionIssueTokenMsg) isTx_Sum()          {}
func (*Tx_CollectionTransferTokenMsg) isTx_Sum()       {}
func (*Tx_WrapCreateVaultMsg) isTx_Sum()               {}
func (*Tx_WrapMintMsg) isTx_Sum()                      {}
func (*Tx_WrapMintBatchMsg) isTx_Sum()                 {}
func (*Tx_WrapRedeemMsg) isTx_Sum()                    {}
func (*Tx_WrapRedeemBatchMsg) isTx_Sum()               {}
func (*Tx_WrapChargeFeeMsg) isTx_Sum()                 {}
func (*Tx_WrapDistributeFeesMsg) isTx_Sum()            {}
func (*Tx_WrapUpdateFeesMsg) isTx_Sum()                {}
func (*Tx_WrapSetActiveMsg) isTx_Sum()                 {}
func (*Tx_WrapSetFeeExemptMsg) isTx_Sum()              {}
func (*Tx_WrapUpdateFeeReceiverMsg) isTx_Sum()         {}
func (*Tx_WrapUpdateAdminMsg) isTx_Sum()               {}
func (*Tx_FeedistSetRecipientsMsg) isTx_Sum()          {}
func (*Tx_FeedistAddRecipientMsg) isTx_Sum()           {}
func (*Tx_FeedistAdjustPointsMsg) isTx_Sum()           {}
func (*Tx_FeedistDistributeMsg) isTx_Sum()             {}
func (*Tx_FeedistUpdateConfigurationMsg) isTx_Sum()    {}
func (*Tx_DerivativeCreateRootMsg) isTx_Sum()          {}
func (*Tx_DerivativeCreateDerivativeMsg) isTx_Sum()    {}
func (*Tx_DerivativeUpdateConfigurationMsg) isTx_Sum() {}

func (m *Tx) GetSum() isTx_Sum {
	if m != nil {
		return m.Sum
	}
	return nil
}

func (m *Tx) GetFees() *cash.FeeInfo {
	if m != nil {
		return m.Fees
	}
	return nil
}

func (m *Tx) GetSignatures() []*sigs.StdSignature {
	if m != nil {
		return m.Signatures
	}
	return nil
}

func (m *Tx) GetMultisig() [][]byte {
	if m != nil {
		return m.Multisig
	}
	return nil
}

func (m *Tx) GetCashSendMsg() *cash.SendMsg {
	if x, ok := m.GetSum().(*Tx_CashSendMsg); ok {
		return x.CashSendMsg
	}
	return nil
}

func (m *Tx) GetMigrationUpgradeSchemaMsg() *migration.UpgradeSchemaMsg {
	if x, ok := m.GetSum().(*Tx_MigrationUpgradeSchemaMsg); ok {
		return x.MigrationUpgradeSchemaMsg
	}
	return nil
}

func (m *Tx) GetValidatorsApplyDiffMsg() *validators.ApplyDiffMsg {
	if x, ok := m.GetSum().(*Tx_ValidatorsApplyDiffMsg); ok {
		return x.ValidatorsApplyDiffMsg
	}
	return nil
}

func (m *Tx) GetMultisigCreateMsg() *multisig.CreateMsg {
	if x, ok := m.GetSum().(*Tx_MultisigCreateMsg); ok {
		return x.MultisigCreateMsg
	}
	return nil
}

func (m *Tx) GetMultisigUpdateMsg() *multisig.UpdateMsg {
	if x, ok := m.GetSum().(*Tx_MultisigUpdateMsg); ok {
		return x.MultisigUpdateMsg
	}
	return nil
}

func (m *Tx) GetCollectionCreateCollectionMsg() *collection.CreateCollectionMsg {
	if x, ok := m.GetSum().(*Tx_CollectionCreateCollectionMsg); ok {
		return x.CollectionCreateCollectionMsg
	}
	return nil
}

func (m *Tx) GetCollectionIssueTokenMsg() *collection.IssueTokenMsg {
	if x, ok := m.GetSum().(*Tx_CollectionIssueTokenMsg); ok {
		return x.CollectionIssueTokenMsg
	}
	return nil
}

func (m *Tx) GetCollectionTransferTokenMsg() *collection.TransferTokenMsg {
	if x, ok := m.GetSum().(*Tx_CollectionTransferTokenMsg); ok {
		return x.CollectionTransferTokenMsg
	}
	return nil
}

func (m *Tx) GetWrapCreateVaultMsg() *wrap.CreateVaultMsg {
	if x, ok := m.GetSum().(*Tx_WrapCreateVaultMsg); ok {
		return x.WrapCreateVaultMsg
	}
	return nil
}

func (m *Tx) GetWrapMintMsg() *wrap.MintMsg {
	if x, ok := m.GetSum().(*Tx_WrapMintMsg); ok {
		return x.WrapMintMsg
	}
	return nil
}

func (m *Tx) GetWrapMintBatchMsg() *wrap.MintBatchMsg {
	if x, ok := m.GetSum().(*Tx_WrapMintBatchMsg); ok {
		return x.WrapMintBatchMsg
	}
	return nil
}

func (m *Tx) GetWrapRedeemMsg() *wrap.RedeemMsg {
	if x, ok := m.GetSum().(*Tx_WrapRedeemMsg); ok {
		return x.WrapRedeemMsg
	}
	return nil
}

func (m *Tx) GetWrapRedeemBatchMsg() *wrap.RedeemBatchMsg {
	if x, ok := m.GetSum().(*Tx_WrapRedeemBatchMsg); ok {
		return x.WrapRedeemBatchMsg
	}
	return nil
}

func (m *Tx) GetWrapChargeFeeMsg() *wrap.ChargeFeeMsg {
	if x, ok := m.GetSum().(*Tx_WrapChargeFeeMsg); ok {
		return x.WrapChargeFeeMsg
	}
	return nil
}

func (m *Tx) GetWrapDistributeFeesMsg() *wrap.DistributeFeesMsg {
	if x, ok := m.GetSum().(*Tx_WrapDistributeFeesMsg); ok {
		return x.WrapDistributeFeesMsg
	}
	return nil
}

func (m *Tx) GetWrapUpdateFeesMsg() *wrap.UpdateFeesMsg {
	if x, ok := m.GetSum().(*Tx_WrapUpdateFeesMsg); ok {
		return x.WrapUpdateFeesMsg
	}
	return nil
}

func (m *Tx) GetWrapSetActiveMsg() *wrap.SetActiveMsg {
	if x, ok := m.GetSum().(*Tx_WrapSetActiveMsg); ok {
		return x.WrapSetActiveMsg
	}
	return nil
}

func (m *Tx) GetWrapSetFeeExemptMsg() *wrap.SetFeeExemptMsg {
	if x, ok := m.GetSum().(*Tx_WrapSetFeeExemptMsg); ok {
		return x.WrapSetFeeExemptMsg
	}
	return nil
}

func (m *Tx) GetWrapUpdateFeeReceiverMsg() *wrap.UpdateFeeReceiverMsg {
	if x, ok := m.GetSum().(*Tx_WrapUpdateFeeReceiverMsg); ok {
		return x.WrapUpdateFeeReceiverMsg
	}
	return nil
}

func (m *Tx) GetWrapUpdateAdminMsg() *wrap.UpdateAdminMsg {
	if x, ok := m.GetSum().(*Tx_WrapUpdateAdminMsg); ok {
		return x.WrapUpdateAdminMsg
	}
	return nil
}

func (m *Tx) GetFeedistSetRecipientsMsg() *feedist.SetRecipientsMsg {
	if x, ok := m.GetSum().(*Tx_FeedistSetRecipientsMsg); ok {
		return x.FeedistSetRecipientsMsg
	}
	return nil
}

func (m *Tx) GetFeedistAddRecipientMsg() *feedist.AddRecipientMsg {
	if x, ok := m.GetSum().(*Tx_FeedistAddRecipientMsg); ok {
		return x.FeedistAddRecipientMsg
	}
	return nil
}

func (m *Tx) GetFeedistAdjustPointsMsg() *feedist.AdjustPointsMsg {
	if x, ok := m.GetSum().(*Tx_FeedistAdjustPointsMsg); ok {
		return x.FeedistAdjustPointsMsg
	}
	return nil
}

func (m *Tx) GetFeedistDistributeMsg() *feedist.DistributeMsg {
	if x, ok := m.GetSum().(*Tx_FeedistDistributeMsg); ok {
		return x.FeedistDistributeMsg
	}
	return nil
}

func (m *Tx) GetFeedistUpdateConfigurationMsg() *feedist.UpdateConfigurationMsg {
	if x, ok := m.GetSum().(*Tx_FeedistUpdateConfigurationMsg); ok {
		return x.FeedistUpdateConfigurationMsg
	}
	return nil
}

func (m *Tx) GetDerivativeCreateRootMsg() *derivative.CreateRootMsg {
	if x, ok := m.GetSum().(*Tx_DerivativeCreateRootMsg); ok {
		return x.DerivativeCreateRootMsg
	}
	return nil
}

func (m *Tx) GetDerivativeCreateDerivativeMsg() *derivative.CreateDerivativeMsg {
	if x, ok := m.GetSum().(*Tx_DerivativeCreateDerivativeMsg); ok {
		return x.DerivativeCreateDerivativeMsg
	}
	return nil
}

func (m *Tx) GetDerivativeUpdateConfigurationMsg() *derivative.UpdateConfigurationMsg {
	if x, ok := m.GetSum().(*Tx_DerivativeUpdateConfigurationMsg); ok {
		return x.DerivativeUpdateConfigurationMsg
	}
	return nil
}

// XXX_OneofFuncs is for the internal use of the proto package.
func (*Tx) XXX_OneofFuncs() (func(msg proto.Message, b *proto.Buffer) error, func(msg proto.Message, tag, wire int, b *proto.Buffer) (bool, error), func(msg proto.Message) (n int), []interface{}) {
	return _Tx_OneofMarshaler, _Tx_OneofUnmarshaler, _Tx_OneofSizer, []interface{}{
		(*Tx_CashSendMsg)(nil),
		(*Tx_MigrationUpgradeSchemaMsg)(nil),
		(*Tx_ValidatorsApplyDiffMsg)(nil),
		(*Tx_MultisigCreateMsg)(nil),
		(*Tx_MultisigUpdateMsg)(nil),
		(*Tx_CollectionCreateCollectionMsg)(nil),
		(*Tx_CollectionIssueTokenMsg)(nil),
		(*Tx_CollectionTransferTokenMsg)(nil),
		(*Tx_WrapCreateVaultMsg)(nil),
		(*Tx_WrapMintMsg)(nil),
		(*Tx_WrapMintBatchMsg)(nil),
		(*Tx_WrapRedeemMsg)(nil),
		(*Tx_WrapRedeemBatchMsg)(nil),
		(*Tx_WrapChargeFeeMsg)(nil),
		(*Tx_WrapDistributeFeesMsg)(nil),
		(*Tx_WrapUpdateFeesMsg)(nil),
		(*Tx_WrapSetActiveMsg)(nil),
		(*Tx_WrapSetFeeExemptMsg)(nil),
		(*Tx_WrapUpdateFeeReceiverMsg)(nil),
		(*Tx_WrapUpdateAdminMsg)(nil),
		(*Tx_FeedistSetRecipientsMsg)(nil),
		(*Tx_FeedistAddRecipientMsg)(nil),
		(*Tx_FeedistAdjustPointsMsg)(nil),
		(*Tx_FeedistDistributeMsg)(nil),
		(*Tx_FeedistUpdateConfigurationMsg)(nil),
		(*Tx_DerivativeCreateRootMsg)(nil),
		(*Tx_DerivativeCreateDerivativeMsg)(nil),
		(*Tx_DerivativeUpdateConfigurationMsg)(nil),
	}
}

func _Tx_OneofMarshaler(msg proto.Message, b *proto.Buffer) error {
	m := msg.(*Tx)
	// sum
	switch x := m.Sum.(type) {
	case *Tx_CashSendMsg:
		_ = b.EncodeVarint(51<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.CashSendMsg); err != nil {
			return err
		}
	case *Tx_MigrationUpgradeSchemaMsg:
		_ = b.EncodeVarint(52<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.MigrationUpgradeSchemaMsg); err != nil {
			return err
		}
	case *Tx_ValidatorsApplyDiffMsg:
		_ = b.EncodeVarint(53<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.ValidatorsApplyDiffMsg); err != nil {
			return err
		}
	case *Tx_MultisigCreateMsg:
		_ = b.EncodeVarint(54<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.MultisigCreateMsg); err != nil {
			return err
		}
	case *Tx_MultisigUpdateMsg:
		_ = b.EncodeVarint(55<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.MultisigUpdateMsg); err != nil {
			return err
		}
	case *Tx_CollectionCreateCollectionMsg:
		_ = b.EncodeVarint(60<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.CollectionCreateCollectionMsg); err != nil {
			return err
		}
	case *Tx_CollectionIssueTokenMsg:
		_ = b.EncodeVarint(61<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.CollectionIssueTokenMsg); err != nil {
			return err
		}
	case *Tx_CollectionTransferTokenMsg:
		_ = b.EncodeVarint(62<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.CollectionTransferTokenMsg); err != nil {
			return err
		}
	case *Tx_WrapCreateVaultMsg:
		_ = b.EncodeVarint(70<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.WrapCreateVaultMsg); err != nil {
			return err
		}
	case *Tx_WrapMintMsg:
		_ = b.EncodeVarint(71<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.WrapMintMsg); err != nil {
			return err
		}
	case *Tx_WrapMintBatchMsg:
		_ = b.EncodeVarint(72<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.WrapMintBatchMsg); err != nil {
			return err
		}
	case *Tx_WrapRedeemMsg:
		_ = b.EncodeVarint(73<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.WrapRedeemMsg); err != nil {
			return err
		}
	case *Tx_WrapRedeemBatchMsg:
		_ = b.EncodeVarint(74<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.WrapRedeemBatchMsg); err != nil {
			return err
		}
	case *Tx_WrapChargeFeeMsg:
		_ = b.EncodeVarint(75<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.WrapChargeFeeMsg); err != nil {
			return err
		}
	case *Tx_WrapDistributeFeesMsg:
		_ = b.EncodeVarint(76<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.WrapDistributeFeesMsg); err != nil {
			return err
		}
	case *Tx_WrapUpdateFeesMsg:
		_ = b.EncodeVarint(77<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.WrapUpdateFeesMsg); err != nil {
			return err
		}
	case *Tx_WrapSetActiveMsg:
		_ = b.EncodeVarint(78<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.WrapSetActiveMsg); err != nil {
			return err
		}
	case *Tx_WrapSetFeeExemptMsg:
		_ = b.EncodeVarint(79<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.WrapSetFeeExemptMsg); err != nil {
			return err
		}
	case *Tx_WrapUpdateFeeReceiverMsg:
		_ = b.EncodeVarint(80<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.WrapUpdateFeeReceiverMsg); err != nil {
			return err
		}
	case *Tx_WrapUpdateAdminMsg:
		_ = b.EncodeVarint(81<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.WrapUpdateAdminMsg); err != nil {
			return err
		}
	case *Tx_FeedistSetRecipientsMsg:
		_ = b.EncodeVarint(90<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.FeedistSetRecipientsMsg); err != nil {
			return err
		}
	case *Tx_FeedistAddRecipientMsg:
		_ = b.EncodeVarint(91<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.FeedistAddRecipientMsg); err != nil {
			return err
		}
	case *Tx_FeedistAdjustPointsMsg:
		_ = b.EncodeVarint(92<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.FeedistAdjustPointsMsg); err != nil {
			return err
		}
	case *Tx_FeedistDistributeMsg:
		_ = b.EncodeVarint(93<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.FeedistDistributeMsg); err != nil {
			return err
		}
	case *Tx_FeedistUpdateConfigurationMsg:
		_ = b.EncodeVarint(94<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.FeedistUpdateConfigurationMsg); err != nil {
			return err
		}
	case *Tx_DerivativeCreateRootMsg:
		_ = b.EncodeVarint(100<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.DerivativeCreateRootMsg); err != nil {
			return err
		}
	case *Tx_DerivativeCreateDerivativeMsg:
		_ = b.EncodeVarint(101<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.DerivativeCreateDerivativeMsg); err != nil {
			return err
		}
	case *Tx_DerivativeUpdateConfigurationMsg:
		_ = b.EncodeVarint(102<<3 | proto.WireBytes)
		if err := b.EncodeMessage(x.DerivativeUpdateConfigurationMsg); err != nil {
			return err
		}
	case nil:
	default:
		return fmt.Errorf("Tx.Sum has unexpected type %T", x)
	}
	return nil
}

func _Tx_OneofUnmarshaler(msg proto.Message, tag, wire int, b *proto.Buffer) (bool, error) {
	m := msg.(*Tx)
	switch tag {
	case 51: // sum.cash_send_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(cash.SendMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_CashSendMsg{msg}
		return true, err
	case 52: // sum.migration_upgrade_schema_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(migration.UpgradeSchemaMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_MigrationUpgradeSchemaMsg{msg}
		return true, err
	case 53: // sum.validators_apply_diff_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(validators.ApplyDiffMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_ValidatorsApplyDiffMsg{msg}
		return true, err
	case 54: // sum.multisig_create_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(multisig.CreateMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_MultisigCreateMsg{msg}
		return true, err
	case 55: // sum.multisig_update_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(multisig.UpdateMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_MultisigUpdateMsg{msg}
		return true, err
	case 60: // sum.collection_create_collection_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(collection.CreateCollectionMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_CollectionCreateCollectionMsg{msg}
		return true, err
	case 61: // sum.collection_issue_token_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(collection.IssueTokenMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_CollectionIssueTokenMsg{msg}
		return true, err
	case 62: // sum.collection_transfer_token_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(collection.TransferTokenMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_CollectionTransferTokenMsg{msg}
		return true, err
	case 70: // sum.wrap_create_vault_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(wrap.CreateVaultMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_WrapCreateVaultMsg{msg}
		return true, err
	case 71: // sum.wrap_mint_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(wrap.MintMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_WrapMintMsg{msg}
		return true, err
	case 72: // sum.wrap_mint_batch_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(wrap.MintBatchMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_WrapMintBatchMsg{msg}
		return true, err
	case 73: // sum.wrap_redeem_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(wrap.RedeemMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_WrapRedeemMsg{msg}
		return true, err
	case 74: // sum.wrap_redeem_batch_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(wrap.RedeemBatchMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_WrapRedeemBatchMsg{msg}
		return true, err
	case 75: // sum.wrap_charge_fee_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(wrap.ChargeFeeMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_WrapChargeFeeMsg{msg}
		return true, err
	case 76: // sum.wrap_distribute_fees_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(wrap.DistributeFeesMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_WrapDistributeFeesMsg{msg}
		return true, err
	case 77: // sum.wrap_update_fees_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(wrap.UpdateFeesMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_WrapUpdateFeesMsg{msg}
		return true, err
	case 78: // sum.wrap_set_active_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(wrap.SetActiveMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_WrapSetActiveMsg{msg}
		return true, err
	case 79: // sum.wrap_set_fee_exempt_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(wrap.SetFeeExemptMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_WrapSetFeeExemptMsg{msg}
		return true, err
	case 80: // sum.wrap_update_fee_receiver_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(wrap.UpdateFeeReceiverMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_WrapUpdateFeeReceiverMsg{msg}
		return true, err
	case 81: // sum.wrap_update_admin_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(wrap.UpdateAdminMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_WrapUpdateAdminMsg{msg}
		return true, err
	case 90: // sum.feedist_set_recipients_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(feedist.SetRecipientsMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_FeedistSetRecipientsMsg{msg}
		return true, err
	case 91: // sum.feedist_add_recipient_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(feedist.AddRecipientMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_FeedistAddRecipientMsg{msg}
		return true, err
	case 92: // sum.feedist_adjust_points_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(feedist.AdjustPointsMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_FeedistAdjustPointsMsg{msg}
		return true, err
	case 93: // sum.feedist_distribute_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(feedist.DistributeMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_FeedistDistributeMsg{msg}
		return true, err
	case 94: // sum.feedist_update_configuration_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(feedist.UpdateConfigurationMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_FeedistUpdateConfigurationMsg{msg}
		return true, err
	case 100: // sum.derivative_create_root_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(derivative.CreateRootMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_DerivativeCreateRootMsg{msg}
		return true, err
	case 101: // sum.derivative_create_derivative_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(derivative.CreateDerivativeMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_DerivativeCreateDerivativeMsg{msg}
		return true, err
	case 102: // sum.derivative_update_configuration_msg
		if wire != proto.WireBytes {
			return true, proto.ErrInternalBadWireType
		}
		msg := new(derivative.UpdateConfigurationMsg)
		err := b.DecodeMessage(msg)
		m.Sum = &Tx_DerivativeUpdateConfigurationMsg{msg}
		return true, err
	default:
		return false, nil
	}
}

func _Tx_OneofSizer(msg proto.Message) (n int) {
	m := msg.(*Tx)
	// sum
	switch x := m.Sum.(type) {
	case *Tx_CashSendMsg:
		s := proto.Size(x.CashSendMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_MigrationUpgradeSchemaMsg:
		s := proto.Size(x.MigrationUpgradeSchemaMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_ValidatorsApplyDiffMsg:
		s := proto.Size(x.ValidatorsApplyDiffMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_MultisigCreateMsg:
		s := proto.Size(x.MultisigCreateMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_MultisigUpdateMsg:
		s := proto.Size(x.MultisigUpdateMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_CollectionCreateCollectionMsg:
		s := proto.Size(x.CollectionCreateCollectionMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_CollectionIssueTokenMsg:
		s := proto.Size(x.CollectionIssueTokenMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_CollectionTransferTokenMsg:
		s := proto.Size(x.CollectionTransferTokenMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_WrapCreateVaultMsg:
		s := proto.Size(x.WrapCreateVaultMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_WrapMintMsg:
		s := proto.Size(x.WrapMintMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_WrapMintBatchMsg:
		s := proto.Size(x.WrapMintBatchMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_WrapRedeemMsg:
		s := proto.Size(x.WrapRedeemMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_WrapRedeemBatchMsg:
		s := proto.Size(x.WrapRedeemBatchMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_WrapChargeFeeMsg:
		s := proto.Size(x.WrapChargeFeeMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_WrapDistributeFeesMsg:
		s := proto.Size(x.WrapDistributeFeesMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_WrapUpdateFeesMsg:
		s := proto.Size(x.WrapUpdateFeesMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_WrapSetActiveMsg:
		s := proto.Size(x.WrapSetActiveMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_WrapSetFeeExemptMsg:
		s := proto.Size(x.WrapSetFeeExemptMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_WrapUpdateFeeReceiverMsg:
		s := proto.Size(x.WrapUpdateFeeReceiverMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_WrapUpdateAdminMsg:
		s := proto.Size(x.WrapUpdateAdminMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_FeedistSetRecipientsMsg:
		s := proto.Size(x.FeedistSetRecipientsMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_FeedistAddRecipientMsg:
		s := proto.Size(x.FeedistAddRecipientMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_FeedistAdjustPointsMsg:
		s := proto.Size(x.FeedistAdjustPointsMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_FeedistDistributeMsg:
		s := proto.Size(x.FeedistDistributeMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_FeedistUpdateConfigurationMsg:
		s := proto.Size(x.FeedistUpdateConfigurationMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_DerivativeCreateRootMsg:
		s := proto.Size(x.DerivativeCreateRootMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_DerivativeCreateDerivativeMsg:
		s := proto.Size(x.DerivativeCreateDerivativeMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case *Tx_DerivativeUpdateConfigurationMsg:
		s := proto.Size(x.DerivativeUpdateConfigurationMsg)
		n += 2 // tag and wire
		n += proto.SizeVarint(uint64(s))
		n += s
	case nil:
	default:
		panic(fmt.Sprintf("proto: unexpected type %T in oneof", x))
	}
	return n
}

func init() {
	proto.RegisterType((*Tx)(nil), "wrapd.Tx")
}

func init() { proto.RegisterFile("cmd/wrapd/app/codec.proto", fileDescriptor_9a7426dff4135dbd) }

var fileDescriptor_9a7426dff4135dbd = []byte{
	// 995 bytes of a gzipped FileDescriptorProto
	0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0xff, 0x74, 0x96, 0x5b, 0x6f, 0x1b, 0x45,
	0x14, 0xc7, 0xe3, 0x5e, 0x10, 0x9a, 0x50, 0x35, 0x1d, 0x27, 0xcd, 0xc6, 0x04, 0x13, 0xca, 0x4b,
	0x9e, 0xd6, 0x52, 0xc2, 0x45, 0x48, 0x80, 0x94, 0x38, 0x35, 0x0d, 0x90, 0x52, 0xec, 0x04, 0x21,
	0x28, 0x5d, 0x4d, 0x76, 0xce, 0x6e, 0xa6, 0x78, 0x2f, 0xda, 0xd9, 0x35, 0xe6, 0x23, 0xf0, 0xc6,
	0xc7, 0xe2, 0xb1, 0x8f, 0x3c, 0xa2, 0xe4, 0x8b, 0xa0, 0x39, 0x33, 0x3b, 0x3b, 0xbb, 0x4e, 0x1f,
	0xf7, 0xff, 0xff, 0xcf, 0x6f, 0xe6, 0xcc, 0xe5, 0xd8, 0x64, 0x27, 0x4c, 0xf8, 0xe8, 0x8f, 0x82,
	0xe5, 0x7c, 0xc4, 0xf2, 0x7c, 0x14, 0x66, 0x1c, 0x42, 0x3f, 0x2f, 0xb2, 0x32, 0xa3, 0xf7, 0x51,
	0x1e, 0x6c, 0x84, 0x4c, 0x5e, 0xb9, 0xc6, 0x60, 0x2b, 0x11, 0x71, 0xc1, 0x4a, 0x91, 0xa5, 0x2d,
	0x79, 0x33, 0xa9, 0xe6, 0xa5, 0x90, 0x22, 0x6e, 0xa9, 0x1b, 0x52, 0xc4, 0xb2, 0xa5, 0x3c, 0x5e,
	0xb0, 0xb9, 0xe0, 0xac, 0xcc, 0x8a, 0xb6, 0xee, 0x2d, 0x47, 0x61, 0x36, 0x9f, 0x43, 0xb8, 0x42,
	0xf6, 0x96, 0x23, 0x0e, 0x85, 0x58, 0xb0, 0x52, 0x2c, 0xa0, 0xbd, 0x94, 0xe5, 0x28, 0x02, 0xe0,
	0x42, 0x96, 0x2d, 0x99, 0x2e, 0xb1, 0x26, 0x57, 0x7b, 0xf2, 0x57, 0x9f, 0xdc, 0x39, 0x5f, 0xd2,
	0x8f, 0xc8, 0xbd, 0x08, 0x40, 0x7a, 0xbd, 0xbd, 0xde, 0xfe, 0xfa, 0xc1, 0x03, 0x5f, 0x55, 0xe7,
	0x4f, 0x00, 0x4e, 0xd3, 0x28, 0x9b, 0xa2, 0x45, 0x0f, 0x08, 0x91, 0x22, 0x4e, 0x59, 0x59, 0x15,
	0x20, 0xbd, 0x3b, 0x7b, 0x77, 0xf7, 0xd7, 0x0f, 0xa8, 0xaf, 0xea, 0xf0, 0x67, 0x25, 0x9f, 0xd5,
	0xd6, 0xd4, 0x49, 0xd1, 0x01, 0x79, 0xb7, 0x2e, 0xdf, 0xbb, 0xb7, 0x77, 0x77, 0xff, 0xbd, 0xa9,
	0xfd, 0xa6, 0x87, 0xe4, 0x81, 0x9a, 0x25, 0x90, 0x90, 0xf2, 0x20, 0x91, 0xb1, 0x77, 0xe8, 0xce,
	0x3d, 0x83, 0x94, 0x9f, 0xc9, 0xf8, 0xd9, 0xda, 0x74, 0x5d, 0x7d, 0x9b, 0x4f, 0xfa, 0x8a, 0xec,
	0xda, 0x6d, 0x0e, 0xaa, 0x3c, 0x2e, 0x18, 0x87, 0x40, 0x86, 0x57, 0x90, 0x30, 0x64, 0x7c, 0x82,
	0x8c, 0xf7, 0x7d, 0x1b, 0xf2, 0x2f, 0x74, 0x68, 0x86, 0x19, 0x4d, 0xdc, 0xb1, 0x6e, 0xd7, 0xa4,
	0x17, 0x64, 0xa7, 0x39, 0x87, 0x80, 0xe5, 0xf9, 0xfc, 0xcf, 0x80, 0x8b, 0x28, 0x42, 0xf8, 0xa7,
	0x08, 0xf7, 0xfc, 0x26, 0xe1, 0x1f, 0xa9, 0xc4, 0x89, 0x88, 0x22, 0x4d, 0x76, 0x0e, 0xd1, 0x75,
	0xe8, 0x53, 0xd2, 0xaf, 0xeb, 0x0e, 0xc2, 0x02, 0x58, 0x09, 0x08, 0xfc, 0x0c, 0x81, 0x7d, 0xbf,
	0xf6, 0xfc, 0x31, 0x7a, 0x9a, 0xf5, 0xa8, 0x56, 0xad, 0xd8, 0xc2, 0x54, 0x39, 0xaf, 0x31, 0x9f,
	0x77, 0x31, 0x17, 0xe8, 0x75, 0x30, 0x56, 0xa4, 0xaf, 0xc9, 0x5e, 0x73, 0xa5, 0xea, 0xf5, 0x38,
	0x8a, 0x62, 0x7e, 0x89, 0xcc, 0x0f, 0xfd, 0x46, 0x36, 0x8b, 0x1b, 0x5b, 0x41, 0xf3, 0x3f, 0x68,
	0x12, 0xb7, 0x04, 0xe8, 0xcf, 0x64, 0xe0, 0x90, 0x85, 0x94, 0x15, 0x04, 0x65, 0xf6, 0x3b, 0xe8,
	0x59, 0xbe, 0xc2, 0x59, 0x76, 0xdc, 0x59, 0x4e, 0x55, 0xe4, 0x5c, 0x25, 0x34, 0x7f, 0xbb, 0xf1,
	0x5a, 0x16, 0x65, 0xc4, 0x99, 0x3a, 0x28, 0x0b, 0x96, 0xca, 0x08, 0x0a, 0x07, 0xfe, 0x35, 0xc2,
	0x77, 0x5d, 0xf8, 0xb9, 0x49, 0x39, 0x7c, 0x67, 0x79, 0x5d, 0x97, 0x9e, 0x92, 0x2d, 0xf5, 0x60,
	0xea, 0x2d, 0x5a, 0xb0, 0x6a, 0x5e, 0x22, 0x7a, 0x82, 0xe8, 0x4d, 0x5f, 0xb9, 0x66, 0x5f, 0x7e,
	0x52, 0xa6, 0x46, 0x52, 0x25, 0xb7, 0x55, 0x75, 0xdb, 0x11, 0x95, 0x88, 0x54, 0x23, 0xbe, 0x31,
	0xb7, 0x1d, 0x11, 0x67, 0x22, 0x35, 0x63, 0xd7, 0xd5, 0xb7, 0xf9, 0xa4, 0x63, 0xd2, 0x6f, 0x06,
	0x5d, 0xb2, 0x32, 0xbc, 0xc2, 0xa1, 0xcf, 0x70, 0x28, 0x6d, 0x86, 0x1e, 0x2b, 0x4b, 0x8f, 0xdf,
	0xa8, 0xc7, 0xd7, 0x1a, 0xfd, 0x82, 0x3c, 0x44, 0x48, 0x01, 0x1c, 0x20, 0x41, 0xc0, 0x29, 0x02,
	0x1e, 0x6a, 0xc0, 0x14, 0x75, 0x3d, 0x1a, 0xd7, 0x68, 0x05, 0x5b, 0xbf, 0x19, 0xda, 0xac, 0xe0,
	0x5b, 0xb7, 0x7e, 0x9d, 0x77, 0xd6, 0x40, 0x1b, 0x8a, 0x5d, 0x45, 0x5d, 0x4a, 0x78, 0xc5, 0x8a,
	0x18, 0x82, 0x08, 0xf4, 0xd5, 0xfd, 0xce, 0x2d, 0x65, 0x8c, 0xde, 0x04, 0xc0, 0x29, 0xc5, 0xd5,
	0xe8, 0x94, 0x78, 0x08, 0x51, 0x9d, 0xad, 0x10, 0x97, 0x55, 0x89, 0x20, 0x89, 0xa4, 0xef, 0x91,
	0xb4, 0xad, 0x49, 0x27, 0x36, 0x30, 0x01, 0x90, 0x1a, 0x87, 0xa5, 0xac, 0x18, 0x74, 0x42, 0x36,
	0x91, 0x69, 0xde, 0x93, 0xe5, 0x9d, 0x99, 0x47, 0x85, 0x3c, 0xfd, 0x76, 0x1a, 0xd6, 0x23, 0xa5,
	0xb6, 0x44, 0x5b, 0xa0, 0x84, 0x32, 0x60, 0xa1, 0x6a, 0xc9, 0x88, 0x79, 0xee, 0x16, 0x38, 0x83,
	0xf2, 0x08, 0x2d, 0xa7, 0x40, 0x57, 0xa3, 0x67, 0x64, 0xdb, 0x42, 0xd4, 0x16, 0xc1, 0x12, 0x92,
	0x5c, 0xdf, 0x97, 0x1f, 0x10, 0xb4, 0x65, 0x41, 0x13, 0x80, 0xa7, 0xe8, 0x6a, 0x56, 0xdf, 0xb0,
	0x5c, 0x99, 0xbe, 0x24, 0xbb, 0x9d, 0xda, 0x82, 0x02, 0x42, 0x10, 0x0b, 0x28, 0x90, 0xf9, 0x02,
	0x99, 0x83, 0x4e, 0x8d, 0x53, 0x13, 0xd1, 0x60, 0xaf, 0x55, 0xaa, 0xe3, 0xd9, 0xdb, 0x61, 0xe8,
	0x8c, 0x27, 0x42, 0x3f, 0xbc, 0x1f, 0xdd, 0xdb, 0xa1, 0x87, 0x1e, 0x29, 0xd3, 0xb9, 0x1d, 0x6d,
	0x55, 0x75, 0x09, 0xf3, 0x83, 0x85, 0xa5, 0x17, 0x10, 0x8a, 0x5c, 0x40, 0x5a, 0xea, 0xa3, 0xf8,
	0xc5, 0x74, 0x09, 0x13, 0x51, 0xd5, 0x4f, 0x6d, 0xc2, 0x74, 0x09, 0xe3, 0x75, 0x2d, 0xd5, 0xd0,
	0x6b, 0x32, 0xe3, 0xbc, 0x21, 0x23, 0xf8, 0x57, 0xd3, 0xd0, 0x6b, 0xf0, 0x11, 0xe7, 0x76, 0xb4,
	0x69, 0xe8, 0xc6, 0xea, 0x38, 0x6d, 0xec, 0xeb, 0x4a, 0x96, 0x41, 0x9e, 0x89, 0x7a, 0xbd, 0x2f,
	0x57, 0xb0, 0x2a, 0xf1, 0x02, 0x03, 0x5d, 0x6c, 0xcb, 0xa1, 0xcf, 0x49, 0xed, 0xb8, 0x77, 0x5c,
	0x31, 0x7f, 0x43, 0xe6, 0x63, 0xcb, 0x6c, 0x2e, 0xb2, 0x26, 0x6e, 0x1a, 0xa3, 0xa5, 0xab, 0x4e,
	0x5f, 0xf3, 0xcc, 0x29, 0x85, 0x59, 0x1a, 0x89, 0xb8, 0x32, 0xbf, 0xa0, 0x8a, 0xfc, 0xca, 0x74,
	0xfa, 0x9a, 0xac, 0x8f, 0x66, 0xec, 0xe6, 0x4c, 0xa7, 0x37, 0x89, 0xdb, 0x03, 0xea, 0x0c, 0x9b,
	0xbf, 0x23, 0x75, 0xcb, 0x2c, 0xb2, 0x4c, 0x6f, 0x35, 0x37, 0x67, 0xd8, 0x44, 0x4c, 0xdf, 0x9c,
	0x66, 0x99, 0xd9, 0xeb, 0xed, 0xc6, 0x6b, 0x59, 0xaa, 0x8a, 0x55, 0xb2, 0xa3, 0x28, 0x3e, 0x98,
	0x2a, 0x56, 0xf8, 0x27, 0x56, 0x30, 0x55, 0x74, 0x67, 0x69, 0x05, 0xa8, 0x24, 0x1f, 0x3b, 0xe4,
	0xb7, 0x6e, 0x5a, 0x84, 0xd3, 0x3d, 0x71, 0xa7, 0x7b, 0xeb, 0xbe, 0x39, 0x8b, 0xbf, 0x3d, 0x73,
	0x7c, 0x9f, 0xdc, 0x95, 0x55, 0x72, 0xec, 0xfd, 0x73, 0x3d, 0xec, 0xbd, 0xb9, 0x1e, 0xf6, 0xfe,
	0xbb, 0x1e, 0xf6, 0xfe, 0xbe, 0x19, 0xae, 0xbd, 0xb9, 0x19, 0xae, 0xfd, 0x7b, 0x33, 0x5c, 0xbb,
	0x7c, 0x07, 0xff, 0xac, 0x1d, 0xfe, 0x1f, 0x00, 0x00, 0xff, 0xff, 0xbc, 0x45, 0x2b, 0xb5, 0x98,
	0x0a, 0x00, 0x00,
}

func (m *Tx) Marshal() (dAtA []byte, err error) {
	size := m.Size()
	dAtA = make([]byte, size)
	n, err := m.MarshalTo(dAtA)
	if err != nil {
		return nil, err
	}
	return dAtA[:n], nil
}

func (m *Tx) MarshalTo(dAtA []byte) (int, error) {
	var i int
	_ = i
	var l int
	_ = l
	if m.Fees != nil {
		dAtA[i] = 0xa
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.Fees.Size()))
		n1, err := m.Fees.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n1
	}
	if len(m.Signatures) > 0 {
		for _, msg := range m.Signatures {
			dAtA[i] = 0x12
			i++
			i = encodeVarintCodec(dAtA, i, uint64(msg.Size()))
			n, err := msg.MarshalTo(dAtA[i:])
			if err != nil {
				return 0, err
			}
			i += n
		}
	}
	if len(m.Multisig) > 0 {
		for _, b := range m.Multisig {
			dAtA[i] = 0x22
			i++
			i = encodeVarintCodec(dAtA, i, uint64(len(b)))
			i += copy(dAtA[i:], b)
		}
	}
	if m.Sum != nil {
		nn2, err := m.Sum.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += nn2
	}
	return i, nil
}

func (m *Tx_CashSendMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.CashSendMsg != nil {
		dAtA[i] = 0x9a
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.CashSendMsg.Size()))
		n3, err := m.CashSendMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n3
	}
	return i, nil
}
func (m *Tx_MigrationUpgradeSchemaMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.MigrationUpgradeSchemaMsg != nil {
		dAtA[i] = 0xa2
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.MigrationUpgradeSchemaMsg.Size()))
		n4, err := m.MigrationUpgradeSchemaMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n4
	}
	return i, nil
}
func (m *Tx_ValidatorsApplyDiffMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.ValidatorsApplyDiffMsg != nil {
		dAtA[i] = 0xaa
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.ValidatorsApplyDiffMsg.Size()))
		n5, err := m.ValidatorsApplyDiffMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n5
	}
	return i, nil
}
func (m *Tx_MultisigCreateMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.MultisigCreateMsg != nil {
		dAtA[i] = 0xb2
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.MultisigCreateMsg.Size()))
		n6, err := m.MultisigCreateMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n6
	}
	return i, nil
}
func (m *Tx_MultisigUpdateMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.MultisigUpdateMsg != nil {
		dAtA[i] = 0xba
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.MultisigUpdateMsg.Size()))
		n7, err := m.MultisigUpdateMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n7
	}
	return i, nil
}
func (m *Tx_CollectionCreateCollectionMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.CollectionCreateCollectionMsg != nil {
		dAtA[i] = 0xe2
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.CollectionCreateCollectionMsg.Size()))
		n8, err := m.CollectionCreateCollectionMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n8
	}
	return i, nil
}
func (m *Tx_CollectionIssueTokenMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.CollectionIssueTokenMsg != nil {
		dAtA[i] = 0xea
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.CollectionIssueTokenMsg.Size()))
		n9, err := m.CollectionIssueTokenMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n9
	}
	return i, nil
}
func (m *Tx_CollectionTransferTokenMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.CollectionTransferTokenMsg != nil {
		dAtA[i] = 0xf2
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.CollectionTransferTokenMsg.Size()))
		n10, err := m.CollectionTransferTokenMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n10
	}
	return i, nil
}
func (m *Tx_WrapCreateVaultMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.WrapCreateVaultMsg != nil {
		dAtA[i] = 0xb2
		i++
		dAtA[i] = 0x4
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.WrapCreateVaultMsg.Size()))
		n11, err := m.WrapCreateVaultMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n11
	}
	return i, nil
}
func (m *Tx_WrapMintMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.WrapMintMsg != nil {
		dAtA[i] = 0xba
		i++
		dAtA[i] = 0x4
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.WrapMintMsg.Size()))
		n12, err := m.WrapMintMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n12
	}
	return i, nil
}
func (m *Tx_WrapMintBatchMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.WrapMintBatchMsg != nil {
		dAtA[i] = 0xc2
		i++
		dAtA[i] = 0x4
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.WrapMintBatchMsg.Size()))
		n13, err := m.WrapMintBatchMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n13
	}
	return i, nil
}
func (m *Tx_WrapRedeemMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.WrapRedeemMsg != nil {
		dAtA[i] = 0xca
		i++
		dAtA[i] = 0x4
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.WrapRedeemMsg.Size()))
		n14, err := m.WrapRedeemMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n14
	}
	return i, nil
}
func (m *Tx_WrapRedeemBatchMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.WrapRedeemBatchMsg != nil {
		dAtA[i] = 0xd2
		i++
		dAtA[i] = 0x4
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.WrapRedeemBatchMsg.Size()))
		n15, err := m.WrapRedeemBatchMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n15
	}
	return i, nil
}
func (m *Tx_WrapChargeFeeMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.WrapChargeFeeMsg != nil {
		dAtA[i] = 0xda
		i++
		dAtA[i] = 0x4
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.WrapChargeFeeMsg.Size()))
		n16, err := m.WrapChargeFeeMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n16
	}
	return i, nil
}
func (m *Tx_WrapDistributeFeesMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.WrapDistributeFeesMsg != nil {
		dAtA[i] = 0xe2
		i++
		dAtA[i] = 0x4
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.WrapDistributeFeesMsg.Size()))
		n17, err := m.WrapDistributeFeesMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n17
	}
	return i, nil
}
func (m *Tx_WrapUpdateFeesMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.WrapUpdateFeesMsg != nil {
		dAtA[i] = 0xea
		i++
		dAtA[i] = 0x4
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.WrapUpdateFeesMsg.Size()))
		n18, err := m.WrapUpdateFeesMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n18
	}
	return i, nil
}
func (m *Tx_WrapSetActiveMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.WrapSetActiveMsg != nil {
		dAtA[i] = 0xf2
		i++
		dAtA[i] = 0x4
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.WrapSetActiveMsg.Size()))
		n19, err := m.WrapSetActiveMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n19
	}
	return i, nil
}
func (m *Tx_WrapSetFeeExemptMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.WrapSetFeeExemptMsg != nil {
		dAtA[i] = 0xfa
		i++
		dAtA[i] = 0x4
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.WrapSetFeeExemptMsg.Size()))
		n20, err := m.WrapSetFeeExemptMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n20
	}
	return i, nil
}
func (m *Tx_WrapUpdateFeeReceiverMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.WrapUpdateFeeReceiverMsg != nil {
		dAtA[i] = 0x82
		i++
		dAtA[i] = 0x5
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.WrapUpdateFeeReceiverMsg.Size()))
		n21, err := m.WrapUpdateFeeReceiverMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n21
	}
	return i, nil
}
func (m *Tx_WrapUpdateAdminMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.WrapUpdateAdminMsg != nil {
		dAtA[i] = 0x8a
		i++
		dAtA[i] = 0x5
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.WrapUpdateAdminMsg.Size()))
		n22, err := m.WrapUpdateAdminMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n22
	}
	return i, nil
}
func (m *Tx_FeedistSetRecipientsMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.FeedistSetRecipientsMsg != nil {
		dAtA[i] = 0xd2
		i++
		dAtA[i] = 0x5
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.FeedistSetRecipientsMsg.Size()))
		n23, err := m.FeedistSetRecipientsMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n23
	}
	return i, nil
}
func (m *Tx_FeedistAddRecipientMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.FeedistAddRecipientMsg != nil {
		dAtA[i] = 0xda
		i++
		dAtA[i] = 0x5
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.FeedistAddRecipientMsg.Size()))
		n24, err := m.FeedistAddRecipientMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n24
	}
	return i, nil
}
func (m *Tx_FeedistAdjustPointsMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.FeedistAdjustPointsMsg != nil {
		dAtA[i] = 0xe2
		i++
		dAtA[i] = 0x5
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.FeedistAdjustPointsMsg.Size()))
		n25, err := m.FeedistAdjustPointsMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n25
	}
	return i, nil
}
func (m *Tx_FeedistDistributeMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.FeedistDistributeMsg != nil {
		dAtA[i] = 0xea
		i++
		dAtA[i] = 0x5
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.FeedistDistributeMsg.Size()))
		n26, err := m.FeedistDistributeMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n26
	}
	return i, nil
}
func (m *Tx_FeedistUpdateConfigurationMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.FeedistUpdateConfigurationMsg != nil {
		dAtA[i] = 0xf2
		i++
		dAtA[i] = 0x5
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.FeedistUpdateConfigurationMsg.Size()))
		n27, err := m.FeedistUpdateConfigurationMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n27
	}
	return i, nil
}
func (m *Tx_DerivativeCreateRootMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.DerivativeCreateRootMsg != nil {
		dAtA[i] = 0xa2
		i++
		dAtA[i] = 0x6
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.DerivativeCreateRootMsg.Size()))
		n28, err := m.DerivativeCreateRootMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n28
	}
	return i, nil
}
func (m *Tx_DerivativeCreateDerivativeMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.DerivativeCreateDerivativeMsg != nil {
		dAtA[i] = 0xaa
		i++
		dAtA[i] = 0x6
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.DerivativeCreateDerivativeMsg.Size()))
		n29, err := m.DerivativeCreateDerivativeMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n29
	}
	return i, nil
}
func (m *Tx_DerivativeUpdateConfigurationMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.DerivativeUpdateConfigurationMsg != nil {
		dAtA[i] = 0xb2
		i++
		dAtA[i] = 0x6
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.DerivativeUpdateConfigurationMsg.Size()))
		n30, err := m.DerivativeUpdateConfigurationMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n30
	}
	return i, nil
}
func encodeVarintCodec(dAtA []byte, offset int, v uint64) int {
	for v >= 1<<7 {
		dAtA[offset] = uint8(v&0x7f | 0x80)
		v >>= 7
		offset++
	}
	dAtA[offset] = uint8(v)
	return offset + 1
}
func (m *Tx) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.Fees != nil {
		l = m.Fees.Size()
		n += 1 + l + sovCodec(uint64(l))
	}
	if len(m.Signatures) > 0 {
		for _, e := range m.Signatures {
			l = e.Size()
			n += 1 + l + sovCodec(uint64(l))
		}
	}
	if len(m.Multisig) > 0 {
		for _, b := range m.Multisig {
			l = len(b)
			n += 1 + l + sovCodec(uint64(l))
		}
	}
	if m.Sum != nil {
		n += m.Sum.Size()
	}
	return n
}

func (m *Tx_CashSendMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.CashSendMsg != nil {
		l = m.CashSendMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_MigrationUpgradeSchemaMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.MigrationUpgradeSchemaMsg != nil {
		l = m.MigrationUpgradeSchemaMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_ValidatorsApplyDiffMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.ValidatorsApplyDiffMsg != nil {
		l = m.ValidatorsApplyDiffMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_MultisigCreateMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.MultisigCreateMsg != nil {
		l = m.MultisigCreateMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_MultisigUpdateMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.MultisigUpdateMsg != nil {
		l = m.MultisigUpdateMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_CollectionCreateCollectionMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.CollectionCreateCollectionMsg != nil {
		l = m.CollectionCreateCollectionMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_CollectionIssueTokenMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.CollectionIssueTokenMsg != nil {
		l = m.CollectionIssueTokenMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_CollectionTransferTokenMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.CollectionTransferTokenMsg != nil {
		l = m.CollectionTransferTokenMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_WrapCreateVaultMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.WrapCreateVaultMsg != nil {
		l = m.WrapCreateVaultMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_WrapMintMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.WrapMintMsg != nil {
		l = m.WrapMintMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_WrapMintBatchMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.WrapMintBatchMsg != nil {
		l = m.WrapMintBatchMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_WrapRedeemMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.WrapRedeemMsg != nil {
		l = m.WrapRedeemMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_WrapRedeemBatchMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.WrapRedeemBatchMsg != nil {
		l = m.WrapRedeemBatchMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_WrapChargeFeeMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.WrapChargeFeeMsg != nil {
		l = m.WrapChargeFeeMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_WrapDistributeFeesMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.WrapDistributeFeesMsg != nil {
		l = m.WrapDistributeFeesMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_WrapUpdateFeesMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.WrapUpdateFeesMsg != nil {
		l = m.WrapUpdateFeesMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_WrapSetActiveMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.WrapSetActiveMsg != nil {
		l = m.WrapSetActiveMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_WrapSetFeeExemptMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.WrapSetFeeExemptMsg != nil {
		l = m.WrapSetFeeExemptMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_WrapUpdateFeeReceiverMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.WrapUpdateFeeReceiverMsg != nil {
		l = m.WrapUpdateFeeReceiverMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_WrapUpdateAdminMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.WrapUpdateAdminMsg != nil {
		l = m.WrapUpdateAdminMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_FeedistSetRecipientsMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.FeedistSetRecipientsMsg != nil {
		l = m.FeedistSetRecipientsMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_FeedistAddRecipientMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.FeedistAddRecipientMsg != nil {
		l = m.FeedistAddRecipientMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_FeedistAdjustPointsMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.FeedistAdjustPointsMsg != nil {
		l = m.FeedistAdjustPointsMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_FeedistDistributeMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.FeedistDistributeMsg != nil {
		l = m.FeedistDistributeMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_FeedistUpdateConfigurationMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.FeedistUpdateConfigurationMsg != nil {
		l = m.FeedistUpdateConfigurationMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_DerivativeCreateRootMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.DerivativeCreateRootMsg != nil {
		l = m.DerivativeCreateRootMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_DerivativeCreateDerivativeMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.DerivativeCreateDerivativeMsg != nil {
		l = m.DerivativeCreateDerivativeMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}
func (m *Tx_DerivativeUpdateConfigurationMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.DerivativeUpdateConfigurationMsg != nil {
		l = m.DerivativeUpdateConfigurationMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func sovCodec(x uint64) (n int) {
	for {
		n++
		x >>= 7
		if x == 0 {
			break
		}
	}
	return n
}
func sozCodec(x uint64) (n int) {
	return sovCodec(uint64((x << 1) ^ uint64((int64(x) >> 63))))
}
func (m *Tx) Unmarshal(dAtA []byte) error {
	l := len(dAtA)
	iNdEx := 0
	for iNdEx < l {
		preIndex := iNdEx
		var wire uint64
		for shift := uint(0); ; shift += 7 {
			if shift >= 64 {
				return ErrIntOverflowCodec
			}
			if iNdEx >= l {
				return io.ErrUnexpectedEOF
			}
			b := dAtA[iNdEx]
			iNdEx++
			wire |= uint64(b&0x7F) << shift
			if b < 0x80 {
				break
			}
		}
		fieldNum := int32(wire >> 3)
		wireType := int(wire & 0x7)
		if wireType == 4 {
			return fmt.Errorf("proto: Tx: wiretype end group for non-group")
		}
		if fieldNum <= 0 {
			return fmt.Errorf("proto: Tx: illegal tag %d (wire type %d)", fieldNum, wire)
		}
		switch fieldNum {
		case 1:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field Fees", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			if m.Fees == nil {
				m.Fees = &cash.FeeInfo{}
			}
			if err := m.Fees.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			iNdEx = postIndex
		case 2:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field Signatures", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			m.Signatures = append(m.Signatures, &sigs.StdSignature{})
			if err := m.Signatures[len(m.Signatures)-1].Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			iNdEx = postIndex
		case 4:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field Multisig", wireType)
			}
			var byteLen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				byteLen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if byteLen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + byteLen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			m.Multisig = append(m.Multisig, make([]byte, postIndex-iNdEx))
			copy(m.Multisig[len(m.Multisig)-1], dAtA[iNdEx:postIndex])
			iNdEx = postIndex
		case 51:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field CashSendMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &cash.SendMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_CashSendMsg{v}
			iNdEx = postIndex
		case 52:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field MigrationUpgradeSchemaMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &migration.UpgradeSchemaMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_MigrationUpgradeSchemaMsg{v}
			iNdEx = postIndex
		case 53:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field ValidatorsApplyDiffMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &validators.ApplyDiffMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_ValidatorsApplyDiffMsg{v}
			iNdEx = postIndex
		case 54:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field MultisigCreateMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &multisig.CreateMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_MultisigCreateMsg{v}
			iNdEx = postIndex
		case 55:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field MultisigUpdateMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &multisig.UpdateMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_MultisigUpdateMsg{v}
			iNdEx = postIndex
		case 60:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field CollectionCreateCollectionMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &collection.CreateCollectionMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_CollectionCreateCollectionMsg{v}
			iNdEx = postIndex
		case 61:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field CollectionIssueTokenMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &collection.IssueTokenMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_CollectionIssueTokenMsg{v}
			iNdEx = postIndex
		case 62:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field CollectionTransferTokenMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &collection.TransferTokenMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_CollectionTransferTokenMsg{v}
			iNdEx = postIndex
		case 70:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field WrapCreateVaultMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &wrap.CreateVaultMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_WrapCreateVaultMsg{v}
			iNdEx = postIndex
		case 71:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field WrapMintMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &wrap.MintMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_WrapMintMsg{v}
			iNdEx = postIndex
		case 72:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field WrapMintBatchMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &wrap.MintBatchMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_WrapMintBatchMsg{v}
			iNdEx = postIndex
		case 73:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field WrapRedeemMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &wrap.RedeemMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_WrapRedeemMsg{v}
			iNdEx = postIndex
		case 74:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field WrapRedeemBatchMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &wrap.RedeemBatchMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_WrapRedeemBatchMsg{v}
			iNdEx = postIndex
		case 75:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field WrapChargeFeeMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &wrap.ChargeFeeMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_WrapChargeFeeMsg{v}
			iNdEx = postIndex
		case 76:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field WrapDistributeFeesMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &wrap.DistributeFeesMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_WrapDistributeFeesMsg{v}
			iNdEx = postIndex
		case 77:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field WrapUpdateFeesMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &wrap.UpdateFeesMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_WrapUpdateFeesMsg{v}
			iNdEx = postIndex
		case 78:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field WrapSetActiveMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &wrap.SetActiveMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_WrapSetActiveMsg{v}
			iNdEx = postIndex
		case 79:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field WrapSetFeeExemptMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &wrap.SetFeeExemptMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_WrapSetFeeExemptMsg{v}
			iNdEx = postIndex
		case 80:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field WrapUpdateFeeReceiverMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &wrap.UpdateFeeReceiverMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_WrapUpdateFeeReceiverMsg{v}
			iNdEx = postIndex
		case 81:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field WrapUpdateAdminMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &wrap.UpdateAdminMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_WrapUpdateAdminMsg{v}
			iNdEx = postIndex
		case 90:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field FeedistSetRecipientsMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &feedist.SetRecipientsMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_FeedistSetRecipientsMsg{v}
			iNdEx = postIndex
		case 91:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field FeedistAddRecipientMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &feedist.AddRecipientMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_FeedistAddRecipientMsg{v}
			iNdEx = postIndex
		case 92:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field FeedistAdjustPointsMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &feedist.AdjustPointsMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_FeedistAdjustPointsMsg{v}
			iNdEx = postIndex
		case 93:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field FeedistDistributeMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &feedist.DistributeMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_FeedistDistributeMsg{v}
			iNdEx = postIndex
		case 94:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field FeedistUpdateConfigurationMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &feedist.UpdateConfigurationMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_FeedistUpdateConfigurationMsg{v}
			iNdEx = postIndex
		case 100:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field DerivativeCreateRootMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &derivative.CreateRootMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_DerivativeCreateRootMsg{v}
			iNdEx = postIndex
		case 101:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field DerivativeCreateDerivativeMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &derivative.CreateDerivativeMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_DerivativeCreateDerivativeMsg{v}
			iNdEx = postIndex
		case 102:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field DerivativeUpdateConfigurationMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= int(b&0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &derivative.UpdateConfigurationMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_DerivativeUpdateConfigurationMsg{v}
			iNdEx = postIndex
		default:
			iNdEx = preIndex
			skippy, err := skipCodec(dAtA[iNdEx:])
			if err != nil {
				return err
			}
			if skippy < 0 {
				return ErrInvalidLengthCodec
			}
			if (iNdEx + skippy) < 0 {
				return ErrInvalidLengthCodec
			}
			if (iNdEx + skippy) > l {
				return io.ErrUnexpectedEOF
			}
			iNdEx += skippy
		}
	}

	if iNdEx > l {
		return io.ErrUnexpectedEOF
	}
	return nil
}
func skipCodec(dAtA []byte) (n int, err error) {
	l := len(dAtA)
	iNdEx := 0
	for iNdEx < l {
		var wire uint64
		for shift := uint(0); ; shift += 7 {
			if shift >= 64 {
				return 0, ErrIntOverflowCodec
			}
			if iNdEx >= l {
				return 0, io.ErrUnexpectedEOF
			}
			b := dAtA[iNdEx]
			iNdEx++
			wire |= (uint64(b) & 0x7F) << shift
			if b < 0x80 {
				break
			}
		}
		wireType := int(wire & 0x7)
		switch wireType {
		case 0:
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return 0, ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return 0, io.ErrUnexpectedEOF
				}
				iNdEx++
				if dAtA[iNdEx-1] < 0x80 {
					break
				}
			}
			return iNdEx, nil
		case 1:
			iNdEx += 8
			return iNdEx, nil
		case 2:
			var length int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return 0, ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return 0, io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				length |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if length < 0 {
				return 0, ErrInvalidLengthCodec
			}
			iNdEx += length
			if iNdEx < 0 {
				return 0, ErrInvalidLengthCodec
			}
			return iNdEx, nil
		case 3:
			for {
				var innerWire uint64
				var start int = iNdEx
				for shift := uint(0); ; shift += 7 {
					if shift >= 64 {
						return 0, ErrIntOverflowCodec
					}
					if iNdEx >= l {
						return 0, io.ErrUnexpectedEOF
					}
					b := dAtA[iNdEx]
					iNdEx++
					innerWire |= (uint64(b) & 0x7F) << shift
					if b < 0x80 {
						break
					}
				}
				innerWireType := int(innerWire & 0x7)
				if innerWireType == 4 {
					break
				}
				next, err := skipCodec(dAtA[start:])
				if err != nil {
					return 0, err
				}
				iNdEx = start + next
				if iNdEx < 0 {
					return 0, ErrInvalidLengthCodec
				}
			}
			return iNdEx, nil
		case 4:
			return iNdEx, nil
		case 5:
			iNdEx += 4
			return iNdEx, nil
		default:
			return 0, fmt.Errorf("proto: illegal wireType %d", wireType)
		}
	}
	panic("unreachable")
}

var (
	ErrInvalidLengthCodec = fmt.Errorf("proto: negative length found during unmarshaling")
	ErrIntOverflowCodec   = fmt.Errorf("proto: integer overflow")
)

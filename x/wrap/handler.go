package wrap

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	createVaultCost   = 0
	mintCost          = 0
	redeemCost        = 0
	chargeFeeCost     = 0
	distributeCost    = 0
	updateVaultCost   = 0
	batchCostPerToken = 0
)

// RegisterQuery registers the vault bucket for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewVaultBucket().Register("vaults", qr)
}

// RegisterRoutes registers handlers for vault message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl *Controller) {
	r = migration.SchemaMigratingRegistry("wrap", r)

	r.Handle(&CreateVaultMsg{}, &createVaultHandler{auth: auth, ctrl: ctrl})
	r.Handle(&MintMsg{}, &mintHandler{auth: auth, ctrl: ctrl})
	r.Handle(&MintBatchMsg{}, &mintBatchHandler{auth: auth, ctrl: ctrl})
	r.Handle(&RedeemMsg{}, &redeemHandler{auth: auth, ctrl: ctrl})
	r.Handle(&RedeemBatchMsg{}, &redeemBatchHandler{auth: auth, ctrl: ctrl})
	r.Handle(&ChargeFeeMsg{}, &chargeFeeHandler{auth: auth, ctrl: ctrl})
	r.Handle(&DistributeFeesMsg{}, &distributeFeesHandler{auth: auth, ctrl: ctrl})
	r.Handle(&UpdateFeesMsg{}, &updateVaultHandler{auth: auth, ctrl: ctrl, apply: applyUpdateFees})
	r.Handle(&SetActiveMsg{}, &updateVaultHandler{auth: auth, ctrl: ctrl, apply: applySetActive})
	r.Handle(&SetFeeExemptMsg{}, &updateVaultHandler{auth: auth, ctrl: ctrl, apply: applySetFeeExempt})
	r.Handle(&UpdateFeeReceiverMsg{}, &updateVaultHandler{auth: auth, ctrl: ctrl, apply: applyUpdateFeeReceiver})
	r.Handle(&UpdateAdminMsg{}, &updateVaultHandler{auth: auth, ctrl: ctrl, apply: applyUpdateAdmin})
}

type createVaultHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *createVaultHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createVaultCost}, nil
}

func (h *createVaultHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	vault := &Vault{
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
	key, err := h.ctrl.CreateVault(db, vault)
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *createVaultHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateVaultMsg, error) {
	var msg CreateVaultMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature is required")
	}
	return &msg, nil
}

type mintHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *mintHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: mintCost}, nil
}

func (h *mintHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, caller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, _, err := h.ctrl.Mint(db, caller, msg.VaultId, [][]byte{msg.TokenId}, msg.Destination, false); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{
		Tags: assetTags("wrapped", msg.VaultId, [][]byte{msg.TokenId}),
	}, nil
}

func (h *mintHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*MintMsg, weave.Address, error) {
	var msg MintMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller := x.AnySigner(ctx, h.auth).Address()
	if caller == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return &msg, caller, nil
}

type mintBatchHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *mintBatchHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	msg, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: batchCostPerToken * int64(len(msg.TokenIds))}, nil
}

func (h *mintBatchHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, caller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, _, err := h.ctrl.Mint(db, caller, msg.VaultId, msg.TokenIds, msg.Destination, msg.ForceFee); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{
		Tags: assetTags("wrapped", msg.VaultId, msg.TokenIds),
	}, nil
}

func (h *mintBatchHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*MintBatchMsg, weave.Address, error) {
	var msg MintBatchMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller := x.AnySigner(ctx, h.auth).Address()
	if caller == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return &msg, caller, nil
}

type redeemHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *redeemHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: redeemCost}, nil
}

func (h *redeemHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, caller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, _, err := h.ctrl.Redeem(db, caller, msg.VaultId, [][]byte{msg.TokenId}, msg.Destination, false); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{
		Tags: assetTags("unwrapped", msg.VaultId, [][]byte{msg.TokenId}),
	}, nil
}

func (h *redeemHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RedeemMsg, weave.Address, error) {
	var msg RedeemMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller := x.AnySigner(ctx, h.auth).Address()
	if caller == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return &msg, caller, nil
}

type redeemBatchHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *redeemBatchHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	msg, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: batchCostPerToken * int64(len(msg.TokenIds))}, nil
}

func (h *redeemBatchHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, caller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, _, err := h.ctrl.Redeem(db, caller, msg.VaultId, msg.TokenIds, msg.Destination, msg.ForceFee); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{
		Tags: assetTags("unwrapped", msg.VaultId, msg.TokenIds),
	}, nil
}

func (h *redeemBatchHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RedeemBatchMsg, weave.Address, error) {
	var msg RedeemBatchMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller := x.AnySigner(ctx, h.auth).Address()
	if caller == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return &msg, caller, nil
}

type chargeFeeHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *chargeFeeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: chargeFeeCost}, nil
}

func (h *chargeFeeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, caller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.ChargeFee(db, caller, msg.VaultId, *msg.Amount); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *chargeFeeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ChargeFeeMsg, weave.Address, error) {
	var msg ChargeFeeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller := x.AnySigner(ctx, h.auth).Address()
	if caller == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return &msg, caller, nil
}

type distributeFeesHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *distributeFeesHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: distributeCost}, nil
}

func (h *distributeFeesHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	amount, pulled, err := h.ctrl.DistributeFees(db, msg.VaultId)
	if err != nil {
		return nil, err
	}
	tags := make([]common.KVPair, 0, len(pulled)+1)
	tags = append(tags, common.KVPair{Key: []byte("wrap:fees-distributed"), Value: []byte(amount.String())})
	tags = append(tags, pulled...)
	return &weave.DeliverResult{Tags: tags}, nil
}

func (h *distributeFeesHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DistributeFeesMsg, error) {
	var msg DistributeFeesMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	// Distribution moves funds only towards the configured receiver, so
	// any signer may trigger it.
	if x.AnySigner(ctx, h.auth).Address() == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return &msg, nil
}

// vaultUpdate mutates a loaded vault according to an admin message. It is
// run by updateVaultHandler after the admin signature was verified.
type vaultUpdate func(v *Vault, msg weave.Msg) error

type updateVaultHandler struct {
	auth  x.Authenticator
	ctrl  *Controller
	apply vaultUpdate
}

func (h *updateVaultHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: updateVaultCost}, nil
}

func (h *updateVaultHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, vaultID, vault, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.apply(vault, msg); err != nil {
		return nil, err
	}
	if err := vault.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid vault")
	}
	if _, err := h.ctrl.vaults.Put(db, vaultID, vault); err != nil {
		return nil, errors.Wrap(err, "cannot update vault")
	}
	return &weave.DeliverResult{}, nil
}

func (h *updateVaultHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (weave.Msg, []byte, *Vault, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, nil, errors.Wrap(err, "invalid msg")
	}
	var vaultID []byte
	switch m := msg.(type) {
	case *UpdateFeesMsg:
		vaultID = m.VaultId
	case *SetActiveMsg:
		vaultID = m.VaultId
	case *SetFeeExemptMsg:
		vaultID = m.VaultId
	case *UpdateFeeReceiverMsg:
		vaultID = m.VaultId
	case *UpdateAdminMsg:
		vaultID = m.VaultId
	default:
		return nil, nil, nil, errors.Wrapf(errors.ErrMsg, "unexpected message type %T", msg)
	}
	vault, err := h.ctrl.GetVault(db, vaultID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !h.auth.HasAddress(ctx, vault.Admin) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "admin signature is required")
	}
	return msg, vaultID, vault, nil
}

func applyUpdateFees(v *Vault, msg weave.Msg) error {
	m := msg.(*UpdateFeesMsg)
	v.MintFee = m.MintFee
	v.RedeemFee = m.RedeemFee
	return nil
}

func applySetActive(v *Vault, msg weave.Msg) error {
	m := msg.(*SetActiveMsg)
	v.Active = m.Active
	return nil
}

func applySetFeeExempt(v *Vault, msg weave.Msg) error {
	m := msg.(*SetFeeExemptMsg)
	exempt := v.FeeExempt[:0]
	for _, a := range v.FeeExempt {
		if !a.Equals(m.Address) {
			exempt = append(exempt, a)
		}
	}
	if m.Exempt {
		exempt = append(exempt, m.Address)
	}
	v.FeeExempt = exempt
	return nil
}

func applyUpdateFeeReceiver(v *Vault, msg weave.Msg) error {
	m := msg.(*UpdateFeeReceiverMsg)
	v.FeeReceiver = m.FeeReceiver
	return nil
}

func applyUpdateAdmin(v *Vault, msg weave.Msg) error {
	m := msg.(*UpdateAdminMsg)
	v.Admin = m.Admin
	return nil
}

// assetTags emits one tag per processed token so that per asset activity
// can be filtered from transaction results.
func assetTags(action string, vaultID []byte, tokenIDs [][]byte) []common.KVPair {
	tags := make([]common.KVPair, 0, len(tokenIDs)+1)
	tags = append(tags, common.KVPair{Key: []byte("wrap:vault"), Value: vaultID})
	for _, id := range tokenIDs {
		tags = append(tags, common.KVPair{Key: []byte("wrap:" + action), Value: id})
	}
	return tags
}

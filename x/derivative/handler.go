package derivative

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	createRootCost       = 0
	createDerivativeCost = 0
)

// RegisterQuery registers the pool buckets for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewPoolBucket().Register("pools", qr)
	NewRootPoolBucket().Register("rootpools", qr)
	NewChildPoolBucket().Register("childpools", qr)
}

// RegisterRoutes registers handlers for factory message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl *Controller) {
	r = migration.SchemaMigratingRegistry("derivative", r)

	r.Handle(&CreateRootMsg{}, &createRootHandler{auth: auth, ctrl: ctrl})
	r.Handle(&CreateDerivativeMsg{}, &createDerivativeHandler{auth: auth, ctrl: ctrl})
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler("derivative", &Configuration{}, auth, migration.CurrentAdmin))
}

type createRootHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *createRootHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createRootCost}, nil
}

func (h *createRootHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	vaultID, root, err := h.ctrl.CreateRoot(db, msg)
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{
		Data: vaultID,
		Tags: []common.KVPair{
			{Key: []byte("derivative:root"), Value: []byte(root.VaultAddress.String())},
		},
	}, nil
}

func (h *createRootHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateRootMsg, error) {
	var msg CreateRootMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature is required")
	}
	return &msg, nil
}

type createDerivativeHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *createDerivativeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createDerivativeCost}, nil
}

func (h *createDerivativeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, caller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	vaultID, child, result, err := h.ctrl.CreateDerivative(db, caller, msg)
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{
		Data: vaultID,
		Tags: []common.KVPair{
			{Key: []byte("derivative:child"), Value: []byte(child.VaultAddress.String())},
			{Key: []byte("derivative:parent"), Value: []byte(child.ParentAddress.String())},
			{Key: []byte("derivative:liquidity"), Value: []byte(result.Liquidity.String())},
		},
	}, nil
}

func (h *createDerivativeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateDerivativeMsg, weave.Address, error) {
	var msg CreateDerivativeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	caller := x.AnySigner(ctx, h.auth).Address()
	if caller == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return &msg, caller, nil
}

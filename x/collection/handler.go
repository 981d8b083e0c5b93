package collection

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
)

const (
	createCollectionCost = 0
	issueTokenCost       = 0
	transferTokenCost    = 0
)

// RegisterQuery registers collection buckets for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewCollectionBucket().Register("collections", qr)
	NewTokenBucket().Register("tokens", qr)
}

// RegisterRoutes registers handlers for collection message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl *Controller) {
	r = migration.SchemaMigratingRegistry("collection", r)

	r.Handle(&CreateCollectionMsg{}, &createCollectionHandler{auth: auth, ctrl: ctrl})
	r.Handle(&IssueTokenMsg{}, &issueTokenHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferTokenMsg{}, &transferTokenHandler{auth: auth, ctrl: ctrl})
}

type createCollectionHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *createCollectionHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createCollectionCost}, nil
}

func (h *createCollectionHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	key, err := h.ctrl.CreateCollection(db, msg.Name, msg.Symbol, msg.BaseUri, msg.Issuer, msg.MaxSupply)
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *createCollectionHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateCollectionMsg, error) {
	var msg CreateCollectionMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Issuer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "issuer signature is required")
	}
	return &msg, nil
}

type issueTokenHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *issueTokenHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: issueTokenCost}, nil
}

func (h *issueTokenHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, issuer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.IssueToken(db, msg.Collection, msg.TokenId, issuer, msg.Owner); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *issueTokenHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*IssueTokenMsg, weave.Address, error) {
	var msg IssueTokenMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var col Collection
	if err := h.ctrl.collections.One(db, msg.Collection, &col); err != nil {
		return nil, nil, errors.Wrap(err, "collection")
	}
	if !h.auth.HasAddress(ctx, col.Issuer) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "issuer signature is required")
	}
	return &msg, col.Issuer, nil
}

type transferTokenHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *transferTokenHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: transferTokenCost}, nil
}

func (h *transferTokenHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveToken(db, msg.Collection, msg.TokenId, owner, msg.Destination); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *transferTokenHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*TransferTokenMsg, weave.Address, error) {
	var msg TransferTokenMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := h.ctrl.TokenOwner(db, msg.Collection, msg.TokenId)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature is required")
	}
	return &msg, owner, nil
}

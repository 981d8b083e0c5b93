package feedist

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	updateSplitCost = 0
	distributeCost  = 0
)

// RegisterQuery registers the split bucket for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewSplitBucket().Register("splits", qr)
}

// RegisterRoutes registers handlers for distributor message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl *Controller) {
	r = migration.SchemaMigratingRegistry("feedist", r)

	r.Handle(&SetRecipientsMsg{}, &setRecipientsHandler{auth: auth, ctrl: ctrl})
	r.Handle(&AddRecipientMsg{}, &addRecipientHandler{auth: auth, ctrl: ctrl})
	r.Handle(&AdjustPointsMsg{}, &adjustPointsHandler{auth: auth, ctrl: ctrl})
	r.Handle(&DistributeMsg{}, &distributeHandler{auth: auth, ctrl: ctrl})
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler("feedist", &Configuration{}, auth, migration.CurrentAdmin))
}

// ownerSigned loads the configuration and ensures the owner signed the
// current transaction.
func ownerSigned(ctx weave.Context, db weave.KVStore, auth x.Authenticator) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, conf.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "owner signature is required")
	}
	return nil
}

type setRecipientsHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *setRecipientsHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: updateSplitCost}, nil
}

func (h *setRecipientsHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.SetRecipients(db, msg.Recipients); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *setRecipientsHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetRecipientsMsg, error) {
	var msg SetRecipientsMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := ownerSigned(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}

type addRecipientHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *addRecipientHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: updateSplitCost}, nil
}

func (h *addRecipientHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.AddRecipient(db, msg.Address, msg.Points); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *addRecipientHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AddRecipientMsg, error) {
	var msg AddRecipientMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := ownerSigned(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}

type adjustPointsHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *adjustPointsHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: updateSplitCost}, nil
}

func (h *adjustPointsHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.AdjustPoints(db, msg.Address, msg.Points); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h *adjustPointsHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AdjustPointsMsg, error) {
	var msg AdjustPointsMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := ownerSigned(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}

type distributeHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

func (h *distributeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: distributeCost}, nil
}

func (h *distributeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	report, err := h.ctrl.Distribute(db)
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Tags: reportTags(report)}, nil
}

func (h *distributeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DistributeMsg, error) {
	var msg DistributeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := ownerSigned(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}

// reportTags translates a distribution report into result tags, one per
// payment, one for the treasury sweep and one carrying the distributed
// total. Tags collected from pull capable recipients are included as well.
func reportTags(r *Report) []common.KVPair {
	if r.Total.IsZero() {
		return nil
	}
	tags := make([]common.KVPair, 0, len(r.Paid)+len(r.Tags)+2)
	tags = append(tags, r.Tags...)
	for _, p := range r.Paid {
		tags = append(tags, common.KVPair{
			Key:   []byte("feedist:paid:" + p.Destination.String()),
			Value: []byte(p.Amount.String()),
		})
	}
	tags = append(tags,
		common.KVPair{Key: []byte("feedist:treasury"), Value: []byte(r.Swept.String())},
		common.KVPair{Key: []byte("feedist:total"), Value: []byte(r.Total.String())},
	)
	return tags
}

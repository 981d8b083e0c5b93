package feedist

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &SetRecipientsMsg{}, migration.NoModification)
	migration.MustRegister(1, &AddRecipientMsg{}, migration.NoModification)
	migration.MustRegister(1, &AdjustPointsMsg{}, migration.NoModification)
	migration.MustRegister(1, &DistributeMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*SetRecipientsMsg)(nil)

func (SetRecipientsMsg) Path() string {
	return "feedist/set_recipients"
}

func (msg *SetRecipientsMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "Recipients", validateRecipients(msg.Recipients))
	return errs
}

var _ weave.Msg = (*AddRecipientMsg)(nil)

func (AddRecipientMsg) Path() string {
	return "feedist/add_recipient"
}

func (msg *AddRecipientMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", msg.Address.Validate())
	if msg.Points <= 0 {
		errs = errors.AppendField(errs, "Points", errors.Wrap(errors.ErrInput, "must be positive"))
	}
	return errs
}

var _ weave.Msg = (*AdjustPointsMsg)(nil)

func (AdjustPointsMsg) Path() string {
	return "feedist/adjust_points"
}

func (msg *AdjustPointsMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", msg.Address.Validate())
	if msg.Points < 0 {
		errs = errors.AppendField(errs, "Points", errors.Wrap(errors.ErrInput, "must not be negative"))
	}
	return errs
}

var _ weave.Msg = (*DistributeMsg)(nil)

func (DistributeMsg) Path() string {
	return "feedist/distribute"
}

func (msg *DistributeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "feedist/update_configuration"
}

func (msg *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if msg.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	return errs
}

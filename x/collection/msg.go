package collection

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateCollectionMsg{}, migration.NoModification)
	migration.MustRegister(1, &IssueTokenMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferTokenMsg{}, migration.NoModification)
}

var _ weave.Msg = (*CreateCollectionMsg)(nil)

func (CreateCollectionMsg) Path() string {
	return "collection/create_collection"
}

func (msg *CreateCollectionMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if msg.Name == "" {
		errs = errors.AppendField(errs, "Name", errors.ErrEmpty)
	}
	if msg.Symbol == "" {
		errs = errors.AppendField(errs, "Symbol", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Issuer", msg.Issuer.Validate())
	if msg.MaxSupply < 0 {
		errs = errors.AppendField(errs, "MaxSupply", errors.Wrap(errors.ErrInput, "must not be negative"))
	}
	return errs
}

var _ weave.Msg = (*IssueTokenMsg)(nil)

func (IssueTokenMsg) Path() string {
	return "collection/issue_token"
}

func (msg *IssueTokenMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.Collection) == 0 {
		errs = errors.AppendField(errs, "Collection", errors.ErrEmpty)
	}
	if len(msg.TokenId) == 0 {
		errs = errors.AppendField(errs, "TokenId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Owner", msg.Owner.Validate())
	return errs
}

var _ weave.Msg = (*TransferTokenMsg)(nil)

func (TransferTokenMsg) Path() string {
	return "collection/transfer_token"
}

func (msg *TransferTokenMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.Collection) == 0 {
		errs = errors.AppendField(errs, "Collection", errors.ErrEmpty)
	}
	if len(msg.TokenId) == 0 {
		errs = errors.AppendField(errs, "TokenId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Destination", msg.Destination.Validate())
	return errs
}

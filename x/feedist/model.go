package feedist

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Split{}, migration.NoModification)
}

// maxRecipients bounds the recipient list so that a single distribution
// cannot grow beyond a predictable amount of work.
const maxRecipients = 10

// splitKey is the bucket key of the only Split instance on a chain.
var splitKey = []byte("recipients")

var _ orm.Model = (*Split)(nil)

func (s *Split) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", s.Metadata.Validate())
	errs = errors.AppendField(errs, "Recipients", validateRecipients(s.Recipients))
	var total int64
	for _, r := range s.Recipients {
		total += int64(r.Points)
	}
	if s.TotalPoints != total {
		errs = errors.AppendField(errs, "TotalPoints", errors.Wrapf(errors.ErrState, "want %d", total))
	}
	return errs
}

func (s *Split) Copy() orm.CloneableData {
	recipients := make([]*Recipient, len(s.Recipients))
	for i, r := range s.Recipients {
		recipients[i] = &Recipient{
			Address: r.Address.Clone(),
			Points:  r.Points,
		}
	}
	return &Split{
		Metadata:    s.Metadata.Copy(),
		Recipients:  recipients,
		TotalPoints: s.TotalPoints,
	}
}

// find returns the recipient entry with the given address, or nil.
func (s *Split) find(addr weave.Address) *Recipient {
	for _, r := range s.Recipients {
		if r.Address.Equals(addr) {
			return r
		}
	}
	return nil
}

func validateRecipients(recipients []*Recipient) error {
	if len(recipients) > maxRecipients {
		return errors.Wrapf(errors.ErrInput, "more than %d entries", maxRecipients)
	}
	for i, r := range recipients {
		if err := r.Address.Validate(); err != nil {
			return errors.Wrapf(err, "recipient %d address", i)
		}
		if r.Points < 0 {
			return errors.Wrapf(errors.ErrInput, "recipient %d has negative points", i)
		}
		for _, prev := range recipients[:i] {
			if prev.Address.Equals(r.Address) {
				return errors.Wrapf(errors.ErrDuplicate, "recipient %d", i)
			}
		}
	}
	return nil
}

func NewSplitBucket() orm.ModelBucket {
	b := orm.NewModelBucket("feedist", &Split{})
	return migration.NewModelBucket("feedist", b)
}

// DistributorAccount returns the address holding the funds awaiting
// distribution. There is exactly one such account per chain.
func DistributorAccount() weave.Address {
	return weave.NewCondition("feedist", "revenue", []byte("main")).Address()
}

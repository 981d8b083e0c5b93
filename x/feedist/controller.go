package feedist

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
	"github.com/tendermint/tendermint/libs/common"

	"github.com/wrapnet/wrapd/x/pull"
)

// CashController allows to manage coins stored by the accounts without the
// need to directly access the bucket.
// Required functionality is implemented by the x/cash extension.
type CashController interface {
	Balance(weave.KVStore, weave.Address) (coin.Coins, error)
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// Payment is a single transfer performed during a distribution.
type Payment struct {
	Destination weave.Address
	Amount      coin.Coin
}

// Report describes a finished distribution. Total is the balance found on
// the distributor account, Paid the per recipient transfers and Swept the
// remainder moved to the treasury. Total is always the sum of all payments
// and the sweep. Tags collects the events produced by pull capable
// recipients during their payouts.
type Report struct {
	Total coin.Coin
	Paid  []Payment
	Swept coin.Coin
	Tags  []common.KVPair
}

// Controller implements the distribution rules. All balance changing
// operations of this extension must go through it.
type Controller struct {
	splits orm.ModelBucket
	cash   CashController
	pulls  pull.Resolver
	guard  *pull.Guard
}

func NewController(cash CashController, pulls pull.Resolver) *Controller {
	return &Controller{
		splits: NewSplitBucket(),
		cash:   cash,
		pulls:  pulls,
		guard:  pull.NewGuard(),
	}
}

var (
	_ pull.Resolver  = (*Controller)(nil)
	_ pull.Recipient = (*Controller)(nil)
)

// GetSplit returns the current recipient list. A chain without any
// configured recipients returns an empty split.
func (c *Controller) GetSplit(db weave.ReadOnlyKVStore) (*Split, error) {
	var s Split
	switch err := c.splits.One(db, splitKey, &s); {
	case err == nil:
		return &s, nil
	case errors.ErrNotFound.Is(err):
		return &Split{
			Metadata: &weave.Metadata{Schema: 1},
		}, nil
	default:
		return nil, errors.Wrap(err, "split")
	}
}

func (c *Controller) saveSplit(db weave.KVStore, s *Split) error {
	if err := s.Validate(); err != nil {
		return errors.Wrap(err, "invalid split")
	}
	if _, err := c.splits.Put(db, splitKey, s); err != nil {
		return errors.Wrap(err, "cannot store split")
	}
	return nil
}

// SetRecipients replaces the whole recipient list. The total is recomputed
// from scratch.
func (c *Controller) SetRecipients(db weave.KVStore, recipients []*Recipient) error {
	s := &Split{
		Metadata:   &weave.Metadata{Schema: 1},
		Recipients: recipients,
	}
	for _, r := range recipients {
		s.TotalPoints += int64(r.Points)
	}
	return c.saveSplit(db, s)
}

// AddRecipient appends a destination. Adding an address that already holds
// a non zero weight fails, while an entry zeroed by AdjustPoints is
// reactivated in place.
func (c *Controller) AddRecipient(db weave.KVStore, addr weave.Address, points int32) error {
	s, err := c.GetSplit(db)
	if err != nil {
		return err
	}
	if r := s.find(addr); r != nil {
		if r.Points != 0 {
			return errors.Wrapf(errors.ErrDuplicate, "recipient %q", addr)
		}
		r.Points = points
	} else {
		s.Recipients = append(s.Recipients, &Recipient{Address: addr, Points: points})
	}
	s.TotalPoints += int64(points)
	return c.saveSplit(db, s)
}

// AdjustPoints changes the weight of an existing destination, maintaining
// the total as a delta. Zero points exclude the destination from future
// distributions without removing the entry.
func (c *Controller) AdjustPoints(db weave.KVStore, addr weave.Address, points int32) error {
	s, err := c.GetSplit(db)
	if err != nil {
		return err
	}
	r := s.find(addr)
	if r == nil {
		return errors.Wrapf(errors.ErrNotFound, "recipient %q", addr)
	}
	s.TotalPoints += int64(points) - int64(r.Points)
	r.Points = points
	return c.saveSplit(db, s)
}

// Distribute splits the full distributor account balance between all
// recipients proportionally to their points, rounding each share down to
// whole units, and sweeps the remainder to the treasury. An empty account
// is a no-op.
func (c *Controller) Distribute(db weave.KVStore) (*Report, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	s, err := c.GetSplit(db)
	if err != nil {
		return nil, err
	}
	source := DistributorAccount()
	total, err := c.balance(db, source, conf.Ticker)
	if err != nil {
		return nil, err
	}
	report := &Report{
		Total: total,
		Swept: coin.Coin{Ticker: conf.Ticker},
	}
	if total.IsZero() {
		return report, nil
	}
	if err := c.guard.Enter(source); err != nil {
		return nil, err
	}
	defer c.guard.Exit(source)

	remainder := total
	for _, r := range s.Recipients {
		if r.Points == 0 {
			continue
		}
		product, err := total.Multiply(int64(r.Points))
		if err != nil {
			return nil, errors.Wrap(err, "share")
		}
		share, _, err := product.Divide(s.TotalPoints)
		if err != nil {
			return nil, errors.Wrap(err, "share")
		}
		// Shares are paid out in whole units only. The fractional part of
		// each share joins the treasury sweep together with the division
		// remainder.
		amount := coin.NewCoin(share.Whole, 0, share.Ticker)
		if amount.IsZero() {
			continue
		}
		tags, err := c.payOut(db, source, r.Address, amount)
		if err != nil {
			return nil, errors.Wrapf(err, "pay %q", r.Address)
		}
		report.Tags = append(report.Tags, tags...)
		remainder, err = remainder.Subtract(amount)
		if err != nil {
			return nil, errors.Wrap(err, "remainder")
		}
		report.Paid = append(report.Paid, Payment{Destination: r.Address, Amount: amount})
	}
	// The treasury absorbs all rounding loss. The sweep is reported even
	// when there is nothing left so that every distribution carries a
	// treasury entry.
	if remainder.IsPositive() {
		if err := c.cash.MoveCoins(db, source, conf.Treasury, remainder); err != nil {
			return nil, errors.Wrap(err, "sweep")
		}
	}
	report.Swept = remainder
	return report, nil
}

// payOut delivers a share to a destination. Destinations claimed by a pull
// capable module are paid through their pull callback, anything else
// receives a plain transfer.
func (c *Controller) payOut(db weave.KVStore, source, destination weave.Address, amount coin.Coin) ([]common.KVPair, error) {
	rec, err := c.pulls.Resolve(db, destination)
	switch {
	case err == nil:
		return rec.PullRewards(db, source, destination, amount)
	case errors.ErrNotFound.Is(err):
		return nil, c.cash.MoveCoins(db, source, destination, amount)
	default:
		return nil, errors.Wrap(err, "resolve destination")
	}
}

func (c *Controller) balance(db weave.KVStore, addr weave.Address, ticker string) (coin.Coin, error) {
	coins, err := c.cash.Balance(db, addr)
	switch {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return coin.Coin{Ticker: ticker}, nil
	default:
		return coin.Coin{}, errors.Wrap(err, "balance")
	}
	for _, cn := range coins {
		if cn.Ticker == ticker {
			return *cn, nil
		}
	}
	return coin.Coin{Ticker: ticker}, nil
}

// PullRewards implements pull.Recipient. Only the configured source can
// fund the distributor this way and funding triggers a distribution within
// the same call. The distribution tags are returned so the funding handler
// emits the same events as a direct DistributeMsg.
func (c *Controller) PullRewards(db weave.KVStore, source, destination weave.Address, amount coin.Coin) ([]common.KVPair, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !conf.Source.Equals(source) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "cannot be funded by %q", source)
	}
	if amount.Ticker != conf.Ticker {
		return nil, errors.Wrapf(errors.ErrCurrency, "distributor accepts %q", conf.Ticker)
	}
	if !destination.Equals(DistributorAccount()) {
		return nil, errors.Wrapf(errors.ErrInput, "not a distributor account: %q", destination)
	}
	if err := c.cash.MoveCoins(db, source, destination, amount); err != nil {
		return nil, errors.Wrap(err, "cannot fund")
	}
	report, err := c.Distribute(db)
	if err != nil {
		return nil, err
	}
	return reportTags(report), nil
}

// Resolve implements pull.Resolver, claiming only the distributor account.
func (c *Controller) Resolve(db weave.ReadOnlyKVStore, destination weave.Address) (pull.Recipient, error) {
	if !destination.Equals(DistributorAccount()) {
		return nil, errors.Wrapf(errors.ErrNotFound, "not a distributor account: %q", destination)
	}
	return c, nil
}

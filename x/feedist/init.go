package feedist

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse the initial distributor configuration and
// recipient list from genesis and save them to the database.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	if err := gconf.InitConfig(kv, opts, "feedist", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}
	var fixture struct {
		Recipients []struct {
			Address weave.Address `json:"address"`
			Points  int32         `json:"points"`
		} `json:"recipients"`
	}
	if err := opts.ReadOptions("feedist", &fixture); err != nil {
		return errors.Wrap(err, "cannot load feedist")
	}
	if len(fixture.Recipients) == 0 {
		return nil
	}
	split := Split{
		Metadata: &weave.Metadata{Schema: 1},
	}
	for _, r := range fixture.Recipients {
		split.Recipients = append(split.Recipients, &Recipient{
			Address: r.Address,
			Points:  r.Points,
		})
		split.TotalPoints += int64(r.Points)
	}
	if err := split.Validate(); err != nil {
		return errors.Wrap(err, "invalid recipients")
	}
	bucket := NewSplitBucket()
	if _, err := bucket.Put(kv, splitKey, &split); err != nil {
		return errors.Wrap(err, "cannot store recipients")
	}
	return nil
}

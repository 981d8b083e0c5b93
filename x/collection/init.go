package collection

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial collections from genesis and save them to
// the database.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	var collections []struct {
		Name      string        `json:"name"`
		Symbol    string        `json:"symbol"`
		BaseURI   string        `json:"base_uri"`
		Issuer    weave.Address `json:"issuer"`
		MaxSupply int64         `json:"max_supply"`
	}
	if err := opts.ReadOptions("collection", &collections); err != nil {
		return errors.Wrap(err, "cannot load collection")
	}
	bucket := NewCollectionBucket()
	for i, c := range collections {
		col := Collection{
			Metadata:  &weave.Metadata{Schema: 1},
			Name:      c.Name,
			Symbol:    c.Symbol,
			BaseUri:   c.BaseURI,
			Issuer:    c.Issuer,
			MaxSupply: c.MaxSupply,
		}
		if _, err := bucket.Put(kv, nil, &col); err != nil {
			return errors.Wrapf(err, "cannot store #%d collection", i)
		}
	}
	return nil
}

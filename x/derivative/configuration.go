package derivative

import (
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
}

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	if !coin.IsCC(c.QuoteTicker) {
		errs = errors.AppendField(errs, "QuoteTicker", errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", c.QuoteTicker))
	}
	return errs
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "derivative", &conf); err != nil {
		return nil, errors.Wrap(err, "gconf")
	}
	return &conf, nil
}

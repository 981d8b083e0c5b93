package wrap

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial vaults from genesis and save them to the
// database. Vault addresses are derived from the assigned IDs.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	var vaults []struct {
		Collection   []byte        `json:"collection"`
		Ticker       string        `json:"ticker"`
		ExchangeUnit *coin.Coin    `json:"exchange_unit"`
		MintFee      *coin.Coin    `json:"mint_fee"`
		RedeemFee    *coin.Coin    `json:"redeem_fee"`
		Admin        weave.Address `json:"admin"`
		FeeReceiver  weave.Address `json:"fee_receiver"`
	}
	if err := opts.ReadOptions("wrap", &vaults); err != nil {
		return errors.Wrap(err, "cannot load wrap")
	}
	bucket := NewVaultBucket()
	for i, v := range vaults {
		key, err := vaultSeq.NextVal(kv)
		if err != nil {
			return errors.Wrap(err, "vault sequence")
		}
		vault := Vault{
			Metadata:     &weave.Metadata{Schema: 1},
			Collection:   v.Collection,
			Ticker:       v.Ticker,
			ExchangeUnit: v.ExchangeUnit,
			MintFee:      v.MintFee,
			RedeemFee:    v.RedeemFee,
			Active:       true,
			Admin:        v.Admin,
			FeeReceiver:  v.FeeReceiver,
			Address:      VaultAccount(key),
		}
		if err := vault.Validate(); err != nil {
			return errors.Wrapf(err, "invalid #%d vault", i)
		}
		if _, err := bucket.Put(kv, key, &vault); err != nil {
			return errors.Wrapf(err, "cannot store #%d vault", i)
		}
	}
	return nil
}

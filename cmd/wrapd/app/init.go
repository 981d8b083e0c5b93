package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/multisig"
	"github.com/iov-one/weave/x/validators"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/wrapnet/wrapd/x/collection"
	"github.com/wrapnet/wrapd/x/derivative"
	"github.com/wrapnet/wrapd/x/feedist"
	"github.com/wrapnet/wrapd/x/wrap"
)

// GenInitOptions will produce some basic options for one rich account, to
// use for dev mode.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "IOV"
	if len(args) > 0 {
		ticker = args[0]
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out a recovery phrase
		bz, phrase, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(phrase)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	return json.Marshal(dict{
		"cash": array{
			dict{
				"address": addr,
				"coins": array{
					dict{
						"whole":  123456789,
						"ticker": ticker,
					},
				},
			},
		},
		"conf": dict{
			"cash": dict{
				"collector_address": addr,
				"minimal_fee":       dict{}, // no fee
			},
			"migration": dict{
				"admin": addr,
			},
			"feedist": dict{
				"owner":    addr,
				"source":   addr,
				"ticker":   ticker,
				"treasury": addr,
			},
			"derivative": dict{
				"owner":        addr,
				"quote_ticker": ticker,
			},
		},
		"initialize_schema": []dict{
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "multisig", "ver": 1},
			{"pkg": "validators", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "collection", "ver": 1},
			{"pkg": "wrap", "ver": 1},
			{"pkg": "feedist", "ver": 1},
			{"pkg": "derivative", "ver": 1},
		},
	})
}

// GenerateApp is used to create a stub for server/start.go command.
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "abci.db")
	}

	stack := Stack()
	application, err := Application("wrapd", stack, TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&multisig.Initializer{},
		&validators.Initializer{},
		&collection.Initializer{},
		&wrap.Initializer{},
		&feedist.Initializer{},
		&derivative.Initializer{},
	))

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}

// GenerateCoinKey returns the address of a public key, along with the
// secret phrase to recover the private key. You can give coins to this
// address and return the recovery phrase to the user to access them.
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	addr := privKey.PublicKey().Address()
	return addr, "TODO: add a recovery phrase", nil
}

/*
Package app links together all the components of the wrapd application:
the token collections, the wrapping vaults, the weighted fee distributor
and the derivative pool factory, on top of the standard weave stack.
*/
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/store/iavl"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/multisig"
	"github.com/iov-one/weave/x/sigs"
	"github.com/iov-one/weave/x/utils"
	"github.com/iov-one/weave/x/validators"

	"github.com/wrapnet/wrapd/x/collection"
	"github.com/wrapnet/wrapd/x/derivative"
	"github.com/wrapnet/wrapd/x/feedist"
	"github.com/wrapnet/wrapd/x/pull"
	"github.com/wrapnet/wrapd/x/wrap"
)

// Authenticator returns the typical authentication: public key signatures
// plus multisig contracts.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{}, multisig.Authenticate{})
}

// CashControl returns a controller for cash functions.
func CashControl() cash.Controller {
	return cash.NewController(cash.NewBucket())
}

// Chain returns a chain of decorators, to handle authentication, fees,
// logging, and recovery.
func Chain(authFn x.Authenticator) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewKeyTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		multisig.NewDecorator(authFn),
		cash.NewFeeDecorator(authFn, CashControl()),
		// on DeliverTx, bad tx will increment nonce and take fee
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to all message handlers of this
// application. The vault and the distributor controllers share a single
// pull registry so that fees paid out to either are routed through the
// pull protocol instead of a plain transfer.
func Router(authFn x.Authenticator) app.Router {
	r := app.NewRouter()

	cashCtrl := CashControl()
	tokens := collection.NewController()
	registry := &pull.Registry{}
	vaults := wrap.NewController(cashCtrl, tokens, registry)
	splits := feedist.NewController(cashCtrl, registry)
	registry.Add(vaults)
	registry.Add(splits)
	pools := derivative.NewController(vaults, tokens, cashCtrl, derivative.NewBootstrapEngine(cashCtrl))

	cash.RegisterRoutes(r, authFn, cashCtrl)
	migration.RegisterRoutes(r, authFn)
	multisig.RegisterRoutes(r, authFn)
	validators.RegisterRoutes(r, authFn)
	collection.RegisterRoutes(r, authFn, tokens)
	wrap.RegisterRoutes(r, authFn, vaults)
	feedist.RegisterRoutes(r, authFn, splits)
	derivative.RegisterRoutes(r, authFn, pools)
	return r
}

// QueryRouter returns a query router, allowing access to the buckets of
// all registered extensions.
func QueryRouter() weave.QueryRouter {
	r := weave.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		multisig.RegisterQuery,
		validators.RegisterQuery,
		collection.RegisterQuery,
		wrap.RegisterQuery,
		feedist.RegisterQuery,
		derivative.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator chain. This
// can be passed into BaseApp.
func Stack() weave.Handler {
	authFn := Authenticator()
	return Chain(authFn).WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with the given
// arguments. If you are not sure what to use for the Handler, just use
// Stack().
func Application(name string, h weave.Handler,
	tx weave.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, nil, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists the data to
// the named path.
func CommitKVStore(dbPath string) (weave.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("invalid database name: %s", path)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}

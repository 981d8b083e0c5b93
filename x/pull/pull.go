package pull

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/tendermint/tendermint/libs/common"
)

// ErrReentrancy is returned when an in-flight funding hand-off attempts to
// recursively enter the same entity again.
var ErrReentrancy = errors.Register(1020, "reentrant call")

// Recipient is the receiving half of the funding hand-off. The source module
// grants the amount and the recipient collects it from the source account.
// Implementations must move exactly the given amount or fail without any
// state change. Tags produced by the recipient's own accounting during the
// hand-off are returned so that the outermost handler can emit them.
type Recipient interface {
	PullRewards(db weave.KVStore, source, destination weave.Address, amount coin.Coin) ([]common.KVPair, error)
}

// Resolver maps an address to the Recipient implementation owning it.
// ErrNotFound is returned for addresses that do not belong to the module.
type Resolver interface {
	Resolve(db weave.ReadOnlyKVStore, destination weave.Address) (Recipient, error)
}

// Registry is a Resolver that fans out to all registered module resolvers.
// The zero value is ready to use.
type Registry struct {
	resolvers []Resolver
}

var _ Resolver = (*Registry)(nil)

// Add registers another module resolver. Not safe for concurrent use, wire
// everything up before handling transactions.
func (r *Registry) Add(res Resolver) {
	r.resolvers = append(r.resolvers, res)
}

// Resolve returns the first Recipient claiming the destination address.
func (r *Registry) Resolve(db weave.ReadOnlyKVStore, destination weave.Address) (Recipient, error) {
	for _, res := range r.resolvers {
		switch rec, err := res.Resolve(db, destination); {
		case err == nil:
			return rec, nil
		case errors.ErrNotFound.Is(err):
			// Not this module, keep looking.
		default:
			return nil, err
		}
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "no pull recipient at %s", destination)
}

// Guard is a per-entity in-call flag. Entering an already entered address
// fails with ErrReentrancy. Transactions are processed one at a time, so an
// in-memory flag is enough to fence recursive hand-off chains within a
// single delivery.
type Guard struct {
	busy map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{busy: make(map[string]struct{})}
}

// Enter marks the address as having an in-flight call. The caller must
// Exit once the external call returned.
func (g *Guard) Enter(addr weave.Address) error {
	key := string(addr)
	if _, ok := g.busy[key]; ok {
		return errors.Wrapf(ErrReentrancy, "address %s", addr)
	}
	g.busy[key] = struct{}{}
	return nil
}

func (g *Guard) Exit(addr weave.Address) {
	delete(g.busy, string(addr))
}

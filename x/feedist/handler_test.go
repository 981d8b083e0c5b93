package feedist

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"

	"github.com/wrapnet/wrapd/x/pull"
)

type testEnv struct {
	db       weave.KVStore
	rt       *app.Router
	auth     *weavetest.CtxAuth
	ctx      weave.Context
	cash     cash.Controller
	ctrl     *Controller
	owner    weave.Condition
	source   weave.Condition
	treasury weave.Address
}

func newTestEnv(t testing.TB) *testEnv {
	t.Helper()

	db := store.MemStore()
	migration.MustInitPkg(db, "feedist")

	owner := weavetest.NewCondition()
	source := weavetest.NewCondition()
	treasury := weavetest.NewCondition().Address()

	conf := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner.Address(),
		Source:   source.Address(),
		Ticker:   "WPNK",
		Treasury: treasury,
	}
	if err := gconf.Save(db, "feedist", &conf); err != nil {
		t.Fatalf("save configuration: %s", err)
	}

	cashCtrl := cash.NewController(cash.NewBucket())
	registry := &pull.Registry{}
	ctrl := NewController(cashCtrl, registry)
	registry.Add(ctrl)

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	RegisterRoutes(rt, auth, ctrl)

	ctx := weave.WithHeight(context.Background(), 1)
	ctx = weave.WithChainID(ctx, "testchain-123")

	return &testEnv{
		db:       db,
		rt:       rt,
		auth:     auth,
		ctx:      ctx,
		cash:     cashCtrl,
		ctrl:     ctrl,
		owner:    owner,
		source:   source,
		treasury: treasury,
	}
}

func (e *testEnv) deliver(t testing.TB, cond weave.Condition, msg weave.Msg) (*weave.DeliverResult, error) {
	t.Helper()
	return e.rt.Deliver(e.auth.SetConditions(e.ctx, cond), e.db, &weavetest.Tx{Msg: msg})
}

func (e *testEnv) fund(t testing.TB, amount coin.Coin) {
	t.Helper()
	if err := e.cash.CoinMint(e.db, DistributorAccount(), amount); err != nil {
		t.Fatalf("fund distributor: %s", err)
	}
}

func (e *testEnv) balance(t testing.TB, addr weave.Address) coin.Coin {
	t.Helper()
	coins, err := e.cash.Balance(e.db, addr)
	switch {
	case errors.ErrNotFound.Is(err):
		return coin.Coin{Ticker: "WPNK"}
	case err != nil:
		t.Fatalf("balance %s: %s", addr, err)
	}
	for _, c := range coins {
		if c.Ticker == "WPNK" {
			return *c
		}
	}
	return coin.Coin{Ticker: "WPNK"}
}

func (e *testEnv) setRecipients(t testing.TB, recipients ...*Recipient) {
	t.Helper()
	if _, err := e.deliver(t, e.owner, &SetRecipientsMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		Recipients: recipients,
	}); err != nil {
		t.Fatalf("set recipients: %s", err)
	}
}

func TestDistributeProportionally(t *testing.T) {
	e := newTestEnv(t)

	a := weavetest.NewCondition().Address()
	b := weavetest.NewCondition().Address()
	e.setRecipients(t,
		&Recipient{Address: a, Points: 30},
		&Recipient{Address: b, Points: 20},
	)

	e.fund(t, coin.NewCoin(100, 0, "WPNK"))
	res, err := e.deliver(t, e.owner, &DistributeMsg{Metadata: &weave.Metadata{Schema: 1}})
	if err != nil {
		t.Fatalf("distribute: %s", err)
	}
	// Two payments, the treasury sweep and the total.
	if want, got := 4, len(res.Tags); want != got {
		t.Fatalf("want %d tags, got %d", want, got)
	}
	if got := e.balance(t, a); !got.Equals(coin.NewCoin(60, 0, "WPNK")) {
		t.Fatalf("want 60 for a, got %s", got)
	}
	if got := e.balance(t, b); !got.Equals(coin.NewCoin(40, 0, "WPNK")) {
		t.Fatalf("want 40 for b, got %s", got)
	}
	if got := e.balance(t, e.treasury); !got.IsZero() {
		t.Fatalf("want empty treasury, got %s", got)
	}
	if got := e.balance(t, DistributorAccount()); !got.IsZero() {
		t.Fatalf("distributor account not drained: %s", got)
	}
}

func TestDistributeSweepsRoundingLoss(t *testing.T) {
	e := newTestEnv(t)

	addrs := []weave.Address{
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
	}
	e.setRecipients(t,
		&Recipient{Address: addrs[0], Points: 1},
		&Recipient{Address: addrs[1], Points: 1},
		&Recipient{Address: addrs[2], Points: 1},
	)

	// 10 between three equal weights pays 3 each, 1 goes to treasury.
	e.fund(t, coin.NewCoin(10, 0, "WPNK"))
	report, err := e.ctrl.Distribute(e.db)
	if err != nil {
		t.Fatalf("distribute: %s", err)
	}
	for i, addr := range addrs {
		if got := e.balance(t, addr); !got.Equals(coin.NewCoin(3, 0, "WPNK")) {
			t.Fatalf("want 3 for recipient %d, got %s", i, got)
		}
	}
	if got := e.balance(t, e.treasury); !got.Equals(coin.NewCoin(1, 0, "WPNK")) {
		t.Fatalf("want 1 in treasury, got %s", got)
	}
	if !report.Swept.Equals(coin.NewCoin(1, 0, "WPNK")) {
		t.Fatalf("want 1 swept, got %s", report.Swept)
	}
	if !report.Total.Equals(coin.NewCoin(10, 0, "WPNK")) {
		t.Fatalf("want 10 total, got %s", report.Total)
	}
}

func TestDistributeTruncatesToWholeUnits(t *testing.T) {
	e := newTestEnv(t)

	addrs := []weave.Address{
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
	}
	e.setRecipients(t,
		&Recipient{Address: addrs[0], Points: 1},
		&Recipient{Address: addrs[1], Points: 1},
		&Recipient{Address: addrs[2], Points: 1},
	)

	// Shares carry no fractional part. 10.5 between three equal weights is
	// 3.5 each, truncated to 3, and the 1.5 leftover goes to the treasury.
	e.fund(t, coin.NewCoin(10, 500000000, "WPNK"))
	report, err := e.ctrl.Distribute(e.db)
	if err != nil {
		t.Fatalf("distribute: %s", err)
	}
	for i, addr := range addrs {
		if got := e.balance(t, addr); !got.Equals(coin.NewCoin(3, 0, "WPNK")) {
			t.Fatalf("want 3 for recipient %d, got %s", i, got)
		}
	}
	if got := e.balance(t, e.treasury); !got.Equals(coin.NewCoin(1, 500000000, "WPNK")) {
		t.Fatalf("want 1.5 in treasury, got %s", got)
	}
	if !report.Swept.Equals(coin.NewCoin(1, 500000000, "WPNK")) {
		t.Fatalf("want 1.5 swept, got %s", report.Swept)
	}
}

func TestDistributeSkipsZeroPoints(t *testing.T) {
	e := newTestEnv(t)

	active := weavetest.NewCondition().Address()
	muted := weavetest.NewCondition().Address()
	e.setRecipients(t,
		&Recipient{Address: active, Points: 5},
		&Recipient{Address: muted, Points: 0},
	)

	e.fund(t, coin.NewCoin(50, 0, "WPNK"))
	if _, err := e.ctrl.Distribute(e.db); err != nil {
		t.Fatalf("distribute: %s", err)
	}
	if got := e.balance(t, active); !got.Equals(coin.NewCoin(50, 0, "WPNK")) {
		t.Fatalf("want 50 for active, got %s", got)
	}
	if got := e.balance(t, muted); !got.IsZero() {
		t.Fatalf("want nothing for muted, got %s", got)
	}
}

func TestDistributeEmptyAccountIsNoop(t *testing.T) {
	e := newTestEnv(t)

	e.setRecipients(t, &Recipient{Address: weavetest.NewCondition().Address(), Points: 1})
	res, err := e.deliver(t, e.owner, &DistributeMsg{Metadata: &weave.Metadata{Schema: 1}})
	if err != nil {
		t.Fatalf("distribute: %s", err)
	}
	if len(res.Tags) != 0 {
		t.Fatalf("want no tags, got %d", len(res.Tags))
	}
}

func TestDistributeWithoutRecipientsPaysTreasury(t *testing.T) {
	e := newTestEnv(t)

	e.fund(t, coin.NewCoin(77, 0, "WPNK"))
	if _, err := e.ctrl.Distribute(e.db); err != nil {
		t.Fatalf("distribute: %s", err)
	}
	if got := e.balance(t, e.treasury); !got.Equals(coin.NewCoin(77, 0, "WPNK")) {
		t.Fatalf("want 77 in treasury, got %s", got)
	}
}

func TestRecipientManagement(t *testing.T) {
	e := newTestEnv(t)

	a := weavetest.NewCondition().Address()
	b := weavetest.NewCondition().Address()

	if _, err := e.deliver(t, e.owner, &AddRecipientMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Address:  a,
		Points:   4,
	}); err != nil {
		t.Fatalf("add recipient: %s", err)
	}
	// A second add of the same address must fail.
	if _, err := e.deliver(t, e.owner, &AddRecipientMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Address:  a,
		Points:   2,
	}); !errors.ErrDuplicate.Is(err) {
		t.Fatalf("want duplicate, got %v", err)
	}

	if _, err := e.deliver(t, e.owner, &AddRecipientMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Address:  b,
		Points:   6,
	}); err != nil {
		t.Fatalf("add recipient: %s", err)
	}
	split, err := e.ctrl.GetSplit(e.db)
	if err != nil {
		t.Fatalf("split: %s", err)
	}
	if split.TotalPoints != 10 {
		t.Fatalf("want 10 total points, got %d", split.TotalPoints)
	}

	// Zeroing keeps the entry but removes it from the totals.
	if _, err := e.deliver(t, e.owner, &AdjustPointsMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Address:  a,
		Points:   0,
	}); err != nil {
		t.Fatalf("adjust points: %s", err)
	}
	split, _ = e.ctrl.GetSplit(e.db)
	if split.TotalPoints != 6 {
		t.Fatalf("want 6 total points, got %d", split.TotalPoints)
	}
	if len(split.Recipients) != 2 {
		t.Fatalf("want 2 entries, got %d", len(split.Recipients))
	}

	// A zeroed entry can be added again, in place.
	if _, err := e.deliver(t, e.owner, &AddRecipientMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Address:  a,
		Points:   1,
	}); err != nil {
		t.Fatalf("re-add recipient: %s", err)
	}
	split, _ = e.ctrl.GetSplit(e.db)
	if split.TotalPoints != 7 {
		t.Fatalf("want 7 total points, got %d", split.TotalPoints)
	}
	if len(split.Recipients) != 2 {
		t.Fatalf("want 2 entries, got %d", len(split.Recipients))
	}

	// Unknown destinations cannot be adjusted.
	if _, err := e.deliver(t, e.owner, &AdjustPointsMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Address:  weavetest.NewCondition().Address(),
		Points:   1,
	}); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %v", err)
	}

	// Management is owner gated.
	stranger := weavetest.NewCondition()
	if _, err := e.deliver(t, stranger, &AdjustPointsMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Address:  a,
		Points:   2,
	}); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %v", err)
	}
}

func TestPullFundingAutoDistributes(t *testing.T) {
	e := newTestEnv(t)

	a := weavetest.NewCondition().Address()
	e.setRecipients(t, &Recipient{Address: a, Points: 3})

	if err := e.cash.CoinMint(e.db, e.source.Address(), coin.NewCoin(40, 0, "WPNK")); err != nil {
		t.Fatalf("fund source: %s", err)
	}

	// Funding through the pull protocol distributes within the same call
	// and surfaces the same tags as a direct distribution, here the single
	// payment, the treasury sweep and the total.
	tags, err := e.ctrl.PullRewards(e.db, e.source.Address(), DistributorAccount(), coin.NewCoin(40, 0, "WPNK"))
	if err != nil {
		t.Fatalf("pull rewards: %s", err)
	}
	if want, got := 3, len(tags); want != got {
		t.Fatalf("want %d tags, got %d", want, got)
	}
	if want, got := "feedist:paid:"+a.String(), string(tags[0].Key); want != got {
		t.Fatalf("want %q tag, got %q", want, got)
	}
	if want, got := "40 WPNK", string(tags[2].Value); want != got {
		t.Fatalf("want %q total, got %q", want, got)
	}
	if got := e.balance(t, a); !got.Equals(coin.NewCoin(40, 0, "WPNK")) {
		t.Fatalf("want 40 for recipient, got %s", got)
	}
	if got := e.balance(t, DistributorAccount()); !got.IsZero() {
		t.Fatalf("distributor account not drained: %s", got)
	}

	// Any other source is rejected.
	stranger := weavetest.NewCondition().Address()
	if _, err := e.ctrl.PullRewards(e.db, stranger, DistributorAccount(), coin.NewCoin(1, 0, "WPNK")); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %v", err)
	}
	// As is a wrong currency.
	if _, err := e.ctrl.PullRewards(e.db, e.source.Address(), DistributorAccount(), coin.NewCoin(1, 0, "IOV")); !errors.ErrCurrency.Is(err) {
		t.Fatalf("want currency error, got %v", err)
	}
}

func TestRecipientListIsBounded(t *testing.T) {
	e := newTestEnv(t)

	var recipients []*Recipient
	for i := 0; i < maxRecipients+1; i++ {
		recipients = append(recipients, &Recipient{
			Address: weavetest.NewCondition().Address(),
			Points:  1,
		})
	}
	if _, err := e.deliver(t, e.owner, &SetRecipientsMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		Recipients: recipients,
	}); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %v", err)
	}

	e.setRecipients(t, recipients[:maxRecipients]...)
	for _, r := range recipients[maxRecipients:] {
		if err := e.ctrl.AddRecipient(e.db, r.Address, r.Points); !errors.ErrInput.Is(err) {
			t.Fatalf("want input error, got %v", err)
		}
	}
}

package wrap

import (
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestQuoteMath(t *testing.T) {
	exempt := weavetest.NewCondition().Address()
	plain := weavetest.NewCondition().Address()

	vault := Vault{
		Ticker:       "WPNK",
		ExchangeUnit: coin.NewCoinp(1000, 0, "WPNK"),
		MintFee:      coin.NewCoinp(10, 0, "WPNK"),
		RedeemFee:    coin.NewCoinp(5, 0, "WPNK"),
		FeeExempt:    []weave.Address{exempt},
	}

	cases := map[string]struct {
		caller     weave.Address
		count      int64
		forceFee   bool
		wantPayout coin.Coin
		wantCharge coin.Coin
	}{
		"single token": {
			caller:     plain,
			count:      1,
			wantPayout: coin.NewCoin(990, 0, "WPNK"),
			wantCharge: coin.NewCoin(1005, 0, "WPNK"),
		},
		"three tokens": {
			caller:     plain,
			count:      3,
			wantPayout: coin.NewCoin(2970, 0, "WPNK"),
			wantCharge: coin.NewCoin(3015, 0, "WPNK"),
		},
		"exempt caller": {
			caller:     exempt,
			count:      3,
			wantPayout: coin.NewCoin(3000, 0, "WPNK"),
			wantCharge: coin.NewCoin(3000, 0, "WPNK"),
		},
		"exempt caller forced": {
			caller:     exempt,
			count:      3,
			forceFee:   true,
			wantPayout: coin.NewCoin(2970, 0, "WPNK"),
			wantCharge: coin.NewCoin(3015, 0, "WPNK"),
		},
		"force without exemption changes nothing": {
			caller:     plain,
			count:      1,
			forceFee:   true,
			wantPayout: coin.NewCoin(990, 0, "WPNK"),
			wantCharge: coin.NewCoin(1005, 0, "WPNK"),
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			payout, mintFee, err := vault.QuoteMint(tc.caller, tc.count, tc.forceFee)
			if err != nil {
				t.Fatalf("quote mint: %s", err)
			}
			if !payout.Equals(tc.wantPayout) {
				t.Errorf("want payout %s, got %s", tc.wantPayout, payout)
			}
			charge, redeemFee, err := vault.QuoteRedeem(tc.caller, tc.count, tc.forceFee)
			if err != nil {
				t.Fatalf("quote redeem: %s", err)
			}
			if !charge.Equals(tc.wantCharge) {
				t.Errorf("want charge %s, got %s", tc.wantCharge, charge)
			}

			// Conservation: minted amount splits exactly into
			// payout and fee, charge splits into burned and fee.
			minted, err := vault.ExchangeUnit.Multiply(tc.count)
			if err != nil {
				t.Fatalf("multiply: %s", err)
			}
			sum, err := payout.Add(mintFee)
			if err != nil {
				t.Fatalf("add: %s", err)
			}
			if !sum.Equals(minted) {
				t.Errorf("mint does not conserve: %s + %s != %s", payout, mintFee, minted)
			}
			diff, err := charge.Subtract(redeemFee)
			if err != nil {
				t.Fatalf("subtract: %s", err)
			}
			if !diff.Equals(minted) {
				t.Errorf("redeem does not conserve: %s - %s != %s", charge, redeemFee, minted)
			}
		})
	}
}

func TestQuoteMintRejectsFeeAboveExchangeUnit(t *testing.T) {
	vault := Vault{
		Ticker:       "WPNK",
		ExchangeUnit: coin.NewCoinp(10, 0, "WPNK"),
		MintFee:      coin.NewCoinp(11, 0, "WPNK"),
	}
	caller := weavetest.NewCondition().Address()
	if _, _, err := vault.QuoteMint(caller, 1, false); !errors.ErrAmount.Is(err) {
		t.Fatalf("want amount error, got %v", err)
	}
}

func TestAccrueFee(t *testing.T) {
	vault := Vault{Ticker: "WPNK"}
	if err := vault.accrueFee(coin.NewCoin(0, 0, "WPNK")); err != nil {
		t.Fatalf("zero accrue: %s", err)
	}
	if vault.PendingFee != nil {
		t.Fatal("zero fee must not initialize the pending balance")
	}
	if err := vault.accrueFee(coin.NewCoin(30, 0, "WPNK")); err != nil {
		t.Fatalf("accrue: %s", err)
	}
	if err := vault.accrueFee(coin.NewCoin(5, 0, "WPNK")); err != nil {
		t.Fatalf("accrue: %s", err)
	}
	if !vault.PendingFee.Equals(coin.NewCoin(35, 0, "WPNK")) {
		t.Fatalf("want 35 pending, got %s", vault.PendingFee)
	}
}

func TestVaultAccountIsDeterministic(t *testing.T) {
	a := VaultAccount([]byte{0, 0, 0, 0, 0, 0, 0, 1})
	b := VaultAccount([]byte{0, 0, 0, 0, 0, 0, 0, 1})
	c := VaultAccount([]byte{0, 0, 0, 0, 0, 0, 0, 2})
	if !a.Equals(b) {
		t.Fatal("same ID must derive the same address")
	}
	if a.Equals(c) {
		t.Fatal("different IDs must derive different addresses")
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("derived address: %s", err)
	}
}

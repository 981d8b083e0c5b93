package derivative

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceToTick(t *testing.T) {
	cases := map[string]struct {
		price    string
		wantTick int32
	}{
		"unit price":      {price: "1", wantTick: 0},
		"price two":       {price: "2", wantTick: 6931},
		"price ten":       {price: "10", wantTick: 23027},
		"price hundred":   {price: "100", wantTick: 46054},
		"price one tenth": {price: "0.1", wantTick: -23028},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			price, err := decimal.NewFromString(tc.price)
			require.NoError(t, err)
			tick, err := PriceToTick(price)
			require.NoError(t, err)
			assert.Equal(t, tc.wantTick, tick)
		})
	}
}

func TestPriceToTickRejectsNonPositive(t *testing.T) {
	if _, err := PriceToTick(decimal.Zero); err == nil {
		t.Fatal("zero price must be rejected")
	}
	if _, err := PriceToTick(decimal.NewFromInt(-4)); err == nil {
		t.Fatal("negative price must be rejected")
	}
}

func TestTickToPriceInvertsPriceToTick(t *testing.T) {
	// The tick is the floor of the price logarithm, so converting the
	// tick price back must land on the same tick again.
	for _, tick := range []int32{0, 1, -1, 6931, 23027, -23028, 46054} {
		price := TickToPrice(tick)
		got, err := PriceToTick(price)
		require.NoError(t, err)
		assert.Equal(t, tick, got, "tick %d", tick)
	}
}

func TestAlignTick(t *testing.T) {
	cases := map[string]struct {
		tick    int32
		spacing int32
		want    int32
	}{
		"already aligned":           {tick: 46020, spacing: 60, want: 46020},
		"rounds down":               {tick: 6931, spacing: 60, want: 6900},
		"zero stays":                {tick: 0, spacing: 60, want: 0},
		"negative rounds down":      {tick: -46055, spacing: 60, want: -46080},
		"negative rounds down more": {tick: -23027, spacing: 60, want: -23040},
		"aligned negative stays":    {tick: -60, spacing: 60, want: -60},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := AlignTick(tc.tick, tc.spacing)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	if _, err := AlignTick(100, 0); err == nil {
		t.Fatal("zero spacing must be rejected")
	}
}

func TestSqrtPriceX96FromPrice(t *testing.T) {
	cases := map[string]struct {
		price string
		want  string
	}{
		"unit price":      {price: "1", want: "79228162514264337593543950336"},
		"price hundred":   {price: "100", want: "792281625142643375935439503360"},
		"price one tenth": {price: "0.1", want: "25054144837504793750611689472"},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			price, err := decimal.NewFromString(tc.price)
			require.NoError(t, err)
			x, err := SqrtPriceX96FromPrice(price)
			require.NoError(t, err)
			assert.Equal(t, tc.want, x.String())
		})
	}
}

func TestPriceFromSqrtPriceX96RoundTrip(t *testing.T) {
	for _, raw := range []string{"1", "0.1", "2", "10", "100"} {
		price, err := decimal.NewFromString(raw)
		require.NoError(t, err)
		x, err := SqrtPriceX96FromPrice(price)
		require.NoError(t, err)
		back, err := PriceFromSqrtPriceX96(x)
		require.NoError(t, err)
		diff := back.Sub(price).Abs()
		assert.True(t, diff.LessThan(decimal.NewFromFloat(0.0001)),
			"price %s came back as %s", price, back)
	}
}

func TestParseSqrtPriceX96(t *testing.T) {
	if _, err := parseSqrtPriceX96("not a number"); err == nil {
		t.Fatal("garbage must be rejected")
	}
	if _, err := parseSqrtPriceX96("-5"); err == nil {
		t.Fatal("negative values must be rejected")
	}
	x, err := parseSqrtPriceX96("79228162514264337593543950336")
	require.NoError(t, err)
	assert.Equal(t, 0, x.Cmp(new(big.Int).Lsh(big.NewInt(1), 96)))
}

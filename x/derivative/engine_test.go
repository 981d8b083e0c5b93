package derivative

import (
	"math/big"
	"testing"

	"github.com/iov-one/weave/coin"
	"github.com/stretchr/testify/assert"
)

func TestAmountsForLiquidity(t *testing.T) {
	liquidity := big.NewInt(1000)

	// Price inside the range takes both tokens.
	a0, a1 := amountsForLiquidity(liquidity, sqrtAtTick(23027), 0, 46020)
	assert.True(t, a0 > 0, "amount0 %f", a0)
	assert.True(t, a1 > 0, "amount1 %f", a1)

	// Price below the range is backed by token0 only.
	a0, a1 = amountsForLiquidity(liquidity, sqrtAtTick(-100), 0, 46020)
	assert.True(t, a0 > 0, "amount0 %f", a0)
	assert.Equal(t, 0.0, a1)

	// Price above the range is backed by token1 only.
	a0, a1 = amountsForLiquidity(liquidity, sqrtAtTick(50000), 0, 46020)
	assert.Equal(t, 0.0, a0)
	assert.True(t, a1 > 0, "amount1 %f", a1)
}

func TestPositionSizeScalesToMaximums(t *testing.T) {
	req := LiquidityRequest{
		TickLower: 0,
		TickUpper: 46020,
		Liquidity: big.NewInt(1000),
		Max0:      coin.NewCoin(1000000, 0, "WPNK"),
		Max1:      coin.NewCoin(1000000, 0, "DPNK"),
	}
	// Generous maximums fund the full request.
	got := positionSize(req, sqrtAtTick(23027))
	assert.Equal(t, 0, got.Cmp(req.Liquidity))

	// A tight token0 maximum scales the position down.
	req.Max0 = coin.NewCoin(10, 0, "WPNK")
	got = positionSize(req, sqrtAtTick(23027))
	if got.Cmp(req.Liquidity) >= 0 || got.Sign() <= 0 {
		t.Fatalf("position %s must be scaled below the request", got)
	}
}

func TestCoinFromFloatTruncates(t *testing.T) {
	c := coinFromFloat("WPNK", 2.5)
	assert.Equal(t, int64(2), c.Whole)
	assert.Equal(t, int64(coin.FracUnit/2), c.Fractional)

	c = coinFromFloat("WPNK", 0)
	assert.True(t, c.IsZero())
}

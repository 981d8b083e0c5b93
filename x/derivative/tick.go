package derivative

import (
	"math"
	"math/big"

	"github.com/iov-one/weave/errors"
	"github.com/shopspring/decimal"
)

// tickBase is the price ratio between two adjacent ticks, so that
// price = tickBase^tick.
const tickBase = 1.0001

// Tick bounds of the representable price range.
const (
	MinTick int32 = -887272
	MaxTick int32 = 887272
)

// q96 is the Q64.96 fixed point scale.
var q96 = new(big.Float).SetMantExp(big.NewFloat(1), 96)

// PriceToTick returns the greatest tick whose price does not exceed the
// given price.
func PriceToTick(price decimal.Decimal) (int32, error) {
	f, _ := price.Float64()
	if f <= 0 {
		return 0, errors.Wrap(errors.ErrAmount, "price must be positive")
	}
	tick := int32(math.Floor(math.Log(f) / math.Log(tickBase)))
	if tick < MinTick || tick > MaxTick {
		return 0, errors.Wrapf(errors.ErrInput, "price out of tick range: %s", price)
	}
	return tick, nil
}

// TickToPrice returns the price at the given tick.
func TickToPrice(tick int32) decimal.Decimal {
	return decimal.NewFromFloat(math.Pow(tickBase, float64(tick)))
}

// AlignTick rounds the tick down to a multiple of the spacing. Rounding is
// towards negative infinity, same for both signs.
func AlignTick(tick, spacing int32) (int32, error) {
	if spacing <= 0 {
		return 0, errors.Wrap(errors.ErrInput, "spacing must be positive")
	}
	aligned := tick / spacing * spacing
	if tick < 0 && tick%spacing != 0 {
		aligned -= spacing
	}
	return aligned, nil
}

// SqrtPriceX96FromPrice encodes the square root of a price in Q64.96 fixed
// point.
func SqrtPriceX96FromPrice(price decimal.Decimal) (*big.Int, error) {
	f, _ := price.Float64()
	if f <= 0 {
		return nil, errors.Wrap(errors.ErrAmount, "price must be positive")
	}
	x := new(big.Float).Mul(big.NewFloat(math.Sqrt(f)), q96)
	i, _ := x.Int(nil)
	return i, nil
}

// PriceFromSqrtPriceX96 decodes a Q64.96 square root price back into a
// price.
func PriceFromSqrtPriceX96(x *big.Int) (decimal.Decimal, error) {
	s := sqrtFromX96(x)
	if s <= 0 {
		return decimal.Decimal{}, errors.Wrap(errors.ErrAmount, "sqrt price must be positive")
	}
	return decimal.NewFromFloat(s * s), nil
}

func sqrtFromX96(x *big.Int) float64 {
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(x), q96).Float64()
	return f
}

func sqrtAtTick(tick int32) float64 {
	return math.Pow(tickBase, float64(tick)/2)
}

// parseSqrtPriceX96 parses the wire representation of a sqrt price.
func parseSqrtPriceX96(s string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInput, "not a decimal number: %q", s)
	}
	if x.Sign() <= 0 {
		return nil, errors.Wrap(errors.ErrAmount, "sqrt price must be positive")
	}
	return x, nil
}

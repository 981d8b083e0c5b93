package derivative

import (
	"math"
	"math/big"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// CoinMover allows to transfer coins between accounts. Required
// functionality is implemented by the x/cash extension.
type CoinMover interface {
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// LiquidityRequest describes a single position to open. Funds are pulled
// from the payer accounts only up to the given maximums. The engine never
// touches more than it consumes, so an overestimated maximum is refunded
// by not being pulled in the first place.
type LiquidityRequest struct {
	TickLower  int32
	TickUpper  int32
	Liquidity  *big.Int
	Payer0     weave.Address
	Max0       coin.Coin
	Payer1     weave.Address
	Max1       coin.Coin
}

// LiquidityResult reports the achieved position. Liquidity may be lower
// than requested when the maximums cannot fund the full request.
type LiquidityResult struct {
	Liquidity *big.Int
	Used0     coin.Coin
	Used1     coin.Coin
}

// PoolEngine creates pools and opens liquidity positions in them. The
// bootstrap implementation below covers pool initialization only, swap
// support is provided by an external collaborator.
type PoolEngine interface {
	CreatePool(db weave.KVStore, token0, token1 string, sqrtPriceX96 *big.Int) ([]byte, error)
	AddLiquidity(db weave.KVStore, poolID []byte, req LiquidityRequest) (*LiquidityResult, error)
	GetPool(db weave.ReadOnlyKVStore, poolID []byte) (*Pool, error)
}

type bootstrapEngine struct {
	pools orm.ModelBucket
	cash  CoinMover
}

// NewBootstrapEngine returns a pool engine that can open a pool with a
// single liquidity position.
func NewBootstrapEngine(cash CoinMover) PoolEngine {
	return &bootstrapEngine{
		pools: NewPoolBucket(),
		cash:  cash,
	}
}

func (e *bootstrapEngine) CreatePool(db weave.KVStore, token0, token1 string, sqrtPriceX96 *big.Int) ([]byte, error) {
	if !coin.IsCC(token0) || !coin.IsCC(token1) {
		return nil, errors.Wrapf(errors.ErrCurrency, "invalid pair %q/%q", token0, token1)
	}
	if token0 == token1 {
		return nil, errors.Wrap(errors.ErrCurrency, "pool needs two distinct tokens")
	}
	if sqrtPriceX96 == nil || sqrtPriceX96.Sign() <= 0 {
		return nil, errors.Wrap(errors.ErrAmount, "sqrt price must be positive")
	}
	key, err := poolSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "pool sequence")
	}
	pool := Pool{
		Metadata:     &weave.Metadata{Schema: 1},
		Token0:       token0,
		Token1:       token1,
		SqrtPriceX96: sqrtPriceX96.String(),
		Liquidity:    "0",
		Address:      PoolAccount(key),
	}
	if _, err := e.pools.Put(db, key, &pool); err != nil {
		return nil, errors.Wrap(err, "cannot store pool")
	}
	return key, nil
}

func (e *bootstrapEngine) GetPool(db weave.ReadOnlyKVStore, poolID []byte) (*Pool, error) {
	var pool Pool
	if err := e.pools.One(db, poolID, &pool); err != nil {
		return nil, errors.Wrapf(err, "pool %x", poolID)
	}
	return &pool, nil
}

func (e *bootstrapEngine) AddLiquidity(db weave.KVStore, poolID []byte, req LiquidityRequest) (*LiquidityResult, error) {
	pool, err := e.GetPool(db, poolID)
	if err != nil {
		return nil, err
	}
	if pool.Liquidity != "0" {
		return nil, errors.Wrap(errors.ErrState, "pool is already bootstrapped")
	}
	if req.TickLower >= req.TickUpper {
		return nil, errors.Wrap(errors.ErrInput, "tick range is empty")
	}
	if req.TickLower < MinTick || req.TickUpper > MaxTick {
		return nil, errors.Wrap(errors.ErrInput, "tick range out of bounds")
	}
	if req.Liquidity == nil || req.Liquidity.Sign() <= 0 {
		return nil, errors.Wrap(errors.ErrAmount, "liquidity must be positive")
	}
	if req.Max0.Ticker != pool.Token0 || req.Max1.Ticker != pool.Token1 {
		return nil, errors.Wrap(errors.ErrCurrency, "maximums must match the pool pair")
	}
	sqrtPrice, err := parseSqrtPriceX96(pool.SqrtPriceX96)
	if err != nil {
		return nil, errors.Wrap(err, "pool price")
	}

	liquidity := positionSize(req, sqrtFromX96(sqrtPrice))
	if liquidity.Sign() <= 0 {
		return nil, errors.Wrap(errors.ErrAmount, "maximums cannot fund any liquidity")
	}
	need0, need1 := amountsForLiquidity(liquidity, sqrtFromX96(sqrtPrice), req.TickLower, req.TickUpper)
	used0 := coinFromFloat(pool.Token0, need0)
	used1 := coinFromFloat(pool.Token1, need1)

	if used0.IsPositive() {
		if err := e.cash.MoveCoins(db, req.Payer0, pool.Address, used0); err != nil {
			return nil, errors.Wrap(err, "cannot fund token0 side")
		}
	}
	if used1.IsPositive() {
		if err := e.cash.MoveCoins(db, req.Payer1, pool.Address, used1); err != nil {
			return nil, errors.Wrap(err, "cannot fund token1 side")
		}
	}

	pool.TickLower = req.TickLower
	pool.TickUpper = req.TickUpper
	pool.Liquidity = liquidity.String()
	if _, err := e.pools.Put(db, poolID, pool); err != nil {
		return nil, errors.Wrap(err, "cannot update pool")
	}
	return &LiquidityResult{
		Liquidity: liquidity,
		Used0:     used0,
		Used1:     used1,
	}, nil
}

// positionSize returns the largest liquidity not above the requested one
// that the maximum amounts can fund at the current price.
func positionSize(req LiquidityRequest, sqrtPrice float64) *big.Int {
	want, _ := new(big.Float).SetInt(req.Liquidity).Float64()
	need0, need1 := amountsForLiquidity(req.Liquidity, sqrtPrice, req.TickLower, req.TickUpper)

	ratio := 1.0
	if need0 > 0 {
		if r := coinToFloat(req.Max0) / need0; r < ratio {
			ratio = r
		}
	}
	if need1 > 0 {
		if r := coinToFloat(req.Max1) / need1; r < ratio {
			ratio = r
		}
	}
	if ratio >= 1 {
		return new(big.Int).Set(req.Liquidity)
	}
	scaled, _ := big.NewFloat(want * ratio).Int(nil)
	return scaled
}

// amountsForLiquidity returns the token amounts backing a liquidity
// position over [tickLower, tickUpper] at the given sqrt price, following
// the concentrated liquidity formulas. Outside the range only one token
// backs the position.
func amountsForLiquidity(liquidity *big.Int, sqrtPrice float64, tickLower, tickUpper int32) (amount0, amount1 float64) {
	l, _ := new(big.Float).SetInt(liquidity).Float64()
	sa := sqrtAtTick(tickLower)
	sb := sqrtAtTick(tickUpper)
	switch {
	case sqrtPrice <= sa:
		amount0 = l * (sb - sa) / (sa * sb)
	case sqrtPrice >= sb:
		amount1 = l * (sb - sa)
	default:
		amount0 = l * (sb - sqrtPrice) / (sqrtPrice * sb)
		amount1 = l * (sqrtPrice - sa)
	}
	return amount0, amount1
}

// parseLiquidity parses the wire representation of a liquidity value.
func parseLiquidity(s string) (*big.Int, bool) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok || x.Sign() <= 0 {
		return nil, false
	}
	return x, true
}

func coinToFloat(c coin.Coin) float64 {
	return float64(c.Whole) + float64(c.Fractional)/float64(coin.FracUnit)
}

// coinFromFloat truncates, never rounding funds up above what the float
// amount covers.
func coinFromFloat(ticker string, f float64) coin.Coin {
	whole := math.Floor(f)
	frac := math.Floor((f - whole) * float64(coin.FracUnit))
	return coin.Coin{
		Whole:      int64(whole),
		Fractional: int64(frac),
		Ticker:     ticker,
	}
}

package derivative

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Pool{}, migration.NoModification)
	migration.MustRegister(1, &RootPool{}, migration.NoModification)
	migration.MustRegister(1, &ChildPool{}, migration.NoModification)
}

var _ orm.Model = (*Pool)(nil)

func (p *Pool) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", p.Metadata.Validate())
	if !coin.IsCC(p.Token0) {
		errs = errors.AppendField(errs, "Token0", errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", p.Token0))
	}
	if !coin.IsCC(p.Token1) {
		errs = errors.AppendField(errs, "Token1", errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", p.Token1))
	}
	if _, err := parseSqrtPriceX96(p.SqrtPriceX96); err != nil {
		errs = errors.AppendField(errs, "SqrtPriceX96", err)
	}
	errs = errors.AppendField(errs, "Address", p.Address.Validate())
	return errs
}

func (p *Pool) Copy() orm.CloneableData {
	return &Pool{
		Metadata:     p.Metadata.Copy(),
		Token0:       p.Token0,
		Token1:       p.Token1,
		SqrtPriceX96: p.SqrtPriceX96,
		TickLower:    p.TickLower,
		TickUpper:    p.TickUpper,
		Liquidity:    p.Liquidity,
		Address:      p.Address.Clone(),
	}
}

var _ orm.Model = (*RootPool)(nil)

func (p *RootPool) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", p.Metadata.Validate())
	if len(p.VaultId) == 0 {
		errs = errors.AppendField(errs, "VaultId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "VaultAddress", p.VaultAddress.Validate())
	if len(p.PoolId) == 0 {
		errs = errors.AppendField(errs, "PoolId", errors.ErrEmpty)
	}
	if _, err := parseSqrtPriceX96(p.SqrtPriceX96); err != nil {
		errs = errors.AppendField(errs, "SqrtPriceX96", err)
	}
	return errs
}

func (p *RootPool) Copy() orm.CloneableData {
	return &RootPool{
		Metadata:     p.Metadata.Copy(),
		VaultId:      p.VaultId,
		VaultAddress: p.VaultAddress.Clone(),
		PoolId:       p.PoolId,
		SqrtPriceX96: p.SqrtPriceX96,
	}
}

var _ orm.Model = (*ChildPool)(nil)

func (p *ChildPool) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", p.Metadata.Validate())
	if len(p.VaultId) == 0 {
		errs = errors.AppendField(errs, "VaultId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "VaultAddress", p.VaultAddress.Validate())
	errs = errors.AppendField(errs, "ParentAddress", p.ParentAddress.Validate())
	if len(p.PoolId) == 0 {
		errs = errors.AppendField(errs, "PoolId", errors.ErrEmpty)
	}
	return errs
}

func (p *ChildPool) Copy() orm.CloneableData {
	return &ChildPool{
		Metadata:      p.Metadata.Copy(),
		VaultId:       p.VaultId,
		VaultAddress:  p.VaultAddress.Clone(),
		ParentAddress: p.ParentAddress.Clone(),
		PoolId:        p.PoolId,
		Liquidity:     p.Liquidity,
	}
}

var poolSeq = orm.NewSequence("pool", "id")

func NewPoolBucket() orm.ModelBucket {
	b := orm.NewModelBucket("pool", &Pool{}, orm.WithIDSequence(poolSeq))
	return migration.NewModelBucket("derivative", b)
}

// NewRootPoolBucket returns a bucket of root pool registrations, keyed by
// the vault account address.
func NewRootPoolBucket() orm.ModelBucket {
	b := orm.NewModelBucket("rootpool", &RootPool{})
	return migration.NewModelBucket("derivative", b)
}

// NewChildPoolBucket returns a bucket of child pool registrations, keyed
// by the derivative vault account address.
func NewChildPoolBucket() orm.ModelBucket {
	b := orm.NewModelBucket("childpool", &ChildPool{})
	return migration.NewModelBucket("derivative", b)
}

// PoolAccount returns the deterministic account address holding the funds
// of a pool.
func PoolAccount(poolID []byte) weave.Address {
	return weave.NewCondition("derivative", "pool", poolID).Address()
}

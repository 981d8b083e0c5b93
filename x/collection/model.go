package collection

import (
	"bytes"

	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Collection{}, migration.NoModification)
	migration.MustRegister(1, &Token{}, migration.NoModification)
}

var _ orm.Model = (*Collection)(nil)

func (c *Collection) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	if c.Name == "" {
		errs = errors.AppendField(errs, "Name", errors.ErrEmpty)
	}
	if c.Symbol == "" {
		errs = errors.AppendField(errs, "Symbol", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Issuer", c.Issuer.Validate())
	if c.MaxSupply < 0 {
		errs = errors.AppendField(errs, "MaxSupply", errors.Wrap(errors.ErrInput, "must not be negative"))
	}
	if c.Issued < 0 || (c.MaxSupply > 0 && c.Issued > c.MaxSupply) {
		errs = errors.AppendField(errs, "Issued", errors.Wrap(errors.ErrState, "outside of supply bounds"))
	}
	return errs
}

func (c *Collection) Copy() orm.CloneableData {
	return &Collection{
		Metadata:  c.Metadata.Copy(),
		Name:      c.Name,
		Symbol:    c.Symbol,
		BaseUri:   c.BaseUri,
		Issuer:    c.Issuer.Clone(),
		MaxSupply: c.MaxSupply,
		Issued:    c.Issued,
	}
}

var _ orm.Model = (*Token)(nil)

func (t *Token) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", t.Metadata.Validate())
	if len(t.Collection) == 0 {
		errs = errors.AppendField(errs, "Collection", errors.ErrEmpty)
	}
	if len(t.TokenId) == 0 {
		errs = errors.AppendField(errs, "TokenId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Owner", t.Owner.Validate())
	return errs
}

func (t *Token) Copy() orm.CloneableData {
	return &Token{
		Metadata:   t.Metadata.Copy(),
		Collection: t.Collection,
		TokenId:    t.TokenId,
		Owner:      t.Owner.Clone(),
	}
}

func NewCollectionBucket() orm.ModelBucket {
	b := orm.NewModelBucket("collection", &Collection{},
		orm.WithIDSequence(collectionSeq),
	)
	return migration.NewModelBucket("collection", b)
}

var collectionSeq = orm.NewSequence("collection", "id")

func NewTokenBucket() orm.ModelBucket {
	b := orm.NewModelBucket("token", &Token{},
		orm.WithIndex("owner", idxTokenOwner, false),
	)
	return migration.NewModelBucket("collection", b)
}

func idxTokenOwner(obj orm.Object) ([]byte, error) {
	t, ok := obj.Value().(*Token)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "can only take index of Token")
	}
	return t.Owner, nil
}

// tokenKey is the primary key of a token within a collection.
func tokenKey(collection, tokenID []byte) []byte {
	return bytes.Join([][]byte{collection, tokenID}, []byte(":"))
}

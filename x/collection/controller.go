package collection

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Controller grants access to the token registry without the need to
// directly operate on the buckets. Other extensions consume this through
// their own interface declaration.
type Controller struct {
	collections orm.ModelBucket
	tokens      orm.ModelBucket
}

func NewController() *Controller {
	return &Controller{
		collections: NewCollectionBucket(),
		tokens:      NewTokenBucket(),
	}
}

// CreateCollection registers a new collection and returns its ID.
func (c *Controller) CreateCollection(db weave.KVStore, name, symbol, baseURI string, issuer weave.Address, maxSupply int64) ([]byte, error) {
	col := &Collection{
		Metadata:  &weave.Metadata{Schema: 1},
		Name:      name,
		Symbol:    symbol,
		BaseUri:   baseURI,
		Issuer:    issuer,
		MaxSupply: maxSupply,
	}
	key, err := c.collections.Put(db, nil, col)
	if err != nil {
		return nil, errors.Wrap(err, "save collection")
	}
	return key, nil
}

// IssueToken mints a new token ID into the collection. Only the collection
// issuer may call this and the supply cap is enforced.
func (c *Controller) IssueToken(db weave.KVStore, collection, tokenID []byte, issuer, owner weave.Address) error {
	var col Collection
	if err := c.collections.One(db, collection, &col); err != nil {
		return errors.Wrap(err, "collection")
	}
	if !col.Issuer.Equals(issuer) {
		return errors.Wrap(errors.ErrUnauthorized, "not the collection issuer")
	}
	if col.MaxSupply > 0 && col.Issued >= col.MaxSupply {
		return errors.Wrap(errors.ErrState, "supply exhausted")
	}
	key := tokenKey(collection, tokenID)
	switch err := c.tokens.Has(db, key); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "token %x", tokenID)
	case errors.ErrNotFound.Is(err):
		// All good, the ID is free.
	default:
		return errors.Wrap(err, "token lookup")
	}
	token := &Token{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: collection,
		TokenId:    tokenID,
		Owner:      owner,
	}
	if _, err := c.tokens.Put(db, key, token); err != nil {
		return errors.Wrap(err, "save token")
	}
	col.Issued++
	if _, err := c.collections.Put(db, collection, &col); err != nil {
		return errors.Wrap(err, "update collection")
	}
	return nil
}

// MoveToken transfers ownership of a single token. It fails if src is not
// the current owner.
func (c *Controller) MoveToken(db weave.KVStore, collection, tokenID []byte, src, dst weave.Address) error {
	key := tokenKey(collection, tokenID)
	var token Token
	if err := c.tokens.One(db, key, &token); err != nil {
		return errors.Wrapf(err, "token %x", tokenID)
	}
	if !token.Owner.Equals(src) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s does not own token %x", src, tokenID)
	}
	token.Owner = dst
	if _, err := c.tokens.Put(db, key, &token); err != nil {
		return errors.Wrap(err, "save token")
	}
	return nil
}

// TokenOwner returns the current owner of a token.
func (c *Controller) TokenOwner(db weave.ReadOnlyKVStore, collection, tokenID []byte) (weave.Address, error) {
	var token Token
	if err := c.tokens.One(db, tokenKey(collection, tokenID), &token); err != nil {
		return nil, errors.Wrapf(err, "token %x", tokenID)
	}
	return token.Owner, nil
}

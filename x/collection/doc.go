/*
Package collection implements a minimal registry of discrete assets:
named collections of unique token IDs, each with a single owner. Token
issuance is gated by the collection issuer and capped by the collection
max supply. The wrap extension consumes this registry to take custody of
tokens against fungible unit mints.
*/
package collection

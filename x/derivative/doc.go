/*
Package derivative implements the vault factory and pool coordinator.

The factory deploys vaults in two flavors. A root vault wraps an existing
collection and gets a pool trading its fungible unit against the
configured quote currency. A derivative vault is deployed together with a
fresh collection at a caller mined, salt determined address and gets a
pool trading its unit against the parent vault's unit. The coordinator
records every pool as either a root or a child and refuses a child whose
parent root was never registered.

Pool bootstrapping is limited to opening a pool with a single liquidity
position. Trading against the pools is left to an external collaborator.
*/
package derivative

/*
Package wrap implements the vault accounting engine of the protocol.

A vault takes custody of tokens from one collection and mints a fixed
amount of a fungible unit for each deposited token, minus a configurable
fee. Redeeming burns the same fixed amount and releases one token back.
Fees accrue on the vault until they are handed over to the configured
fee receiver through the pull callback defined in x/pull.

Exchange rate and fee policy are per vault. Accounts on the exemption
list wrap and unwrap free of charge; batch operations can force the
nominal fee back on for an exempt caller.
*/
package wrap

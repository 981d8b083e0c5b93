/*
Package pull defines the approve-and-pull funding hand-off used to move
accrued fees between protocol entities.

Instead of pushing a transfer, the paying side resolves the destination
address to the module that owns it and asks that module to collect the
amount itself. Both the fee distributor and wrap vaults can be pulled
from, so fee flows can be chained (vault -> distributor -> derivative
vault) within a single delivery.
*/
package pull

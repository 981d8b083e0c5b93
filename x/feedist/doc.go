/*
Package feedist implements a weighted fee distributor.

A single distributor account per chain collects fungible units, either
by plain transfer or through the pull protocol from the configured
source, and splits its full balance between a bounded list of weighted
recipients. Each recipient is paid the floor of its proportional share
and the remainder is swept to the treasury, so no value is ever left on
the distributor account. Funding through the pull protocol triggers a
distribution in the same call.

Recipients with zero points stay in the list but are excluded from
payouts. This is the sanctioned way of removing a destination without
renumbering the entries.
*/
package feedist

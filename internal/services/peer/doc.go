// Package peer files other parties' public keyrings under local names and
// checks signatures against them.
//
// Importing a keyring does not make it trusted; the directory only maps a
// name to the keys that were handed over.
package peer

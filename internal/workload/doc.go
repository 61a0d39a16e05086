// Package workload drives a logarray.Array with a randomized, weighted mix of
// operations and checks every result against a plain-slice reference model.
//
// A run is reproducible from its seed. Periodic and final checks verify the
// tree's structural invariants and compare order-sensitive fingerprints of
// the array and the model.
package workload

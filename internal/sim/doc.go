// Package sim owns the mutable simulation state and the tick scheduler.
//
// A [Driver] holds the current allele frequency, the generation counter,
// a bounded trajectory history, and the run flag. While running it
// re-invokes the force model at a cadence derived from the replication
// speed, committing each generation atomically.
//
//	d := sim.NewDriver(genetics.DefaultParams(), nil)
//	d.Start()
//	...
//	snap := d.State()
//
// # Thread safety
//
// All Driver methods are safe for concurrent use. State returns a deep
// snapshot; a reader never observes a half-committed tick. Each Driver
// owns one timer; independent Drivers never interact.
package sim

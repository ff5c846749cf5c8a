// Package genetics implements the single-locus force model: the pure
// computations that turn five evolutionary force magnitudes into a
// per-generation allele-frequency increment and an RGBA color encoding.
//
// The package holds no state. [FrequencyDelta] is a function of the
// current frequency, a [ForceParams] snapshot, and an injected
// randomness [Source]; [ColorEncoding] is fully deterministic.
//
//	src := genetics.NewSource(42)
//	dp := genetics.FrequencyDelta(0.5, params, src)
//
// Randomness is a dependency rather than a hidden call so tests can
// supply fixed draw sequences.
package genetics

// Package spectrum loads, filters and sorts spectrum records.
//
// A [Record] maps field names to [Measurement] triples of equal-length
// sequences (value, standard deviation, confidence interval). The two fields
// every record must carry are "frequency" and "integral_contribution".
//
// [Sorted] keeps the entries whose frequency and contribution values reach
// the given minimums and orders them by ascending frequency. [LoadSorted]
// combines it with [Load], which reads any of the supported on-disk formats.
package spectrum

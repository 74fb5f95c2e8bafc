// Package random provides reproducible seeding for numerical experiments.
//
// Two independent generators are kept side by side: a general-purpose one
// for scalar draws, permutations and shuffles, and a numeric one that
// produces whole vectors of samples. [SetSeed] reseeds both with the same
// value so a run can be repeated exactly.
package random

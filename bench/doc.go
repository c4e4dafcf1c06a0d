// Package bench compares execution strategies by wall time.
//
// Compare runs a sequential baseline and each parallel mode at worker counts
// 2, 4, 8, ... up to a maximum, repeating every configuration several times.
// It summarizes each series (mean, sample standard deviation, min, max) and
// derives speedup against the baseline and parallel efficiency
// (speedup / workers). Reports are saved and loaded as JSON and printed as
// a table.
package bench

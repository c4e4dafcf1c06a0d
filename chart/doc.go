// Package chart renders benchmark, CPU and sampling results as PNG charts.
//
// Benchmark charts are drawn with gonum/plot. The estimate histogram and the
// sample scatter use go-hep's hplot and hbook, which add grids and histogram
// binning on top of gonum/plot.
//
// Every function writes a single file and returns an error if the input holds
// nothing to draw (ErrNoData) or the file cannot be written.
package chart

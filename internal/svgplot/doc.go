// Package svgplot renders a Vietoris–Rips filtration snapshot to SVG: the
// point cloud as circles, the 1-simplices present up to a chosen
// filtration index as lines, with a caller-supplied set of edges
// (typically the representative of a surviving essential 1-cycle)
// highlighted in a different color.
//
// svgplot is a pure consumer of complex.Filtered and reduce.Reducer
// output — it never participates in reduction itself, matching spec.md
// §1's description of SVG emission as a producer/consumer feeding the
// core rather than part of it.
package svgplot

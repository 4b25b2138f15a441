// Command ripser2 computes persistent homology over 𝔽₂ for a simplex
// list read from a text file, and can render a Vietoris–Rips filtration
// of a point cloud to SVG.
package main

func main() {
	Execute()
}

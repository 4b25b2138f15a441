package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/homology2/complex"
	"github.com/katalvlaran/homology2/f2vec"
	"github.com/katalvlaran/homology2/reduce"
	"github.com/katalvlaran/homology2/simpio"
)

var homologyCmd = &cobra.Command{
	Use:   "homology INPUT",
	Short: "Print essential cycles grouped by dimension.",
	Args:  cobra.ExactArgs(1),
	Run:   runHomology,
}

func runHomology(cmd *cobra.Command, args []string) {
	c := mustReadComplex(args[0])

	r, err := reduce.FromComplexWithChain(c)
	if err != nil {
		log.Fatalf("reduce: %v", err)
	}

	byDim := make(map[int][]string)
	for p := range reduce.Pair[f2vec.Chain](r, r.Cycles()) {
		if !p.IsEssential() {
			continue
		}

		s, ok := c.Get(p.Birth)
		if !ok {
			log.Fatalf("homology: birth index %d not found in complex", p.Birth)
		}

		entry, _ := r.Get(p.Birth)
		byDim[s.Dimension()] = append(byDim[s.Dimension()], formatCycle(c, entry))
	}

	dims := make([]int, 0, len(byDim))
	for d := range byDim {
		dims = append(dims, d)
	}
	sort.Ints(dims)

	for _, d := range dims {
		for _, line := range byDim[d] {
			fmt.Println(line)
		}
	}
}

// formatCycle renders a representative cycle's origin combination as
// "[s1,s2,…,]", each sᵢ in the "|v0 v1 … vd|" display form, ascending by
// basis index.
func formatCycle(c *complex.Filtered, chain f2vec.Chain) string {
	indices := append([]uint64(nil), chain.Origin.Indices()...)
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	var b strings.Builder
	b.WriteByte('[')
	for _, idx := range indices {
		s, ok := c.Get(idx)
		if !ok {
			continue
		}
		b.WriteString(s.String())
		b.WriteByte(',')
	}
	b.WriteByte(']')

	return b.String()
}

func mustReadComplex(path string) *complex.Filtered {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	c, err := simpio.ReadComplex(f)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	return c
}

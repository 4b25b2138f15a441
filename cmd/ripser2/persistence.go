package main

import (
	"fmt"

	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/homology2/f2vec"
	"github.com/katalvlaran/homology2/reduce"
)

var persistenceCmd = &cobra.Command{
	Use:   "persistence INPUT",
	Short: "Print one persistence pair per class.",
	Args:  cobra.ExactArgs(1),
	Run:   runPersistence,
}

func runPersistence(cmd *cobra.Command, args []string) {
	c := mustReadComplex(args[0])

	r, err := reduce.FromComplex(c)
	if err != nil {
		log.Fatalf("reduce: %v", err)
	}

	for p := range reduce.Pair[f2vec.Column](r, r.Cycles()) {
		s, ok := c.Get(p.Birth)
		if !ok {
			log.Fatalf("persistence: birth index %d not found in complex", p.Birth)
		}

		if p.IsEssential() {
			fmt.Printf("%d inf %d\n", p.Birth, s.Dimension())
		} else {
			fmt.Printf("%d %d %d\n", p.Birth, *p.Death, s.Dimension())
		}
	}
}

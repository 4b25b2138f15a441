package main

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/homology2/f2vec"
	"github.com/katalvlaran/homology2/internal/svgplot"
	"github.com/katalvlaran/homology2/reduce"
	"github.com/katalvlaran/homology2/vietorisrips"
)

var (
	vrOutput    string
	vrThreshold uint64
)

var vietorisRipsCmd = &cobra.Command{
	Use:   "vietoris-rips POINTS MAXDIM",
	Short: "Build a Vietoris-Rips filtration from a 2D point cloud and render its 1-skeleton to SVG.",
	Args:  cobra.ExactArgs(2),
	Run:   runVietorisRips,
}

func init() {
	vietorisRipsCmd.Flags().StringVar(&vrOutput, "out", "vietoris-rips.svg", "output SVG path")
	vietorisRipsCmd.Flags().Uint64Var(&vrThreshold, "threshold", 0, "render only simplices below this logical index (0 renders everything)")
}

func runVietorisRips(cmd *cobra.Command, args []string) {
	points := mustReadPoints(args[0])

	maxDim, err := strconv.Atoi(args[1])
	if err != nil || maxDim < 0 {
		log.Fatalf("invalid MAXDIM %q", args[1])
	}

	dist := vietorisrips.FromPoints(points)
	entries := vietorisrips.Enumerate(len(points), maxDim, dist)
	c := vietorisrips.Build(entries)

	r, err := reduce.FromComplexWithChain(c)
	if err != nil {
		log.Fatalf("reduce: %v", err)
	}

	highlight := make(map[uint64]bool)
	for p := range reduce.Pair[f2vec.Chain](r, r.Cycles()) {
		if !p.IsEssential() {
			continue
		}
		s, ok := c.Get(p.Birth)
		if !ok || s.Dimension() != 1 {
			continue
		}

		entry, _ := r.Get(p.Birth)
		for _, idx := range entry.Origin.Indices() {
			highlight[idx] = true
		}
	}

	threshold := vrThreshold
	if threshold == 0 {
		threshold = c.End()
	}

	plotPoints := make([]svgplot.Point, len(points))
	for i, p := range points {
		plotPoints[i] = svgplot.Point{X: p[0], Y: p[1]}
	}

	out, err := os.Create(vrOutput)
	if err != nil {
		log.Fatalf("create %s: %v", vrOutput, err)
	}
	defer out.Close()

	svgplot.RenderSkeleton(out, plotPoints, c, threshold, highlight, 640, 640)
	log.Infof("wrote %s", vrOutput)
}

func mustReadPoints(path string) [][]float64 {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	points := make([][]float64, len(records))
	for i, rec := range records {
		coords := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				log.Fatalf("%s line %d: %v", path, i+1, err)
			}
			coords[j] = v
		}
		points[i] = coords
	}

	return points
}

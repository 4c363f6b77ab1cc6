package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/zzwx/voronoi"
	"gopkg.in/alecthomas/kingpin.v2"

	vs "github.com/pointpattern/voronoisample"
	"github.com/pointpattern/voronoisample/dbg"
	"github.com/pointpattern/voronoisample/pointprocess"
	"github.com/pointpattern/voronoisample/tessellate"
)

// Monte-Carlo validation of uniform placement on bounded Voronoi cells. A
// Poisson point pattern is simulated on a square window, its Voronoi
// tessellation computed, and placement repeated --sims times; the empirical
// mean of the placed points in each bounded cell is then compared against
// the cell's analytic centroid. The two converge at a 1/sqrt(sims) rate, so
// the default 10000 passes puts the expected error around a percent of the
// window size.

var (
	intensity = kingpin.Flag("intensity", "Mean density of the Poisson point pattern.").Default("12").Float64()
	side      = kingpin.Flag("side", "Side length of the square simulation window.").Default("1").Float64()
	sims      = kingpin.Flag("sims", "Number of Monte-Carlo placement passes.").Default("10000").Int()
	seed      = kingpin.Flag("seed", "Random seed.").Default("1").Int64()
	plotPath  = kingpin.Flag("plot", "Write a PNG of the diagram and one placement pass to this path.").String()
	labels    = kingpin.Flag("labels", "Label bounded cells in the plot.").Bool()
	inline    = kingpin.Flag("imgcat", "Display the plot inline (iTerm only).").Bool()
)

func main() {
	kingpin.Parse()

	rng := rand.New(rand.NewSource(*seed))
	window := pointprocess.Window{X0: 0, Y0: 0, X1: *side, Y1: *side}
	sites := pointprocess.HomogeneousPoisson(*intensity, window, rng)
	fmt.Printf("Simulated %d points at intensity %v on a %v x %v window\n",
		len(sites), *intensity, *side, *side)
	if len(sites) == 0 {
		fmt.Println(aurora.Yellow("Empty point pattern; nothing to tessellate"))
		return
	}

	bbox := voronoi.NewBBox(0, 0, *side, *side)
	tess, err := tessellate.Compute(sites, bbox)
	kingpin.FatalIfError(err, "computing tessellation")

	acc, err := vs.PlaceRepeated(tess, sites, *sims, rng)
	kingpin.FatalIfError(err, "placing points")

	if len(acc.Bounded) == 0 {
		fmt.Println(aurora.Yellow("No bounded cells in this pattern; nothing to validate"))
		return
	}

	means := acc.Means()
	// The empirical mean of n uniform placements is off by about sigma/sqrt(n);
	// flag cells beyond three times that, scaled to the window.
	threshold := 3 * *side / math.Sqrt(float64(*sims))
	var totalErr float64
	fmt.Printf("%d bounded cells, %d passes each:\n", len(acc.Bounded), acc.Reps)
	for k, i := range acc.Bounded {
		poly, err := vs.CellPolygon(tess, tess.PointRegion[i])
		kingpin.FatalIfError(err, "resolving cell %d", i)
		centroid := poly.Centroid()
		dist := math.Hypot(means[k].X-centroid.X, means[k].Y-centroid.Y)
		totalErr += dist
		line := fmt.Sprintf("  %-14s empirical (%.4f, %.4f)  analytic (%.4f, %.4f)  error %.5f",
			dbg.Name(i), means[k].X, means[k].Y, centroid.X, centroid.Y, dist)
		if dist > threshold {
			fmt.Println(aurora.Red(line))
		} else {
			fmt.Println(aurora.Green(line))
		}
	}
	fmt.Printf("Mean centroid error: %v (flag threshold %v)\n",
		aurora.Bold(fmt.Sprintf("%.5f", totalErr/float64(len(acc.Bounded)))), threshold)

	if *plotPath != "" || *inline {
		plot(tess, sites, bbox, rng)
	}
}

func plot(tess *vs.Tessellation, sites []vs.Point, bbox voronoi.BBox, rng vs.Source) {
	// One extra pass just for the red markers.
	placed, bounded, err := vs.Place(tess, sites, rng)
	kingpin.FatalIfError(err, "placing plot points")

	path := *plotPath
	if path == "" {
		path = "/tmp/voronoisample.png"
	}
	c := tessellate.Render(tess, sites, placed, bounded, bbox, tessellate.RenderOptions{Labels: *labels})
	kingpin.FatalIfError(c.SavePNG(path), "writing %s", path)
	fmt.Println("Plot written to", path)
	if *inline {
		imgcat.CatFile(path, os.Stdout)
	}
}

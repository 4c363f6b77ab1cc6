package tessellate

import (
	"github.com/fogleman/gg"
	"github.com/zzwx/voronoi"

	vs "github.com/pointpattern/voronoisample"
	"github.com/pointpattern/voronoisample/dbg"
)

// Rendering of a tessellation for the validation harness: cell edges in
// gray, generating sites green when their cell is bounded and blue when not,
// placed points red. Follows the conventional diagnostic plot for this
// simulation.

const drawPadding = 20

type RenderOptions struct {
	// Pixel width of the image; height follows the bounding box aspect ratio.
	Width int
	// Label bounded cells with readable names.
	Labels bool
}

// Render draws the tessellation over its bounding box. placed and bounded
// come from one placement pass; either may be empty.
func Render(t *vs.Tessellation, sites []vs.Point, placed []vs.Point, bounded []int, bbox voronoi.BBox, opts RenderOptions) *gg.Context {
	if opts.Width == 0 {
		opts.Width = 800
	}
	scale := float64(opts.Width-2*drawPadding) / (bbox.Xr - bbox.Xl)
	height := int(scale*(bbox.Yb-bbox.Yt)) + 2*drawPadding

	c := gg.NewContext(opts.Width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(opts.Width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-bbox.Xl, -bbox.Yt)

	// Cell edges. Unbounded rings are drawn too, minus their at-infinity
	// entries, so the clipped border cells still show their finite edges.
	c.SetRGB(0.5, 0.5, 0.5)
	c.SetLineWidth(1)
	for _, ring := range t.Regions {
		drawRing(c, t, ring)
	}

	boundedSet := make(map[int]struct{}, len(bounded))
	for _, i := range bounded {
		boundedSet[i] = struct{}{}
	}
	markRadius := 3 / scale
	for i, site := range sites {
		if _, ok := boundedSet[i]; ok {
			c.SetRGB(0, 0.6, 0)
		} else {
			c.SetRGB(0, 0, 0.8)
		}
		c.DrawCircle(site.X, site.Y, markRadius)
		c.Fill()
	}
	c.SetRGB(0.9, 0, 0)
	for _, p := range placed {
		c.DrawCircle(p.X, p.Y, markRadius)
		c.Fill()
	}

	if opts.Labels {
		c.SetRGB(0, 0, 0)
		for _, i := range bounded {
			site := sites[i]
			// Text renders in native coordinates or it comes out mirrored.
			x, y := c.TransformPoint(site.X, site.Y)
			c.Push()
			c.Identity()
			c.DrawStringAnchored(dbg.Name(i), x, y-8, 0.5, 1)
			c.Pop()
		}
	}
	return c
}

func drawRing(c *gg.Context, t *vs.Tessellation, ring vs.Ring) {
	started := false
	for _, entry := range ring {
		if entry.AtInfinity {
			continue
		}
		v := t.Vertices[entry.Vertex]
		if !started {
			c.MoveTo(v.X, v.Y)
			started = true
		} else {
			c.LineTo(v.X, v.Y)
		}
	}
	if started {
		c.ClosePath()
		c.Stroke()
	}
}

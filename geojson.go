package circles

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// CirclesGeoJSON returns the circles as a GeoJSON feature collection of points with a radius property, which can be read back by ParseCirclesGeoJSON.
func CirclesGeoJSON(circles []Circle) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range circles {
		f := geojson.NewFeature(orb.Point{c.Center.X, c.Center.Y})
		f.Properties["radius"] = c.Radius
		fc.Append(f)
	}
	if 0 < len(circles) {
		fc.BBox = geojson.NewBBox(bounds(circles))
	}
	return fc
}

// IntersectionsGeoJSON returns the intersection points as a GeoJSON feature collection of points, each with its index in sweep order.
func IntersectionsGeoJSON(zs []Point) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	mp := make(orb.MultiPoint, 0, len(zs))
	for i, z := range zs {
		f := geojson.NewFeature(orb.Point{z.X, z.Y})
		f.Properties["index"] = i
		fc.Append(f)
		mp = append(mp, orb.Point{z.X, z.Y})
	}
	if 0 < len(zs) {
		fc.BBox = geojson.NewBBox(mp.Bound())
	}
	return fc
}

// bounds returns the bounding box of all circles.
func bounds(circles []Circle) orb.Bound {
	b := circles[0].Bounds()
	for _, c := range circles[1:] {
		b = b.Union(c.Bounds())
	}
	return b
}

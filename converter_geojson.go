package walkshed

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
)

// PrepareGeoJSONLinestring returns GeoJSON representation of LineString
func PrepareGeoJSONLinestring(line orb.LineString) string {
	pts2d := make([][]float64, len(line))
	for i := range line {
		pts2d[i] = []float64{line[i].X(), line[i].Y()}
	}
	b, err := geojson.NewLineStringGeometry(pts2d).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// PrepareGeoJSONGeometry returns GeoJSON representation of LineString or MultiLineString
func PrepareGeoJSONGeometry(geom orb.Geometry) string {
	switch g := geom.(type) {
	case orb.LineString:
		return PrepareGeoJSONLinestring(g)
	case orb.MultiLineString:
		lines := make([][][]float64, len(g))
		for i, line := range g {
			lines[i] = make([][]float64, len(line))
			for j := range line {
				lines[i][j] = []float64{line[j].X(), line[j].Y()}
			}
		}
		b, err := geojson.NewMultiLineStringGeometry(lines...).MarshalJSON()
		if err != nil {
			fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
			return ""
		}
		return string(b)
	default:
		return ""
	}
}

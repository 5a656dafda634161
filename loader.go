package walkshed

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// LoadPlaces reads the crossings from a GeoJSON file of point features in
// EPSG:4326 and reprojects them to planar EPSG:3857. Non-point features are
// skipped. Places without a "name" property get an ordinal fallback name.
func LoadPlaces(fname string) ([]Place, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read places file")
	}
	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse places file")
	}

	places := make([]Place, 0, len(collection.Features))
	for _, feature := range collection.Features {
		point, ok := feature.Geometry.(orb.Point)
		if !ok {
			continue
		}
		id := len(places) + 1
		name := fmt.Sprintf("Crossing_%d", id)
		if value, ok := feature.Properties["name"].(string); ok && value != "" {
			name = value
		}
		places = append(places, Place{
			ID:   id,
			Name: name,
			Geom: pointToEuclidean(point),
		})
	}
	return places, nil
}

// LoadNetwork reads one road network from a GeoJSON file of line features in
// EPSG:4326 and reprojects them to planar EPSG:3857. The fid of every segment
// is its feature index within the file, which keeps output rows referentially
// linked to the source features. A fresh segment collection is returned on
// every call since the pipeline rewrites geometries while snapping.
func LoadNetwork(fname string) ([]*RoadSegment, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrMissingNetwork, "no such file: %s", fname)
		}
		return nil, errors.Wrap(err, "Can't read road network file")
	}
	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse road network file")
	}

	segments := make([]*RoadSegment, 0, len(collection.Features))
	for idx, feature := range collection.Features {
		var parts []orb.LineString
		switch geom := feature.Geometry.(type) {
		case orb.LineString:
			parts = []orb.LineString{lineToEuclidean(geom)}
		case orb.MultiLineString:
			parts = make([]orb.LineString, 0, len(geom))
			for _, line := range geom {
				parts = append(parts, lineToEuclidean(line))
			}
		default:
			continue
		}
		segments = append(segments, &RoadSegment{
			FID:   idx,
			Parts: parts,
			Props: feature.Properties,
		})
	}
	return segments, nil
}

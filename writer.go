package walkshed

import (
	"os"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// featureProperties flattens a result row into output feature properties:
// the original attributes of fully included segments plus the provenance
// fields shared by every row.
func featureProperties(feature ReachableFeature) map[string]interface{} {
	props := make(map[string]interface{}, len(feature.Props)+5)
	for key, value := range feature.Props {
		props[key] = value
	}
	props["fid"] = feature.FID
	props["crossing_id"] = feature.CrossingID
	props["crossing_name"] = feature.CrossingName
	props["network_file"] = feature.NetworkFile
	props["reachable_nodes"] = feature.ReachableNodes
	return props
}

// WriteGeoJSON exports the accumulated rows as a GeoJSON feature collection
// in EPSG:4326. An already existing output file is kept as a backup with the
// "_backup" suffix before its extension.
func WriteGeoJSON(features []ReachableFeature, fname string) error {
	collection := geojson.NewFeatureCollection()
	for _, feature := range features {
		out := geojson.NewFeature(geometryToSpherical(feature.Geom))
		out.Properties = featureProperties(feature)
		collection.Append(out)
	}
	data, err := collection.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Can't marshal feature collection")
	}

	if _, err := os.Stat(fname); err == nil {
		backup := backupName(fname)
		if err := os.Rename(fname, backup); err != nil {
			return errors.Wrap(err, "Can't backup existing output file")
		}
	}

	if err := os.WriteFile(fname, data, 0644); err != nil {
		return errors.Wrap(err, "Can't write output file")
	}
	return nil
}

func backupName(fname string) string {
	if strings.HasSuffix(fname, ".geojson") {
		return strings.TrimSuffix(fname, ".geojson") + "_backup.geojson"
	}
	return fname + "_backup"
}

package walkshed

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

// ExportToCSV writes the accumulated rows into a ';'-separated CSV file with
// the geometry column in EPSG:4326. geomFormat selects the geometry
// representation: "wkt" (default) or "geojson".
func ExportToCSV(features []ReachableFeature, fname string, geomFormat string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"fid", "crossing_id", "crossing_name", "network_file", "reachable_nodes", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	useGeoJSON := strings.ToLower(geomFormat) == "geojson"
	for _, feature := range features {
		geom := geometryToSpherical(feature.Geom)
		geomStr := ""
		if useGeoJSON {
			geomStr = PrepareGeoJSONGeometry(geom)
		} else {
			geomStr = wkt.MarshalString(geom)
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", feature.FID),
			fmt.Sprintf("%d", feature.CrossingID),
			feature.CrossingName,
			feature.NetworkFile,
			fmt.Sprintf("%d", feature.ReachableNodes),
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write feature")
		}
	}
	return nil
}

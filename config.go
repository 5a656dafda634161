package walkshed

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	// DefaultMaxDistance is the walking-distance budget in meters.
	DefaultMaxDistance = 400.0
	// DefaultSnapTolerance is the vertex merge threshold in meters.
	DefaultSnapTolerance = 1.0
)

// Config selects the road network file per crossing name and carries the
// pipeline parameters. Example:
//
//	places = "data/places.geojson"
//	default_network = "data/roadnetwork_default.geojson"
//	max_distance = 400.0
//	snap_tolerance = 1.0
//
//	[networks]
//	"Skatepark Crossing" = "data/roadnetwork_skatepark.geojson"
type Config struct {
	Places         string            `toml:"places"`
	DefaultNetwork string            `toml:"default_network"`
	MaxDistance    float64           `toml:"max_distance"`
	SnapTolerance  float64           `toml:"snap_tolerance"`
	Networks       map[string]string `toml:"networks"`
}

// LoadConfig reads a TOML configuration file and applies defaults for
// omitted parameters.
func LoadConfig(fname string) (*Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read configuration file")
	}
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "Can't parse configuration file")
	}
	if cfg.MaxDistance <= 0 {
		cfg.MaxDistance = DefaultMaxDistance
	}
	if cfg.SnapTolerance <= 0 {
		cfg.SnapTolerance = DefaultSnapTolerance
	}
	return cfg, nil
}

// NetworkFor returns the road network file mapped to given crossing name,
// falling back to the default network.
func (cfg *Config) NetworkFor(placeName string) string {
	if fname, ok := cfg.Networks[placeName]; ok {
		return fname
	}
	return cfg.DefaultNetwork
}

package obstacle

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ParseGeoJSON reads a GeoJSON FeatureCollection whose coordinates are in grid
// units and returns the bounding box of every feature geometry. Features
// without geometry are skipped.
func ParseGeoJSON(data []byte) ([]orb.Bound, error) {
	featureCollection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("obstacle: parse feature collection: %w", err)
	}

	bounds := make([]orb.Bound, 0, len(featureCollection.Features))
	for _, feature := range featureCollection.Features {
		if feature == nil || feature.Geometry == nil {
			continue
		}
		bounds = append(bounds, feature.Geometry.Bound())
	}
	return bounds, nil
}

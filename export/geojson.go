// Package export writes a solved instance as GeoJSON: cities as points, the
// trained ring and the extracted tour as closed line strings. Coordinates are
// the raw sample coordinates; no geographic projection is applied.
package export

import (
	"errors"
	"io"

	geojson "github.com/paulmach/go.geojson"

	"github.com/katalvlaran/ringsom/tsp"
	"github.com/katalvlaran/ringsom/vec"
)

// Feature kinds, stored in the "kind" property.
const (
	KindCity = "city"
	KindRing = "ring"
	KindTour = "tour"
)

// ErrNoCities indicates an export without cities.
var ErrNoCities = errors.New("export: no cities")

// FeatureCollection builds the collection:
//   - one Point per city (kind=city, index);
//   - one closed LineString through the ring positions (kind=ring, length,
//     size), skipped for an empty ring;
//   - one closed LineString along the tour (kind=tour, cost), when tour is
//     non-nil.
//
// Errors: ErrNoCities, and the tsp sentinels for an invalid tour.
func FeatureCollection(cities, ring []vec.Vector, tour []int) (*geojson.FeatureCollection, error) {
	if len(cities) == 0 {
		return nil, ErrNoCities
	}
	fc := geojson.NewFeatureCollection()

	var (
		i int
		f *geojson.Feature
	)
	for i = range cities {
		f = geojson.NewPointFeature(coord(cities[i]))
		f.SetProperty("kind", KindCity)
		f.SetProperty("index", i)
		fc.AddFeature(f)
	}

	if len(ring) > 0 {
		line := make([][]float64, 0, len(ring)+1)
		length := 0.0
		for i = range ring {
			line = append(line, coord(ring[i]))
			length += ring[i].Dist(ring[(i+1)%len(ring)])
		}
		line = append(line, coord(ring[0]))

		f = geojson.NewLineStringFeature(line)
		f.SetProperty("kind", KindRing)
		f.SetProperty("size", len(ring))
		f.SetProperty("length", length)
		fc.AddFeature(f)
	}

	if tour != nil {
		if err := tsp.ValidateTour(tour, len(cities), tour[0]); err != nil {
			return nil, err
		}
		cost, err := tsp.TourCost(cities, tour)
		if err != nil {
			return nil, err
		}
		line := make([][]float64, len(tour))
		for i = range tour {
			line[i] = coord(cities[tour[i]])
		}

		f = geojson.NewLineStringFeature(line)
		f.SetProperty("kind", KindTour)
		f.SetProperty("cost", cost)
		fc.AddFeature(f)
	}

	return fc, nil
}

// WriteGeoJSON encodes fc to w.
func WriteGeoJSON(w io.Writer, fc *geojson.FeatureCollection) error {
	raw, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(raw)

	return err
}

func coord(v vec.Vector) []float64 { return []float64{v.X, v.Y} }

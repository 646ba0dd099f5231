package util

import (
	"strconv"
	"strings"

	"placemark/internal/domain/entity"
	"placemark/internal/errors"

	"github.com/paulmach/orb"
)

// ParseBound parses a "minLng,minLat,maxLng,maxLat" bounding box, the usual
// map viewport query format.
func ParseBound(s string) (orb.Bound, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return orb.Bound{}, errors.Errorf("bbox must have 4 comma-separated values, got %d", len(parts))
	}

	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return orb.Bound{}, errors.Wrapf(err, "bbox value %q", part)
		}
		vals[i] = v
	}

	bound := orb.Bound{
		Min: orb.Point{vals[0], vals[1]},
		Max: orb.Point{vals[2], vals[3]},
	}
	if bound.Min[0] > bound.Max[0] || bound.Min[1] > bound.Max[1] {
		return orb.Bound{}, errors.New("bbox min corner must not exceed max corner")
	}

	return bound, nil
}

// FilterWithinBound returns the addresses whose coordinates fall inside bound.
// Order is preserved; the input slice is not modified.
func FilterWithinBound(addresses []*entity.Address, bound orb.Bound) []*entity.Address {
	filtered := make([]*entity.Address, 0, len(addresses))
	for _, address := range addresses {
		point := orb.Point{address.Longitude, address.Latitude}
		if bound.Contains(point) {
			filtered = append(filtered, address)
		}
	}

	return filtered
}

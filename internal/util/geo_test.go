package util

import (
	"testing"

	"placemark/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBound(t *testing.T) {
	bound, err := ParseBound("2.2,48.8,2.4,48.9")
	require.NoError(t, err)
	assert.Equal(t, orb.Point{2.2, 48.8}, bound.Min)
	assert.Equal(t, orb.Point{2.4, 48.9}, bound.Max)
}

func TestParseBound_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "too few values", in: "1,2,3"},
		{name: "not a number", in: "a,b,c,d"},
		{name: "inverted corners", in: "2.4,48.8,2.2,48.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBound(tt.in)
			assert.Error(t, err)
		})
	}
}

func TestFilterWithinBound(t *testing.T) {
	paris := &entity.Address{ID: "paris", Latitude: 48.8566, Longitude: 2.3522}
	lyon := &entity.Address{ID: "lyon", Latitude: 45.7640, Longitude: 4.8357}

	bound, err := ParseBound("2.0,48.0,3.0,49.0")
	require.NoError(t, err)

	filtered := FilterWithinBound([]*entity.Address{paris, lyon}, bound)
	require.Len(t, filtered, 1)
	assert.Equal(t, "paris", filtered[0].ID)
}

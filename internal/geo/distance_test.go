package geo

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
	}{
		{
			name: "identical coordinates",
			lat1: 8.4967, lon1: 78.1245,
			lat2: 8.4967, lon2: 78.1245,
			want: 0,
		},
		{
			name: "town center to tirunelveli",
			lat1: TownCenterLat, lon1: TownCenterLon,
			lat2: 8.7139, lon2: 77.7567,
			want: 47.1005,
		},
		{
			name: "symmetric",
			lat1: 8.7139, lon1: 77.7567,
			lat2: TownCenterLat, lon2: TownCenterLon,
			want: 47.1005,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Distance() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestDistanceFromTownCenter(t *testing.T) {
	got := DistanceFromTownCenter(8.5104, 78.1102)
	if math.Abs(got-2.1895) > 0.001 {
		t.Errorf("DistanceFromTownCenter() = %f, want %f", got, 2.1895)
	}
}

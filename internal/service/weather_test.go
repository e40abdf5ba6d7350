package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentUnknownCitySkipsLookup(t *testing.T) {
	s := NewWeatherService()

	w, known, err := s.Current(context.Background(), "paris")
	require.NoError(t, err)
	assert.False(t, known)
	assert.Nil(t, w)
}

func TestDescribeWeatherCode(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "clear sky"},
		{2, "partly cloudy"},
		{45, "foggy"},
		{55, "drizzle"},
		{63, "rain"},
		{80, "rain showers"},
		{95, "thunderstorm"},
		{200, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeWeatherCode(tt.code))
	}
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// WeatherService fetches current conditions from the Open-Meteo public API.
// It needs no API key.
type WeatherService struct {
	httpClient *http.Client
	baseURL    string
}

func NewWeatherService() *WeatherService {
	return &WeatherService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://api.open-meteo.com/v1",
	}
}

type CurrentWeather struct {
	City          string  `json:"city"`
	TemperatureC  float64 `json:"temperature_c"`
	WindSpeedKmh  float64 `json:"wind_speed_kmh"`
	Precipitation float64 `json:"precipitation_mm"`
	Description   string  `json:"description"`
}

type coords struct {
	lat, lon float64
}

// cityCoords covers the cities the entity tables can extract.
var cityCoords = map[string]coords{
	"colombo":      {6.9271, 79.8612},
	"kandy":        {7.2906, 80.6337},
	"galle":        {6.0535, 80.2210},
	"ella":         {6.8667, 81.0466},
	"sigiriya":     {7.9570, 80.7603},
	"anuradhapura": {8.3114, 80.4037},
	"jaffna":       {9.6615, 80.0255},
	"trincomalee":  {8.5874, 81.2152},
	"nuwara eliya": {6.9497, 80.7891},
	"mirissa":      {5.9483, 80.4716},
}

// Current returns the live weather for a known city, or false when the city
// is not in the coordinate table.
func (s *WeatherService) Current(ctx context.Context, city string) (*CurrentWeather, bool, error) {
	c, ok := cityCoords[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return nil, false, nil
	}

	url := fmt.Sprintf("%s/forecast?latitude=%.4f&longitude=%.4f&current=temperature_2m,precipitation,wind_speed_10m,weather_code",
		s.baseURL, c.lat, c.lon)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, true, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, true, fmt.Errorf("weather api status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("read response: %w", err)
	}

	var data struct {
		Current struct {
			Temperature   float64 `json:"temperature_2m"`
			Precipitation float64 `json:"precipitation"`
			WindSpeed     float64 `json:"wind_speed_10m"`
			WeatherCode   int     `json:"weather_code"`
		} `json:"current"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, true, fmt.Errorf("parse weather data: %w", err)
	}

	return &CurrentWeather{
		City:          city,
		TemperatureC:  data.Current.Temperature,
		WindSpeedKmh:  data.Current.WindSpeed,
		Precipitation: data.Current.Precipitation,
		Description:   describeWeatherCode(data.Current.WeatherCode),
	}, true, nil
}

// describeWeatherCode maps WMO weather codes to a short phrase.
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "clear sky"
	case code <= 3:
		return "partly cloudy"
	case code <= 48:
		return "foggy"
	case code <= 57:
		return "drizzle"
	case code <= 67:
		return "rain"
	case code <= 82:
		return "rain showers"
	case code <= 99:
		return "thunderstorm"
	default:
		return "unknown"
	}
}

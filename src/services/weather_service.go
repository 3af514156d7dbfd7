package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// WeatherReport trimmed OpenWeather response for the daily-log screen.
type WeatherReport struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Conditions  string  `json:"conditions"`
	Description string  `json:"description"`
	WindSpeed   float64 `json:"wind_speed"`
	Icon        string  `json:"icon"`
}

var ErrWeatherNotConfigured = errors.New("Weather API not configured")

const openWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

var weatherHTTP = &http.Client{Timeout: 10 * time.Second}

type openWeatherResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Message string `json:"message"`
}

// GetWeather fetches current conditions by coordinates, imperial units.
func GetWeather(apiKey string, lat, lon float64) (*WeatherReport, error) {
	if apiKey == "" {
		return nil, ErrWeatherNotConfigured
	}
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	return fetchWeather(apiKey, params)
}

// GetWeatherByLocation fetches current conditions by city name.
func GetWeatherByLocation(apiKey, location string) (*WeatherReport, error) {
	if apiKey == "" {
		return nil, ErrWeatherNotConfigured
	}
	params := url.Values{}
	params.Set("q", location)
	return fetchWeather(apiKey, params)
}

func fetchWeather(apiKey string, params url.Values) (*WeatherReport, error) {
	params.Set("appid", apiKey)
	params.Set("units", "imperial")

	resp, err := weatherHTTP.Get(openWeatherURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var data openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		if data.Message != "" {
			return nil, errors.New(data.Message)
		}
		return nil, errors.New("Weather fetch failed")
	}
	if len(data.Weather) == 0 {
		return nil, errors.New("Weather fetch failed")
	}

	return &WeatherReport{
		Temperature: data.Main.Temp,
		FeelsLike:   data.Main.FeelsLike,
		Humidity:    data.Main.Humidity,
		Conditions:  data.Weather[0].Main,
		Description: data.Weather[0].Description,
		WindSpeed:   data.Wind.Speed,
		Icon:        data.Weather[0].Icon,
	}, nil
}

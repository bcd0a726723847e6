package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, query Query) (*WeatherResult, error)
	GetHTTPClient() *http.Client
}

type openWeatherMapProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOpenWeatherMapProvider(apiKey, baseURL string, timeout time.Duration) WeatherProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &openWeatherMapProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *openWeatherMapProvider) GetCurrentWeather(ctx context.Context, query Query) (*WeatherResult, error) {
	requestURL, err := p.buildURL(query)
	if err != nil {
		return nil, &FetchError{Kind: FetchFailed, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &FetchError{Kind: FetchFailed, Err: fmt.Errorf("failed to build request: %w", err)}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: FetchFailed, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug().Int("status", resp.StatusCode).Str("query", query.String()).Msg("provider rejected request")
		return nil, statusError(resp.StatusCode)
	}

	var result WeatherResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &FetchError{Kind: FetchFailed, Status: resp.StatusCode, Err: fmt.Errorf("malformed JSON: %w", err)}
	}

	return &result, nil
}

func (p *openWeatherMapProvider) GetHTTPClient() *http.Client {
	return p.client
}

func (p *openWeatherMapProvider) buildURL(query Query) (string, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", p.baseURL, err)
	}

	params := u.Query()
	if lat, lon, ok := query.Coordinates(); ok {
		params.Set("lat", formatCoordinate(lat))
		params.Set("lon", formatCoordinate(lon))
	} else {
		params.Set("q", query.City())
	}
	params.Set("appid", p.apiKey)
	params.Set("units", "metric")
	u.RawQuery = params.Encode()

	return u.String(), nil
}

func statusError(status int) error {
	switch status {
	case http.StatusNotFound:
		return &FetchError{Kind: FetchNotFound, Status: status, Err: fmt.Errorf("provider returned status code: %d", status)}
	case http.StatusUnauthorized:
		return &FetchError{Kind: FetchInvalidCredential, Status: status, Err: fmt.Errorf("provider returned status code: %d", status)}
	default:
		return &FetchError{Kind: FetchFailed, Status: status, Err: fmt.Errorf("provider returned status code: %d", status)}
	}
}

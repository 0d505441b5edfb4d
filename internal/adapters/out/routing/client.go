// Package routing calls the map provider's HTTP API to measure the driving
// distance between the shop and a delivery address. It implements
// ports.RoutePlanner for the submission distance guard.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrNoRouteFound is returned when the provider cannot plan a driving route
// between the two addresses.
var ErrNoRouteFound = errors.New("no driving route found")

// ErrProviderFailure wraps non-zero provider status codes.
var ErrProviderFailure = errors.New("routing provider returned an error")

const defaultTimeout = 5 * time.Second

// Client talks to a Baidu-style map API: one geocoding endpoint resolving an
// address to coordinates and one direction endpoint planning a driving route.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a routing client. baseURL is the provider root, e.g.
// "https://api.map.baidu.com". The request timeout is bounded so a slow
// provider cannot stall order submission.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

type geocodeResponse struct {
	Status int `json:"status"`
	Result struct {
		Location struct {
			Lng float64 `json:"lng"`
			Lat float64 `json:"lat"`
		} `json:"location"`
	} `json:"result"`
}

type directionResponse struct {
	Status int `json:"status"`
	Result struct {
		Routes []struct {
			Distance int `json:"distance"`
		} `json:"routes"`
	} `json:"result"`
}

// DrivingDistance geocodes both addresses and plans a driving route between
// them. Returns the route length in meters.
func (c *Client) DrivingDistance(ctx context.Context, origin, destination string) (int, error) {
	originLat, originLng, err := c.geocode(ctx, origin)
	if err != nil {
		return 0, fmt.Errorf("geocode origin: %w", err)
	}

	destLat, destLng, err := c.geocode(ctx, destination)
	if err != nil {
		return 0, fmt.Errorf("geocode destination: %w", err)
	}

	query := url.Values{}
	query.Set("origin", fmt.Sprintf("%f,%f", originLat, originLng))
	query.Set("destination", fmt.Sprintf("%f,%f", destLat, destLng))
	query.Set("ak", c.apiKey)

	var resp directionResponse
	if err = c.get(ctx, "/directionlite/v1/driving", query, &resp); err != nil {
		return 0, err
	}
	if resp.Status != 0 {
		return 0, fmt.Errorf("%w: status %d", ErrProviderFailure, resp.Status)
	}
	if len(resp.Result.Routes) == 0 {
		return 0, ErrNoRouteFound
	}

	return resp.Result.Routes[0].Distance, nil
}

func (c *Client) geocode(ctx context.Context, address string) (lat, lng float64, err error) {
	query := url.Values{}
	query.Set("address", address)
	query.Set("output", "json")
	query.Set("ak", c.apiKey)

	var resp geocodeResponse
	if err = c.get(ctx, "/geocoding/v3", query, &resp); err != nil {
		return 0, 0, err
	}
	if resp.Status != 0 {
		return 0, 0, fmt.Errorf("%w: status %d", ErrProviderFailure, resp.Status)
	}

	return resp.Result.Location.Lat, resp.Result.Location.Lng, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: http %d", ErrProviderFailure, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

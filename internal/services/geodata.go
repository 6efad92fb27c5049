package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// State as returned by the countrystatecity API
type State struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Iso2 string `json:"iso2"`
}

// City as returned by the countrystatecity API
type City struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GeodataService is the client for the state/city lookup API. The key comes
// from the environment, never from source.
type GeodataService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewGeodataService() *GeodataService {
	url := os.Getenv("CSC_BASE_URL")
	if url == "" {
		url = "https://api.countrystatecity.in/v1"
	}
	return &GeodataService{
		baseURL: url,
		apiKey:  os.Getenv("CSC_API_KEY"),
		client:  &http.Client{},
	}
}

func (s *GeodataService) getJSON(endpoint string, dest interface{}) error {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", s.baseURL, endpoint), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-CSCAPI-KEY", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}

// FetchStates lists the Indian states
func (s *GeodataService) FetchStates() ([]State, error) {
	var states []State
	if err := s.getJSON("/countries/IN/states", &states); err != nil {
		return nil, err
	}
	return states, nil
}

// FetchCities lists the cities of one state by its ISO2 code
func (s *GeodataService) FetchCities(stateCode string) ([]City, error) {
	var cities []City
	if err := s.getJSON(fmt.Sprintf("/countries/IN/states/%s/cities", stateCode), &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

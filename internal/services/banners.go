package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// Banner is one promotional image from the banner feed
type Banner struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

// BannerService fetches location-targeted promo banners from the feed API
type BannerService struct {
	baseURL string
	client  *http.Client
}

func NewBannerService() *BannerService {
	u := os.Getenv("BANNER_FEED_URL")
	if u == "" {
		u = "https://asia-south1-starzapp.cloudfunctions.net/EstatexD4P"
	}
	return &BannerService{
		baseURL: u,
		client:  &http.Client{},
	}
}

// FetchBanners returns the banners targeted at the given location names
func (s *BannerService) FetchBanners(locations []string) ([]Banner, error) {
	endpoint := fmt.Sprintf("%s/banners?location=%s", s.baseURL, url.QueryEscape(strings.Join(locations, ",")))

	resp, err := s.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch banners: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("banner feed returned status %d: %s", resp.StatusCode, string(body))
	}

	var banners []Banner
	if err := json.NewDecoder(resp.Body).Decode(&banners); err != nil {
		return nil, fmt.Errorf("failed to decode banner feed: %w", err)
	}
	return banners, nil
}

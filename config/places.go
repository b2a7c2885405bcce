package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/mapsearch/api-go/types"
)

const placeDetailsURL = "https://maps.googleapis.com/maps/api/place/details/json"

// detailFields is what the place page needs from the Details API.
const detailFields = "name,formatted_address,geometry,types,rating,user_ratings_total," +
	"photos,website,international_phone_number,formatted_phone_number," +
	"opening_hours,price_level,url,vicinity,editorial_summary,business_status"

// PlacesClient talks to the Google Places Details API. Lookups block with an
// explicit timeout; a slow upstream fails the lookup, never hangs the request.
type PlacesClient struct {
	APIKey string
	client *http.Client
}

func NewPlacesClient() *PlacesClient {
	return &PlacesClient{
		APIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (pc *PlacesClient) fetch(placeID, fields string, timeout time.Duration) (*types.PlaceDetailsResponse, error) {
	if pc.APIKey == "" {
		return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY not configured")
	}
	if placeID == "" {
		return nil, fmt.Errorf("INVALID_PLACE_ID")
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("key", pc.APIKey)
	params.Set("fields", fields)

	client := pc.client
	if timeout > 0 && timeout != client.Timeout {
		client = &http.Client{Timeout: timeout}
	}

	resp, err := client.Get(placeDetailsURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("REQUEST_FAILED: %v", err)
	}
	defer resp.Body.Close()

	var details types.PlaceDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("failed to decode place details: %v", err)
	}

	if details.Status != "OK" {
		return nil, fmt.Errorf("%s", details.Status)
	}

	return &details, nil
}

// PlaceDetails returns the full place record for the place page.
func (pc *PlacesClient) PlaceDetails(placeID string) (*types.PlaceDetailsResult, error) {
	details, err := pc.fetch(placeID, detailFields, 10*time.Second)
	if err != nil {
		return nil, err
	}
	return &details.Result, nil
}

// PlaceName is best-effort enrichment for review submissions: a short timeout
// and an empty string on any failure, never an error surfaced to the caller.
func (pc *PlacesClient) PlaceName(placeID string) string {
	details, err := pc.fetch(placeID, "name", 5*time.Second)
	if err != nil {
		return ""
	}
	return details.Result.Name
}

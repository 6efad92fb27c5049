package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeodataFetchStates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/countries/IN/states" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-CSCAPI-KEY") != "test-key" {
			t.Errorf("missing api key header, got %q", r.Header.Get("X-CSCAPI-KEY"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":4008,"name":"Maharashtra","iso2":"MH"}]`))
	}))
	defer server.Close()

	service := &GeodataService{baseURL: server.URL, apiKey: "test-key", client: server.Client()}

	states, err := service.FetchStates()
	if err != nil {
		t.Fatalf("FetchStates returned error: %v", err)
	}
	if len(states) != 1 || states[0].Name != "Maharashtra" || states[0].Iso2 != "MH" {
		t.Errorf("FetchStates = %+v; want Maharashtra/MH", states)
	}
}

func TestGeodataFetchCitiesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	service := &GeodataService{baseURL: server.URL, client: server.Client()}

	if _, err := service.FetchCities("MH"); err == nil {
		t.Fatal("expected error on 401 response")
	}
}

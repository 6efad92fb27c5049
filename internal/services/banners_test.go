package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchBanners(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("location"); got != "Mira Road,Thane" {
			t.Errorf("location param = %q; want %q", got, "Mira Road,Thane")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"b1","imageUrl":"https://cdn.example/b1.png","title":"Festive offer","location":"Mira Road"}]`))
	}))
	defer server.Close()

	service := &BannerService{baseURL: server.URL, client: server.Client()}

	banners, err := service.FetchBanners([]string{"Mira Road", "Thane"})
	if err != nil {
		t.Fatalf("FetchBanners returned error: %v", err)
	}
	if len(banners) != 1 || banners[0].ID != "b1" {
		t.Errorf("FetchBanners = %+v; want one banner b1", banners)
	}
}

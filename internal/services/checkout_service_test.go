package services

import (
	"errors"
	"testing"

	"github.com/midtrans/midtrans-go/coreapi"
)

func TestVerifiedCallbackStatus(t *testing.T) {
	tests := []struct {
		name     string
		verified *coreapi.TransactionStatusResponse
		checkErr error
		want     string
		wantErr  bool
	}{
		{
			name:     "gateway confirms settlement",
			verified: &coreapi.TransactionStatusResponse{TransactionStatus: "settlement"},
			want:     "settlement",
		},
		{
			name:     "gateway reports expiry",
			verified: &coreapi.TransactionStatusResponse{TransactionStatus: "expire"},
			want:     "expire",
		},
		{
			name:     "status re-check fails during an outage",
			checkErr: errors.New("connection refused"),
			wantErr:  true,
		},
		{
			name:    "gateway returns nothing",
			wantErr: true,
		},
		{
			name:     "gateway returns an empty status",
			verified: &coreapi.TransactionStatusResponse{},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := verifiedCallbackStatus(tt.verified, tt.checkErr)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("verifiedCallbackStatus = %q; want error", got)
				}
				if got != "" {
					t.Errorf("status %q returned alongside error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("verifiedCallbackStatus returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("verifiedCallbackStatus = %q; want %q", got, tt.want)
			}
		})
	}
}

package handling

import (
	"net/http/httptest"
	"testing"
)

func TestParseTransactionListOptions(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantMethod string
		wantDay    string
		wantErr    bool
	}{
		{
			name: "no filters",
			url:  "/transactions",
		},
		{
			name:       "payment method",
			url:        "/transactions?payment_method=Efectivo",
			wantMethod: "Efectivo",
		},
		{
			name:    "valid day",
			url:     "/transactions?day=2026-08-30",
			wantDay: "2026-08-30",
		},
		{
			name:       "both filters",
			url:        "/transactions?payment_method=Yape&day=2026-08-30",
			wantMethod: "Yape",
			wantDay:    "2026-08-30",
		},
		{
			name:    "malformed day",
			url:     "/transactions?day=30-08-2026",
			wantErr: true,
		},
		{
			name:    "day not a date",
			url:     "/transactions?day=hoy",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)

			opts, err := ParseTransactionListOptions(r)
			if tt.wantErr {
				if err == nil {
					t.Error("ParseTransactionListOptions() accepted an invalid query")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTransactionListOptions() error: %v", err)
			}
			if opts.PaymentMethod != tt.wantMethod || opts.Day != tt.wantDay {
				t.Errorf("opts = %+v, want method %q day %q", opts, tt.wantMethod, tt.wantDay)
			}
		})
	}
}

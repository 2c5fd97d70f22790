package handling

import (
	"fmt"
	"mesero_server/services"
	"net/http"
	"time"
)

// ParseTransactionListOptions parses HTTP query parameters into ListOptions.
func ParseTransactionListOptions(r *http.Request) (*services.ListOptions, error) {
	query := r.URL.Query()

	if len(query) == 0 {
		return &services.ListOptions{}, nil
	}

	opts := &services.ListOptions{}

	if method := query.Get("payment_method"); method != "" {
		opts.PaymentMethod = method
	}

	if day := query.Get("day"); day != "" {
		if _, err := time.Parse("2006-01-02", day); err != nil {
			return nil, fmt.Errorf("invalid day %q, want YYYY-MM-DD", day)
		}
		opts.Day = day
	}

	return opts, nil
}

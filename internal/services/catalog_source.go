package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"veltora/internal/domain"
)

// ProductSource fetches raw product records from an external catalog.
type ProductSource interface {
	FetchProducts(ctx context.Context, limit int) ([]domain.RawProduct, error)
}

// DummyJSONSource reads the public DummyJSON demo catalog.
type DummyJSONSource struct {
	BaseURL string
	Client  *http.Client
}

func NewDummyJSONSource(baseURL string, timeout time.Duration) *DummyJSONSource {
	return &DummyJSONSource{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

// productsResponse is the source's list envelope.
type productsResponse struct {
	Products []domain.RawProduct `json:"products"`
	Total    int                 `json:"total"`
	Skip     int                 `json:"skip"`
	Limit    int                 `json:"limit"`
}

func (s *DummyJSONSource) FetchProducts(ctx context.Context, limit int) ([]domain.RawProduct, error) {
	url := fmt.Sprintf("%s/products?limit=%d", s.BaseURL, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned status %d", resp.StatusCode)
	}

	var body productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Products, nil
}

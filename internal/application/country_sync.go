package application

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/frotaops/route-manager/internal/config"
	"github.com/frotaops/route-manager/internal/domain"
	"github.com/frotaops/route-manager/internal/repository"
)

// countryAPIEntry is one record of the countryapi.io "all" payload. Only the
// ISO 3166 fields are consumed.
type countryAPIEntry struct {
	Name        string `json:"name"`
	Alpha2Code  string `json:"alpha2Code"`
	Alpha3Code  string `json:"alpha3Code"`
	NumericCode string `json:"numericCode"`
}

// CountrySync seeds and refreshes the countries table from an external
// country-data API. It is a startup job, not a request path: failures are
// logged and the service keeps serving whatever data it already has.
type CountrySync struct {
	countries Store[domain.Country]
	client    *http.Client
	cfg       config.CountryAPIConfig
	log       *zap.Logger
}

func NewCountrySync(countries Store[domain.Country], cfg config.CountryAPIConfig, log *zap.Logger) *CountrySync {
	return &CountrySync{
		countries: countries,
		client:    &http.Client{Timeout: 30 * time.Second},
		cfg:       cfg,
		log:       log,
	}
}

// Run fetches the full country list and upserts every entry, matching
// existing rows by alpha-2, alpha-3 or numeric code. It returns the first
// storage error; fetch and decode errors abort the whole run.
func (s *CountrySync) Run(ctx context.Context) error {
	if s.cfg.Key == "" {
		s.log.Info("country sync skipped, no api key configured")
		return nil
	}

	entries, err := s.fetch(ctx)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := s.upsert(ctx, entry); err != nil {
			return err
		}
	}

	s.log.Info("country sync finished", zap.Int("countries", len(entries)))
	return nil
}

func (s *CountrySync) fetch(ctx context.Context) (map[string]countryAPIEntry, error) {
	url := fmt.Sprintf("%s/all?apikey=%s", s.cfg.URL, s.cfg.Key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("country sync: build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("country sync: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("country sync: unexpected status %d", resp.StatusCode)
	}

	var entries map[string]countryAPIEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("country sync: decode: %w", err)
	}
	return entries, nil
}

func (s *CountrySync) upsert(ctx context.Context, entry countryAPIEntry) error {
	existing, err := s.find(ctx, entry)
	if err != nil {
		return err
	}

	row := &domain.Country{
		Name:     entry.Name,
		Alpha2:   entry.Alpha2Code,
		Alpha3:   entry.Alpha3Code,
		Numeric3: entry.NumericCode,
	}

	if existing != nil {
		row.ID = existing.ID
		_, err = s.countries.Update(ctx, existing.ID, row)
		return err
	}

	row.ID = uuid.New()
	_, err = s.countries.Save(ctx, row)
	return err
}

// find matches an API entry against the stored countries by any of its ISO
// codes. Codes are checked in order of specificity; the first hit wins.
func (s *CountrySync) find(ctx context.Context, entry countryAPIEntry) (*domain.Country, error) {
	lookups := []struct {
		position int
		code     string
	}{
		{1, entry.Alpha2Code},
		{2, entry.Alpha3Code},
		{3, entry.NumericCode},
	}
	for _, lookup := range lookups {
		if lookup.code == "" {
			continue
		}
		country, err := s.countries.Get(ctx, repository.ByKey(lookup.position, lookup.code))
		if err != nil {
			return nil, err
		}
		if country != nil {
			return country, nil
		}
	}
	return nil, nil
}

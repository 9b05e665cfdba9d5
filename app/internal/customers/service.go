package customers

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/voicedash/airtable-proxy/app/domain/entities"
	"github.com/voicedash/airtable-proxy/app/internal/normalize"
)

type recordFetcher interface {
	FetchAll(ctx context.Context, table string, params url.Values) ([]entities.Record, error)
}

// Service lists customers for the dashboard.
type Service struct {
	fetcher recordFetcher
	table   string
}

// NewService creates a customers service reading the given table.
func NewService(fetcher recordFetcher, table string) *Service {
	return &Service{fetcher: fetcher, table: table}
}

// List fetches every customer record, projects it and returns the result
// sorted ascending by name under locale-aware collation.
func (s *Service) List(ctx context.Context) ([]entities.Customer, error) {
	records, err := s.fetcher.FetchAll(ctx, s.table, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching customers: %w", err)
	}

	result := make([]entities.Customer, 0, len(records))
	for _, rec := range records {
		result = append(result, entities.Customer{
			ID:      rec.ID,
			Name:    normalize.TextOr(rec.Fields["Name"], "Unknown"),
			Email:   normalize.Text(rec.Fields["Email"]),
			TrunkID: normalize.Text(rec.Fields["Trunk ID"]),
		})
	}

	c := collate.New(language.Und)
	sort.SliceStable(result, func(i, j int) bool {
		return c.CompareString(result[i].Name, result[j].Name) < 0
	})
	return result, nil
}

// Package billing keeps the first-generation aggregation endpoint alive for
// the old dashboard build: per-user totals straight off the raw table, no
// customer resolution.
package billing

import (
	"context"
	"fmt"
	"net/url"

	"github.com/samber/lo"

	"github.com/voicedash/airtable-proxy/app/domain/entities"
	"github.com/voicedash/airtable-proxy/app/internal/normalize"
)

type recordFetcher interface {
	FetchAll(ctx context.Context, table string, params url.Values) ([]entities.Record, error)
}

// Service aggregates raw billing records per user.
type Service struct {
	fetcher recordFetcher
	table   string
}

// NewService creates a billing service reading the given legacy table.
func NewService(fetcher recordFetcher, table string) *Service {
	return &Service{fetcher: fetcher, table: table}
}

// Aggregate fetches every billing record and folds it into per-user totals
// keyed by the "Session ID" field ("Unknown" when missing). The result is
// an unordered list.
func (s *Service) Aggregate(ctx context.Context) ([]entities.BillingUser, error) {
	records, err := s.fetcher.FetchAll(ctx, s.table, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching billing records: %w", err)
	}

	users := make(map[string]*entities.BillingUser)
	for _, rec := range records {
		user := normalize.TextOr(rec.Fields["Session ID"], "Unknown")
		duration := normalize.Number(rec.Fields["Duration (s)"])
		cost := normalize.ParseMoney(rec.Fields["Total Cost (USD)"])

		entry, ok := users[user]
		if !ok {
			entry = &entities.BillingUser{Name: user}
			users[user] = entry
		}
		entry.Sessions++
		entry.Minutes += normalize.ToMinutes(duration)
		entry.Total += cost
	}

	return lo.Map(lo.Values(users), func(u *entities.BillingUser, _ int) entities.BillingUser {
		return *u
	}), nil
}

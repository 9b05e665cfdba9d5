// Package sessions turns raw session records into the canonical rows and
// summary the dashboard renders.
package sessions

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/voicedash/airtable-proxy/app/domain/entities"
	"github.com/voicedash/airtable-proxy/app/internal/resolver"
)

type recordFetcher interface {
	FetchAll(ctx context.Context, table string, params url.Values) ([]entities.Record, error)
}

// Filter restricts the result to rows whose resolved customer matches every
// non-empty predicate.
type Filter struct {
	CustomerID   string
	CustomerName string
}

// Service orchestrates the /api/sessions flow: fetch, resolve, project,
// filter, aggregate.
type Service struct {
	fetcher        recordFetcher
	customersTable string
	sessionsTable  string
}

// NewService creates a sessions service reading the given tables.
func NewService(fetcher recordFetcher, customersTable, sessionsTable string) *Service {
	return &Service{
		fetcher:        fetcher,
		customersTable: customersTable,
		sessionsTable:  sessionsTable,
	}
}

// Query fetches customers and sessions, projects every raw session to a
// canonical row, drops rows failing the filter and summarizes the rest.
// Rows are sorted ascending by start time (plain string comparison, empty
// first). The two table fetches are independent and run concurrently.
func (s *Service) Query(ctx context.Context, filter Filter) (entities.SessionList, error) {
	var (
		wg sync.WaitGroup

		customerRecords []entities.Record
		sessionRecords  []entities.Record
		custErr         error
		sessErr         error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		customerRecords, custErr = s.fetcher.FetchAll(ctx, s.customersTable, nil)
	}()
	go func() {
		defer wg.Done()
		sessionRecords, sessErr = s.fetcher.FetchAll(ctx, s.sessionsTable, nil)
	}()
	wg.Wait()

	if custErr != nil {
		return entities.SessionList{}, fmt.Errorf("fetching customers: %w", custErr)
	}
	if sessErr != nil {
		return entities.SessionList{}, fmt.Errorf("fetching sessions: %w", sessErr)
	}

	index := resolver.NewCustomerIndex(customerRecords)

	rows := make([]entities.Session, 0, len(sessionRecords))
	for _, rec := range sessionRecords {
		row := Project(rec, index)
		if !matches(row, filter) {
			continue
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].StartTime < rows[j].StartTime
	})

	return entities.SessionList{Sessions: rows, Summary: summarize(rows)}, nil
}

// matches applies each present filter as a separate AND-ed equality check
// against the resolved customer identity.
func matches(row entities.Session, f Filter) bool {
	if f.CustomerID != "" && row.CustomerID != f.CustomerID {
		return false
	}
	if f.CustomerName != "" && row.CustomerName != f.CustomerName {
		return false
	}
	return true
}

func summarize(rows []entities.Session) entities.SessionSummary {
	summary := entities.SessionSummary{
		TotalSessions: len(rows),
		TotalMinutes:  lo.SumBy(rows, func(r entities.Session) float64 { return r.Minutes }),
		TotalCost:     lo.SumBy(rows, func(r entities.Session) float64 { return r.TotalCost }),
	}
	if summary.TotalMinutes > 0 {
		summary.AvgCostPerMin = summary.TotalCost / summary.TotalMinutes
	}
	return summary
}

package agentlogs

import (
	"context"
	"fmt"
	"net/url"

	"github.com/voicedash/airtable-proxy/app/domain/entities"
	"github.com/voicedash/airtable-proxy/app/internal/normalize"
)

type recordFetcher interface {
	FetchAll(ctx context.Context, table string, params url.Values) ([]entities.Record, error)
}

// Service lists agent-log records, optionally scoped to one session.
type Service struct {
	fetcher recordFetcher
	table   string
}

// NewService creates an agent-logs service reading the given table.
func NewService(fetcher recordFetcher, table string) *Service {
	return &Service{fetcher: fetcher, table: table}
}

// List fetches agent-log records. A non-empty sessionID narrows the fetch
// upstream via filterByFormula instead of filtering locally.
func (s *Service) List(ctx context.Context, sessionID string) ([]entities.AgentLog, error) {
	var params url.Values
	if sessionID != "" {
		params = url.Values{}
		params.Set("filterByFormula", fmt.Sprintf("{Session ID} = %q", sessionID))
	}

	records, err := s.fetcher.FetchAll(ctx, s.table, params)
	if err != nil {
		return nil, fmt.Errorf("fetching agent logs: %w", err)
	}

	result := make([]entities.AgentLog, 0, len(records))
	for _, rec := range records {
		result = append(result, entities.AgentLog{
			ID:        rec.ID,
			SessionID: normalize.Text(rec.Fields["Session ID"]),
			Cost:      normalize.ParseMoney(rec.Fields["Cost"]),
			Tokens:    normalize.Number(rec.Fields["Tokens"]),
			CreatedAt: normalize.Text(rec.Fields["Created At"]),
		})
	}
	return result, nil
}

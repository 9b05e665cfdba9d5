package sessions

import (
	"github.com/voicedash/airtable-proxy/app/domain/entities"
	"github.com/voicedash/airtable-proxy/app/internal/normalize"
	"github.com/voicedash/airtable-proxy/app/internal/resolver"
)

// Project maps one raw session record onto the canonical row shape. Pure:
// missing or malformed fields degrade to zero values, never errors, and the
// same record always projects to the same row.
func Project(rec entities.Record, index *resolver.CustomerIndex) entities.Session {
	fields := rec.Fields

	customerID, customerName := index.Resolve(resolver.ParseRef(fields["Customer"]))

	durationSec := normalize.Seconds(fields)
	minutes := normalize.ToMinutes(durationSec)
	totalCost := normalize.ParseMoney(fields["Total Cost"])

	// Guard the division: a zero-duration session must report 0, not Inf.
	avgCostPerMin := 0.0
	if minutes > 0 {
		avgCostPerMin = totalCost / minutes
	}

	return entities.Session{
		ID:                rec.ID,
		SessionID:         normalize.Text(fields["Session ID"]),
		CustomerID:        customerID,
		CustomerName:      customerName,
		StartTime:         normalize.Text(fields["Start Time"]),
		EndTime:           normalize.Text(fields["End Time"]),
		DurationSec:       durationSec,
		Minutes:           minutes,
		TotalCost:         totalCost,
		AvgCostPerMin:     avgCostPerMin,
		TotalAgentLogCost: normalize.ParseMoney(fields["Total Agent Log Cost"]),
		AvgTokensPerLog:   normalize.Number(fields["Avg Tokens per Log"]),
		Summary:           normalize.Text(fields["Summary"]),
		Sentiment:         normalize.Text(fields["Sentiment"]),
	}
}

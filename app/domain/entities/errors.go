package entities

import "errors"

// ErrUpstream marks any Airtable transport, auth or status failure. Callers
// never distinguish the causes; handlers collapse them to a fixed 500 body.
var ErrUpstream = errors.New("upstream request failed")

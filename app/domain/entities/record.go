package entities

// FieldBag holds the raw, untyped field values of one Airtable record as
// decoded from JSON. Keys are the upstream column names; values may be
// strings, numbers, booleans or arrays depending on the column type and the
// base configuration, so every read must type-switch and supply a default.
type FieldBag map[string]any

// Record is one row as returned by the Airtable list-records API.
type Record struct {
	ID     string   `json:"id"`
	Fields FieldBag `json:"fields"`
}

package entities

// Customer is the projected view of one record from the customers table.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	TrunkID string `json:"trunkId"`
}

// RefKind discriminates the representations Airtable uses for a linked
// "Customer" field: an array of record IDs when the column is a true link,
// or a bare display string when the base denormalizes it.
type RefKind int

const (
	RefAbsent RefKind = iota
	RefLinkedID
	RefDisplayName
)

// CustomerRef is the tagged form of a raw "Customer" field value. Exactly
// one of ID or Name is set, matching Kind.
type CustomerRef struct {
	Kind RefKind
	ID   string
	Name string
}

// Package resolver normalizes session→customer links. Depending on base
// configuration, Airtable renders a linked "Customer" field either as an
// array of record IDs or as a bare display string; the resolver maps both
// representations onto one (customerId, customerName) pair.
package resolver

import (
	"github.com/voicedash/airtable-proxy/app/domain/entities"
	"github.com/voicedash/airtable-proxy/app/internal/normalize"
)

// UnknownName is substituted when a customer cannot be resolved by ID.
const UnknownName = "Unknown"

// CustomerIndex holds bidirectional lookups over the customers table for
// one request.
type CustomerIndex struct {
	nameByID map[string]string
	idByName map[string]string
}

// NewCustomerIndex builds the id→name and name→id maps from the full
// customer record set. Duplicate display names are last-write-wins.
func NewCustomerIndex(customers []entities.Record) *CustomerIndex {
	ix := &CustomerIndex{
		nameByID: make(map[string]string, len(customers)),
		idByName: make(map[string]string, len(customers)),
	}
	for _, rec := range customers {
		name := normalize.Text(rec.Fields["Name"])
		ix.nameByID[rec.ID] = name
		if name != "" {
			ix.idByName[name] = rec.ID
		}
	}
	return ix
}

// ParseRef classifies a raw "Customer" field value. A non-empty array is a
// linked-record reference (only the first element counts); a non-empty
// string is a denormalized display name; anything else is absent.
func ParseRef(v any) entities.CustomerRef {
	switch ref := v.(type) {
	case []any:
		if len(ref) == 0 {
			return entities.CustomerRef{Kind: entities.RefAbsent}
		}
		return entities.CustomerRef{Kind: entities.RefLinkedID, ID: normalize.Text(ref[0])}
	case []string:
		if len(ref) == 0 {
			return entities.CustomerRef{Kind: entities.RefAbsent}
		}
		return entities.CustomerRef{Kind: entities.RefLinkedID, ID: ref[0]}
	case string:
		if ref == "" {
			return entities.CustomerRef{Kind: entities.RefAbsent}
		}
		return entities.CustomerRef{Kind: entities.RefDisplayName, Name: ref}
	default:
		return entities.CustomerRef{Kind: entities.RefAbsent}
	}
}

// Resolve returns the canonical (customerId, customerName) pair for a
// reference. Unresolvable IDs keep the ID and name "Unknown"; unresolvable
// names keep the name and an empty ID; absent references yield ("", Unknown).
func (ix *CustomerIndex) Resolve(ref entities.CustomerRef) (id, name string) {
	switch ref.Kind {
	case entities.RefLinkedID:
		name, ok := ix.nameByID[ref.ID]
		if !ok || name == "" {
			name = UnknownName
		}
		return ref.ID, name
	case entities.RefDisplayName:
		return ix.idByName[ref.Name], ref.Name
	default:
		return "", UnknownName
	}
}

package validator

import (
	"maps"
	"net/url"
)

// Record is a snapshot of submitted raw values keyed by field identifier.
type Record map[string]string

// RecordFromValues snapshots the first value of every key in values.
func RecordFromValues(values url.Values) Record {
	rec := make(Record, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			rec[key] = vals[0]
		} else {
			rec[key] = ""
		}
	}
	return rec
}

// Get returns the value for field, or an empty string when it was not submitted.
func (r Record) Get(field string) string {
	return r[field]
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}
	return maps.Clone(r)
}

package model

import (
	"sort"
	"strings"

	"github.com/caselog-dev/caselog/pkg/domain/types"
)

// Filter returns the ordered sub-sequence of records matching every
// supplied predicate. A predicate is a case-insensitive substring
// pattern on a text field; an empty pattern means no constraint on
// that field. With no effective predicates the input collection is
// returned unchanged.
func Filter(c Collection, predicates map[types.Field]string) Collection {
	active := make(map[types.Field]string, len(predicates))
	for f, pattern := range predicates {
		if pattern != "" {
			active[f] = strings.ToLower(pattern)
		}
	}
	if len(active) == 0 {
		return c
	}

	var matched []Record
	for _, r := range c.records {
		ok := true
		for f, pattern := range active {
			if !strings.Contains(strings.ToLower(r.Value(f)), pattern) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, r)
		}
	}
	return Collection{records: matched}
}

// CountWhere returns the number of records whose field exactly equals
// value (no substring matching).
func CountWhere(c Collection, field types.Field, value string) int {
	n := 0
	for _, r := range c.records {
		if r.Value(field) == value {
			n++
		}
	}
	return n
}

// GroupCount is one partition of a grouped count.
type GroupCount struct {
	Value string
	Count int
}

// GroupCounts partitions records by the exact value of field and
// returns counts per distinct value, ordered by descending count with
// ties broken by first appearance. This ordering drives the
// magnitude-sorted chart rendering. An empty collection yields an
// empty result.
func GroupCounts(c Collection, field types.Field) []GroupCount {
	index := make(map[string]int)
	var groups []GroupCount
	for _, r := range c.records {
		v := r.Value(field)
		if i, ok := index[v]; ok {
			groups[i].Count++
			continue
		}
		index[v] = len(groups)
		groups = append(groups, GroupCount{Value: v, Count: 1})
	}

	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	return groups
}

// Summary holds the dashboard metric tiles.
type Summary struct {
	Total          int `json:"total"`
	Complicated    int `json:"complicated"`
	PrimarySurgeon int `json:"primary_surgeon"`
}

// Summarize computes the metric tiles over the full collection.
func Summarize(c Collection) Summary {
	return Summary{
		Total:          c.Len(),
		Complicated:    CountWhere(c, types.FieldOutcome, types.OutcomeComplicated.String()),
		PrimarySurgeon: CountWhere(c, types.FieldMyRole, types.RolePrimarySurgeon.String()),
	}
}

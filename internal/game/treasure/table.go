// Package treasure generates the items a creature spawns with from weighted
// wielded treasure tables.
package treasure

import (
	"fmt"
	"math"
)

// Entry — одна строка таблицы wielded-сокровищ в порядке хранения.
//
// Rows are grouped into sets: a row with SetStart opens a new top-level set.
// A row with HasSubSet owns the rows that follow it as a nested subset, up to
// the next row marked ContinuesPreviousSet (which returns to the parent set)
// or SetStart.
type Entry struct {
	ClassID              uint32  `yaml:"class_id"`
	Palette              int32   `yaml:"palette"`
	Shade                float64 `yaml:"shade"`
	StackSize            int32   `yaml:"stack_size"`
	StackSizeVariance    float64 `yaml:"stack_size_variance"`
	Probability          float64 `yaml:"probability"`
	SetStart             bool    `yaml:"set_start"`
	HasSubSet            bool    `yaml:"has_subset"`
	ContinuesPreviousSet bool    `yaml:"continues_previous_set"`
}

// Item is a weighted entry with its optional subset.
type Item struct {
	Entry  Entry
	Subset *Set
}

// Set is a list of mutually exclusive weighted items.
type Set struct {
	Items            []Item
	TotalProbability float64
}

// Table is the tree built from one wielded treasure table.
type Table struct {
	ID   uint32
	Sets []*Set
}

// BuildTable groups flat entries into sets and subsets.
func BuildTable(id uint32, entries []Entry) (*Table, error) {
	for i, e := range entries {
		if e.Probability < 0 || math.IsNaN(e.Probability) || math.IsInf(e.Probability, 0) {
			return nil, fmt.Errorf("treasure table %d entry %d: invalid probability %v", id, i, e.Probability)
		}
		if e.StackSizeVariance < 0 || e.StackSizeVariance > 1 {
			return nil, fmt.Errorf("treasure table %d entry %d: stack size variance %v out of [0,1]", id, i, e.StackSizeVariance)
		}
	}

	t := &Table{ID: id}
	idx := 0
	for idx < len(entries) {
		t.Sets = append(t.Sets, parseSet(entries, &idx, 0))
	}
	return t, nil
}

func parseSet(entries []Entry, idx *int, depth int) *Set {
	s := &Set{}
	resumed := false
	for *idx < len(entries) {
		e := entries[*idx]
		if len(s.Items) > 0 {
			if e.SetStart {
				return s
			}
			// a row that continues the previous set closes exactly one subset
			if depth > 0 && e.ContinuesPreviousSet && !resumed {
				return s
			}
		}
		resumed = false
		*idx++

		item := Item{Entry: e}
		if e.HasSubSet && *idx < len(entries) && !entries[*idx].SetStart {
			item.Subset = parseSet(entries, idx, depth+1)
			resumed = true
		}
		s.Items = append(s.Items, item)
		s.TotalProbability += e.Probability
	}
	return s
}

// Depth returns the nesting depth of the set (1 for a set without subsets).
func (s *Set) Depth() int {
	d := 0
	for _, it := range s.Items {
		if it.Subset != nil {
			d = max(d, it.Subset.Depth())
		}
	}
	return d + 1
}

package service

import (
	"strings"

	"github.com/sangkips/drivedesk-api/internal/domain/entity"
)

// ItemGroups is an insertion-ordered mapping from uppercased line item
// description to the positions of the items carrying it. Insertion order is
// kept explicitly so grouped output is deterministic regardless of platform.
type ItemGroups struct {
	order   []string
	indices map[string][]int
}

// GroupLineItems groups invoice line items by uppercased description.
// Two items share a group iff their uppercased descriptions are equal;
// internal whitespace is significant. Membership order follows item order.
func GroupLineItems(items []entity.LineItem) *ItemGroups {
	g := &ItemGroups{indices: make(map[string][]int)}
	for i, item := range items {
		key := strings.ToUpper(item.Desc)
		if _, seen := g.indices[key]; !seen {
			g.order = append(g.order, key)
		}
		g.indices[key] = append(g.indices[key], i)
	}
	return g
}

// Keys returns the group keys in first-appearance order.
func (g *ItemGroups) Keys() []string {
	return g.order
}

// Indices returns the item positions belonging to the group, in item order.
func (g *ItemGroups) Indices(key string) []int {
	return g.indices[key]
}

// Size returns the number of items in the group, which is also the row span
// of the group's description cell.
func (g *ItemGroups) Size(key string) int {
	return len(g.indices[key])
}

// Cell returns the description cell for the item at the given position, or
// nil when the row is covered by an earlier row's span. Only the first item
// of a group carries the cell; its span equals the group size.
func (g *ItemGroups) Cell(desc string, index int) *entity.DescriptionCell {
	key := strings.ToUpper(desc)
	members := g.indices[key]
	if len(members) == 0 || members[0] != index {
		return nil
	}
	return &entity.DescriptionCell{Text: key, Span: len(members)}
}

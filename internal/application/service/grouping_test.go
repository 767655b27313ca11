package service

import (
	"reflect"
	"testing"

	"github.com/sangkips/drivedesk-api/internal/domain/entity"
)

func TestGroupLineItemsMergesByUppercasedDescription(t *testing.T) {
	t.Parallel()

	items := []entity.LineItem{
		{Desc: "A"},
		{Desc: "B"},
		{Desc: "a"},
	}

	groups := GroupLineItems(items)

	if got := groups.Keys(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("keys = %v, want [A B]", got)
	}
	if got := groups.Indices("A"); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("indices(A) = %v, want [0 2]", got)
	}
	if got := groups.Indices("B"); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("indices(B) = %v, want [1]", got)
	}
	if got := groups.Size("A"); got != 2 {
		t.Fatalf("size(A) = %d, want 2", got)
	}
}

func TestGroupLineItemsSpansAndFirstRows(t *testing.T) {
	t.Parallel()

	items := []entity.LineItem{
		{Desc: "A"},
		{Desc: "B"},
		{Desc: "A"},
	}

	groups := GroupLineItems(items)

	cell := groups.Cell("A", 0)
	if cell == nil || cell.Text != "A" || cell.Span != 2 {
		t.Fatalf("cell(A, 0) = %+v, want {A 2}", cell)
	}
	if cell := groups.Cell("A", 2); cell != nil {
		t.Fatalf("cell(A, 2) = %+v, want nil (covered by row 0's span)", cell)
	}
	cell = groups.Cell("B", 1)
	if cell == nil || cell.Text != "B" || cell.Span != 1 {
		t.Fatalf("cell(B, 1) = %+v, want {B 1}", cell)
	}
}

func TestGroupLineItemsKeepsInternalWhitespaceSignificant(t *testing.T) {
	t.Parallel()

	items := []entity.LineItem{
		{Desc: "road test"},
		{Desc: "road  test"},
	}

	groups := GroupLineItems(items)
	if got := len(groups.Keys()); got != 2 {
		t.Fatalf("got %d groups, want 2 (internal whitespace must not be collapsed)", got)
	}
}

package catalog

import "tarkov_trader/internal/domain/entity"

// View is what a presentation layer renders for one query.
type View struct {
	Query   string
	Preview bool
	Items   []entity.ResolvedItem
	Matched int
	Total   int
}

// DeriveView filters and sorts the snapshot for query. It is pure and cheap
// enough to run on every keystroke.
func DeriveView(snapshot *entity.Snapshot, query string, opts SortOptions) View {
	var items []entity.ResolvedItem
	if snapshot != nil {
		items = snapshot.Items
	}

	found := SortItems(Search(items, query), opts)

	return View{
		Query:   query,
		Preview: IsEmptyQuery(query),
		Items:   found,
		Matched: len(found),
		Total:   len(items),
	}
}

package queries

// GetMenuQuery asks for the full catalog of orderable items. The query has
// no parameters, so no constructor guard is needed.
type GetMenuQuery struct{}

// NewGetMenuQuery creates the query.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{}
}

// MenuItemResponse is one catalog entry in the menu listing.
type MenuItemResponse struct {
	Name  string
	Price float64
}

// GetMenuQueryResponse is the full menu listing, ordered by item name.
type GetMenuQueryResponse struct {
	Items []MenuItemResponse
}

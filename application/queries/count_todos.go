package queries

// CountTodosQuery asks for the number of stored records
type CountTodosQuery struct{}

// Validate validates the CountTodosQuery
func (q CountTodosQuery) Validate() error {
	return nil
}

// CountTodosResult holds the store size
type CountTodosResult struct {
	Count int `json:"count"`
}

package entities

import "strconv"

// Todo is a single to-do record.
//
// ID is supplied by the caller and is the lookup key. Nothing enforces its
// presence or uniqueness: a body without an id stores 0, and two records may
// share an id.
//
// The optional fields are pointers so an absent field stays absent on
// output while an explicit "" or false is echoed back as sent.
type Todo struct {
	ID          int     `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Key returns the id in string form, used as the event aggregate id.
func (t Todo) Key() string {
	return strconv.Itoa(t.ID)
}

// HasID reports whether the record carries the given id
func (t Todo) HasID(id int) bool {
	return t.ID == id
}

// Clone returns a copy that shares no pointers with t
func (t Todo) Clone() Todo {
	out := Todo{ID: t.ID}
	if t.Title != nil {
		title := *t.Title
		out.Title = &title
	}
	if t.Description != nil {
		description := *t.Description
		out.Description = &description
	}
	if t.Completed != nil {
		completed := *t.Completed
		out.Completed = &completed
	}
	return out
}

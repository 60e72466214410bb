package model

// Category is a user-defined classification bucket. Its rules are ordered:
// the classifier fires on the first rule that matches, so rule order within
// a category and category order within the registry both carry priority.
type Category struct {
	GroupID *int     `json:"group_id"`
	Name    string   `json:"name"`
	Color   string   `json:"color"`
	Rules   []string `json:"rules"`
	ID      int      `json:"id"`
	// ShowUpAsGroup additionally surfaces this category as a pseudo-group
	// in the group report, on top of its contribution to its real group.
	ShowUpAsGroup bool `json:"show_up_as_group"`
}

// Group is a named bucket that categories may reference for reporting.
type Group struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	ID    int    `json:"id"`
}

// UnassignedName is the label used for transactions without a category.
const UnassignedName = "UNK"

// UnassignedColor is the color used for the unassigned placeholder.
const UnassignedColor = "#dddddd"

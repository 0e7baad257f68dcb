package domain

// Category represents a named, colored grouping a task may belong to.
// Color is an opaque display token; the store never interprets it.
// IsDefault marks seed categories that the UI refuses to delete. This
// is a presentation policy, not a storage constraint.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// CategoryUpdate describes a partial update to a category.
// Nil fields are left untouched.
type CategoryUpdate struct {
	Name  *string
	Color *string
}

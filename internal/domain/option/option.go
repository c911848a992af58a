// Package option holds the select-list shapes the console builds from backend lists.
package option

// SelectOption is one entry of a form select.
type SelectOption struct {
	Value string                 `json:"value"`
	Label string                 `json:"label"`
	Extra map[string]interface{} `json:"extra,omitempty"`
}

package series

import "fmt"

// Kinds of lookups that can miss.
const (
	KindSeries    = "series"
	KindTab       = "tab"
	KindChart     = "chart"
	KindFormatter = "tooltip formatter"
)

// NotFoundError reports a lookup of an unregistered id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not registered", e.Kind, e.ID)
}

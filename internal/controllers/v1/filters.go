package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// descriptionFilter filters a query by the description of the records.
//
// A non-empty description matches as substring. An explicitly empty one
// matches records without a description.
func descriptionFilter(query *gorm.DB, setFields []string, description string) *gorm.DB {
	if description != "" {
		query = query.Where("description LIKE ?", fmt.Sprintf("%%%s%%", description))
	} else if slices.Contains(setFields, "Description") {
		query = query.Where("description = ''")
	}

	return query
}

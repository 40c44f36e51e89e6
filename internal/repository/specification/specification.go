package specification

import "gorm.io/gorm"

// Specification is a composable query predicate. Repositories apply every
// specification they receive in order, AND-composing the result.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by primary key
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ExcludeID drops a single row by primary key, e.g. the requester's own
// profile in a match query.
type ExcludeID struct {
	ID uuid.UUID
}

func (s ExcludeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id <> ?", s.ID)
}

// FilterBy is a generic column equality filter
type FilterBy struct {
	Field string
	Value interface{}
}

func (s FilterBy) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("%s = ?", s.Field)
	return db.Where(query, s.Value)
}

func Filter(field string, value interface{}) Specification {
	return FilterBy{Field: field, Value: value}
}

// Between is an inclusive closed-range filter on a numeric column.
type Between struct {
	Field string
	Min   interface{}
	Max   interface{}
}

func (s Between) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("%s BETWEEN ? AND ?", s.Field)
	return db.Where(query, s.Min, s.Max)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}

// SearchLike matches a term against any of the given columns with LIKE,
// backing the admin free-text search boxes.
type SearchLike struct {
	Fields []string
	Term   string
}

func (s SearchLike) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Fields) == 0 || s.Term == "" {
		return db
	}
	pattern := "%" + s.Term + "%"
	query := db.Session(&gorm.Session{NewDB: true})
	clause := query.Where(fmt.Sprintf("%s LIKE ?", s.Fields[0]), pattern)
	for _, f := range s.Fields[1:] {
		clause = clause.Or(fmt.Sprintf("%s LIKE ?", f), pattern)
	}
	return db.Where(clause)
}

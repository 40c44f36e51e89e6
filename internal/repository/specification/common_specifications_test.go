package specification

import (
	"strings"
	"testing"

	"viwahaa-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("opening dry-run db: %v", err)
	}
	return db
}

func buildSQL(t *testing.T, specs ...Specification) (string, []interface{}) {
	t.Helper()
	db := dryRunDB(t).Model(&model.Customer{})
	for _, s := range specs {
		db = s.Apply(db)
	}
	var rows []model.Customer
	stmt := db.Find(&rows).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestBetweenIsInclusive(t *testing.T) {
	sql, vars := buildSQL(t, Between{Field: "age", Min: 25.0, Max: 31.0})

	if !strings.Contains(sql, "age BETWEEN ? AND ?") {
		t.Errorf("sql = %q, want it to contain inclusive BETWEEN", sql)
	}
	if len(vars) != 2 || vars[0] != 25.0 || vars[1] != 31.0 {
		t.Errorf("vars = %v, want [25 31]", vars)
	}
}

func TestExcludeID(t *testing.T) {
	id := uuid.New()
	sql, vars := buildSQL(t, ExcludeID{ID: id})

	if !strings.Contains(sql, "id <> ?") {
		t.Errorf("sql = %q, want it to contain id <> ?", sql)
	}
	if len(vars) != 1 || vars[0] != id {
		t.Errorf("vars = %v, want [%s]", vars, id)
	}
}

func TestFilterByAndsAcrossSpecs(t *testing.T) {
	sql, vars := buildSQL(t,
		FilterBy{Field: "cast", Value: "Vellalar"},
		FilterBy{Field: "religion", Value: "Hindu"},
	)

	if !strings.Contains(sql, "cast = ?") || !strings.Contains(sql, "religion = ?") {
		t.Errorf("sql = %q, want both equality predicates", sql)
	}
	if !strings.Contains(sql, "AND") {
		t.Errorf("sql = %q, want predicates joined with AND", sql)
	}
	if len(vars) != 2 {
		t.Errorf("vars = %v, want two bindings", vars)
	}
}

func TestSearchLikeOrsAcrossFields(t *testing.T) {
	sql, vars := buildSQL(t, SearchLike{
		Fields: []string{"first_name", "last_name", "member_id"},
		Term:   "arun",
	})

	for _, fragment := range []string{"first_name LIKE ?", "last_name LIKE ?", "member_id LIKE ?"} {
		if !strings.Contains(sql, fragment) {
			t.Errorf("sql = %q, want it to contain %q", sql, fragment)
		}
	}
	if !strings.Contains(sql, "OR") {
		t.Errorf("sql = %q, want fields joined with OR", sql)
	}
	for _, v := range vars {
		if v != "%arun%" {
			t.Errorf("var = %v, want wrapped pattern %%arun%%", v)
		}
	}
}

func TestSearchLikeNoTermIsNoop(t *testing.T) {
	sql, _ := buildSQL(t, SearchLike{Fields: []string{"first_name"}, Term: ""})
	if strings.Contains(sql, "LIKE") {
		t.Errorf("sql = %q, want no LIKE predicate for empty term", sql)
	}
}

func TestOrderByDirection(t *testing.T) {
	sql, _ := buildSQL(t, OrderBy{Field: "created_at", Desc: true})
	if !strings.Contains(sql, "created_at DESC") {
		t.Errorf("sql = %q, want created_at DESC", sql)
	}

	sql, _ = buildSQL(t, OrderBy{Field: "timestamp", Desc: false})
	if !strings.Contains(sql, "timestamp ASC") {
		t.Errorf("sql = %q, want timestamp ASC", sql)
	}
}

func TestPagination(t *testing.T) {
	sql, _ := buildSQL(t, Pagination{Limit: 20, Offset: 40})
	if !strings.Contains(sql, "LIMIT") || !strings.Contains(sql, "OFFSET") {
		t.Errorf("sql = %q, want LIMIT and OFFSET", sql)
	}
}

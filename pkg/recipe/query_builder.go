package recipe

import (
	"regexp"
	"strconv"
	"strings"

	"recipe-catalog/domain"
)

// CompareOp is the comparison parsed from a numeric filter prefix.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpGte
	OpLte
	OpGt
	OpLt
)

func (op CompareOp) SQL() string {
	switch op {
	case OpGte:
		return ">="
	case OpLte:
		return "<="
	case OpGt:
		return ">"
	case OpLt:
		return "<"
	default:
		return "="
	}
}

// ParseComparison splits an optional operator prefix off a filter value.
// Prefixes are checked longest first so ">=" is never read as ">" plus "=".
// A bare value means equality.
func ParseComparison(raw string) (CompareOp, string) {
	raw = strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(raw, ">="):
		return OpGte, strings.TrimSpace(raw[2:])
	case strings.HasPrefix(raw, "<="):
		return OpLte, strings.TrimSpace(raw[2:])
	case strings.HasPrefix(raw, ">"):
		return OpGt, strings.TrimSpace(raw[1:])
	case strings.HasPrefix(raw, "<"):
		return OpLt, strings.TrimSpace(raw[1:])
	case strings.HasPrefix(raw, "="):
		return OpEq, strings.TrimSpace(raw[1:])
	default:
		return OpEq, raw
	}
}

// SearchFilter holds the raw filter values for a search. Empty fields
// contribute no condition; unparseable numeric payloads are dropped.
type SearchFilter struct {
	Title     string
	Cuisine   string
	Rating    string
	TotalTime string
	Calories  string
}

// Condition pairs a SQL fragment containing a single placeholder with the
// value bound to it. Filter values never reach the query text directly.
type Condition struct {
	Expr string
	Arg  any
}

var leadingDigits = regexp.MustCompile(`[0-9]+`)

// BuildConditions compiles a filter into AND-combined conditions. The same
// slice drives both the count query and the data query so the reported
// total always matches the filtered set.
func (f SearchFilter) BuildConditions() []Condition {
	var conds []Condition

	if f.Title != "" {
		conds = append(conds, Condition{Expr: "title ILIKE ?", Arg: "%" + f.Title + "%"})
	}
	if f.Cuisine != "" {
		conds = append(conds, Condition{Expr: "cuisine ILIKE ?", Arg: "%" + f.Cuisine + "%"})
	}

	if f.Rating != "" {
		op, rest := ParseComparison(f.Rating)
		if v, err := strconv.ParseFloat(rest, 64); err == nil {
			conds = append(conds, Condition{Expr: "rating " + op.SQL() + " ?", Arg: v})
		}
	}

	if f.TotalTime != "" {
		op, rest := ParseComparison(f.TotalTime)
		if v, err := strconv.Atoi(rest); err == nil {
			conds = append(conds, Condition{Expr: "total_time " + op.SQL() + " ?", Arg: v})
		}
	}

	if f.Calories != "" {
		op, rest := ParseComparison(f.Calories)
		// Calories live inside the nutrients blob as free text like
		// "389 kcal"; compare on the leading digit run of the stored
		// value. A filter value without digits contributes nothing.
		if digits := leadingDigits.FindString(rest); digits != "" {
			if v, err := strconv.Atoi(digits); err == nil {
				conds = append(conds, Condition{
					Expr: "(substring(nutrients->>'calories' from '^[0-9]+'))::numeric " + op.SQL() + " ?",
					Arg:  v,
				})
			}
		}
	}

	return conds
}

// NormalizePagination applies the shared page/limit rules: defaults for
// missing or invalid values and a hard ceiling on the page size.
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = domain.DefaultPage
	}
	if limit < 1 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}
	return page, limit
}

package graphql

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// Wire formats match the backends: timestamps are naive UTC, dates are
// plain calendar dates.
const (
	dateTimeLayout = "2006-01-02T15:04:05"
	dateLayout     = "2006-01-02"
)

// dateTimeType is a naive UTC timestamp scalar. RFC3339 input is accepted
// and normalized to UTC before the zone is dropped.
var dateTimeType = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "DateTime",
	Description: "A naive UTC timestamp, formatted 2006-01-02T15:04:05.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case time.Time:
			return v.UTC().Format(dateTimeLayout)
		case *time.Time:
			if v == nil {
				return nil
			}
			return v.UTC().Format(dateTimeLayout)
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		return parseDateTime(s)
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		lit, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}
		return parseDateTime(lit.Value)
	},
})

// dateType is a calendar date scalar.
var dateType = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Date",
	Description: "A calendar date, formatted 2006-01-02.",
	Serialize: func(value interface{}) interface{} {
		if t, ok := value.(time.Time); ok {
			return t.Format(dateLayout)
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		return parseDate(s)
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		lit, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}
		return parseDate(lit.Value)
	},
})

// parseDateTime returns a time.Time or nil; a nil return makes the library
// report a coercion error to the client.
func parseDateTime(s string) interface{} {
	if t, err := time.Parse(dateTimeLayout, s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	return nil
}

func parseDate(s string) interface{} {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return t
}

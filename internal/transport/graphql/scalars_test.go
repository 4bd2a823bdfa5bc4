package graphql

import (
	"testing"
	"time"

	"github.com/graphql-go/graphql/language/ast"
)

func TestDateTimeSerialize(t *testing.T) {
	t.Parallel()

	utc := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	if got := dateTimeType.Serialize(utc); got != "2024-03-01T12:30:00" {
		t.Errorf("Serialize(time) = %v", got)
	}

	// Zoned values are normalized before the zone is dropped.
	zoned := time.Date(2024, 3, 1, 14, 30, 0, 0, time.FixedZone("UTC+2", 2*60*60))
	if got := dateTimeType.Serialize(zoned); got != "2024-03-01T12:30:00" {
		t.Errorf("Serialize(zoned) = %v", got)
	}

	if got := dateTimeType.Serialize(&utc); got != "2024-03-01T12:30:00" {
		t.Errorf("Serialize(*time) = %v", got)
	}

	var nilTime *time.Time
	if got := dateTimeType.Serialize(nilTime); got != nil {
		t.Errorf("Serialize(nil *time) = %v, want nil", got)
	}

	if got := dateTimeType.Serialize("not a time"); got != nil {
		t.Errorf("Serialize(string) = %v, want nil", got)
	}
}

func TestDateTimeParseValue(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	got, ok := dateTimeType.ParseValue("2024-03-01T12:30:00").(time.Time)
	if !ok || !got.Equal(want) {
		t.Errorf("ParseValue(naive) = %v", got)
	}

	got, ok = dateTimeType.ParseValue("2024-03-01T14:30:00+02:00").(time.Time)
	if !ok || !got.Equal(want) {
		t.Errorf("ParseValue(rfc3339) = %v", got)
	}

	if got := dateTimeType.ParseValue("garbage"); got != nil {
		t.Errorf("ParseValue(garbage) = %v, want nil", got)
	}
	if got := dateTimeType.ParseValue(42); got != nil {
		t.Errorf("ParseValue(int) = %v, want nil", got)
	}
}

func TestDateTimeParseLiteral(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	lit := &ast.StringValue{Value: "2024-03-01T12:30:00"}
	got, ok := dateTimeType.ParseLiteral(lit).(time.Time)
	if !ok || !got.Equal(want) {
		t.Errorf("ParseLiteral = %v", got)
	}

	if got := dateTimeType.ParseLiteral(&ast.IntValue{Value: "42"}); got != nil {
		t.Errorf("ParseLiteral(int literal) = %v, want nil", got)
	}
}

func TestDateScalar(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := dateType.Serialize(day); got != "2024-03-01" {
		t.Errorf("Serialize = %v", got)
	}

	got, ok := dateType.ParseValue("2024-03-01").(time.Time)
	if !ok || !got.Equal(day) {
		t.Errorf("ParseValue = %v", got)
	}

	if got := dateType.ParseValue("03/01/2024"); got != nil {
		t.Errorf("ParseValue(us format) = %v, want nil", got)
	}

	lit, ok := dateType.ParseLiteral(&ast.StringValue{Value: "2024-03-01"}).(time.Time)
	if !ok || !lit.Equal(day) {
		t.Errorf("ParseLiteral = %v", lit)
	}
}

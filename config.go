package datatable

import (
	"errors"
	"reflect"
	"time"
)

var (
	// DefaultStructFieldNaming provides the default StructFieldNaming
	// using "col" as column name tag, ignores "-" named fields,
	// and uses SpacePascalCase for untagged fields.
	DefaultStructFieldNaming = StructFieldNaming{
		Tag:      "col",
		Ignore:   "-",
		Untagged: SpacePascalCase,
	}

	// DefaultStructFieldNamingIgnoreUntagged provides the default StructFieldNaming
	// using "col" as column name tag, ignores "-" named as well as untagged fields.
	DefaultStructFieldNamingIgnoreUntagged = StructFieldNaming{
		Tag:      "col",
		Ignore:   "-",
		Untagged: UseTitle("-"),
	}

	// DefaultTimeFormat is used by DefaultFormatters for time.Time values.
	DefaultTimeFormat = "2006-01-02 15:04:05"

	// DefaultFormatters formats time.Time with DefaultTimeFormat,
	// time.Duration with its String method and bool as "yes" or "no".
	DefaultFormatters = new(TypeFormatters).
				WithTypeFormatter(typeOfTime, FormatterFunc(formatTime)).
				WithTypeFormatter(typeOfDuration, FormatterFunc(formatDuration)).
				WithKindFormatter(reflect.Bool, FormatterFunc(formatBool))

	// DefaultStructRowConverter uses DefaultStructFieldNaming
	// and DefaultFormatters and displays nil values as empty strings.
	DefaultStructRowConverter = &StructRowConverter{
		Naming:     &DefaultStructFieldNaming,
		Formatters: DefaultFormatters,
	}
)

var (
	typeOfTime     = reflect.TypeOf(time.Time{})
	typeOfDuration = reflect.TypeOf(time.Duration(0))
)

func formatTime(v reflect.Value) (string, error) {
	if !v.CanInterface() {
		return "", errors.ErrUnsupported
	}
	t := v.Interface().(time.Time)
	if t.IsZero() {
		return "", nil
	}
	return t.Format(DefaultTimeFormat), nil
}

func formatDuration(v reflect.Value) (string, error) {
	return time.Duration(v.Int()).String(), nil
}

func formatBool(v reflect.Value) (string, error) {
	if v.Bool() {
		return "yes", nil
	}
	return "no", nil
}

package datatable

import (
	"errors"
	"fmt"
	"reflect"
)

// Formatter converts a reflect.Value to the string displayed in a Cell.
//
// Example usage:
//
//	formatter := FormatterFunc(func(v reflect.Value) (string, error) {
//	    if v.Kind() == reflect.Int {
//	        return fmt.Sprintf("#%d", v.Int()), nil
//	    }
//	    return "", errors.ErrUnsupported
//	})
//	str, err := formatter.Format(reflect.ValueOf(42))
//	// str == "#42"
type Formatter interface {
	// Format converts a reflect.Value to its string representation.
	// Returns errors.ErrUnsupported if the formatter doesn't support the value's type.
	Format(reflect.Value) (string, error)
}

// FormatterFunc is a function type that implements the Formatter interface.
type FormatterFunc func(reflect.Value) (string, error)

// Format implements the Formatter interface by calling the function itself.
func (f FormatterFunc) Format(v reflect.Value) (string, error) {
	return f(v)
}

// SprintFormatter is a universal Formatter that uses fmt.Sprint to format any value.
// It never returns an error.
type SprintFormatter struct{}

// Format implements Formatter by using fmt.Sprint on the underlying Go value.
func (SprintFormatter) Format(v reflect.Value) (string, error) {
	return fmt.Sprint(v.Interface()), nil
}

// UnsupportedFormatter is a Formatter that always returns errors.ErrUnsupported.
// Useful to explicitly mark types as unsupported in a TypeFormatters
// so that the fallback formatting is used.
type UnsupportedFormatter struct{}

// Format implements Formatter by always returning errors.ErrUnsupported.
func (UnsupportedFormatter) Format(v reflect.Value) (string, error) {
	return "", errors.ErrUnsupported
}

// PrintfFormatter implements Formatter by calling
// fmt.Sprintf with this type's string value as format.
type PrintfFormatter string

func (format PrintfFormatter) Format(v reflect.Value) (string, error) {
	return fmt.Sprintf(string(format), v.Interface()), nil
}

// FormatValue returns the string for a cell displaying val.
//
// The formatter is tried first, it may be nil.
// If it returns errors.ErrUnsupported, then nil values are displayed
// as nilValue, pointers are dereferenced and everything else
// is formatted with fmt.Sprint.
// Other errors are displayed as error text because
// a row conversion can't fail.
func FormatValue(val reflect.Value, formatter Formatter, nilValue string) string {
	if formatter != nil && val.IsValid() {
		str, err := formatter.Format(val)
		if err == nil {
			return str
		}
		if !errors.Is(err, errors.ErrUnsupported) {
			Logger().Debug("can't format value", "type", val.Type().String(), "err", err)
			return err.Error()
		}
	}
	if ValueIsNil(val) {
		return nilValue
	}
	for val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface {
		val = val.Elem()
		if ValueIsNil(val) {
			return nilValue
		}
		if formatter != nil {
			if str, err := formatter.Format(val); err == nil {
				return str
			}
		}
	}
	if !val.CanInterface() {
		return fmt.Sprint(val)
	}
	return fmt.Sprint(val.Interface())
}

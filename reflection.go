package datatable

import (
	"go/token"
	"reflect"
	"slices"
	"strings"
	"unicode"
)

// StructFieldTypes returns the exported fields of a struct type
// including the inlined fields of any anonymously embedded structs.
// An embedded struct that already embeds it on the path
// from structType is not inlined again.
func StructFieldTypes(structType reflect.Type) (fields []reflect.StructField) {
	return structFieldTypes(structType, nil)
}

func structFieldTypes(structType reflect.Type, path []reflect.Type) (fields []reflect.StructField) {
	structType = derefType(structType)
	path = append(path, structType)
	for i := range structType.NumField() {
		field := structType.Field(i)
		switch {
		case field.Anonymous && derefType(field.Type).Kind() == reflect.Struct:
			if slices.Contains(path, derefType(field.Type)) {
				continue
			}
			fields = append(fields, structFieldTypes(field.Type, path)...)
		case token.IsExported(field.Name):
			fields = append(fields, field)
		}
	}
	return fields
}

// StructFieldValues returns the reflect.Value of exported struct fields
// including the inlined fields of any anonymously embedded structs
// in the same order as StructFieldTypes.
//
// A nil pointer to an embedded struct results in invalid
// reflect.Value entries for its fields.
func StructFieldValues(structValue reflect.Value) (values []reflect.Value) {
	return structFieldValues(structValue, nil)
}

func structFieldValues(structValue reflect.Value, path []reflect.Type) (values []reflect.Value) {
	if structValue.Kind() == reflect.Ptr {
		if structValue.IsNil() {
			for range structFieldTypes(structValue.Type(), path) {
				values = append(values, reflect.Value{})
			}
			return values
		}
		structValue = structValue.Elem()
	}
	structType := structValue.Type()
	path = append(path, structType)
	for i := range structType.NumField() {
		field := structType.Field(i)
		switch {
		case field.Anonymous && derefType(field.Type).Kind() == reflect.Struct:
			if slices.Contains(path, derefType(field.Type)) {
				continue
			}
			values = append(values, structFieldValues(structValue.Field(i), path)...)
		case token.IsExported(field.Name):
			values = append(values, structValue.Field(i))
		}
	}
	return values
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// SpacePascalCase inserts spaces before upper case
// characters within PascalCase like names.
// It also replaces underscore '_' characters with spaces.
// Usable for StructFieldNaming.Untagged
func SpacePascalCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	lastWasUpper := true
	lastWasSpace := true
	for _, r := range name {
		if r == '_' {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasUpper = false
			lastWasSpace = true
			continue
		}
		isUpper := unicode.IsUpper(r)
		if isUpper && !lastWasUpper && !lastWasSpace {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		lastWasUpper = isUpper
		lastWasSpace = unicode.IsSpace(r)
	}
	return strings.TrimSpace(b.String())
}

// UseTitle returns a function that
// always returns the passed columnTitle.
func UseTitle(columnTitle string) func(fieldName string) (columnTitle string) {
	return func(string) string { return columnTitle }
}

// ValueIsNil return true if passed reflect.Value
// is not valid, nil (of a type that can be nil),
// or is of type struct{}
func ValueIsNil(val reflect.Value) bool {
	if !val.IsValid() {
		return true
	}
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return val.IsNil()
	case reflect.Struct:
		if t := val.Type(); t.NumField() == 0 && t.NumMethod() == 0 {
			// Treat a value of type struct{} like nil
			return true
		}
	}
	return false
}

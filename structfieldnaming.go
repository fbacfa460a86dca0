package datatable

import (
	"fmt"
	"reflect"
	"strings"
)

// StructFieldNaming defines how struct fields
// are mapped to column names as used by StructRowConverter.
//
// nil is a valid value for *StructFieldNaming
// and is equal to the zero value
// which will use all exported struct fields
// with their field name as column name.
type StructFieldNaming struct {
	// Tag is the struct field tag to be used as column name.
	// If Tag is empty, then every struct field will be treated as untagged.
	Tag string
	// Ignore is a column name that results in
	// the struct field not being displayed.
	Ignore string
	// Untagged will be called with the struct field name to
	// return a column name in case the struct field has no tag named Tag.
	// If Untagged is nil, then the struct field name will be used.
	Untagged func(fieldName string) (column string)
}

// String implements the fmt.Stringer interface for StructFieldNaming.
func (n *StructFieldNaming) String() string {
	if n == nil {
		return `StructFieldNaming{Tag: "", Ignore: ""}`
	}
	return fmt.Sprintf("StructFieldNaming{Tag: %#v, Ignore: %#v}", n.Tag, n.Ignore)
}

// StructFieldColumn returns the column name for a struct field.
func (n *StructFieldNaming) StructFieldColumn(structField reflect.StructField) string {
	if n == nil {
		return structField.Name
	}
	if n.Tag != "" {
		if tag, ok := structField.Tag.Lookup(n.Tag); ok {
			if i := strings.IndexByte(tag, ','); i != -1 {
				tag = tag[:i]
			}
			if tag != "" {
				return tag
			}
		}
	}
	if n.Untagged == nil {
		return structField.Name
	}
	return n.Untagged(structField.Name)
}

// IsIgnored returns true if column is the Ignore name.
// Empty column names are always ignored.
func (n *StructFieldNaming) IsIgnored(column string) bool {
	if column == "" {
		return true
	}
	return n != nil && n.Ignore != "" && column == n.Ignore
}

// Columns returns the names of all not ignored columns
// of the struct type of strct.
// strct can also be a reflect.Type or reflect.Value of a struct.
func (n *StructFieldNaming) Columns(strct any) []string {
	structType := structTypeOf(strct)
	if structType == nil {
		return nil
	}
	fields := StructFieldTypes(structType)
	columns := make([]string, 0, len(fields))
	for _, field := range fields {
		column := n.StructFieldColumn(field)
		if n.IsIgnored(column) {
			continue
		}
		columns = append(columns, column)
	}
	return columns
}

// ColumnStructFieldValue returns the value of the struct field
// with the passed column name or an invalid reflect.Value
// if there is no such field.
func (n *StructFieldNaming) ColumnStructFieldValue(strct reflect.Value, column string) reflect.Value {
	if n.IsIgnored(column) {
		return reflect.Value{}
	}
	fields := StructFieldTypes(strct.Type())
	values := StructFieldValues(strct)
	for i, field := range fields {
		if n.StructFieldColumn(field) == column {
			return values[i]
		}
	}
	return reflect.Value{}
}

func structTypeOf(strct any) reflect.Type {
	var t reflect.Type
	switch x := strct.(type) {
	case nil:
		return nil
	case reflect.Type:
		t = x
	case reflect.Value:
		if !x.IsValid() {
			return nil
		}
		t = x.Type()
	default:
		t = reflect.TypeOf(strct)
	}
	t = derefType(t)
	if t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

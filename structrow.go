package datatable

import (
	"reflect"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// StructRowConverter converts struct values to rows using reflection.
//
// Struct fields are matched to columns by the column name
// defined by Naming, see DataColumn.FieldName.
// A nil *StructRowConverter uses the settings of DefaultStructRowConverter.
type StructRowConverter struct {
	Naming     *StructFieldNaming
	Formatters *TypeFormatters
	// NilValue is displayed for nil pointers and other nil values.
	NilValue string
}

func (c *StructRowConverter) orDefault() *StructRowConverter {
	if c == nil {
		return DefaultStructRowConverter
	}
	return c
}

// Columns returns a left aligned DataColumn for every
// not ignored field of the struct type of strct.
func (c *StructRowConverter) Columns(strct any) []DataColumn {
	c = c.orDefault()
	names := c.Naming.Columns(strct)
	if names == nil {
		return nil
	}
	return NewColumns(names...)
}

// Row returns the Row for strct which can be a struct,
// a pointer to a struct or a reflect.Value of those.
//
// If columns is empty then a cell is returned
// for every not ignored struct field.
// Columns without a matching struct field result in empty cells.
// Values that are not structs result in a single cell
// containing the formatted value.
func (c *StructRowConverter) Row(strct any, columns []DataColumn, styling *Styling, index int) Row {
	c = c.orDefault()
	v, ok := strct.(reflect.Value)
	if !ok {
		v = reflect.ValueOf(strct)
	}
	rowStyle := styling.RowStyle(index)

	structVal := v
	for structVal.Kind() == reflect.Ptr && !structVal.IsNil() {
		structVal = structVal.Elem()
	}
	if structVal.Kind() != reflect.Struct {
		content := c.format(v)
		if len(columns) == 0 {
			return NewRow(content).WithStyle(rowStyle)
		}
		cells := make([]Cell, len(columns))
		cells[0] = c.cell(content, &columns[0])
		for col := 1; col < len(columns); col++ {
			cells[col] = c.cell("", &columns[col])
		}
		return NewStyledRow(rowStyle, cells...)
	}

	if len(columns) == 0 {
		fields := StructFieldTypes(structVal.Type())
		values := StructFieldValues(structVal)
		cells := make([]Cell, 0, len(fields))
		for i, field := range fields {
			if c.Naming.IsIgnored(c.Naming.StructFieldColumn(field)) {
				continue
			}
			cells = append(cells, NewCell(c.format(values[i])))
		}
		return NewStyledRow(rowStyle, cells...)
	}

	cells := make([]Cell, len(columns))
	for col := range columns {
		column := &columns[col]
		name := column.FieldName()
		if name == RowNumberField {
			cells[col] = c.cell(strconv.Itoa(index+1), column)
			continue
		}
		val := c.Naming.ColumnStructFieldValue(structVal, name)
		if !val.IsValid() {
			Logger().Debug("no struct field for column", "column", name, "type", structVal.Type().String())
			cells[col] = c.cell("", column)
			continue
		}
		cells[col] = c.cell(c.format(val), column)
	}
	return NewStyledRow(rowStyle, cells...)
}

func (c *StructRowConverter) format(val reflect.Value) string {
	return FormatValue(val, c.Formatters, c.NilValue)
}

func (c *StructRowConverter) cell(content string, column *DataColumn) Cell {
	style := lipgloss.NewStyle()
	if column.Align != lipgloss.Left {
		style = style.Align(column.Align)
	}
	return Cell{Content: content, Style: style}
}

// StructRow wraps a struct value of type T
// to implement ToDataRow using DefaultStructRowConverter.
type StructRow[T any] struct {
	Value T
}

func (r StructRow[T]) ToDataRow(columns []DataColumn, styling *Styling, index int) Row {
	return DefaultStructRowConverter.Row(r.Value, columns, styling, index)
}

// StructRows wraps every element of structs as StructRow.
func StructRows[T any](structs []T) []StructRow[T] {
	rows := make([]StructRow[T], len(structs))
	for i, s := range structs {
		rows[i] = StructRow[T]{Value: s}
	}
	return rows
}

// StructColumns returns the DataColumns of the struct type T
// using DefaultStructRowConverter.
func StructColumns[T any]() []DataColumn {
	return DefaultStructRowConverter.Columns(reflect.TypeFor[T]())
}

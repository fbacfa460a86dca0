// Package datatable converts domain values into rows of a terminal data table.
//
// Any type can be displayed by a table by implementing ToDataRow.
// Types that need custom column sizing additionally implement
// ColumnWidther for their own element type:
//
//	type Point struct{ X, Y int }
//
//	func (p Point) ToDataRow(columns []datatable.DataColumn, styling *datatable.Styling, index int) datatable.Row {
//	    return datatable.NewRow(strconv.Itoa(p.X), strconv.Itoa(p.Y)).WithStyle(styling.RowStyle(index))
//	}
//
// The produced Row holds copies of the displayed strings,
// so it stays valid and unchanged when the source value
// is modified or released after the conversion.
package datatable

import "reflect"

// ToDataRow is implemented by domain types that can be displayed
// as one row of a data table.
type ToDataRow interface {
	// ToDataRow returns the row representation of the value
	// at the zero based position index of the displayed collection.
	//
	// The implementation must not modify any of its arguments
	// and must return the same content for unchanged inputs.
	// The number of returned cells should match len(columns),
	// a mismatch is a defect of the implementation
	// and not reported as an error.
	ToDataRow(columns []DataColumn, styling *Styling, index int) Row
}

// ColumnWidther can be implemented in addition to ToDataRow
// to provide column width hints for a slice of the implementing type.
//
// The method is called on the zero value of T
// or on a pointer to a zero value if T is a pointer type,
// so implementations must not use their receiver.
type ColumnWidther[T any] interface {
	// ColumnWidths returns one width hint per column for data.
	ColumnWidths(data []T) []int
}

// ColumnWidths returns the column width hints for data.
//
// If T implements ColumnWidther[T] then its ColumnWidths method is used,
// else an empty result is returned independent of data
// which tells the caller to use its own sizing policy
// like ResolveWidths.
func ColumnWidths[T ToDataRow](data []T) []int {
	if w, ok := zeroReceiver[T]().(ColumnWidther[T]); ok {
		return w.ColumnWidths(data)
	}
	return nil
}

// zeroReceiver returns the zero value of T or a pointer
// to a zero value if T is a pointer type so that value
// receiver methods can be called without dereferencing nil.
func zeroReceiver[T any]() any {
	if t := reflect.TypeFor[T](); t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	var zero T
	return zero
}

// DataRows converts every element of data to a Row
// using its position within data as index.
func DataRows[T ToDataRow](data []T, columns []DataColumn, styling *Styling) []Row {
	if len(data) == 0 {
		return nil
	}
	rows := make([]Row, len(data))
	for i, v := range data {
		rows[i] = v.ToDataRow(columns, styling, i)
		if n := rows[i].NumCells(); len(columns) > 0 && n != len(columns) {
			Logger().Debug("row cell count differs from column count", "index", i, "cells", n, "columns", len(columns))
		}
	}
	return rows
}

// ToDataRowFunc converts values of a type that does not implement
// ToDataRow itself, typically because it is defined in another package.
type ToDataRowFunc[T any] func(v T, columns []DataColumn, styling *Styling, index int) Row

// Row calls f for v.
func (f ToDataRowFunc[T]) Row(v T, columns []DataColumn, styling *Styling, index int) Row {
	return f(v, columns, styling, index)
}

// Rows calls f for every element of data
// like DataRows does for ToDataRow implementations.
func (f ToDataRowFunc[T]) Rows(data []T, columns []DataColumn, styling *Styling) []Row {
	if len(data) == 0 {
		return nil
	}
	rows := make([]Row, len(data))
	for i, v := range data {
		rows[i] = f(v, columns, styling, i)
	}
	return rows
}

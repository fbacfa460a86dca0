package datatable_test

import (
	"fmt"
	"strconv"

	datatable "github.com/domonda/go-datatable"
)

type Point struct {
	X, Y int
}

func (p Point) ToDataRow(columns []datatable.DataColumn, styling *datatable.Styling, index int) datatable.Row {
	return datatable.NewRow(strconv.Itoa(p.X), strconv.Itoa(p.Y)).WithStyle(styling.RowStyle(index))
}

func ExampleToDataRow() {
	columns := datatable.NewColumns("x", "y")
	row := Point{X: 3, Y: 4}.ToDataRow(columns, datatable.DefaultStyling(), 3)
	fmt.Println(row.Strings())

	widths := datatable.ColumnWidths([]Point{{0, 0}, {1, 1}})
	fmt.Println(len(widths))
	// Output:
	// [3 4]
	// 0
}

func ExampleStructRows() {
	type Person struct {
		Name     string `col:"Name"`
		Age      int
		Password string `col:"-"`
	}
	people := []Person{
		{Name: "Alice", Age: 31, Password: "secret"},
		{Name: "Bob", Age: 27},
	}
	columns := datatable.StructColumns[Person]()
	fmt.Println(datatable.ColumnTitles(columns))
	for _, row := range datatable.DataRows(datatable.StructRows(people), columns, nil) {
		fmt.Println(row.Strings())
	}
	// Output:
	// [Name Age]
	// [Alice 31]
	// [Bob 27]
}

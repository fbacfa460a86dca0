package datatable

import "strings"

// Option is a bit mask of rendering options.
type Option int

const (
	OptionHeaderRow Option = 1 << iota
	OptionBorder
	OptionZebra
)

// Has returns true if all bits of option are set.
func (o Option) Has(option Option) bool {
	return o&option == option && option != 0
}

func (o Option) String() string {
	var b strings.Builder
	for _, x := range []struct {
		option Option
		name   string
	}{
		{OptionHeaderRow, "HeaderRow"},
		{OptionBorder, "Border"},
		{OptionZebra, "Zebra"},
	} {
		if !o.Has(x.option) {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("|")
		}
		b.WriteString(x.name)
	}
	if b.Len() == 0 {
		return "no Option"
	}
	return b.String()
}

// HasOption returns true if any of options has option.
func HasOption(options []Option, option Option) bool {
	for _, o := range options {
		if o.Has(option) {
			return true
		}
	}
	return false
}

package datatable

import (
	"errors"
	"maps"
	"reflect"
)

// Ensure that TypeFormatters implements Formatter
var _ Formatter = new(TypeFormatters)

// TypeFormatters selects a Formatter by the type of the formatted value.
// Exact types are tried first, then implemented interface types,
// then the kind of the value and finally Other.
// A Formatter returning errors.ErrUnsupported passes on to the next candidate.
//
// nil is a valid value for *TypeFormatters
// and returns errors.ErrUnsupported for all values.
type TypeFormatters struct {
	Types          map[reflect.Type]Formatter
	InterfaceTypes map[reflect.Type]Formatter
	Kinds          map[reflect.Kind]Formatter
	Other          Formatter
}

func (f *TypeFormatters) Format(val reflect.Value) (string, error) {
	if f == nil || !val.IsValid() {
		return "", errors.ErrUnsupported
	}
	if tf, ok := f.Types[val.Type()]; ok {
		str, err := tf.Format(val)
		if !errors.Is(err, errors.ErrUnsupported) {
			return str, err
		}
	}
	for it, itf := range f.InterfaceTypes {
		if val.Type().Implements(it) {
			str, err := itf.Format(val)
			if !errors.Is(err, errors.ErrUnsupported) {
				return str, err
			}
		}
	}
	if kf, ok := f.Kinds[val.Kind()]; ok {
		str, err := kf.Format(val)
		if !errors.Is(err, errors.ErrUnsupported) {
			return str, err
		}
	}
	if f.Other != nil {
		return f.Other.Format(val)
	}
	return "", errors.ErrUnsupported
}

func (f *TypeFormatters) cloneOrNew() *TypeFormatters {
	if f == nil {
		return new(TypeFormatters)
	}
	return &TypeFormatters{
		Types:          maps.Clone(f.Types),
		InterfaceTypes: maps.Clone(f.InterfaceTypes),
		Kinds:          maps.Clone(f.Kinds),
		Other:          f.Other,
	}
}

func (f *TypeFormatters) SetTypeFormatter(typ reflect.Type, fmt Formatter) {
	if f.Types == nil {
		f.Types = make(map[reflect.Type]Formatter)
	}
	f.Types[typ] = fmt
}

func (f *TypeFormatters) WithTypeFormatter(typ reflect.Type, fmt Formatter) *TypeFormatters {
	mod := f.cloneOrNew()
	mod.SetTypeFormatter(typ, fmt)
	return mod
}

func (f *TypeFormatters) SetInterfaceTypeFormatter(typ reflect.Type, fmt Formatter) {
	if f.InterfaceTypes == nil {
		f.InterfaceTypes = make(map[reflect.Type]Formatter)
	}
	f.InterfaceTypes[typ] = fmt
}

func (f *TypeFormatters) WithInterfaceTypeFormatter(typ reflect.Type, fmt Formatter) *TypeFormatters {
	mod := f.cloneOrNew()
	mod.SetInterfaceTypeFormatter(typ, fmt)
	return mod
}

func (f *TypeFormatters) SetKindFormatter(kind reflect.Kind, fmt Formatter) {
	if f.Kinds == nil {
		f.Kinds = make(map[reflect.Kind]Formatter)
	}
	f.Kinds[kind] = fmt
}

func (f *TypeFormatters) WithKindFormatter(kind reflect.Kind, fmt Formatter) *TypeFormatters {
	mod := f.cloneOrNew()
	mod.SetKindFormatter(kind, fmt)
	return mod
}

func (f *TypeFormatters) WithOtherFormatter(fmt Formatter) *TypeFormatters {
	mod := f.cloneOrNew()
	mod.Other = fmt
	return mod
}

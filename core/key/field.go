package key

import "reflect"

// FieldValue resolves name on v.  Structs, also behind pointers, are
// searched for an exported field and then for a method; maps are
// indexed with name when their key type admits a string.  A field or
// map entry holding a function is called, as is a method.  Only
// functions without arguments and with at least one result qualify;
// the first result is the value.
func FieldValue(v any, name string) (any, bool) {
	if len(name) == 0 {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}

	base := rv
	for base.Kind() == reflect.Pointer || base.Kind() == reflect.Interface {
		if base.IsNil() {
			return nil, false
		}
		base = base.Elem()
	}

	var f reflect.Value
	switch base.Kind() {
	case reflect.Struct:
		if sf, ok := base.Type().FieldByName(name); ok && sf.IsExported() {
			var e error
			if f, e = base.FieldByIndexErr(sf.Index); e != nil || !f.CanInterface() {
				return nil, false
			}
		}
	case reflect.Map:
		kt := base.Type().Key()
		k := reflect.ValueOf(name)
		if !k.Type().ConvertibleTo(kt) {
			return nil, false
		}
		f = base.MapIndex(k.Convert(kt))
	}

	if !f.IsValid() {
		// rv keeps pointer receivers in its method set.
		if m := rv.MethodByName(name); m.IsValid() {
			return call(m)
		}
		return nil, false
	}

	for f.Kind() == reflect.Interface && !f.IsNil() {
		f = f.Elem()
	}
	if f.Kind() == reflect.Func {
		return call(f)
	}
	return f.Interface(), true
}

func call(fn reflect.Value) (any, bool) {
	if fn.IsNil() {
		return nil, false
	}
	t := fn.Type()
	if t.NumIn() != 0 || t.NumOut() == 0 {
		return nil, false
	}
	return fn.Call(nil)[0].Interface(), true
}

package shape

import "reflect"

// Clone returns a deep copy of v. Exported struct fields, slices, arrays,
// map values, pointers and interfaces are copied recursively; aliasing of
// pointers, maps and slices inside v is preserved, so cyclic values clone
// into cyclic values. Map keys and unexported struct fields are copied by
// value, and channels and funcs are shared.
func Clone[T any](v T) T {
	src := reflect.ValueOf(&v).Elem()
	c := cloner{seen: map[ref]reflect.Value{}}

	var out T
	reflect.ValueOf(&out).Elem().Set(c.clone(src))
	return out
}

// ref identifies a reference value already being cloned. Slices also key on
// their length since subslices share a base address.
type ref struct {
	t   reflect.Type
	ptr uintptr
	n   int
}

type cloner struct {
	seen map[ref]reflect.Value
}

func (c *cloner) clone(v reflect.Value) reflect.Value {
	t := v.Type()
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Zero(t)
		}
		key := ref{t: t, ptr: v.Pointer()}
		if done, ok := c.seen[key]; ok {
			return done
		}
		dst := reflect.New(t.Elem())
		c.seen[key] = dst
		dst.Elem().Set(c.clone(v.Elem()))
		return dst

	case reflect.Struct:
		dst := reflect.New(t).Elem()
		dst.Set(v)
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			dst.Field(i).Set(c.clone(v.Field(i)))
		}
		return dst

	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(t)
		}
		key := ref{t: t, ptr: v.Pointer(), n: v.Len()}
		if done, ok := c.seen[key]; ok {
			return done
		}
		dst := reflect.MakeSlice(t, v.Len(), v.Len())
		c.seen[key] = dst
		if t.Elem().Kind() == reflect.Uint8 {
			reflect.Copy(dst, v)
			return dst
		}
		for i := 0; i < v.Len(); i++ {
			dst.Index(i).Set(c.clone(v.Index(i)))
		}
		return dst

	case reflect.Array:
		dst := reflect.New(t).Elem()
		for i := 0; i < v.Len(); i++ {
			dst.Index(i).Set(c.clone(v.Index(i)))
		}
		return dst

	case reflect.Map:
		if v.IsNil() {
			return reflect.Zero(t)
		}
		key := ref{t: t, ptr: v.Pointer()}
		if done, ok := c.seen[key]; ok {
			return done
		}
		dst := reflect.MakeMapWithSize(t, v.Len())
		c.seen[key] = dst
		iter := v.MapRange()
		for iter.Next() {
			dst.SetMapIndex(iter.Key(), c.clone(iter.Value()))
		}
		return dst

	case reflect.Interface:
		if v.IsNil() {
			return reflect.Zero(t)
		}
		dst := reflect.New(t).Elem()
		dst.Set(c.clone(v.Elem()))
		return dst
	}
	return v
}

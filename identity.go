package leakcheck

import "reflect"

// Identity identifies a tracked component type.
// It is comparable and stable for the lifetime of the process; distinct Go types
// always yield distinct identities. Pointer types are reduced to their element type,
// so *Widget and Widget share one identity.
type Identity struct {
	t reflect.Type
}

// IdentityOf returns the identity of type T.
func IdentityOf[T any]() Identity {
	return identityFromType(reflect.TypeFor[T]())
}

// IdentityFor returns the identity of the dynamic type of v.
// A nil v yields the zero Identity.
func IdentityFor(v any) Identity {
	if v == nil {
		return Identity{}
	}
	return identityFromType(reflect.TypeOf(v))
}

func identityFromType(t reflect.Type) Identity {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return Identity{t: t}
}

// Type returns the underlying reflect.Type, or nil for the zero Identity.
func (i Identity) Type() reflect.Type { return i.t }

// IsZero reports whether i is the zero Identity.
func (i Identity) IsZero() bool { return i.t == nil }

// String returns the fully qualified type name (import path + name) for named types
// and the reflect representation otherwise.
func (i Identity) String() string {
	if i.t == nil {
		return "<nil>"
	}
	if i.t.Name() != "" && i.t.PkgPath() != "" {
		return i.t.PkgPath() + "." + i.t.Name()
	}
	return i.t.String()
}

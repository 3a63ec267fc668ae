package capability

import (
	"reflect"

	"github.com/chopshop166/commandrobot/core"
	"github.com/chopshop166/commandrobot/logging"
)

// Options configures discovery, registries and sweeps.
type Options struct {
	// Logger receives access errors and sweep failures. Defaults to NoOpLogger.
	Logger logging.Logger
}

func newOptions(optFns []func(o *Options)) Options {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.Logger = logging.OrNoOp(opts.Logger)
	return opts
}

// Discover returns the root's direct members implementing kind, in
// declaration order. It never fails; inaccessible members are logged and
// skipped. Passing a pointer to the root lets pointer-receiver
// implementations on non-pointer fields qualify.
func Discover(root any, kind Kind, optFns ...func(o *Options)) Index {
	opts := newOptions(optFns)
	fields := structFields(root, opts.Logger)
	return newIndex(kind, classify(fields, kind, opts.Logger))
}

type field struct {
	def   reflect.StructField
	value reflect.Value
}

// structFields lists the direct fields of root, dereferencing pointers and
// interfaces down to the struct.
func structFields(root any, logger logging.Logger) []field {
	v := reflect.ValueOf(root)
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			logAccess(logger, &core.AccessError{Member: "root", Reason: "nil root"})
			return nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		logAccess(logger, &core.AccessError{Member: "root", Reason: "nil root"})
		return nil
	}
	if v.Kind() != reflect.Struct {
		logAccess(logger, &core.AccessError{Member: "root", Reason: "root is a " + v.Kind().String() + ", not a struct"})
		return nil
	}

	t := v.Type()
	out := make([]field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		out = append(out, field{def: t.Field(i), value: v.Field(i)})
	}
	return out
}

func classify(fields []field, kind Kind, logger logging.Logger) []Handle {
	var handles []Handle
	for _, f := range fields {
		member, ok, accessErr := resolve(f, kind.Contract())
		if accessErr != nil {
			logAccess(logger, accessErr, "capability", kind.String())
			continue
		}
		if ok {
			handles = append(handles, Handle{Name: f.def.Name, Member: member})
		}
	}
	return handles
}

// resolve decides whether a field qualifies for contract and returns the
// value to invoke. Qualification is decided on the declared type first, so
// an unusable member is reported instead of silently ignored.
func resolve(f field, contract reflect.Type) (any, bool, *core.AccessError) {
	declared := f.def.Type
	switch {
	case declared.Implements(contract):
		if !f.def.IsExported() {
			return nil, false, &core.AccessError{Member: f.def.Name, Reason: "unexported field"}
		}
		if isNil(f.value) {
			return nil, false, &core.AccessError{Member: f.def.Name, Reason: "nil value"}
		}
		return f.value.Interface(), true, nil

	case declared.Kind() != reflect.Pointer && declared.Kind() != reflect.Interface &&
		reflect.PointerTo(declared).Implements(contract):
		if !f.def.IsExported() {
			return nil, false, &core.AccessError{Member: f.def.Name, Reason: "unexported field"}
		}
		if !f.value.CanAddr() {
			return nil, false, &core.AccessError{Member: f.def.Name, Reason: "pointer receiver on a root passed by value"}
		}
		return f.value.Addr().Interface(), true, nil
	}
	return nil, false, nil
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func logAccess(logger logging.Logger, err *core.AccessError, args ...any) {
	args = append([]any{"member", err.Member, "reason", err.Reason}, args...)
	logger.Warn("capability.access.skipped", args...)
}

package config

import (
	"context"
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strings"

	"github.com/vk/mendgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// TagName is the struct tag used to bind step arguments to Go fields, e.g.
// `mend:"source"` or `mend:"targets,optional"`.
const TagName = "mend"

type fieldBinding struct {
	name     string
	optional bool
	index    int
}

// Decode binds args into the struct pointed to by target. Every tagged field
// without the optional flag must be present and non-null; arguments with no
// matching field are rejected.
func Decode(ctx context.Context, args map[string]cty.Value, target any) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting argument decoding.", "arg_count", len(args))

	structVal := reflect.ValueOf(target)
	if structVal.Kind() != reflect.Ptr || structVal.IsNil() || structVal.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("decode target must be a non-nil pointer to a struct, got %T", target)
	}
	structVal = structVal.Elem()

	bindings := fieldBindings(structVal.Type())
	known := make(map[string]struct{}, len(bindings))
	for _, b := range bindings {
		known[b.name] = struct{}{}
	}

	var unknown []string
	for name := range args {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unsupported argument(s): %s", strings.Join(unknown, ", "))
	}

	for _, b := range bindings {
		val, provided := args[b.name]
		if !provided || val.IsNull() {
			if !b.optional {
				return fmt.Errorf("missing required argument %q", b.name)
			}
			continue
		}
		if !val.IsWhollyKnown() {
			return fmt.Errorf("argument %q has an unknown value", b.name)
		}

		fieldPtr := structVal.Field(b.index).Addr().Interface()
		if err := decodeValue(ctx, val, fieldPtr); err != nil {
			return fmt.Errorf("failed to decode argument %q: %w", b.name, err)
		}
	}

	logger.Debug("Finished argument decoding successfully.")
	return nil
}

func fieldBindings(t reflect.Type) []fieldBinding {
	var out []fieldBinding
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get(TagName)
		if tag == "" || tag == "-" {
			continue
		}
		parts := strings.Split(tag, ",")
		b := fieldBinding{name: parts[0], index: i}
		for _, opt := range parts[1:] {
			if opt == "optional" {
				b.optional = true
			}
		}
		out = append(out, b)
	}
	return out
}

// decodeValue converts val to the cty type implied by the Go target and
// stores the result.
func decodeValue(ctx context.Context, val cty.Value, goVal any) error {
	logger := ctxlog.FromContext(ctx)
	valPtr := reflect.ValueOf(goVal)

	impliedType, err := gocty.ImpliedType(valPtr.Elem().Interface())
	if err != nil {
		logger.Debug("Could not imply cty.Type from Go type, attempting direct decoding.", "go_type", valPtr.Elem().Type().String(), "error", err)
		return gocty.FromCtyValue(val, goVal)
	}

	convertedVal, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	if !val.Type().Equals(convertedVal.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", convertedVal.Type().FriendlyName(),
		)
	}

	return gocty.FromCtyValue(convertedVal, goVal)
}

// FromNative converts generically decoded data (as produced by YAML or JSON
// decoders) into a cty.Value. Sequences become tuples and mappings become
// objects, so Decode can later convert them to the field's concrete type.
func FromNative(v any) (cty.Value, error) {
	switch tv := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case string:
		return cty.StringVal(tv), nil
	case bool:
		return cty.BoolVal(tv), nil
	case int:
		return cty.NumberIntVal(int64(tv)), nil
	case int64:
		return cty.NumberIntVal(tv), nil
	case uint64:
		return cty.NumberVal(new(big.Float).SetUint64(tv)), nil
	case float64:
		return cty.NumberFloatVal(tv), nil
	case []any:
		if len(tv) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(tv))
		for i, e := range tv {
			ev, err := FromNative(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("index %d: %w", i, err)
			}
			elems = append(elems, ev)
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(tv) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(tv))
		for k, e := range tv {
			ev, err := FromNative(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("key %q: %w", k, err)
			}
			attrs[k] = ev
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value type %T", v)
	}
}

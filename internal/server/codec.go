package server

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/trakhound/entitystore/pkg/entity"
)

// maxExactInt is the largest integer a protobuf double holds exactly.
// Larger int64/uint64 fields travel as decimal strings.
const maxExactInt = 1 << 53

func toValue(v any) (*structpb.Value, error) {
	switch n := v.(type) {
	case int64:
		if n > maxExactInt || n < -maxExactInt {
			return structpb.NewStringValue(strconv.FormatInt(n, 10)), nil
		}
		return structpb.NewNumberValue(float64(n)), nil
	case uint64:
		if n > maxExactInt {
			return structpb.NewStringValue(strconv.FormatUint(n, 10)), nil
		}
		return structpb.NewNumberValue(float64(n)), nil
	case byte:
		return structpb.NewNumberValue(float64(n)), nil
	case int:
		return structpb.NewNumberValue(float64(n)), nil
	}
	return structpb.NewValue(v)
}

func arrayValue(values []any) (*structpb.Value, error) {
	list := &structpb.ListValue{Values: make([]*structpb.Value, len(values))}
	for i, v := range values {
		pv, err := toValue(v)
		if err != nil {
			return nil, errors.Wrapf(err, "field %d", i)
		}
		list.Values[i] = pv
	}
	return structpb.NewListValue(list), nil
}

// entityStruct renders an entity as {category, class, uuid, array}
func entityStruct(e entity.Entity) (*structpb.Struct, error) {
	k := e.Kind()
	array, err := arrayValue(e.ToArray())
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s %s", k, e.GetUUID())
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"category": structpb.NewStringValue(k.Category.String()),
		"class":    structpb.NewStringValue(k.ClassName()),
		"uuid":     structpb.NewStringValue(e.GetUUID()),
		"array":    array,
	}}, nil
}

// entitiesStruct renders {entities: [...], total: n}
func entitiesStruct(es []entity.Entity) (*structpb.Struct, error) {
	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(es))}
	for _, e := range es {
		s, err := entityStruct(e)
		if err != nil {
			return nil, err
		}
		list.Values = append(list.Values, structpb.NewStructValue(s))
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"entities": structpb.NewListValue(list),
		"total":    structpb.NewNumberValue(float64(len(es))),
	}}, nil
}

// kindField resolves the category and class fields of a request.
// The category defaults to objects.
func kindField(req *structpb.Struct) (entity.Kind, error) {
	categoryName := stringField(req, "category")
	if categoryName == "" {
		categoryName = entity.CategoryObjects.String()
	}
	category, err := entity.ParseCategory(categoryName)
	if err != nil {
		return entity.Kind{}, err
	}
	class := stringField(req, "class")
	if class == "" {
		return entity.Kind{}, errors.New("class is required")
	}
	return entity.ParseKind(category, class)
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

func boolField(req *structpb.Struct, name string) bool {
	return req.GetFields()[name].GetBoolValue()
}

func intField(req *structpb.Struct, name string) int {
	v := req.GetFields()[name].GetNumberValue()
	if v < 0 || v > math.MaxInt32 {
		return 0
	}
	return int(v)
}

func stringsField(req *structpb.Struct, name string) []string {
	list := req.GetFields()[name].GetListValue()
	if list == nil {
		return nil
	}
	var out []string
	for _, v := range list.GetValues() {
		if s := v.GetStringValue(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// arraysField reads a list of wire arrays
func arraysField(req *structpb.Struct, name string) ([][]any, error) {
	list := req.GetFields()[name].GetListValue()
	if list == nil {
		return nil, errors.Newf("%s must be a list of arrays", name)
	}
	out := make([][]any, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		inner := v.GetListValue()
		if inner == nil {
			return nil, errors.Newf("%s[%d] is not an array", name, i)
		}
		out = append(out, inner.AsSlice())
	}
	return out, nil
}

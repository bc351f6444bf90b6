package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Amenities is the normalized form of a room's "comodidades". Clients and the
// stored documents may carry either a comma-separated string or a list; both
// decode into a list of trimmed, non-empty names.
type Amenities []string

// ParseAmenities splits a comma-separated amenity string.
func ParseAmenities(s string) Amenities {
	parts := strings.Split(s, ",")
	out := make(Amenities, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func normalizeAmenities(items []string) Amenities {
	out := make(Amenities, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// String joins the amenities the way they are stored.
func (a Amenities) String() string {
	return strings.Join(a, ", ")
}

func (a Amenities) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(a))
}

func (a *Amenities) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := amenitiesFromAny(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func amenitiesFromAny(raw any) (Amenities, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return ParseAmenities(v), nil
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("comodidades: expected string items, got %T", item)
			}
			items = append(items, s)
		}
		return normalizeAmenities(items), nil
	default:
		return nil, fmt.Errorf("comodidades: expected string or list, got %T", raw)
	}
}

// MarshalBSONValue stores the amenities as comma-joined text, matching the
// text column the room documents have always used.
func (a Amenities) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(a.String())
}

func (a *Amenities) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*a = nil
		return nil
	case bsontype.String:
		*a = ParseAmenities(rv.StringValue())
		return nil
	case bsontype.Array:
		values, err := rv.Array().Values()
		if err != nil {
			return err
		}
		items := make([]string, 0, len(values))
		for _, v := range values {
			s, ok := v.StringValueOK()
			if !ok {
				return fmt.Errorf("comodidades: unexpected BSON item type %s", v.Type)
			}
			items = append(items, s)
		}
		*a = normalizeAmenities(items)
		return nil
	default:
		return fmt.Errorf("comodidades: unexpected BSON type %s", t)
	}
}

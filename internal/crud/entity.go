package crud

import (
	"encoding/json"
	"strings"

	"healthlock/internal/utils"
)

// Entity is one hospital record. Values is keyed by schema field key and
// never contains the id.
type Entity struct {
	ID     string
	Values map[string]Value
}

func (e Entity) Get(key string) (Value, bool) {
	v, ok := e.Values[key]
	return v, ok
}

// MarshalJSON flattens the record into a single object with the id
// alongside the field values.
func (e Entity) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(e.Values)+1)
	for k, v := range e.Values {
		flat[k] = v
	}
	flat["id"] = e.ID
	return json.Marshal(flat)
}

func (e Entity) clone() Entity {
	values := make(map[string]Value, len(e.Values))
	for k, v := range e.Values {
		values[k] = v
	}
	return Entity{ID: e.ID, Values: values}
}

// matches is a substring search over the serialised record, keys included.
func (e Entity) matches(lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(string(utils.MustMarshalJSON(e))), lowerQuery)
}

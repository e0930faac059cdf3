package core

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// JSONMap is a schema-less key-value payload persisted as a jsonb column.
// A nil map is stored as SQL NULL.
type JSONMap map[string]interface{}

var _ driver.Valuer = (JSONMap)(nil)
var _ sql.Scanner = (*JSONMap)(nil)

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling JSONMap")
	}
	return b, nil
}

func (m *JSONMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.Errorf("unsupported JSONMap source type %T", src)
	}
	return errors.Wrap(json.Unmarshal(b, m), "unmarshaling JSONMap")
}

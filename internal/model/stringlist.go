package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a multi-valued text field stored as a JSON array in a single
// column. The service is the only writer of these columns, so a stored value
// that fails to decode is a server fault and is returned as an error rather
// than coerced to something readable.
type StringList []string

// Value implements driver.Valuer. A nil list is stored as an empty array so
// the column never holds SQL NULL after a write.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return l.decode(v)
	case string:
		return l.decode([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

func (l *StringList) decode(data []byte) error {
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("malformed list column %q: %w", data, err)
	}
	*l = values
	return nil
}

// Contains reports whether value is a member of the list.
func (l StringList) Contains(value string) bool {
	for _, s := range l {
		if s == value {
			return true
		}
	}
	return false
}

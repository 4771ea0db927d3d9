package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FloatMap stores named numeric values as a JSON text column (jsonb on postgres, text on sqlite)
type FloatMap map[string]float64

// Value implements driver.Valuer interface
func (m FloatMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(map[string]float64(m))
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

// Scan implements sql.Scanner interface
func (m *FloatMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into FloatMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	var tmp map[string]float64
	if err := json.Unmarshal(bytes, &tmp); err != nil {
		return err
	}
	*m = FloatMap(tmp)
	return nil
}

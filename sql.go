package siunits

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// Scan reads a quantity stored in its text form ("15 kN"). The receiver's
// registry is used for parsing, SI when unset.
func (q *Quantity) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		return errors.New("siunits: cannot scan NULL into Quantity")
	default:
		return fmt.Errorf("siunits: cannot scan %T into Quantity", src)
	}
	dst, err := q.Registry().Parse(s)
	if err != nil {
		return err
	}
	*q = dst
	return nil
}

func (q Quantity) Value() (driver.Value, error) {
	return q.String(), nil
}

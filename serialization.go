package decint

import (
	"bytes"
	"database/sql/driver"

	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// MarshalText implements encoding.TextMarshaler.
func (x *Int) MarshalText() ([]byte, error) {
	return x.Append(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error z is unchanged.
func (z *Int) UnmarshalText(text []byte) error {
	if _, err := z.SetString(string(text)); err != nil {
		return errors.Wrapf(err, "decint: cannot unmarshal %q into a *decint.Int", text)
	}
	return nil
}

// MarshalJSON encodes x as a bare JSON number.
func (x *Int) MarshalJSON() ([]byte, error) {
	return x.Append(nil), nil
}

// UnmarshalJSON accepts a JSON number or a JSON string holding one. null
// leaves z unchanged.
func (z *Int) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return z.UnmarshalText(data)
}

// Convert data to a BSON string. Decimal128 holds only 34 digits, too few
// for an unbounded integer.
func (x *Int) GetBSON() (interface{}, error) {
	return x.String(), nil
}

// Parse from a BSON string.
func (z *Int) SetBSON(raw bson.Raw) error {
	var s string
	err := raw.Unmarshal(&s)
	if err != nil {
		return err
	}
	_, err = z.SetString(s)
	return err
}

var (
	_ msgpack.CustomEncoder = (*Int)(nil)
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder. The value is written as a
// msgpack string in canonical decimal form.
func (x *Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(x.String())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (z *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	_, err = z.SetString(s)
	return err
}

// Value implements driver.Valuer. Ints are stored as their canonical
// decimal string, which NUMERIC and TEXT columns both accept.
func (x *Int) Value() (driver.Value, error) {
	return x.String(), nil
}

// NullInt represents an Int that may be NULL. It implements sql.Scanner so
// it can be used as a scan destination.
type NullInt struct {
	Int   Int
	Valid bool // Valid is true if Int is not NULL
}

// Scan implements sql.Scanner.
func (n *NullInt) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		n.Int.setZero()
		n.Valid = false
		return nil
	case int64:
		n.Int.SetInt64(v)
	case string:
		if _, err := n.Int.SetString(v); err != nil {
			return err
		}
	case []byte:
		if _, err := n.Int.SetString(string(v)); err != nil {
			return err
		}
	default:
		return errors.Errorf("decint: cannot scan %T into NullInt", src)
	}
	n.Valid = true
	return nil
}

// Value implements driver.Valuer.
func (n NullInt) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Int.Value()
}

package request

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidLength = errors.New("invalid length")

// Length accepts a JSON number or a string such as "30", "30.5" or "30,5".
type Length string

func (l *Length) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*l = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*l = Length(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrInvalidLength
	}
	*l = Length(n.String())
	return nil
}

// DrawerRequest is the body of the drawer calculator.
type DrawerRequest struct {
	WidthCM  Length `json:"width_cm" form:"width_cm"`
	HeightCM Length `json:"height_cm" form:"height_cm"`
}

// Resolve parses both sides; range checks are left to the calculator.
func (r DrawerRequest) Resolve() (widthCM, heightCM float64, err error) {
	if widthCM, err = ParseLengthCM(string(r.WidthCM)); err != nil {
		return 0, 0, err
	}
	if heightCM, err = ParseLengthCM(string(r.HeightCM)); err != nil {
		return 0, 0, err
	}
	return widthCM, heightCM, nil
}

// ParseLengthCM parses a user-typed length in centimetres. A comma is accepted
// as the decimal separator.
func ParseLengthCM(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "cm")
	s = strings.TrimSpace(strings.Replace(s, ",", ".", 1))
	if s == "" {
		return 0, ErrInvalidLength
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidLength
	}
	return v, nil
}

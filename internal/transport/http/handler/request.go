package handler

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type CreateUserRequest struct {
	Username TextField `json:"username" form:"username"`
}

type CreateExerciseRequest struct {
	Description TextField   `json:"description" form:"description"`
	Duration    NumberField `json:"duration" form:"duration"`
	Date        TextField   `json:"date" form:"date"`
}

type LogQueryRequest struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit string `form:"limit"`
}

// TextField accepts a JSON string or any other scalar in its literal form,
// so {"username":42} reads as "42". Objects and arrays read as absent.
type TextField string

func (f *TextField) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "null", strings.HasPrefix(s, "{"), strings.HasPrefix(s, "["):
		*f = ""
	case strings.HasPrefix(s, `"`):
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = TextField(v)
	default:
		*f = TextField(s)
	}
	return nil
}

// NumberField accepts a JSON number, a numeric JSON string or a form value.
// Binding never fails on it; Float reports whether a usable number arrived.
type NumberField string

func (n *NumberField) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = ""
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	*n = NumberField(s)
	return nil
}

func (n NumberField) Float() *float64 {
	raw := strings.TrimSpace(string(n))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

package content

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type documentValidator struct {
	v *validator.Validate
}

func newDocumentValidator() *documentValidator {
	v := validator.New()

	err := v.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, ok = ParseTimestamp(value)
		return ok
	})
	if err != nil {
		panic(err)
	}

	return &documentValidator{v: v}
}

func (d *documentValidator) Struct(s interface{}) error {
	return d.v.Struct(s)
}

// ParseTimestamp accepts the timestamp shapes documents carry: RFC 3339,
// a zoneless date-time, or a bare date.
func ParseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func optionalTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, ok := ParseTimestamp(value)
	if !ok {
		return nil
	}
	return &t
}

package graphql

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/staffql/internal/server/validation"
)

// isoMillis matches JavaScript's Date.prototype.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z"

// Date is the Date scalar: an instant serialized in UTC with milliseconds.
type Date struct {
	time.Time
}

func (Date) ImplementsGraphQLType(name string) bool {
	return name == "Date"
}

func (d *Date) UnmarshalGraphQL(input any) error {
	switch v := input.(type) {
	case string:
		t, ok := validation.ParseDate(v)
		if !ok {
			return fmt.Errorf("invalid Date %q", v)
		}
		d.Time = t
		return nil
	case time.Time:
		d.Time = v.UTC()
		return nil
	default:
		return fmt.Errorf("wrong type for Date: %T", v)
	}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.UTC().Format(isoMillis))
}

func dateOrNil(t time.Time) *Date {
	if t.IsZero() {
		return nil
	}
	return &Date{t}
}

package core

import (
	"encoding/json"
	"time"
)

// Optional distinguishes a JSON field that was absent from one that
// was present, including an explicit null. UnmarshalJSON only runs
// for keys that appear in the payload, so Set reports presence.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a set Optional holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// CategoryPatch describes a partial category update. Empty strings
// keep the prior value, matching the create-or-keep merge of the
// update operation.
type CategoryPatch struct {
	Name  string
	Color string
}

// TransactionPatch describes a partial expense/income update.
//
// Merge semantics against the existing row:
//   - Amount: zero keeps the prior value, anything else replaces it.
//   - Description: replaced whenever the field was present, even with
//     an explicit null or empty string.
//   - Date: zero keeps the prior value.
//   - CategoryID: absent keeps, present-and-null (or zero) clears,
//     present-and-set reassigns.
type TransactionPatch struct {
	Amount      float64
	Description Optional[string]
	Date        time.Time
	CategoryID  Optional[int64]
}

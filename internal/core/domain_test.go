package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewTransactionValidate(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		wantErr bool
	}{
		{"positive amount", 10.50, false},
		{"zero amount", 0, true},
		{"negative amount", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewTransaction{Amount: tt.amount}.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && KindOf(err) != KindValidation {
				t.Errorf("KindOf = %s, want validation", KindOf(err))
			}
		})
	}
}

func TestNewCategoryValidate(t *testing.T) {
	if err := (NewCategory{Name: "Food"}).Validate(); err != nil {
		t.Errorf("valid category rejected: %v", err)
	}
	if err := (NewCategory{Name: "   "}).Validate(); err == nil {
		t.Error("blank name accepted")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(NotFound("x")); got != KindNotFound {
		t.Errorf("KindOf(NotFound) = %s", got)
	}
	wrapped := errors.Join(errors.New("outer"), Conflict("dup"))
	if got := KindOf(wrapped); got != KindConflict {
		t.Errorf("KindOf(wrapped conflict) = %s", got)
	}
	if got := KindOf(errors.New("plain")); got != KindInternal {
		t.Errorf("KindOf(plain) = %s", got)
	}
}

func TestOptionalUnmarshal(t *testing.T) {
	var payload struct {
		Description Optional[string] `json:"description"`
		CategoryID  Optional[int64]  `json:"categoryId"`
	}

	// Absent keys leave Set false.
	if err := json.Unmarshal([]byte(`{}`), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Description.Set || payload.CategoryID.Set {
		t.Errorf("absent fields marked set: %+v", payload)
	}

	// Explicit null is present with a nil value.
	if err := json.Unmarshal([]byte(`{"description":null,"categoryId":null}`), &payload); err != nil {
		t.Fatal(err)
	}
	if !payload.Description.Set || payload.Description.Value != nil {
		t.Errorf("null description = %+v, want set with nil value", payload.Description)
	}
	if !payload.CategoryID.Set || payload.CategoryID.Value != nil {
		t.Errorf("null categoryId = %+v, want set with nil value", payload.CategoryID)
	}

	// Concrete values come through.
	if err := json.Unmarshal([]byte(`{"description":"groceries","categoryId":4}`), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Description.Value == nil || *payload.Description.Value != "groceries" {
		t.Errorf("description = %+v", payload.Description)
	}
	if payload.CategoryID.Value == nil || *payload.CategoryID.Value != 4 {
		t.Errorf("categoryId = %+v", payload.CategoryID)
	}
}

func TestCategoryName(t *testing.T) {
	tx := Transaction{}
	if got := tx.CategoryName(); got != UncategorizedLabel {
		t.Errorf("CategoryName() = %q, want %q", got, UncategorizedLabel)
	}
	tx.Category = &Category{Name: "Rent"}
	if got := tx.CategoryName(); got != "Rent" {
		t.Errorf("CategoryName() = %q, want Rent", got)
	}
}

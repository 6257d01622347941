package models

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestErrorKind_Status(t *testing.T) {
	tests := []struct {
		kind   ErrorKind
		status int
	}{
		{KindStoreFailure, http.StatusInternalServerError},
		{KindInvalidInput, http.StatusBadRequest},
		{KindUnauthenticated, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindAlreadyExists, http.StatusBadRequest},
	}

	for _, tt := range tests {
		if got := tt.kind.Status(); got != tt.status {
			t.Errorf("%s: expected %d, got %d", tt.kind, tt.status, got)
		}
	}
}

func TestUser_IsAdmin(t *testing.T) {
	var missing *User
	if missing.IsAdmin() {
		t.Error("nil user must not be admin")
	}
	if (&User{Role: RoleUser}).IsAdmin() {
		t.Error("plain user must not be admin")
	}
	if !(&User{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin role must be admin")
	}
}

// The _id is always present in JSON; a stored document carries its hex id.
func TestDocumentIDInJSON(t *testing.T) {
	id := primitive.NewObjectID()
	raw, err := json.Marshal(RequestedMeal{ID: id, MealTitle: "Dal", UserEmail: "a@b.c"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"_id":"`+id.Hex()+`"`) {
		t.Errorf("expected stored id in %s", raw)
	}

	var meal Meal
	if err := json.Unmarshal([]byte(`{"title":"Dal"}`), &meal); err != nil {
		t.Fatal(err)
	}
	if !meal.ID.IsZero() {
		t.Errorf("expected zero id for a body without _id, got %s", meal.ID.Hex())
	}
}

package handlers_test

import (
	"net/http"
	"testing"

	"formbox.link/models"
	"formbox.link/pkg/linkkey"

	"github.com/gofiber/fiber/v2"
)

func TestFormsRequireAuthentication(t *testing.T) {
	app, _ := newTestApp(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/forms"},
		{http.MethodPost, "/api/v1/forms"},
		{http.MethodGet, "/api/v1/forms/somekey1234"},
		{http.MethodPut, "/api/v1/forms/somekey1234"},
		{http.MethodDelete, "/api/v1/forms/somekey1234"},
		{http.MethodGet, "/api/v1/forms/somekey1234/answers"},
		{http.MethodPost, "/api/v1/questions"},
	} {
		resp := doJSON(t, app, tc.method, tc.path, "", nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", tc.method, tc.path, resp.StatusCode)
		}
		if msg := responseMessage(t, resp); msg != "Unauthorized" {
			t.Errorf("%s %s: unexpected message %q", tc.method, tc.path, msg)
		}
	}
}

func TestCreateFormMissingEnvelope(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "owner@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/forms", token, fiber.Map{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if msg := responseMessage(t, resp); msg != "Required parameter missing: form" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestCreateFormMissingTitle(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "owner@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/forms", token, fiber.Map{
		"form": fiber.Map{"description": "no title here"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if msg := responseMessage(t, resp); msg != "Required parameter missing: form.title" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestFormLifecycleOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "owner@example.com")

	key, _ := createForm(t, app, token, "Event signup", true)
	if len(key) != linkkey.KeyLength {
		t.Fatalf("expected %d-char key, got %q", linkkey.KeyLength, key)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/v1/forms/"+key, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get form: status %d", resp.StatusCode)
	}
	var fetched models.Form
	decodeBody(t, resp, &fetched)
	if fetched.Title != "Event signup" {
		t.Fatalf("unexpected title %q", fetched.Title)
	}

	resp = doJSON(t, app, http.MethodPut, "/api/v1/forms/"+key, token, fiber.Map{
		"form": fiber.Map{"title": "Event signup v2", "is_enabled": false},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update form: status %d", resp.StatusCode)
	}
	var updated models.Form
	decodeBody(t, resp, &updated)
	if updated.Title != "Event signup v2" || updated.IsEnabled {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Key != key {
		t.Fatalf("key must be immutable, changed %q -> %q", key, updated.Key)
	}

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/forms/"+key, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete form: status %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/forms/"+key, token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestGetFormIncludesEmptyQuestionsArray(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "owner@example.com")
	key, _ := createForm(t, app, token, "No questions yet", true)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/forms/"+key, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get form: status %d", resp.StatusCode)
	}
	var raw map[string]any
	decodeBody(t, resp, &raw)
	questions, ok := raw["questions"]
	if !ok {
		t.Fatal("response has no questions key")
	}
	list, ok := questions.([]any)
	if !ok {
		t.Fatalf("questions is %T, want an array", questions)
	}
	if len(list) != 0 {
		t.Fatalf("expected an empty array, got %d entries", len(list))
	}
}

func TestDeleteFormForbiddenForNonOwnerOverHTTP(t *testing.T) {
	app, db := newTestApp(t)
	ownerToken := registerAndLogin(t, app, "owner@example.com")
	strangerToken := registerAndLogin(t, app, "stranger@example.com")

	key, _ := createForm(t, app, ownerToken, "Owned form", true)

	resp := doJSON(t, app, http.MethodDelete, "/api/v1/forms/"+key, strangerToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	var n int64
	if err := db.Model(&models.Form{}).Count(&n).Error; err != nil {
		t.Fatalf("count forms: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected form to survive, count=%d", n)
	}
}

func TestDisabledFormHiddenFromNonOwner(t *testing.T) {
	app, _ := newTestApp(t)
	ownerToken := registerAndLogin(t, app, "owner@example.com")
	strangerToken := registerAndLogin(t, app, "stranger@example.com")

	key, _ := createForm(t, app, ownerToken, "Closed survey", false)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/forms/"+key, strangerToken, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for non-owner, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/forms/"+key, ownerToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("owner should still see the form, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestListFormsIncludesEveryUsersForms(t *testing.T) {
	app, _ := newTestApp(t)
	aliceToken := registerAndLogin(t, app, "alice@example.com")
	bobToken := registerAndLogin(t, app, "bob@example.com")

	createForm(t, app, aliceToken, "Alice's form", true)
	createForm(t, app, bobToken, "Bob's form", true)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/forms", aliceToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list forms: status %d", resp.StatusCode)
	}
	var forms []models.Form
	decodeBody(t, resp, &forms)
	if len(forms) != 2 {
		t.Fatalf("expected the listing to span all users, got %d forms", len(forms))
	}
}

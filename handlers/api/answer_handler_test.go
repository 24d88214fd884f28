package handlers_test

import (
	"net/http"
	"testing"

	"formbox.link/models"

	"github.com/gofiber/fiber/v2"
)

func TestAnonymousSubmissionFlow(t *testing.T) {
	app, db := newTestApp(t)
	token := registerAndLogin(t, app, "owner@example.com")
	_, formID := createForm(t, app, token, "Customer feedback", true)
	q1 := createQuestion(t, app, token, formID, "How many visits?")
	q2 := createQuestion(t, app, token, formID, "Would you return?")

	// No Authorization header: submitting is the public act.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/answers", "", fiber.Map{
		"form_id": formID,
		"questions_answers": []fiber.Map{
			{"question_id": q1, "value": "3"},
			{"question_id": q2, "value": "true"},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit answer: status %d", resp.StatusCode)
	}
	var answer models.Answer
	decodeBody(t, resp, &answer)
	if answer.FormID != formID {
		t.Fatalf("answer bound to form %d, want %d", answer.FormID, formID)
	}
	if len(answer.QuestionAnswers) != 2 {
		t.Fatalf("expected 2 nested question answers, got %d", len(answer.QuestionAnswers))
	}

	var answers, records int64
	if err := db.Model(&models.Answer{}).Count(&answers).Error; err != nil {
		t.Fatalf("count answers: %v", err)
	}
	if err := db.Model(&models.QuestionAnswer{}).Count(&records).Error; err != nil {
		t.Fatalf("count question answers: %v", err)
	}
	if answers != 1 || records != 2 {
		t.Fatalf("expected 1 answer and 2 question answers, got %d and %d", answers, records)
	}
}

func TestSubmissionForeignQuestionOverHTTP(t *testing.T) {
	app, db := newTestApp(t)
	token := registerAndLogin(t, app, "owner@example.com")
	_, formID := createForm(t, app, token, "Form A", true)
	_, otherFormID := createForm(t, app, token, "Form B", true)
	ours := createQuestion(t, app, token, formID, "Ours")
	foreign := createQuestion(t, app, token, otherFormID, "Foreign")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/answers", "", fiber.Map{
		"form_id": formID,
		"questions_answers": []fiber.Map{
			{"question_id": ours, "value": "fine"},
			{"question_id": foreign, "value": "smuggled"},
		},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	var n int64
	if err := db.Model(&models.Answer{}).Count(&n).Error; err != nil {
		t.Fatalf("count answers: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no answer rows, got %d", n)
	}
}

func TestSubmissionDropsExtraFields(t *testing.T) {
	app, db := newTestApp(t)
	token := registerAndLogin(t, app, "owner@example.com")
	_, formID := createForm(t, app, token, "Form", true)
	q := createQuestion(t, app, token, formID, "Question")

	// Fields outside the whitelist must be silently discarded.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/answers", "", fiber.Map{
		"form_id": formID,
		"questions_answers": []fiber.Map{
			{"question_id": q, "value": "hello", "id": 777, "answer_id": 777},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit answer: status %d", resp.StatusCode)
	}
	resp.Body.Close()

	var record models.QuestionAnswer
	if err := db.First(&record).Error; err != nil {
		t.Fatalf("load question answer: %v", err)
	}
	if record.Value != "hello" || record.QuestionID != q {
		t.Fatalf("unexpected stored record: %+v", record)
	}
	if record.ID == 777 || record.AnswerID == 777 {
		t.Fatalf("client-supplied ids leaked into storage: %+v", record)
	}
}

func TestSubmissionUnknownFormOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/answers", "", fiber.Map{
		"form_id":           424242,
		"questions_answers": []fiber.Map{},
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestListAnswersOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)
	ownerToken := registerAndLogin(t, app, "owner@example.com")
	strangerToken := registerAndLogin(t, app, "stranger@example.com")
	key, formID := createForm(t, app, ownerToken, "Survey", true)
	q := createQuestion(t, app, ownerToken, formID, "Question")

	for i := 0; i < 3; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/answers", "", fiber.Map{
			"form_id":           formID,
			"questions_answers": []fiber.Map{{"question_id": q, "value": "v"}},
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("submit %d: status %d", i, resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/v1/forms/"+key+"/answers?page=1&per_page=2", ownerToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list answers: status %d", resp.StatusCode)
	}
	var page struct {
		Data []models.Answer `json:"data"`
		Meta struct {
			TotalItems int64 `json:"total_items"`
			TotalPages int   `json:"total_pages"`
		} `json:"meta"`
	}
	decodeBody(t, resp, &page)
	if len(page.Data) != 2 || page.Meta.TotalItems != 3 || page.Meta.TotalPages != 2 {
		t.Fatalf("unexpected page: data=%d meta=%+v", len(page.Data), page.Meta)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/v1/forms/"+key+"/answers", strangerToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

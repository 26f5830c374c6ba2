package generator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func textResponse(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()
	body := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func TestGenerateFallsThroughModelLadder(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		if strings.Contains(r.URL.Path, "flagship") {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		textResponse(t, w, "<h3>Furto</h3>")
	}))
	defer srv.Close()

	g := NewGeminiClient(srv.URL, "test-key", []string{"flagship", "backup"})
	text, err := g.StudyContent(context.Background(), "Direito Penal", "Furto", ModeSummary, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "<h3>Furto</h3>" {
		t.Errorf("text = %q", text)
	}
	if len(calls) != 2 {
		t.Errorf("calls = %v, want flagship then backup", calls)
	}
}

func TestGenerateFailsWhenAllModelsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := NewGeminiClient(srv.URL, "test-key", []string{"a", "b"})
	_, err := g.StudyContent(context.Background(), "Direito Penal", "Furto", ModeSummary, "")
	if err == nil {
		t.Fatal("expected error when every model fails")
	}
	if !strings.Contains(err.Error(), "all 2 models failed") {
		t.Errorf("error = %v", err)
	}
	var genErr *GenerateError
	if !errors.As(err, &genErr) {
		t.Errorf("error is not a GenerateError: %v", err)
	}
}

func TestQuizQuestionsParsesArrayFromNoisyOutput(t *testing.T) {
	payload := `Aqui estão as questões:
[{"statement": "Qual é a pena do furto simples?", "options": ["1 a 4 anos", "2 a 8 anos", "3 a 10 anos", "6 meses a 2 anos"], "correctIndex": 0, "justification": "Art. 155 do CP."}]
Bons estudos!`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		textResponse(t, w, payload)
	}))
	defer srv.Close()

	g := NewGeminiClient(srv.URL, "test-key", []string{"m"})
	questions, err := g.QuizQuestions(context.Background(), "Direito Penal", "Furto", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 || questions[0].CorrectIndex != 0 {
		t.Errorf("questions = %+v", questions)
	}
}

func TestQuizQuestionsRejectsMalformedQuestion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		textResponse(t, w, `[{"statement": "x", "options": ["a", "b"], "correctIndex": 5}]`)
	}))
	defer srv.Close()

	g := NewGeminiClient(srv.URL, "test-key", []string{"m"})
	if _, err := g.QuizQuestions(context.Background(), "Direito Penal", "Furto", 1); err == nil {
		t.Error("out-of-range correctIndex was accepted")
	}
}

func TestLawFlashParsesObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		textResponse(t, w, "```json\n{\"article\": \"Art. 5º\", \"summary\": \"Direitos fundamentais.\", \"isLong\": true, \"tip\": \"Caput mais cobrado.\"}\n```")
	}))
	defer srv.Close()

	g := NewGeminiClient(srv.URL, "test-key", []string{"m"})
	flash, err := g.LawFlash(context.Background(), "Constituição Federal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flash.Article != "Art. 5º" || !flash.IsLong {
		t.Errorf("flash = %+v", flash)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct{ in, want string }{
		{"```html\n<p>x</p>\n```", "<p>x</p>"},
		{"```\n<p>x</p>\n```", "<p>x</p>"},
		{"<p>x</p>", "<p>x</p>"},
	}
	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractJSONSkipsBracesInStrings(t *testing.T) {
	in := `prefix {"a": "tem { chave } dentro", "b": {"c": 1}} suffix`
	want := `{"a": "tem { chave } dentro", "b": {"c": 1}}`
	if got := extractJSON(in); got != want {
		t.Errorf("extractJSON = %q, want %q", got, want)
	}
}

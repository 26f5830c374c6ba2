package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// GeminiClient generates study content by calling a Gemini-compatible
// generateContent endpoint. Models are tried in priority order; the first
// one that answers wins, so a rate-limited flagship degrades to the next
// model instead of failing the request.
type GeminiClient struct {
	baseURL string   // e.g. "https://generativelanguage.googleapis.com"
	apiKey  string
	models  []string // priority order, best first
	client  *http.Client
}

// Compile-time check: *GeminiClient satisfies the Generator interface.
var _ Generator = (*GeminiClient)(nil)

// GenerateError is returned when generation fails so the caller can
// distinguish "model produced bad output" from "endpoint was unreachable."
type GenerateError struct {
	Reason  string
	Wrapped error
}

func (e *GenerateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("generation failed: %s", e.Reason)
}

func (e *GenerateError) Unwrap() error {
	return e.Wrapped
}

// NewGeminiClient creates a client for the given endpoint and model ladder.
func NewGeminiClient(baseURL, apiKey string, models []string) *GeminiClient {
	return &GeminiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		models:  models,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// ============================================================================
// Generator interface
// ============================================================================

func (g *GeminiClient) StudyContent(ctx context.Context, subject, topic string, mode ContentMode, customPrompt string) (string, error) {
	prompt := customPrompt
	if prompt == "" {
		prompt = buildStudyPrompt(subject, topic, mode)
	}
	text, err := g.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return stripCodeFence(text), nil
}

func (g *GeminiClient) QuizQuestions(ctx context.Context, subject, topic string, count int) ([]QuizQuestion, error) {
	text, err := g.generate(ctx, buildQuizPrompt(subject, topic, count))
	if err != nil {
		return nil, err
	}

	jsonStr := extractJSONArray(text)
	if jsonStr == "" {
		return nil, &GenerateError{Reason: "no JSON array found in model response"}
	}

	var questions []QuizQuestion
	if err := json.Unmarshal([]byte(jsonStr), &questions); err != nil {
		return nil, &GenerateError{Reason: "invalid JSON from model", Wrapped: err}
	}
	for _, q := range questions {
		if q.Statement == "" || len(q.Options) < 2 || q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, &GenerateError{Reason: "malformed question in model response"}
		}
	}
	return questions, nil
}

func (g *GeminiClient) LawFlash(ctx context.Context, lawName string) (LawFlash, error) {
	text, err := g.generate(ctx, buildLawFlashPrompt(lawName))
	if err != nil {
		return LawFlash{}, err
	}

	jsonStr := extractJSON(text)
	if jsonStr == "" {
		return LawFlash{}, &GenerateError{Reason: "no JSON object found in model response"}
	}

	var flash LawFlash
	if err := json.Unmarshal([]byte(jsonStr), &flash); err != nil {
		return LawFlash{}, &GenerateError{Reason: "invalid JSON from model", Wrapped: err}
	}
	if flash.Article == "" || flash.Summary == "" {
		return LawFlash{}, &GenerateError{Reason: "incomplete flash card from model"}
	}
	return flash, nil
}

func (g *GeminiClient) Analysis(ctx context.Context, reportJSON string) (string, error) {
	text, err := g.generate(ctx, buildAnalysisPrompt(reportJSON))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (g *GeminiClient) Syllabus(ctx context.Context, examName string) ([]SubjectSyllabus, error) {
	text, err := g.generate(ctx, buildSyllabusPrompt(examName))
	if err != nil {
		return nil, err
	}

	jsonStr := extractJSONArray(text)
	if jsonStr == "" {
		return nil, &GenerateError{Reason: "no JSON array found in model response"}
	}

	var syllabus []SubjectSyllabus
	if err := json.Unmarshal([]byte(jsonStr), &syllabus); err != nil {
		return nil, &GenerateError{Reason: "invalid JSON from model", Wrapped: err}
	}
	for _, s := range syllabus {
		if s.Subject == "" || len(s.Topics) == 0 {
			return nil, &GenerateError{Reason: "incomplete syllabus from model"}
		}
	}
	return syllabus, nil
}

// ============================================================================
// Model communication
// ============================================================================

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate walks the model ladder until one model returns usable text.
func (g *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for _, model := range g.models {
		text, err := g.callModel(ctx, model, prompt)
		if err != nil {
			lastErr = err
			continue
		}
		return text, nil
	}

	return "", &GenerateError{
		Reason:  fmt.Sprintf("all %d models failed", len(g.models)),
		Wrapped: lastErr,
	}
}

// callModel sends a single generateContent request and returns the raw text.
func (g *GeminiClient) callModel(ctx context.Context, model, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model %s returned status %d", model, resp.StatusCode)
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("failed to decode model response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model %s returned no candidates", model)
	}

	text := geminiResp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("model %s returned empty content", model)
	}

	return text, nil
}

// ============================================================================
// JSON extraction
// ============================================================================

// extractJSON finds the outermost JSON object in a string.
// It handles nested braces correctly and skips braces inside quoted strings.
func extractJSON(s string) string {
	return extractDelimited(s, '{', '}')
}

// extractJSONArray finds the outermost JSON array in a string.
func extractJSONArray(s string) string {
	return extractDelimited(s, '[', ']')
}

func extractDelimited(s string, open, close rune) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == open {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == close {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// stripCodeFence removes a surrounding markdown code fence, which models
// sometimes wrap HTML output in despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```html")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ============================================================================
// Prompt builders. Prompts are in Portuguese because the generated material
// is study content for Brazilian civil-service exams.
// ============================================================================

func buildStudyPrompt(subject, topic string, mode ContentMode) string {
	if mode == ModeFull {
		return fmt.Sprintf(`Você é um professor especialista em concursos públicos.
Escreva um material de estudo COMPLETO e aprofundado sobre o tópico abaixo,
voltado para provas objetivas.

DISCIPLINA: %s
TÓPICO: %s

Inclua: conceitos, pegadinhas de prova, jurisprudência ou fórmulas quando
aplicável, e exemplos práticos.

Responda APENAS com HTML simples (h3, p, ul, li, strong) — sem markdown.`, subject, topic)
	}

	return fmt.Sprintf(`Você é um professor especialista em concursos públicos.
Escreva um RESUMO objetivo e direto sobre o tópico abaixo, voltado para
revisão rápida antes da prova.

DISCIPLINA: %s
TÓPICO: %s

Responda APENAS com HTML simples (h3, p, ul, li, strong) — sem markdown.`, subject, topic)
}

func buildQuizPrompt(subject, topic string, count int) string {
	return fmt.Sprintf(`Você é um elaborador de questões de concursos públicos.
Crie %d questões de múltipla escolha sobre o tópico abaixo, no estilo das
principais bancas.

DISCIPLINA: %s
TÓPICO: %s

Responda APENAS com este JSON — sem explicação, sem markdown:
[{"statement": "...", "options": ["...", "...", "...", "..."], "correctIndex": 0, "justification": "..."}]`,
		count, subject, topic)
}

func buildLawFlashPrompt(lawName string) string {
	return fmt.Sprintf(`Você é um professor de legislação para concursos públicos.
Escolha UM artigo relevante e cobrado em prova da seguinte norma: %s.

Responda APENAS com este JSON — sem explicação, sem markdown:
{"article": "Art. X", "summary": "texto resumido do artigo", "isLong": false, "tip": "dica de memorização"}`,
		lawName)
}

func buildSyllabusPrompt(examName string) string {
	return fmt.Sprintf(`Você é um especialista em editais de concursos públicos.
Liste o conteúdo programático típico do seguinte concurso: %s.

Responda APENAS com este JSON — sem explicação, sem markdown:
[{"subject": "nome da disciplina", "topics": ["tópico 1", "tópico 2"]}]`, examName)
}

func buildAnalysisPrompt(reportJSON string) string {
	return fmt.Sprintf(`Você é um coach de estudos para concursos públicos.
Analise o desempenho abaixo (percentual de acertos por disciplina e tópico)
e escreva um plano de ação curto: onde focar, o que manter, o que revisar.

DESEMPENHO (JSON):
%s

Responda em texto corrido, em português, no máximo 3 parágrafos.`, reportJSON)
}

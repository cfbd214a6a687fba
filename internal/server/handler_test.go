package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizzical/internal/llm"
	"github.com/abhisek/quizzical/internal/quiz"
)

func testRouter(t *testing.T, mock *llm.MockProvider) http.Handler {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	gen := quiz.New(mock, quiz.DefaultConfig())
	hints := quiz.NewHintService(mock, quiz.DefaultConfig())
	return newRouter(NewHandler(gen, hints, log), log)
}

func quizJSON(count int) string {
	var b strings.Builder
	b.WriteString(`{"topic":"Space","difficulty":"easy","questions":[`)
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b,
			`{"question":"Question %d?","options":["A","B","C","D"],"correctAnswer":0,"explanation":"Because."}`, i)
	}
	b.WriteString("]}")
	return b.String()
}

func TestGenerateQuiz_OK(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: quizJSON(3)})
	router := testRouter(t, mock)

	req := httptest.NewRequest(http.MethodPost, "/api/quiz",
		strings.NewReader(`{"topic":"Space","difficulty":"easy","numQuestions":3}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp quizResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Space", resp.Topic)
	assert.Equal(t, "easy", resp.Difficulty)
	require.Len(t, resp.Questions, 3)
	assert.Len(t, resp.Questions[0].Options, 4)
}

func TestGenerateQuiz_BadRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{"topic":`},
		{"unknown difficulty", `{"topic":"Space","difficulty":"impossible"}`},
		{"missing topic", `{"numQuestions":3}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := testRouter(t, llm.NewMockProvider())

			req := httptest.NewRequest(http.MethodPost, "/api/quiz", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var payload map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
			assert.NotEmpty(t, payload["error"])
		})
	}
}

func TestGenerateQuiz_GenerationFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "no json"},
		llm.MockResponse{Text: "still no json"},
	)
	router := testRouter(t, mock)

	req := httptest.NewRequest(http.MethodPost, "/api/quiz",
		strings.NewReader(`{"topic":"Space","numQuestions":3}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&llm.ErrNotConfigured{Provider: "gemini", EnvVar: "GEMINI_API_KEY"}, http.StatusInternalServerError},
		{&quiz.GenerationError{Err: errors.New("x")}, http.StatusBadGateway},
		{&llm.ErrRateLimit{Err: errors.New("429")}, http.StatusBadGateway},
		{&llm.ErrProviderUnavailable{}, http.StatusBadGateway},
		{errors.New("topic is required"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), "err: %v", tc.err)
	}
}

func TestGenerateHint_OK(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Think about mass."})
	router := testRouter(t, mock)

	req := httptest.NewRequest(http.MethodPost, "/api/hint",
		strings.NewReader(`{"question":"Largest planet?","options":["Mars","Jupiter","Venus","Saturn"],"userAnswer":"Saturn"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp hintResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Think about mass.", resp.Hint)
}

func TestGenerateHint_ProviderFailureStillOK(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	router := testRouter(t, mock)

	req := httptest.NewRequest(http.MethodPost, "/api/hint",
		strings.NewReader(`{"question":"Largest planet?","userAnswer":"Saturn"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp hintResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, quiz.FallbackHint, resp.Hint)
}

func TestGenerateHint_MissingFields(t *testing.T) {
	router := testRouter(t, llm.NewMockProvider())

	for _, body := range []string{`{}`, `{"question":"Q?"}`, `{"userAnswer":"A"}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/hint", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestCORS_Preflight(t *testing.T) {
	router := testRouter(t, llm.NewMockProvider())

	req := httptest.NewRequest(http.MethodOptions, "/api/quiz", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestMethodNotAllowed(t *testing.T) {
	router := testRouter(t, llm.NewMockProvider())

	req := httptest.NewRequest(http.MethodGet, "/api/quiz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealth(t *testing.T) {
	router := testRouter(t, llm.NewMockProvider())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

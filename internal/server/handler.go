package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizzical/internal/llm"
	"github.com/abhisek/quizzical/internal/quiz"
)

// Handler serves the quiz API endpoints.
type Handler struct {
	gen   quiz.Generator
	hints *quiz.HintService
	log   *logrus.Logger
}

// NewHandler creates the API handler.
func NewHandler(gen quiz.Generator, hints *quiz.HintService, log *logrus.Logger) *Handler {
	return &Handler{gen: gen, hints: hints, log: log}
}

type quizRequest struct {
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"numQuestions"`
}

type quizResponse struct {
	Topic      string             `json:"topic"`
	Difficulty string             `json:"difficulty"`
	Questions  []questionResponse `json:"questions"`
}

type questionResponse struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// GenerateQuiz handles POST /api/quiz.
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	difficulty, err := quiz.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	qs, err := h.gen.Generate(r.Context(), quiz.Request{
		Topic:      req.Topic,
		Difficulty: difficulty,
		Count:      req.NumQuestions,
	})
	if err != nil {
		h.log.WithError(err).Error("quiz generation failed")
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toQuizResponse(qs))
}

// statusFor maps generation failures onto HTTP statuses: the caller's
// fault is 400, our configuration's fault is 500, the provider's fault
// is 502.
func statusFor(err error) int {
	var notConfigured *llm.ErrNotConfigured
	if errors.As(err, &notConfigured) {
		return http.StatusInternalServerError
	}
	var genFailed *quiz.GenerationError
	var rateLimit *llm.ErrRateLimit
	var unavailable *llm.ErrProviderUnavailable
	if errors.As(err, &genFailed) || errors.As(err, &rateLimit) || errors.As(err, &unavailable) {
		return http.StatusBadGateway
	}
	return http.StatusBadRequest
}

func toQuizResponse(qs *quiz.QuizSet) quizResponse {
	resp := quizResponse{
		Topic:      qs.Topic,
		Difficulty: string(qs.Difficulty),
		Questions:  make([]questionResponse, len(qs.Questions)),
	}
	for i, q := range qs.Questions {
		resp.Questions[i] = questionResponse{
			ID:            q.ID,
			Question:      q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectIndex,
			Explanation:   q.Explanation,
		}
	}
	return resp
}

type hintRequest struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	UserAnswer string   `json:"userAnswer"`
}

type hintResponse struct {
	Hint string `json:"hint"`
}

// GenerateHint handles POST /api/hint. Hint generation never hard-fails:
// anything past request validation answers 200, falling back to the
// generic hint when the provider lets us down.
func (h *Handler) GenerateHint(w http.ResponseWriter, r *http.Request) {
	var req hintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}
	if req.UserAnswer == "" {
		writeError(w, http.StatusBadRequest, "userAnswer is required")
		return
	}

	hint := h.hints.GenerateHint(r.Context(), quiz.HintRequest{
		Question: quiz.Question{
			Prompt:  req.Question,
			Options: req.Options,
		},
		UserAnswer: req.UserAnswer,
	})

	writeJSON(w, http.StatusOK, hintResponse{Hint: hint})
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

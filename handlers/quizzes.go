package handlers

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"

	"github.com/mahmoudsultan/trivia-api/models"
	"github.com/mahmoudsultan/trivia-api/utils"
)

type quizRequest struct {
	QuizCategory *struct {
		ID json.Number `json:"id"`
	} `json:"quiz_category"`
	PreviousQuestions []json.Number `json:"previous_questions"`
}

func (q quizRequest) categoryID() (uint, error) {
	if q.QuizCategory == nil || q.QuizCategory.ID == "" {
		return 0, badRequest("quiz_category.id is required")
	}
	id, err := numberToInt(q.QuizCategory.ID)
	if err != nil || id < 0 {
		return 0, badRequest("invalid quiz category %q", q.QuizCategory.ID)
	}
	return uint(id), nil
}

func (q quizRequest) previousIDs() ([]uint, error) {
	ids := make([]uint, 0, len(q.PreviousQuestions))
	for _, raw := range q.PreviousQuestions {
		id, err := numberToInt(raw)
		if err != nil {
			return nil, badRequest("invalid previous question %q", raw)
		}
		// ids below 1 can never match a row
		if id > 0 {
			ids = append(ids, uint(id))
		}
	}
	return ids, nil
}

// POST /quizzes
func (h *DBHandler) PlayQuiz(w http.ResponseWriter, r *http.Request) error {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("invalid request body: %v", err)
	}

	categoryID, err := req.categoryID()
	if err != nil {
		return err
	}
	previous, err := req.previousIDs()
	if err != nil {
		return err
	}

	candidates, err := h.Store.QuizCandidates(r.Context(), categoryID, previous)
	if err != nil {
		return err
	}

	utils.WriteJSON(w, http.StatusOK, questionResponse{
		Success:  true,
		Question: pickQuestion(candidates),
	})
	return nil
}

// pickQuestion draws uniformly from candidates, or returns nil when there are none.
func pickQuestion(candidates []models.Question) *models.Question {
	if len(candidates) == 0 {
		return nil
	}
	return &candidates[rand.IntN(len(candidates))]
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/mahmoudsultan/trivia-api/models"
	"github.com/mahmoudsultan/trivia-api/store"
	"github.com/mahmoudsultan/trivia-api/utils"
)

type categoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
	TotalCount int             `json:"total_count"`
}

type categoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory models.Category   `json:"current_category"`
}

// GET /categories
func (h *DBHandler) GetCategories(w http.ResponseWriter, r *http.Request) error {
	categories, err := h.Store.ListCategories(r.Context())
	if err != nil {
		return err
	}

	utils.WriteJSON(w, http.StatusOK, categoriesResponse{
		Success:    true,
		Categories: models.FormatCategories(categories),
		TotalCount: len(categories),
	})
	return nil
}

// GET /categories/{categoryID}/questions
func (h *DBHandler) GetQuestionsForCategory(w http.ResponseWriter, r *http.Request) error {
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		return err
	}

	category, err := h.Store.FindCategory(r.Context(), categoryID)
	if errors.Is(err, store.ErrNotFound) {
		return notFound("category %d not found", categoryID)
	}
	if err != nil {
		return err
	}

	questions, err := h.Store.QuestionsByCategory(r.Context(), category.ID)
	if err != nil {
		return err
	}
	questions = orEmpty(questions)

	utils.WriteJSON(w, http.StatusOK, categoryQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: *category,
	})
	return nil
}

func orEmpty(questions []models.Question) []models.Question {
	if questions == nil {
		return []models.Question{}
	}
	return questions
}

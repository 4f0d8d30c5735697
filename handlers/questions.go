package handlers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/mahmoudsultan/trivia-api/models"
	"github.com/mahmoudsultan/trivia-api/store"
	"github.com/mahmoudsultan/trivia-api/utils"
)

type questionListResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int64             `json:"total_questions"`
	Categories      map[uint]string   `json:"categories"`
	CurrentCategory *uint             `json:"current_category"`
}

type questionResponse struct {
	Success  bool             `json:"success"`
	Question *models.Question `json:"question"`
}

type searchResponse struct {
	Success        bool              `json:"success"`
	Questions      []models.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// pageNumber reads ?page=, falling back to 1 when it is absent or not an integer.
func pageNumber(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// GET /questions?page=N
func (h *DBHandler) GetQuestions(w http.ResponseWriter, r *http.Request) error {
	page := pageNumber(r)
	if page < 1 || page-1 > math.MaxInt/QuestionsPerPage {
		return notFound("page %d out of range", page)
	}
	offset := QuestionsPerPage * (page - 1)

	questions, err := h.Store.ListQuestions(r.Context(), offset, QuestionsPerPage)
	if err != nil {
		return err
	}
	total, err := h.Store.CountQuestions(r.Context())
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return notFound("page %d is empty", page)
	}

	categories, err := h.Store.ListCategories(r.Context())
	if err != nil {
		return err
	}

	// The first category overall, regardless of which questions are on the page.
	var current *uint
	if len(categories) > 0 {
		current = &categories[0].ID
	}

	utils.WriteJSON(w, http.StatusOK, questionListResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  total,
		Categories:      models.FormatCategories(categories),
		CurrentCategory: current,
	})
	return nil
}

// POST /questions
func (h *DBHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) error {
	body, err := decodeObject(r)
	if err != nil {
		return badRequest("invalid request body: %v", err)
	}

	for _, field := range []string{"question", "answer", "category", "difficulty"} {
		if !truthy(body[field]) {
			return badRequest("field %q is required", field)
		}
	}

	text, ok := body["question"].(string)
	if !ok {
		return badRequest("field %q must be a string", "question")
	}
	answer, ok := body["answer"].(string)
	if !ok {
		return badRequest("field %q must be a string", "answer")
	}

	categoryID, err := asInt(body["category"])
	if err != nil || categoryID < 1 {
		return unprocessable("invalid category %v", body["category"])
	}
	difficulty, err := asInt(body["difficulty"])
	if err != nil {
		return unprocessable("invalid difficulty: %v", err)
	}

	if _, err := h.Store.FindCategory(r.Context(), uint(categoryID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return unprocessable("category %d does not exist", categoryID)
		}
		return err
	}

	question := models.Question{
		Question:   text,
		Answer:     answer,
		Category:   uint(categoryID),
		Difficulty: int(difficulty),
	}
	if err := h.Store.InsertQuestion(r.Context(), &question); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	log.Printf("CreateQuestion: created question id=%d in category=%d", question.ID, question.Category)
	utils.WriteJSON(w, http.StatusCreated, questionResponse{Success: true, Question: &question})
	return nil
}

// DELETE /questions/{questionID}
func (h *DBHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) error {
	questionID, err := pathID(r, "questionID")
	if err != nil {
		return err
	}

	question, err := h.Store.FindQuestion(r.Context(), questionID)
	if errors.Is(err, store.ErrNotFound) {
		return notFound("question %d not found", questionID)
	}
	if err != nil {
		return err
	}

	if err := h.Store.DeleteQuestion(r.Context(), question); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("question %d already deleted", questionID)
		}
		return fmt.Errorf("failed to delete question %d: %w", questionID, err)
	}

	log.Printf("DeleteQuestion: deleted question id=%d", question.ID)
	utils.WriteJSON(w, http.StatusOK, questionResponse{Success: true, Question: question})
	return nil
}

// POST /questions/search
func (h *DBHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) error {
	body, err := decodeObject(r)
	if err != nil {
		return badRequest("invalid request body: %v", err)
	}

	if !truthy(body["searchTerm"]) {
		return badRequest("searchTerm is required")
	}
	term, ok := body["searchTerm"].(string)
	if !ok {
		return badRequest("searchTerm must be a string")
	}

	questions, err := h.Store.SearchQuestions(r.Context(), term)
	if err != nil {
		return err
	}
	questions = orEmpty(questions)

	utils.WriteJSON(w, http.StatusOK, searchResponse{
		Success:        true,
		Questions:      questions,
		TotalQuestions: len(questions),
	})
	return nil
}

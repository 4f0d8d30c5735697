package handlers

import "net/http"

// Routes builds the route table. guard wraps the endpoints that modify
// questions; pass nil to leave them open.
func (h *DBHandler) Routes(guard func(http.HandlerFunc) http.HandlerFunc) http.Handler {
	if guard == nil {
		guard = func(next http.HandlerFunc) http.HandlerFunc { return next }
	}

	mux := http.NewServeMux()

	// Categories
	mux.HandleFunc("GET /categories", h.handle("GetCategories", h.GetCategories))
	mux.HandleFunc("GET /categories/{categoryID}/questions", h.handle("GetQuestionsForCategory", h.GetQuestionsForCategory))

	// Questions
	mux.HandleFunc("GET /questions", h.handle("GetQuestions", h.GetQuestions))
	mux.HandleFunc("POST /questions", guard(h.handle("CreateQuestion", h.CreateQuestion)))
	mux.HandleFunc("DELETE /questions/{questionID}", guard(h.handle("DeleteQuestion", h.DeleteQuestion)))
	mux.HandleFunc("POST /questions/search", h.handle("SearchQuestions", h.SearchQuestions))

	// Quizzes
	mux.HandleFunc("POST /quizzes", h.handle("PlayQuiz", h.PlayQuiz))

	mux.HandleFunc("/", h.NotFound)

	return mux
}

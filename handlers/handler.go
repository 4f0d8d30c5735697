package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/mahmoudsultan/trivia-api/store"
	"github.com/mahmoudsultan/trivia-api/utils"
)

// QuestionsPerPage is the fixed window size of GET /questions
const QuestionsPerPage = 10

type DBHandler struct {
	Store store.Store
}

func NewDBHandler(s store.Store) *DBHandler {
	return &DBHandler{Store: s}
}

// StatusError ends a request with the envelope for Status.
type StatusError struct {
	Status int
	Reason string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Reason)
}

func badRequest(format string, args ...any) error {
	return &StatusError{Status: http.StatusBadRequest, Reason: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) error {
	return &StatusError{Status: http.StatusNotFound, Reason: fmt.Sprintf(format, args...)}
}

func unprocessable(format string, args ...any) error {
	return &StatusError{Status: http.StatusUnprocessableEntity, Reason: fmt.Sprintf(format, args...)}
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to net/http and maps its error to one of the fixed envelopes.
func (h *DBHandler) handle(name string, fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		var statusErr *StatusError
		switch {
		case errors.As(err, &statusErr):
			log.Printf("%s: %s", name, statusErr.Reason)
			utils.WriteError(w, statusErr.Status)
		case errors.Is(err, store.ErrNotFound):
			log.Printf("%s: %v", name, err)
			utils.WriteError(w, http.StatusNotFound)
		default:
			log.Printf("%s: %v", name, err)
			utils.WriteError(w, http.StatusInternalServerError)
		}
	}
}

// pathID parses an integer path parameter. Anything that is not a positive
// integer cannot name a row, so it is reported as not found.
func pathID(r *http.Request, name string) (uint, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, notFound("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

// NotFound answers any request no route matched.
func (h *DBHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	log.Printf("NotFound: no route for %s %s", r.Method, r.URL.Path)
	utils.WriteError(w, http.StatusNotFound)
}

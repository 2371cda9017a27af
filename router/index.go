package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/moonfeed/moonfeed/database"
	"github.com/moonfeed/moonfeed/model"
	"github.com/moonfeed/moonfeed/schema"
)

// Every possible error list
const (
	ErrorInternalServerError = "Internal server error"
	ErrorInvalidBody         = "Invalid body"
	ErrorInvalidQuery        = "Invalid query"
	ErrorMethodNotAllowed    = "Method not allowed"
	ErrorUnableReadBody      = "Unable to read body"
)

// API bundles the handlers' dependencies: the store for list
// reads and the core for everything validated
type API struct {
	DB   *database.Database
	Core *schema.Core
}

// New creates the REST surface over the given core
func New(db *database.Database, core *schema.Core) *API {
	return &API{DB: db, Core: core}
}

func Index(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "OK")
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respond(w, status, model.RequestError{
		Error:   status >= http.StatusBadRequest,
		Message: message,
	})
}

// respondFailure maps core errors onto status codes:
// NotFound becomes 404, BadRequest becomes 400
func respondFailure(w http.ResponseWriter, err error) {
	var failure *schema.RequestFailure
	if errors.As(err, &failure) {
		status := http.StatusBadRequest
		if failure.Kind == schema.KindNotFound {
			status = http.StatusNotFound
		}
		respondMessage(w, status, failure.Message)
		return
	}

	respondMessage(w, http.StatusInternalServerError, ErrorInternalServerError)
}

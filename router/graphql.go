package router

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/moonfeed/moonfeed/helpers"
)

// GraphQLHandler executes one operation document per request.
// Execution failures stay inside the result body, the transport
// answer is always 200
func (a *API) GraphQLHandler(w http.ResponseWriter, req *http.Request) {
	helpers.HTTPRequests.WithLabelValues("graphql", req.Method).Inc()

	if req.Method != http.MethodPost {
		respondMessage(w, http.StatusMethodNotAllowed, ErrorMethodNotAllowed)
		return
	}

	defer req.Body.Close()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, ErrorUnableReadBody)
		return
	}

	var getbody struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}
	if err := json.Unmarshal(body, &getbody); err != nil {
		respondMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	if getbody.Query == "" {
		respondMessage(w, http.StatusBadRequest, ErrorInvalidQuery)
		return
	}

	result := a.Core.Execute(req.Context(), getbody.Query, getbody.Variables)

	outcome := "ok"
	if len(result.Errors) > 0 {
		outcome = "error"
	}
	helpers.GraphQLOperations.WithLabelValues(outcome).Inc()

	respond(w, http.StatusOK, result)
}

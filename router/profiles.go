package router

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/moonfeed/moonfeed/helpers"
	"github.com/moonfeed/moonfeed/model"
)

// ProfileHandler routes /profiles/* into the well path
func (a *API) ProfileHandler(w http.ResponseWriter, req *http.Request) {
	helpers.HTTPRequests.WithLabelValues("profiles", req.Method).Inc()

	id := strings.TrimPrefix(req.URL.Path, "/profiles/")
	switch {
	case req.Method == http.MethodGet && id == "":
		respond(w, http.StatusOK, a.DB.Profiles.FindMany(nil))
	case req.Method == http.MethodGet:
		a.getProfile(w, id)
	case req.Method == http.MethodPost && id == "":
		a.createProfile(w, req)
	case req.Method == http.MethodPatch && id != "":
		a.patchProfile(w, req, id)
	default:
		respondMessage(w, http.StatusMethodNotAllowed, ErrorMethodNotAllowed)
	}
}

func (a *API) getProfile(w http.ResponseWriter, id string) {
	profile, err := a.Core.GetProfile(id)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, profile)
}

func (a *API) createProfile(w http.ResponseWriter, req *http.Request) {
	defer req.Body.Close()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, ErrorUnableReadBody)
		return
	}

	var fields model.Profile
	if err := json.Unmarshal(body, &fields); err != nil {
		respondMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	profile, err := a.Core.CreateProfile(fields)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, profile)
}

func (a *API) patchProfile(w http.ResponseWriter, req *http.Request, id string) {
	defer req.Body.Close()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, ErrorUnableReadBody)
		return
	}

	var patch model.ProfilePatch
	if err := json.Unmarshal(body, &patch); err != nil {
		respondMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	profile, err := a.Core.UpdateProfile(id, patch)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, profile)
}

package router

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/moonfeed/moonfeed/helpers"
	"github.com/moonfeed/moonfeed/model"
)

// UserHandler routes /users/* into the well path
func (a *API) UserHandler(w http.ResponseWriter, req *http.Request) {
	helpers.HTTPRequests.WithLabelValues("users", req.Method).Inc()

	id := strings.TrimPrefix(req.URL.Path, "/users/")
	switch {
	case req.Method == http.MethodGet && id == "":
		respond(w, http.StatusOK, a.DB.Users.FindMany(nil))
	case req.Method == http.MethodGet:
		a.getUser(w, id)
	case req.Method == http.MethodPost && id == "":
		a.createUser(w, req)
	case req.Method == http.MethodPost && strings.HasSuffix(id, "/subscribeTo"):
		a.subscribe(w, req, strings.TrimSuffix(id, "/subscribeTo"))
	case req.Method == http.MethodPost && strings.HasSuffix(id, "/unsubscribeFrom"):
		a.unsubscribe(w, req, strings.TrimSuffix(id, "/unsubscribeFrom"))
	case req.Method == http.MethodPatch && id != "":
		a.patchUser(w, req, id)
	default:
		respondMessage(w, http.StatusMethodNotAllowed, ErrorMethodNotAllowed)
	}
}

func (a *API) getUser(w http.ResponseWriter, id string) {
	user, err := a.Core.GetUser(id)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, user)
}

func (a *API) createUser(w http.ResponseWriter, req *http.Request) {
	defer req.Body.Close()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, ErrorUnableReadBody)
		return
	}

	var fields model.User
	if err := json.Unmarshal(body, &fields); err != nil {
		respondMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	user, err := a.Core.CreateUser(fields)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, user)
}

func (a *API) patchUser(w http.ResponseWriter, req *http.Request, id string) {
	defer req.Body.Close()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, ErrorUnableReadBody)
		return
	}

	var patch model.UserPatch
	if err := json.Unmarshal(body, &patch); err != nil {
		respondMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	user, err := a.Core.UpdateUser(id, patch)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, user)
}

func (a *API) subscribe(w http.ResponseWriter, req *http.Request, id string) {
	target, ok := subscribeTarget(w, req)
	if !ok {
		return
	}

	user, err := a.Core.SubscribeTo(id, target)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, user)
}

func (a *API) unsubscribe(w http.ResponseWriter, req *http.Request, id string) {
	target, ok := subscribeTarget(w, req)
	if !ok {
		return
	}

	user, err := a.Core.UnsubscribeFrom(id, target)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, user)
}

func subscribeTarget(w http.ResponseWriter, req *http.Request) (string, bool) {
	defer req.Body.Close()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, ErrorUnableReadBody)
		return "", false
	}

	var getbody model.SubscribeBody
	json.Unmarshal(body, &getbody)

	if getbody.UserId == "" {
		respondMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return "", false
	}

	return getbody.UserId, true
}

package router

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/moonfeed/moonfeed/helpers"
	"github.com/moonfeed/moonfeed/model"
)

// PostHandler routes /posts/* into the well path
func (a *API) PostHandler(w http.ResponseWriter, req *http.Request) {
	helpers.HTTPRequests.WithLabelValues("posts", req.Method).Inc()

	id := strings.TrimPrefix(req.URL.Path, "/posts/")
	switch {
	case req.Method == http.MethodGet && id == "":
		respond(w, http.StatusOK, a.DB.Posts.FindMany(nil))
	case req.Method == http.MethodGet:
		a.getPost(w, id)
	case req.Method == http.MethodPost && id == "":
		a.createPost(w, req)
	case req.Method == http.MethodPatch && id != "":
		a.patchPost(w, req, id)
	case req.Method == http.MethodDelete && id != "":
		a.deletePost(w, id)
	default:
		respondMessage(w, http.StatusMethodNotAllowed, ErrorMethodNotAllowed)
	}
}

func (a *API) getPost(w http.ResponseWriter, id string) {
	post, err := a.Core.GetPost(id)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, post)
}

func (a *API) createPost(w http.ResponseWriter, req *http.Request) {
	defer req.Body.Close()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, ErrorUnableReadBody)
		return
	}

	var fields model.Post
	if err := json.Unmarshal(body, &fields); err != nil {
		respondMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	post, err := a.Core.CreatePost(fields)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, post)
}

func (a *API) patchPost(w http.ResponseWriter, req *http.Request, id string) {
	defer req.Body.Close()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, ErrorUnableReadBody)
		return
	}

	var patch model.PostPatch
	if err := json.Unmarshal(body, &patch); err != nil {
		respondMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	post, err := a.Core.UpdatePost(id, patch)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, post)
}

func (a *API) deletePost(w http.ResponseWriter, id string) {
	post, err := a.Core.DeletePost(id)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, post)
}

package router

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/moonfeed/moonfeed/helpers"
	"github.com/moonfeed/moonfeed/model"
)

// MemberTypeHandler routes /member-types/* into the well path.
// Plans are seeded, the surface only reads and updates them
func (a *API) MemberTypeHandler(w http.ResponseWriter, req *http.Request) {
	helpers.HTTPRequests.WithLabelValues("member-types", req.Method).Inc()

	id := strings.TrimPrefix(req.URL.Path, "/member-types/")
	switch {
	case req.Method == http.MethodGet && id == "":
		respond(w, http.StatusOK, a.DB.MemberTypes.FindMany(nil))
	case req.Method == http.MethodGet:
		a.getMemberType(w, id)
	case req.Method == http.MethodPatch && id != "":
		a.patchMemberType(w, req, id)
	default:
		respondMessage(w, http.StatusMethodNotAllowed, ErrorMethodNotAllowed)
	}
}

func (a *API) getMemberType(w http.ResponseWriter, id string) {
	memberType, err := a.Core.GetMemberType(id)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, memberType)
}

func (a *API) patchMemberType(w http.ResponseWriter, req *http.Request, id string) {
	defer req.Body.Close()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		respondMessage(w, http.StatusInternalServerError, ErrorUnableReadBody)
		return
	}

	var patch model.MemberTypePatch
	if err := json.Unmarshal(body, &patch); err != nil {
		respondMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	memberType, err := a.Core.UpdateMemberType(id, patch)
	if err != nil {
		respondFailure(w, err)
		return
	}

	respond(w, http.StatusOK, memberType)
}

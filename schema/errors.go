package schema

// Error kinds surfaced to clients, both as GraphQL error
// extensions and as REST status codes
const (
	KindNotFound   = "NOT_FOUND"
	KindBadRequest = "BAD_REQUEST"
)

// Every possible error message
const (
	ErrUserNotFound          = "User does not exist"
	ErrPostNotFound          = "Post does not exist"
	ErrProfileNotFound       = "Profile does not exist"
	ErrMemberTypeNotFound    = "Member type does not exist"
	ErrUserNotCreated        = "User is not created"
	ErrPostNotCreated        = "Post is not created"
	ErrProfileNotCreated     = "Profile is not created"
	ErrUserAlreadyHasProfile = "User already has profile"
	ErrUserNotSubscribed     = "User is not subscribed"
	ErrMemberTypeWasNotFound = "Member type was not found"
	ErrPostWasNotFound       = "Post was not found"
)

// RequestFailure is the only error type raised by the core.
// A failing field or mutation aborts with one of these, siblings
// in the same operation are unaffected
type RequestFailure struct {
	Kind    string
	Message string
}

func (e *RequestFailure) Error() string {
	return e.Message
}

// Extensions exposes the kind on GraphQL error entries
func (e *RequestFailure) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Kind}
}

// NotFound reports a missing entity on a read
func NotFound(message string) *RequestFailure {
	return &RequestFailure{Kind: KindNotFound, Message: message}
}

// BadRequest reports a violated write precondition
func BadRequest(message string) *RequestFailure {
	return &RequestFailure{Kind: KindBadRequest, Message: message}
}

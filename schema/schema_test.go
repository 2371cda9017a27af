package schema

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/moonfeed/moonfeed/database"
	"github.com/moonfeed/moonfeed/model"
)

func newCore(t *testing.T) (*database.Database, *Core) {
	t.Helper()

	db := database.New()
	core, err := New(db, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return db, core
}

func execute(t *testing.T, core *Core, query string, variables map[string]interface{}) *graphql.Result {
	t.Helper()

	return core.Execute(context.Background(), query, variables)
}

func resultData(t *testing.T, result *graphql.Result) map[string]interface{} {
	t.Helper()

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %+v", result.Errors)
	}

	data, ok := result.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data shape: %+v", result.Data)
	}

	return data
}

func TestPostsByOwner(t *testing.T) {
	db, core := newCore(t)

	owner := db.Users.Create(model.User{FirstName: "Ann"})
	other := db.Users.Create(model.User{FirstName: "Bob"})
	db.Posts.Create(model.Post{Title: "first", UserId: owner.Id})
	db.Posts.Create(model.Post{Title: "noise", UserId: other.Id})
	db.Posts.Create(model.Post{Title: "second", UserId: owner.Id})

	result := execute(t, core, `query($id: ID!) { user(id: $id) { posts { title userId } } }`,
		map[string]interface{}{"id": owner.Id})

	user := resultData(t, result)["user"].(map[string]interface{})
	posts := user["posts"].([]interface{})
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	for _, entry := range posts {
		post := entry.(map[string]interface{})
		if post["userId"] != owner.Id {
			t.Fatalf("post of another owner leaked: %+v", post)
		}
	}
	if posts[0].(map[string]interface{})["title"] != "first" {
		t.Fatalf("posts out of creation order: %+v", posts)
	}
}

func TestCreatedPostVisibleThroughUserPosts(t *testing.T) {
	_, core := newCore(t)

	user, err := core.CreateUser(model.User{FirstName: "Ann"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := core.CreatePost(model.Post{UserId: user.Id, Title: "T", Content: "C"}); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	result := execute(t, core, `query($id: ID!) { user(id: $id) { posts { title } } }`,
		map[string]interface{}{"id": user.Id})

	posts := resultData(t, result)["user"].(map[string]interface{})["posts"].([]interface{})
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}
	if posts[0].(map[string]interface{})["title"] != "T" {
		t.Fatalf("unexpected post: %+v", posts[0])
	}
}

func TestNestedProfileMemberTypeDiscount(t *testing.T) {
	db, core := newCore(t)

	db.MemberTypes.Create(model.MemberType{Id: "silver", Discount: 10, MonthPostsLimit: 5})
	user, err := core.CreateUser(model.User{FirstName: "Ann"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := core.CreateProfile(model.Profile{
		UserId:       user.Id,
		Avatar:       "a.png",
		Sex:          "female",
		Birthday:     19900101,
		Country:      "NL",
		Street:       "Main",
		City:         "Delft",
		MemberTypeId: "silver",
	}); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	result := execute(t, core, `query($id: ID!) { user(id: $id) { profile { memberType { discount } } memberType { discount } } }`,
		map[string]interface{}{"id": user.Id})

	got := resultData(t, result)["user"].(map[string]interface{})
	viaProfile := got["profile"].(map[string]interface{})["memberType"].(map[string]interface{})
	if viaProfile["discount"] != 10 {
		t.Fatalf("profile.memberType.discount = %v, want 10", viaProfile["discount"])
	}
	viaUser := got["memberType"].(map[string]interface{})
	if viaUser["discount"] != 10 {
		t.Fatalf("user.memberType.discount = %v, want 10", viaUser["discount"])
	}
}

func TestMemberTypeWithoutProfileIsNull(t *testing.T) {
	_, core := newCore(t)

	user, err := core.CreateUser(model.User{FirstName: "Ann"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	result := execute(t, core, `query($id: ID!) { user(id: $id) { profile { id } memberType { id } } }`,
		map[string]interface{}{"id": user.Id})

	got := resultData(t, result)["user"].(map[string]interface{})
	if got["profile"] != nil {
		t.Fatalf("profile = %v, want null", got["profile"])
	}
	if got["memberType"] != nil {
		t.Fatalf("memberType = %v, want null", got["memberType"])
	}
}

func TestQueryUnknownUserNotFound(t *testing.T) {
	_, core := newCore(t)

	result := execute(t, core, `query($id: ID!) { user(id: $id) { id } }`,
		map[string]interface{}{"id": "nonexistent"})

	if len(result.Errors) != 1 {
		t.Fatalf("got %d errors, want 1: %+v", len(result.Errors), result.Errors)
	}
	if result.Errors[0].Message != ErrUserNotFound {
		t.Fatalf("error message = %q", result.Errors[0].Message)
	}

	data := result.Data.(map[string]interface{})
	if data["user"] != nil {
		t.Fatalf("data.user = %v, want null", data["user"])
	}
}

func TestFailingFieldLeavesSiblingsAlone(t *testing.T) {
	_, core := newCore(t)

	if _, err := core.CreateUser(model.User{FirstName: "Ann"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	result := execute(t, core, `{ user(id: "missing") { id } users { id } }`, nil)

	if len(result.Errors) != 1 {
		t.Fatalf("got %d errors, want 1: %+v", len(result.Errors), result.Errors)
	}

	data := result.Data.(map[string]interface{})
	if data["user"] != nil {
		t.Fatalf("failing branch should be null, got %v", data["user"])
	}
	users, ok := data["users"].([]interface{})
	if !ok || len(users) != 1 {
		t.Fatalf("sibling field affected by failing branch: %v", data["users"])
	}
}

func TestCreateUserMutation(t *testing.T) {
	_, core := newCore(t)

	result := execute(t, core, `mutation($user: CreateUserInput!) { createUser(user: $user) { id firstName email subscribedToUserIds } }`,
		map[string]interface{}{"user": map[string]interface{}{
			"firstName": "Ann",
			"lastName":  "Lee",
			"email":     "ann@example.com",
		}})

	created := resultData(t, result)["createUser"].(map[string]interface{})
	if created["id"] == "" || created["id"] == nil {
		t.Fatalf("createUser returned no id: %+v", created)
	}
	if created["firstName"] != "Ann" || created["email"] != "ann@example.com" {
		t.Fatalf("createUser = %+v", created)
	}
	if _, ok := created["subscribedToUserIds"].([]interface{}); !ok {
		t.Fatalf("subscribedToUserIds missing on a fresh user: %+v", created)
	}
}

func TestUpdateUserMergesProvidedFields(t *testing.T) {
	_, core := newCore(t)

	user, err := core.CreateUser(model.User{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	result := execute(t, core, `mutation($user: UpdateUserInput!) { updateUser(user: $user) { firstName lastName email } }`,
		map[string]interface{}{"user": map[string]interface{}{
			"id":    user.Id,
			"email": "new@example.com",
		}})

	updated := resultData(t, result)["updateUser"].(map[string]interface{})
	if updated["email"] != "new@example.com" {
		t.Fatalf("email not updated: %+v", updated)
	}
	if updated["firstName"] != "Ann" || updated["lastName"] != "Lee" {
		t.Fatalf("unprovided fields changed: %+v", updated)
	}
}

func TestUpdateMemberType(t *testing.T) {
	_, core := newCore(t)

	result := execute(t, core, `mutation($memberType: UpdateMemberTypeInput!) { updateMemberType(memberType: $memberType) { id discount monthPostsLimit } }`,
		map[string]interface{}{"memberType": map[string]interface{}{
			"id":       "basic",
			"discount": 3,
		}})

	updated := resultData(t, result)["updateMemberType"].(map[string]interface{})
	if updated["discount"] != 3 {
		t.Fatalf("discount = %v, want 3", updated["discount"])
	}
	if updated["monthPostsLimit"] != 20 {
		t.Fatalf("monthPostsLimit changed: %+v", updated)
	}
}

func TestDuplicateProfileRejected(t *testing.T) {
	db, core := newCore(t)

	user, err := core.CreateUser(model.User{FirstName: "Ann"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	fields := model.Profile{UserId: user.Id, Avatar: "a.png", Sex: "female", Birthday: 1, Country: "NL", Street: "Main", City: "Delft", MemberTypeId: "basic"}
	if _, err := core.CreateProfile(fields); err != nil {
		t.Fatalf("first CreateProfile: %v", err)
	}

	_, err = core.CreateProfile(fields)
	failure, ok := err.(*RequestFailure)
	if !ok || failure.Kind != KindBadRequest || failure.Message != ErrUserAlreadyHasProfile {
		t.Fatalf("second CreateProfile error = %v", err)
	}

	profiles := db.Profiles.FindMany(&database.Filter{Key: "userId", Equals: user.Id})
	if len(profiles) != 1 {
		t.Fatalf("store holds %d profiles for the user, want 1", len(profiles))
	}
}

func TestCreateProfileValidatesReferences(t *testing.T) {
	_, core := newCore(t)

	user, err := core.CreateUser(model.User{FirstName: "Ann"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, err = core.CreateProfile(model.Profile{UserId: user.Id, MemberTypeId: "golden"})
	if failure, ok := err.(*RequestFailure); !ok || failure.Message != ErrMemberTypeWasNotFound {
		t.Fatalf("unknown member type error = %v", err)
	}

	_, err = core.CreateProfile(model.Profile{UserId: "ghost", MemberTypeId: "basic"})
	if failure, ok := err.(*RequestFailure); !ok || failure.Message != ErrUserNotFound {
		t.Fatalf("unknown user error = %v", err)
	}
}

func TestSubscribeBothDirections(t *testing.T) {
	_, core := newCore(t)

	a, _ := core.CreateUser(model.User{FirstName: "Ann"})
	b, _ := core.CreateUser(model.User{FirstName: "Bob"})

	result := execute(t, core, `mutation($id: ID!, $to: ID!) { subscribeTo(id: $id, subscribeToId: $to) { subscribedToUserIds } }`,
		map[string]interface{}{"id": a.Id, "to": b.Id})
	edges := resultData(t, result)["subscribeTo"].(map[string]interface{})["subscribedToUserIds"].([]interface{})
	if len(edges) != 1 || edges[0] != b.Id {
		t.Fatalf("subscribedToUserIds = %v", edges)
	}

	result = execute(t, core, `query($id: ID!) { user(id: $id) { subscribedToUser { id } } }`,
		map[string]interface{}{"id": a.Id})
	following := resultData(t, result)["user"].(map[string]interface{})["subscribedToUser"].([]interface{})
	if len(following) != 1 || following[0].(map[string]interface{})["id"] != b.Id {
		t.Fatalf("subscribedToUser(A) = %v, want B", following)
	}

	result = execute(t, core, `query($id: ID!) { user(id: $id) { userSubscribedTo { id } } }`,
		map[string]interface{}{"id": b.Id})
	followers := resultData(t, result)["user"].(map[string]interface{})["userSubscribedTo"].([]interface{})
	if len(followers) != 1 || followers[0].(map[string]interface{})["id"] != a.Id {
		t.Fatalf("userSubscribedTo(B) = %v, want A", followers)
	}
}

func TestSubscribeToUnknownUserNotFound(t *testing.T) {
	_, core := newCore(t)

	_, err := core.SubscribeTo("ghost", "anyone")
	failure, ok := err.(*RequestFailure)
	if !ok || failure.Kind != KindNotFound {
		t.Fatalf("SubscribeTo on unknown user = %v", err)
	}
}

func TestSubscribePermissiveEdges(t *testing.T) {
	db, core := newCore(t)

	a, _ := core.CreateUser(model.User{FirstName: "Ann"})

	// self-subscription and duplicates are unguarded
	if _, err := core.SubscribeTo(a.Id, a.Id); err != nil {
		t.Fatalf("self subscription rejected: %v", err)
	}
	if _, err := core.SubscribeTo(a.Id, a.Id); err != nil {
		t.Fatalf("duplicate subscription rejected: %v", err)
	}

	user := db.Users.FindOne(&database.Filter{Key: "id", Equals: a.Id})
	if len(user.SubscribedToUserIds) != 2 {
		t.Fatalf("edge list = %v, want two self edges", user.SubscribedToUserIds)
	}
}

func TestUnsubscribeWithoutSubscription(t *testing.T) {
	db, core := newCore(t)

	a, _ := core.CreateUser(model.User{FirstName: "Ann"})
	b, _ := core.CreateUser(model.User{FirstName: "Bob"})

	_, err := core.UnsubscribeFrom(a.Id, b.Id)
	failure, ok := err.(*RequestFailure)
	if !ok || failure.Kind != KindBadRequest || failure.Message != ErrUserNotSubscribed {
		t.Fatalf("UnsubscribeFrom without edge = %v", err)
	}

	user := db.Users.FindOne(&database.Filter{Key: "id", Equals: a.Id})
	if len(user.SubscribedToUserIds) != 0 {
		t.Fatalf("edge list changed by failed unsubscribe: %v", user.SubscribedToUserIds)
	}
}

func TestUnsubscribeRemovesOneOccurrence(t *testing.T) {
	_, core := newCore(t)

	a, _ := core.CreateUser(model.User{FirstName: "Ann"})
	b, _ := core.CreateUser(model.User{FirstName: "Bob"})

	core.SubscribeTo(a.Id, b.Id)
	core.SubscribeTo(a.Id, b.Id)

	updated, err := core.UnsubscribeFrom(a.Id, b.Id)
	if err != nil {
		t.Fatalf("UnsubscribeFrom: %v", err)
	}
	if len(updated.SubscribedToUserIds) != 1 || updated.SubscribedToUserIds[0] != b.Id {
		t.Fatalf("edge list = %v, want one remaining edge to B", updated.SubscribedToUserIds)
	}
}

func TestSubscribedToUserKeepsDanglingEdges(t *testing.T) {
	_, core := newCore(t)

	a, _ := core.CreateUser(model.User{FirstName: "Ann"})
	if _, err := core.SubscribeTo(a.Id, "ghost"); err != nil {
		t.Fatalf("SubscribeTo dangling id: %v", err)
	}

	result := execute(t, core, `query($id: ID!) { user(id: $id) { subscribedToUser { id } } }`,
		map[string]interface{}{"id": a.Id})

	entries := resultData(t, result)["user"].(map[string]interface{})["subscribedToUser"].([]interface{})
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want the dangling one", len(entries))
	}
	if entries[0] != nil {
		t.Fatalf("dangling edge resolved to %v, want null", entries[0])
	}
}

func TestNotFoundCarriesErrorCode(t *testing.T) {
	_, core := newCore(t)

	result := execute(t, core, `{ user(id: "missing") { id } }`, nil)
	if len(result.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(result.Errors))
	}
	if code := result.Errors[0].Extensions["code"]; code != KindNotFound {
		t.Fatalf("extensions.code = %v, want %v", code, KindNotFound)
	}
}

func TestListQueriesNeverFail(t *testing.T) {
	_, core := newCore(t)

	result := execute(t, core, `{ users { id } posts { id } profiles { id } memberTypes { id } }`, nil)

	data := resultData(t, result)
	if len(data["users"].([]interface{})) != 0 {
		t.Fatalf("users = %v, want empty list", data["users"])
	}
	if len(data["memberTypes"].([]interface{})) != 2 {
		t.Fatalf("memberTypes = %v, want the two seeded plans", data["memberTypes"])
	}
}

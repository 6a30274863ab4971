package follow_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/aniketSingh0310/user-dash/internal/follow"
	"github.com/aniketSingh0310/user-dash/internal/user"
)

// makeApp wires the follow and user handlers onto one app over a shared
// in-memory store, matching the wiring in cmd/app.
func makeApp(seed []user.User) (*fiber.App, *user.InMemoryRepository) {
	repo := user.NewInMemoryRepository(seed)
	userService := user.NewService(repo)

	app := fiber.New()
	follow.NewHandler(follow.NewService(repo), userService).RegisterRoutes(app)
	user.NewHandler(userService).RegisterRoutes(app)
	return app, repo
}

func postJSON(t *testing.T, app *fiber.App, path, payload string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func getUser(t *testing.T, app *fiber.App, path string) user.User {
	t.Helper()
	res, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d", path, res.StatusCode)
	}
	var u user.User
	if err := json.NewDecoder(res.Body).Decode(&u); err != nil {
		t.Fatalf("GET %s: decode failed: %v", path, err)
	}
	return u
}

func TestFollowLifecycle(t *testing.T) {
	app, _ := makeApp(nil)

	status, _ := postJSON(t, app, "/users", `{"name":"Ann","email":"ann@x.com"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("create Ann: expected 201, got %d", status)
	}
	status, _ = postJSON(t, app, "/users", `{"name":"Bo","email":"bo@x.com"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("create Bo: expected 201, got %d", status)
	}

	status, body := postJSON(t, app, "/users/follow", `{"followerId":1,"followingId":2}`)
	if status != fiber.StatusOK {
		t.Fatalf("follow: expected 200, got %d (%s)", status, body)
	}
	if !strings.Contains(body, "Ann is now following Bo") {
		t.Fatalf("unexpected follow confirmation: %s", body)
	}

	bo := getUser(t, app, "/users/2")
	if len(bo.Followers) != 1 || bo.Followers[0].ID != 1 || bo.Followers[0].Name != "Ann" {
		t.Fatalf("Bo's followers: %+v", bo.Followers)
	}
	ann := getUser(t, app, "/users/1")
	if len(ann.Following) != 1 || ann.Following[0].Name != "Bo" {
		t.Fatalf("Ann's following: %+v", ann.Following)
	}
	// the edge is directed
	if len(ann.Followers) != 0 || len(bo.Following) != 0 {
		t.Fatalf("reverse direction leaked: ann=%+v bo=%+v", ann, bo)
	}

	// deleting Ann removes her from Bo's followers
	res, _ := app.Test(httptest.NewRequest("DELETE", "/users/1", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("delete Ann: expected 200, got %d", res.StatusCode)
	}
	bo = getUser(t, app, "/users/2")
	if len(bo.Followers) != 0 {
		t.Fatalf("followers not purged after delete: %+v", bo.Followers)
	}
}

func TestFollowSelf(t *testing.T) {
	app, _ := makeApp([]user.User{{ID: 1, Name: "Ann", Email: "ann@x.com"}})

	status, body := postJSON(t, app, "/users/follow", `{"followerId":1,"followingId":1}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if !strings.Contains(body, "users cannot follow themselves") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestFollowUnknownUser(t *testing.T) {
	app, _ := makeApp([]user.User{{ID: 1, Name: "Ann", Email: "ann@x.com"}})

	status, body := postJSON(t, app, "/users/follow", `{"followerId":1,"followingId":99}`)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if !strings.Contains(body, "User not found") {
		t.Fatalf("unexpected body: %s", body)
	}

	status, _ = postJSON(t, app, "/users/follow", `{"followerId":99,"followingId":1}`)
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown follower, got %d", status)
	}
}

func TestFollowDuplicate(t *testing.T) {
	app, repo := makeApp([]user.User{
		{ID: 1, Name: "Ann", Email: "ann@x.com"},
		{ID: 2, Name: "Bo", Email: "bo@x.com"},
	})
	if err := repo.AddFollow(1, 2); err != nil {
		t.Fatalf("seed follow failed: %v", err)
	}

	status, body := postJSON(t, app, "/users/follow", `{"followerId":1,"followingId":2}`)
	if status != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
	if !strings.Contains(body, "Already following this user") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestFollowMissingIDs(t *testing.T) {
	app, _ := makeApp(nil)

	for _, payload := range []string{`{}`, `{"followerId":1}`, `{"followerId":0,"followingId":2}`} {
		status, _ := postJSON(t, app, "/users/follow", payload)
		if status != fiber.StatusBadRequest {
			t.Fatalf("payload %s: expected 400, got %d", payload, status)
		}
	}
}

func TestUnfollow(t *testing.T) {
	app, repo := makeApp([]user.User{
		{ID: 1, Name: "Ann", Email: "ann@x.com"},
		{ID: 2, Name: "Bo", Email: "bo@x.com"},
	})
	if err := repo.AddFollow(1, 2); err != nil {
		t.Fatalf("seed follow failed: %v", err)
	}

	status, body := postJSON(t, app, "/users/unfollow", `{"followerId":1,"followingId":2}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, body)
	}
	if !strings.Contains(body, "Ann has unfollowed Bo") {
		t.Fatalf("unexpected body: %s", body)
	}

	bo := getUser(t, app, "/users/2")
	if len(bo.Followers) != 0 {
		t.Fatalf("edge still present: %+v", bo.Followers)
	}

	// removing an edge that does not exist
	status, body = postJSON(t, app, "/users/unfollow", `{"followerId":1,"followingId":2}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if !strings.Contains(body, "You are not following this user") {
		t.Fatalf("unexpected body: %s", body)
	}
}

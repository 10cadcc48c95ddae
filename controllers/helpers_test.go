package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mangestic/controllers"
	"mangestic/database"
	"mangestic/routes"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestEnv wires the router against a fresh in-memory store, one database
// per test so tests cannot see each other's rows.
func newTestEnv(t *testing.T) (*controllers.Env, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.MigrateTables(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	env := &controllers.Env{DB: db}
	return env, routes.SetupRouter(env)
}

func performRequest(r http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(t *testing.T, r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return performRequest(r, http.MethodPost, path, bytes.NewReader(data))
}

func getJSON(r http.Handler, path string) *httptest.ResponseRecorder {
	return performRequest(r, http.MethodGet, path, nil)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func registerUser(t *testing.T, r http.Handler, username, email, password string) string {
	t.Helper()
	w := postJSON(t, r, "/api/register", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register %s: status %d, body %s", username, w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	id, _ := body["user_id"].(string)
	if id == "" {
		t.Fatalf("register %s: missing user_id in %v", username, body)
	}
	return id
}

func contributeChallenge(t *testing.T, r http.Handler, title, flag string, points int) string {
	t.Helper()
	w := postJSON(t, r, "/api/challenges", gin.H{
		"title":       title,
		"description": "desc for " + title,
		"flag":        flag,
		"points":      points,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("contribute %s: status %d, body %s", title, w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	id, _ := body["challenge_id"].(string)
	if id == "" {
		t.Fatalf("contribute %s: missing challenge_id in %v", title, body)
	}
	return id
}

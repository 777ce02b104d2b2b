package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/api"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/app/game"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/sqlite"
)

// testServer spins up the full HTTP stack on a temporary database.
func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Seed(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := game.NewService(db, domain.NewClock())
	ts := httptest.NewServer(api.NewServer(svc).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func login(t *testing.T, ts *httptest.Server, username string) domain.User {
	t.Helper()
	resp := postJSON(t, ts.URL+"/api/auth/login", map[string]string{"username": username})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	var user domain.User
	decode(t, resp, &user)
	return user
}

func TestHealth(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestLoginAndGetUser(t *testing.T) {
	ts := testServer(t)

	user := login(t, ts, "alice")
	if user.Username != "alice" || user.Level != 1 {
		t.Errorf("user = %+v", user)
	}

	resp, err := http.Get(ts.URL + "/api/users/" + user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	var got domain.User
	decode(t, resp, &got)
	if got.ID != user.ID {
		t.Errorf("got ID %q, want %q", got.ID, user.ID)
	}
}

func TestLogin_BadRequest(t *testing.T) {
	ts := testServer(t)

	resp := postJSON(t, ts.URL+"/api/auth/login", map[string]string{"username": "  "})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}

	var body struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Type != "error" || body.Error.Message == "" {
		t.Errorf("error body = %+v", body)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/api/users/ghost")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestQuestLifecycle(t *testing.T) {
	ts := testServer(t)
	user := login(t, ts, "alice")

	// Daily quests are seeded on first read.
	resp, err := http.Get(fmt.Sprintf("%s/api/quests/%s/daily", ts.URL, user.ID))
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	var quests []domain.Quest
	decode(t, resp, &quests)
	if len(quests) != 5 {
		t.Fatalf("daily quests = %d, want 5", len(quests))
	}

	// Complete one and check the reward payload.
	resp = postJSON(t, fmt.Sprintf("%s/api/quests/%s/complete", ts.URL, quests[0].ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("complete status = %d", resp.StatusCode)
	}
	var completed struct {
		Quest           domain.Quest         `json:"quest"`
		User            domain.User          `json:"user"`
		NewAchievements []domain.Achievement `json:"newAchievements"`
	}
	decode(t, resp, &completed)
	if !completed.Quest.IsCompleted {
		t.Error("quest not completed in response")
	}
	if completed.User.TotalXP != quests[0].XPReward {
		t.Errorf("total xp = %d, want %d", completed.User.TotalXP, quests[0].XPReward)
	}
	if completed.NewAchievements == nil {
		t.Error("newAchievements missing, want empty array")
	}

	// Completing again conflicts.
	resp = postJSON(t, fmt.Sprintf("%s/api/quests/%s/complete", ts.URL, quests[0].ID), nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("second complete status = %d, want 409", resp.StatusCode)
	}
}

func TestAddQuest_Validation(t *testing.T) {
	ts := testServer(t)
	user := login(t, ts, "alice")

	resp := postJSON(t, fmt.Sprintf("%s/api/quests/%s", ts.URL, user.ID),
		map[string]string{"title": ""})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPomodoro(t *testing.T) {
	ts := testServer(t)
	user := login(t, ts, "alice")

	resp := postJSON(t, fmt.Sprintf("%s/api/pomodoro/%s/complete", ts.URL, user.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body struct {
		User     domain.User `json:"user"`
		XPGained int         `json:"xpGained"`
	}
	decode(t, resp, &body)
	if body.XPGained != game.PomodoroXP {
		t.Errorf("xpGained = %d, want %d", body.XPGained, game.PomodoroXP)
	}
	if body.User.Streak != 1 {
		t.Errorf("streak = %d, want 1", body.User.Streak)
	}
}

func TestShopAndPurchase(t *testing.T) {
	ts := testServer(t)
	user := login(t, ts, "alice")

	resp, err := http.Get(ts.URL + "/api/shop")
	if err != nil {
		t.Fatalf("shop: %v", err)
	}
	var catalog []domain.ShopItem
	decode(t, resp, &catalog)
	if len(catalog) == 0 {
		t.Fatal("empty shop catalog")
	}

	// Broke user cannot buy.
	resp = postJSON(t, fmt.Sprintf("%s/api/shop/%s/purchase", ts.URL, user.ID),
		map[string]string{"itemId": "egg_common"})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("purchase status = %d, want 400", resp.StatusCode)
	}
}

func TestBossEndpoints(t *testing.T) {
	ts := testServer(t)
	user := login(t, ts, "alice")

	resp, err := http.Get(fmt.Sprintf("%s/api/boss/%s/current", ts.URL, user.ID))
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	var battle domain.BossBattle
	decode(t, resp, &battle)
	if battle.CurrentHP != game.BossBaseHP {
		t.Errorf("hp = %d, want %d", battle.CurrentHP, game.BossBaseHP)
	}

	resp = postJSON(t, fmt.Sprintf("%s/api/boss/%s/attack", ts.URL, user.ID),
		map[string]int{"damage": 150})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("attack status = %d", resp.StatusCode)
	}
	var hit struct {
		Boss domain.BossBattle `json:"boss"`
	}
	decode(t, resp, &hit)
	if hit.Boss.CurrentHP != game.BossBaseHP-150 {
		t.Errorf("hp after attack = %d, want %d", hit.Boss.CurrentHP, game.BossBaseHP-150)
	}

	resp, err = http.Get(fmt.Sprintf("%s/api/boss/%s/history", ts.URL, user.ID))
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	var history []domain.BossBattle
	decode(t, resp, &history)
	if len(history) != 1 {
		t.Errorf("history = %d entries, want 1", len(history))
	}
}

func TestStatsEndpoints(t *testing.T) {
	ts := testServer(t)
	user := login(t, ts, "alice")

	resp, err := http.Get(fmt.Sprintf("%s/api/stats/%s", ts.URL, user.ID))
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	var summary domain.StatsSummary
	decode(t, resp, &summary)
	if summary.QuestsCompleted != 0 {
		t.Errorf("quests = %d, want 0", summary.QuestsCompleted)
	}

	resp, err = http.Get(fmt.Sprintf("%s/api/stats/%s/daily?days=3", ts.URL, user.ID))
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	var history []domain.DailyStat
	decode(t, resp, &history)
	if len(history) != 3 {
		t.Errorf("history = %d rows, want 3", len(history))
	}

	resp, err = http.Get(fmt.Sprintf("%s/api/stats/%s/daily?days=nope", ts.URL, user.ID))
	if err != nil {
		t.Fatalf("bad days: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad days status = %d, want 400", resp.StatusCode)
	}
}

func TestCORSPreflight(t *testing.T) {
	ts := testServer(t)

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/shop", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS allow-origin header")
	}
}

package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	leagueModel "github.com/festy23/scoreboard/internal/league/model"
	snapshotModel "github.com/festy23/scoreboard/internal/snapshot/model"
	"github.com/festy23/scoreboard/internal/snapshot/store"
)

func setupRouter() (*gin.Engine, *store.Store) {
	gin.SetMode(gin.TestMode)
	st := store.New(snapshotModel.Initial(), zap.NewNop().Sugar())
	r := gin.New()
	RegisterRoutes(r, st, zap.NewNop().Sugar())
	return r, st
}

func send(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIntegration_LeagueLifecycle(t *testing.T) {
	r, st := setupRouter()

	w := send(r, http.MethodGet, "/league", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = send(r, http.MethodPost, "/league", leagueModel.CreateLeagueRequest{Name: "Autumn"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = send(r, http.MethodPost, "/league/advance", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	for g := 1; g <= leagueModel.GamesPerRound; g++ {
		path := fmt.Sprintf("/league/rounds/round-1/games/round-1-game-%d/result", g)
		w = send(r, http.MethodPost, path, leagueModel.RecordResultRequest{Outcome: "team1"})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = send(r, http.MethodPost, "/league/advance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp leagueModel.LeagueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.League.CurrentRound)
	assert.Equal(t, 6, resp.RemainingRounds)
	assert.Equal(t, 300, resp.Standings[0].Points)

	team1, _ := st.Snapshot().Teams.Get("team-1")
	assert.Equal(t, 300, team1.Points)

	w = send(r, http.MethodPost, "/league/reset", leagueModel.ResetRequest{Confirm: false})
	require.Equal(t, http.StatusConflict, w.Code)

	w = send(r, http.MethodPost, "/league/reset", leagueModel.ResetRequest{Confirm: true})
	require.Equal(t, http.StatusOK, w.Code)

	team1, _ = st.Snapshot().Teams.Get("team-1")
	assert.Equal(t, 0, team1.Points)
}

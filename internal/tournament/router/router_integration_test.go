package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	snapshotModel "github.com/festy23/scoreboard/internal/snapshot/model"
	"github.com/festy23/scoreboard/internal/snapshot/store"
	tournamentModel "github.com/festy23/scoreboard/internal/tournament/model"
)

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

func TestIntegration_TournamentBracket(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := store.New(snapshotModel.Initial(), zap.NewNop().Sugar())
	r := gin.New()
	RegisterRoutes(r, st, zap.NewNop().Sugar())

	w := send(r, http.MethodPost, "/tournament", tournamentModel.CreateTournamentRequest{
		Name:    "Winter Cup",
		TeamIDs: []string{"team-1", "team-3", "team-5", "team-7"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = send(r, http.MethodPost, "/tournament/games/final/result", tournamentModel.RecordResultRequest{Outcome: "team1"})
	require.Equal(t, http.StatusConflict, w.Code)

	for _, game := range []string{"semi1", "semi2", "final"} {
		w = send(r, http.MethodPost, "/tournament/games/"+game+"/result", tournamentModel.RecordResultRequest{Outcome: "team1"})
		require.Equal(t, http.StatusOK, w.Code, game)
	}

	w = send(r, http.MethodGet, "/tournament", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp tournamentModel.TournamentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Results)
	assert.Equal(t, "team-1", resp.Results.Champion.ID)
	assert.Equal(t, "team-5", resp.Results.RunnerUp.ID)
	assert.Nil(t, resp.CurrentGame)
	assert.True(t, st.Snapshot().Tournament.Completed)
}

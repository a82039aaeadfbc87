package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/standings"
	"github.com/festy23/scoreboard/internal/statistics/model"
	"github.com/festy23/scoreboard/internal/statistics/service"
	teamModel "github.com/festy23/scoreboard/internal/team/model"
)

// mockService is a mock implementation of service.Service for unit tests.
type mockService struct {
	mock.Mock
}

func (m *mockService) FinalScores(ctx context.Context, formula string) (*model.FinalScoresResponse, error) {
	args := m.Called(ctx, formula)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FinalScoresResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/statistics/final", h.FinalScores)
	return r
}

func TestHandler_FinalScores(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))
		mockSvc.On("FinalScores", mock.Anything, "").Return(&model.FinalScoresResponse{
			Formula:   "league",
			Dashboard: []teamModel.RankedTeam{{Rank: 1, Team: teamModel.Team{ID: "team-2", Points: 600}}},
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/statistics/final", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "league", resp["formula"])
		assert.Nil(t, resp["league"])
		assert.Len(t, resp["dashboard"], 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown formula", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))
		mockSvc.On("FinalScores", mock.Anything, "elo").
			Return(nil, fmt.Errorf("%w: elo", standings.ErrUnknownFormula))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/statistics/final?formula=elo", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))
		mockSvc.On("FinalScores", mock.Anything, "").Return(nil, errors.New("boom"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/statistics/final", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	})
}

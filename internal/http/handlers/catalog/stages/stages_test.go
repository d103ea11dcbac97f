package stages

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurobond/neurobond/internal/access"
	"github.com/neurobond/neurobond/internal/catalog"
	"github.com/neurobond/neurobond/internal/http/middlewarectx"
	"github.com/neurobond/neurobond/internal/models"
)

func TestStagesHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name      string
		tier      any
		wantCount int
	}{
		{
			name:      "free tier gets the first stage",
			tier:      models.TierFree,
			wantCount: access.FreeStageLimit,
		},
		{
			name:      "pro tier gets the whole program",
			tier:      models.TierPro,
			wantCount: len(catalog.TrainingStages()),
		},
		{
			name:      "missing tier defaults to free",
			tier:      nil,
			wantCount: access.FreeStageLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(logger)

			req := httptest.NewRequest(http.MethodGet, "/training-stages", nil)
			if tt.tier != nil {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.Tier, tt.tier))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Data struct {
					Stages []models.TrainingStage `json:"stages"`
					Total  int                    `json:"total"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

			assert.Len(t, body.Data.Stages, tt.wantCount)
			assert.Equal(t, len(catalog.TrainingStages()), body.Data.Total)

			for i, stage := range body.Data.Stages {
				assert.Equal(t, catalog.TrainingStages()[i].Title, stage.Title)
			}
		})
	}
}

package lexicon

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

func TestLexiconHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name      string
		tier      any
		wantCount int
	}{
		{
			name:      "free tier gets the leading slice",
			tier:      models.TierFree,
			wantCount: access.FreeLexiconLimit,
		},
		{
			name:      "pro tier gets the full catalog",
			tier:      models.TierPro,
			wantCount: len(catalog.LexiconEntries()),
		},
		{
			name:      "missing tier defaults to free",
			tier:      nil,
			wantCount: access.FreeLexiconLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(logger)

			req := httptest.NewRequest(http.MethodGet, "/lexicon", nil)
			if tt.tier != nil {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.Tier, tt.tier))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Data struct {
					Entries []models.LexiconEntry `json:"entries"`
					Total   int                   `json:"total"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

			assert.Len(t, body.Data.Entries, tt.wantCount)
			assert.Equal(t, len(catalog.LexiconEntries()), body.Data.Total)

			// The slice is always the catalog prefix, never a reordering.
			for i, entry := range body.Data.Entries {
				assert.Equal(t, catalog.LexiconEntries()[i].Name, entry.Name)
			}
		})
	}
}

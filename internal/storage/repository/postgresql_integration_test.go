package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurobond/neurobond/internal/models"
)

func TestStorage_CreateUser(t *testing.T) {
	type args struct {
		ctx  context.Context
		user models.User
	}

	tests := []struct {
		name    string
		args    args
		wantErr bool
		setup   func(t *testing.T, factory *TestDataFactory)
	}{
		{
			name: "successful create user",
			args: args{
				ctx: context.Background(),
				user: models.User{
					UUID:               uuid.New().String(),
					Name:               "Sophia",
					Email:              "sophia@example.com",
					SubscriptionStatus: models.SubscriptionStatusFree,
				},
			},
			wantErr: false,
			setup:   func(_ *testing.T, _ *TestDataFactory) {},
		},
		{
			name: "create user with duplicate email",
			args: args{
				ctx: context.Background(),
				user: models.User{
					UUID:               uuid.New().String(),
					Name:               "Sophia Again",
					Email:              "sophia@example.com",
					SubscriptionStatus: models.SubscriptionStatusFree,
				},
			},
			wantErr: true,
			setup: func(t *testing.T, factory *TestDataFactory) {
				factory.CreateUser(t, uuid.New().String(), "Sophia", "sophia@example.com", "", "free")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			tt.setup(t, factory)

			gotID, err := storage.CreateUser(tt.args.ctx, tt.args.user)

			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, gotID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.args.user.UUID, gotID)
			}
		})
	}
}

func TestStorage_GetUserByEmail(t *testing.T) {
	type args struct {
		ctx   context.Context
		email string
	}

	tests := []struct {
		name    string
		args    args
		want    *models.User
		wantErr bool
		setup   func(t *testing.T, factory *TestDataFactory) string
	}{
		{
			name: "successful get user by email",
			args: args{
				ctx:   context.Background(),
				email: "anna@example.com",
			},
			want: &models.User{
				Name:               "Anna",
				Email:              "anna@example.com",
				PartnerName:        "Ben",
				SubscriptionStatus: models.SubscriptionStatusActive,
			},
			wantErr: false,
			setup: func(t *testing.T, factory *TestDataFactory) string {
				userUID := uuid.New().String()
				factory.CreateUser(t, userUID, "Anna", "anna@example.com", "Ben", "active")
				return userUID
			},
		},
		{
			name: "get non-existing user",
			args: args{
				ctx:   context.Background(),
				email: "nobody@example.com",
			},
			want:    nil,
			wantErr: true,
			setup:   func(_ *testing.T, _ *TestDataFactory) string { return "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			userUID := tt.setup(t, factory)
			if tt.want != nil {
				tt.want.UUID = userUID
			}

			got, err := storage.GetUserByEmail(tt.args.ctx, tt.args.email)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUserNotFound)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want.UUID, got.UUID)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.want.Email, got.Email)
			assert.Equal(t, tt.want.PartnerName, got.PartnerName)
			assert.Equal(t, tt.want.SubscriptionStatus, got.SubscriptionStatus)
		})
	}
}

func TestStorage_UpdateSubscriptionStatus(t *testing.T) {
	type args struct {
		ctx    context.Context
		email  string
		status string
	}

	tests := []struct {
		name             string
		args             args
		wantRowsAffected int
		setup            func(t *testing.T, factory *TestDataFactory)
	}{
		{
			name: "successful activate subscription",
			args: args{
				ctx:    context.Background(),
				email:  "anna@example.com",
				status: models.SubscriptionStatusActive,
			},
			wantRowsAffected: 1,
			setup: func(t *testing.T, factory *TestDataFactory) {
				factory.CreateUser(t, uuid.New().String(), "Anna", "anna@example.com", "", "free")
			},
		},
		{
			name: "update non-existing user",
			args: args{
				ctx:    context.Background(),
				email:  "nobody@example.com",
				status: models.SubscriptionStatusActive,
			},
			wantRowsAffected: 0,
			setup:            func(_ *testing.T, _ *TestDataFactory) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			tt.setup(t, factory)

			gotRowsAffected, err := storage.UpdateSubscriptionStatus(tt.args.ctx, tt.args.email, tt.args.status)

			require.NoError(t, err)
			assert.Equal(t, tt.wantRowsAffected, gotRowsAffected)

			if tt.wantRowsAffected > 0 {
				verification := NewTestVerification(storage)
				verification.VerifyUserSubscriptionStatus(t, tt.args.email, tt.args.status)
			}
		})
	}
}

func TestStorage_CreateCase(t *testing.T) {
	tests := []struct {
		name string
		c    models.CommunityCase
	}{
		{
			name: "successful create case",
			c: models.CommunityCase{
				Title:    "Streit ums Aufräumen",
				Category: "Alltag",
				Dialog:   "A: Du räumst nie auf!\nB: Ich hatte einen langen Tag.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			gotID, err := storage.CreateCase(context.Background(), tt.c)

			require.NoError(t, err)
			assert.Equal(t, 1, gotID)

			verification := NewTestVerification(storage)
			verification.VerifyCaseExists(t, gotID)
		})
	}
}

func TestStorage_ListCases(t *testing.T) {
	type args struct {
		ctx    context.Context
		limit  int
		offset int
	}

	tests := []struct {
		name      string
		args      args
		wantCount int
		setup     func(t *testing.T, factory *TestDataFactory)
	}{
		{
			name: "successful list cases with pagination",
			args: args{
				ctx:    context.Background(),
				limit:  2,
				offset: 0,
			},
			wantCount: 2,
			setup: func(t *testing.T, factory *TestDataFactory) {
				factory.CreateCase(t, models.CommunityCase{Title: "Fall 1", Category: "Alltag", Dialog: "A: ..."})
				factory.CreateCase(t, models.CommunityCase{Title: "Fall 2", Category: "Finanzen", Dialog: "A: ..."})
				factory.CreateCase(t, models.CommunityCase{Title: "Fall 3", Category: "Familie", Dialog: "A: ..."})
			},
		},
		{
			name: "empty table",
			args: args{
				ctx:    context.Background(),
				limit:  10,
				offset: 0,
			},
			wantCount: 0,
			setup:     func(_ *testing.T, _ *TestDataFactory) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			tt.setup(t, factory)

			got, err := storage.ListCases(tt.args.ctx, tt.args.limit, tt.args.offset)

			require.NoError(t, err)
			assert.Len(t, got, tt.wantCount)

			// Cases come back oldest first.
			for i := 1; i < len(got); i++ {
				assert.Less(t, got[i-1].ID, got[i].ID)
			}
		})
	}
}

func TestCheckDatabaseReady(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, storage *Storage)
		wantError    bool
		errorContain string
	}{
		{
			name:      "table exists",
			setup:     func(_ *testing.T, _ *Storage) {},
			wantError: false,
		},
		{
			name: "table missing",
			setup: func(t *testing.T, storage *Storage) {
				_, err := storage.DB.Exec(`DROP TABLE IF EXISTS community_cases CASCADE`)
				require.NoError(t, err)
				_, err = storage.DB.Exec(`DROP TABLE IF EXISTS users CASCADE`)
				require.NoError(t, err)
			},
			wantError:    true,
			errorContain: "missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()
			tt.setup(t, storage)

			err := CheckDatabaseReady(storage)
			if tt.wantError {
				require.Error(t, err)
				if tt.errorContain != "" {
					assert.Contains(t, err.Error(), tt.errorContain)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

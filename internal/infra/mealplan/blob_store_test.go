package mealplan

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gymtrack/internal/domain/entity"
	"gymtrack/internal/domain/service"
	"gymtrack/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) *blobStore {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobStore(bucket, "test", slog.New(slog.NewTextHandler(io.Discard, nil))).(*blobStore)
	store.now = func() time.Time { return time.Date(2025, 3, 6, 7, 0, 0, 0, time.UTC) }

	return store
}

func TestBlobStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	userID := uuid.New()

	plan := &entity.MealPlan{
		UserID: userID,
		Breakfast: entity.MealPlanSection{
			Foods:  []entity.MealPlanFood{{Name: "Oats", Quantity: "80g", Calories: 300, Protein: 10, Fat: 6, Carbs: 54}},
			Totals: entity.DailyTarget{Calories: 300, Protein: 10, Fat: 6, Carbs: 54},
		},
		DailyTotals: entity.DailyTarget{Calories: 300, Protein: 10, Fat: 6, Carbs: 54},
	}
	require.NoError(t, store.Save(ctx, plan))

	loaded, err := store.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, loaded.UserID)
	require.Len(t, loaded.Breakfast.Foods, 1)
	assert.Equal(t, "Oats", loaded.Breakfast.Foods[0].Name)
	assert.Equal(t, time.Date(2025, 3, 6, 7, 0, 0, 0, time.UTC), loaded.FetchedAt)

	attrs, err := store.bucket.Attributes(ctx, store.key(userID))
	require.NoError(t, err)
	assert.Equal(t, contentType, attrs.ContentType)
	assert.NotEmpty(t, attrs.Metadata[checksumMetadata])
}

func TestBlobStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, service.ErrMealPlanNotFound))
}

func TestBlobStore_LoadRejectsTamperedPlan(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name     string
		metadata map[string]string
		wantErr  bool
	}{
		{name: "checksum mismatch", metadata: map[string]string{checksumMetadata: "deadbeef"}, wantErr: true},
		{name: "no checksum recorded", metadata: nil, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			err := store.bucket.WriteAll(ctx, store.key(userID), []byte(`{"user_id":"`+userID.String()+`"}`), &blob.WriterOptions{
				ContentType: contentType,
				Metadata:    tt.metadata,
			})
			require.NoError(t, err)

			plan, err := store.Load(ctx, userID)
			if tt.wantErr {
				assert.True(t, errors.Is(err, service.ErrMealPlanNotFound))
				assert.Nil(t, plan)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, plan.UserID)
		})
	}
}

func TestBlobStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, &entity.MealPlan{UserID: userID}))
	require.NoError(t, store.Delete(ctx, userID))

	_, err := store.Load(ctx, userID)
	assert.True(t, errors.Is(err, service.ErrMealPlanNotFound))

	require.NoError(t, store.Delete(ctx, userID))
}

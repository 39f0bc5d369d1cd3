package nutrition

import (
	"context"
	"maps"
	"slices"
	"testing"

	"gymtrack/internal/domain/entity"
	"gymtrack/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryPreferenceStore struct {
	data    map[uuid.UUID]map[string]struct{}
	loadErr error
	saveErr error
	saves   int
}

func newMemoryPreferenceStore() *memoryPreferenceStore {
	return &memoryPreferenceStore{data: map[uuid.UUID]map[string]struct{}{}}
}

func (s *memoryPreferenceStore) seed(userID uuid.UUID, foodIDs ...string) {
	s.data[userID] = map[string]struct{}{}
	for _, id := range foodIDs {
		s.data[userID][id] = struct{}{}
	}
}

func (s *memoryPreferenceStore) liked(userID uuid.UUID) []string {
	return slices.Sorted(maps.Keys(s.data[userID]))
}

func (s *memoryPreferenceStore) LoadLikedFoods(_ context.Context, userID uuid.UUID) ([]string, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}

	return s.liked(userID), nil
}

func (s *memoryPreferenceStore) LikeFood(_ context.Context, userID uuid.UUID, foodID string) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	if s.data[userID] == nil {
		s.data[userID] = map[string]struct{}{}
	}
	s.data[userID][foodID] = struct{}{}

	return nil
}

func (s *memoryPreferenceStore) UnlikeFood(_ context.Context, userID uuid.UUID, foodID string) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	delete(s.data[userID], foodID)

	return nil
}

func TestLikedFoodRegistry_ApplyAndSort(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := newMemoryPreferenceStore()
	store.seed(userID, "apple", "cherry")

	registry, err := NewLikedFoodRegistry(ctx, userID, store)
	require.NoError(t, err)

	foods := []entity.Food{
		{ID: "banana", Name: "Banana"},
		{ID: "apple", Name: "Apple"},
		{ID: "cherry", Name: "Cherry"},
	}

	sorted := registry.ApplyAndSort(foods)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Apple", sorted[0].Name)
	assert.Equal(t, "Cherry", sorted[1].Name)
	assert.Equal(t, "Banana", sorted[2].Name)
	assert.True(t, sorted[0].IsLiked)
	assert.True(t, sorted[1].IsLiked)
	assert.False(t, sorted[2].IsLiked)

	// input is not modified
	assert.Equal(t, "Banana", foods[0].Name)
	assert.False(t, foods[1].IsLiked)
}

func TestLikedFoodRegistry_NameOrderIsCaseSensitive(t *testing.T) {
	registry, err := NewLikedFoodRegistry(context.Background(), uuid.New(), newMemoryPreferenceStore())
	require.NoError(t, err)

	sorted := registry.ApplyAndSort([]entity.Food{{ID: "1", Name: "apple"}, {ID: "2", Name: "Banana"}})
	assert.Equal(t, "Banana", sorted[0].Name)
	assert.Equal(t, "apple", sorted[1].Name)
}

func TestLikedFoodRegistry_SetPreferencePersists(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := newMemoryPreferenceStore()

	registry, err := NewLikedFoodRegistry(ctx, userID, store)
	require.NoError(t, err)

	require.NoError(t, registry.SetPreference(ctx, "b", true))
	require.NoError(t, registry.SetPreference(ctx, "a", true))
	assert.True(t, registry.IsLiked("a"))
	assert.Equal(t, []string{"a", "b"}, store.liked(userID))

	require.NoError(t, registry.SetPreference(ctx, "b", false))
	assert.False(t, registry.IsLiked("b"))
	assert.Equal(t, []string{"a"}, store.liked(userID))

	saves := store.saves
	require.NoError(t, registry.SetPreference(ctx, "a", true))
	assert.Equal(t, saves, store.saves)
}

func TestLikedFoodRegistry_InterleavedRegistriesKeepBothChanges(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := newMemoryPreferenceStore()
	store.seed(userID, "com-tam")

	first, err := NewLikedFoodRegistry(ctx, userID, store)
	require.NoError(t, err)
	second, err := NewLikedFoodRegistry(ctx, userID, store)
	require.NoError(t, err)

	require.NoError(t, first.SetPreference(ctx, "pho", true))
	require.NoError(t, second.SetPreference(ctx, "banh-mi", true))
	require.NoError(t, second.SetPreference(ctx, "com-tam", false))

	reloaded, err := NewLikedFoodRegistry(ctx, userID, store)
	require.NoError(t, err)
	assert.Equal(t, []string{"banh-mi", "pho"}, reloaded.LikedIDs())
}

func TestLikedFoodRegistry_SaveFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newMemoryPreferenceStore()
	store.saveErr = errors.New("disk full")

	registry, err := NewLikedFoodRegistry(ctx, uuid.New(), store)
	require.NoError(t, err)

	err = registry.SetPreference(ctx, "a", true)
	require.Error(t, err)
	assert.False(t, registry.IsLiked("a"))
}

func TestLikedFoodRegistry_Toggle(t *testing.T) {
	ctx := context.Background()
	registry, err := NewLikedFoodRegistry(ctx, uuid.New(), newMemoryPreferenceStore())
	require.NoError(t, err)

	liked, err := registry.Toggle(ctx, "a")
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = registry.Toggle(ctx, "a")
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestNewLikedFoodRegistry_LoadError(t *testing.T) {
	store := newMemoryPreferenceStore()
	store.loadErr = errors.New("unavailable")

	_, err := NewLikedFoodRegistry(context.Background(), uuid.New(), store)
	require.Error(t, err)
}

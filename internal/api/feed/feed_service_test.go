package feed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/tailcircle-api/config"
	"github.com/FACorreiaa/tailcircle-api/internal/demo"
	"github.com/FACorreiaa/tailcircle-api/internal/types"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) QueryProfiles(ctx context.Context, filter types.ProfileFilter, limit int) ([]types.ProfileRow, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ProfileRow), args.Error(1)
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func setupFeedServiceTest() (*ServiceImpl, *MockRepository) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockRepository)
	generator := demo.NewGenerator(nil, func() time.Time { return testNow })
	service := NewServiceImpl(mockRepo, generator, config.FeedConfig{DefaultLimit: 20, MaxLimit: 100}, logger)
	return service, mockRepo
}

func TestServiceImpl_LoadFeed_Live(t *testing.T) {
	service, mockRepo := setupFeedServiceTest()
	ctx := context.Background()
	userID := uuid.New()
	rowID := uuid.New()
	active := testNow.Add(-time.Hour)

	rows := []types.ProfileRow{{
		ID:           rowID,
		OwnerID:      uuid.New(),
		Name:         "  Biscuit ",
		Age:          intPtr(4),
		Breed:        strPtr("Beagle"),
		Traits:       []string{"Calm", "Calm", " ", "Friendly"},
		PhotoURL:     strPtr("/biscuit.jpg"),
		Latitude:     floatPtr(34.0522),
		Longitude:    floatPtr(-118.2437),
		Verified:     true,
		LastActiveAt: &active,
	}}
	filter := types.ProfileFilter{ExcludeUserID: userID, IsDemo: false}
	mockRepo.On("QueryProfiles", mock.Anything, filter, 10).Return(rows, nil).Once()

	result := service.LoadFeed(ctx, types.FeedRequest{
		UserID:   userID,
		Location: demo.Location{Lat: floatPtr(34.1478), Lng: floatPtr(-118.1445)},
		Limit:    10,
	})

	require.NotNil(t, result)
	assert.False(t, result.IsDemo)
	assert.Empty(t, result.FallbackReason)
	assert.Empty(t, result.RegionKey)
	require.Len(t, result.Profiles, 1)
	p := result.Profiles[0]
	assert.Equal(t, rowID.String(), p.ID)
	assert.Equal(t, "Biscuit", p.Name)
	assert.Equal(t, 4, p.Age)
	assert.Equal(t, "Medium", p.Size, "missing size defaults to Medium")
	assert.Equal(t, []string{"Calm", "Friendly"}, p.Traits)
	assert.True(t, p.Verified)
	assert.False(t, p.IsDemo)
	assert.Equal(t, active, p.LastActive)
	require.NotNil(t, p.DistanceMiles)
	// Los Angeles to Pasadena is roughly 8.6 miles.
	assert.InDelta(t, 8.6, *p.DistanceMiles, 0.3)
	mockRepo.AssertExpectations(t)
}

func TestServiceImpl_LoadFeed_EmptyFallsBackToDemo(t *testing.T) {
	service, mockRepo := setupFeedServiceTest()
	ctx := context.Background()
	userID := uuid.New()
	mockRepo.On("QueryProfiles", mock.Anything, mock.Anything, 5).Return([]types.ProfileRow{}, nil).Twice()

	req := types.FeedRequest{
		UserID:   userID,
		Location: demo.Location{State: "CA", County: " Los Angeles  County"},
		Limit:    5,
	}
	first := service.LoadFeed(ctx, req)
	second := service.LoadFeed(ctx, req)

	assert.True(t, first.IsDemo)
	assert.Equal(t, "ca|los angeles county", first.RegionKey)
	assert.Empty(t, first.FallbackReason)
	require.Len(t, first.Profiles, 5)
	require.Len(t, second.Profiles, 5)
	for i := range first.Profiles {
		assert.True(t, first.Profiles[i].IsDemo)
		assert.NotNil(t, first.Profiles[i].DistanceMiles)
		assert.Equal(t, first.Profiles[i].Name, second.Profiles[i].Name)
		assert.Equal(t, first.Profiles[i].PhotoURL, second.Profiles[i].PhotoURL)
		assert.NotEqual(t, first.Profiles[i].ID, second.Profiles[i].ID)
	}

	expected := demo.NewGenerator(nil, func() time.Time { return testNow }).ProfilesForRegion("ca|los angeles county", 5)
	for i, p := range expected {
		assert.Equal(t, p.Name, first.Profiles[i].Name)
		assert.Equal(t, p.Breed, first.Profiles[i].Breed)
	}
	mockRepo.AssertExpectations(t)
}

func TestServiceImpl_LoadFeed_ErrorFallsBackToDemo(t *testing.T) {
	service, mockRepo := setupFeedServiceTest()
	ctx := context.Background()
	repoErr := errors.New("database error querying profiles: connection refused")
	mockRepo.On("QueryProfiles", mock.Anything, mock.Anything, 20).Return(nil, repoErr).Once()

	result := service.LoadFeed(ctx, types.FeedRequest{UserID: uuid.New()})

	assert.True(t, result.IsDemo)
	assert.Equal(t, demo.GlobalRegionKey, result.RegionKey)
	assert.Equal(t, repoErr.Error(), result.FallbackReason)
	assert.Len(t, result.Profiles, 20, "limit 0 uses the default")
	mockRepo.AssertExpectations(t)
}

func TestServiceImpl_LoadFeed_GeoRegion(t *testing.T) {
	service, mockRepo := setupFeedServiceTest()
	mockRepo.On("QueryProfiles", mock.Anything, mock.Anything, 3).Return(nil, nil).Once()

	result := service.LoadFeed(context.Background(), types.FeedRequest{
		UserID:   uuid.New(),
		Location: demo.Location{Lat: floatPtr(47.6062), Lng: floatPtr(-122.3321)},
		Limit:    3,
	})
	assert.True(t, result.IsDemo)
	assert.Equal(t, "geo:47.61,-122.33", result.RegionKey)
	assert.Len(t, result.Profiles, 3)
}

func TestServiceImpl_ClampLimit(t *testing.T) {
	service, mockRepo := setupFeedServiceTest()
	mockRepo.On("QueryProfiles", mock.Anything, mock.Anything, 100).Return(nil, nil).Once()

	result := service.LoadFeed(context.Background(), types.FeedRequest{UserID: uuid.New(), Limit: 5000})
	assert.Len(t, result.Profiles, 100)
	mockRepo.AssertExpectations(t)
}

func TestServiceImpl_LoadFeed_CanceledContext(t *testing.T) {
	service, mockRepo := setupFeedServiceTest()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mockRepo.On("QueryProfiles", mock.Anything, mock.Anything, 20).Return(nil, context.Canceled).Once()

	result := service.LoadFeed(ctx, types.FeedRequest{UserID: uuid.New()})
	assert.True(t, result.IsDemo)
	assert.Equal(t, context.Canceled.Error(), result.FallbackReason)
}

func TestDedupeTraits(t *testing.T) {
	assert.Equal(t, []string{}, dedupeTraits(nil))
	assert.Equal(t, []string{"A", "B"}, dedupeTraits([]string{"A", " A ", "", "B", "A"}))
}

func TestHaversineMiles(t *testing.T) {
	assert.InDelta(t, 0, haversineMiles(10, 10, 10, 10), 1e-9)
	// New York to Los Angeles, ~2445 miles.
	assert.InDelta(t, 2445, haversineMiles(40.7128, -74.0060, 34.0522, -118.2437), 15)
}

package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"resort-frontend/models"
	"resort-frontend/services/bookingapi"
)

func TestJoinCatalog_MatchingCategoryGetsDisplayFields(t *testing.T) {
	records := []bookingapi.RoomRecord{
		{Code: "STD-01", Category: "Standard", PricePerNightSingle: 800, PricePerNightSingleUpto7: 1000},
	}
	meta := map[string]models.RoomDisplayInfo{
		"Standard": {
			Category:    "Standard",
			DisplayName: "Standard Room",
			AreaSqm:     28,
			Summary:     "Garden-facing room.",
			Images:      datatypes.JSON([]byte(`["/images/rooms/standard-1.jpg"]`)),
		},
	}

	entries := JoinCatalog(records, meta, PricingService{}, CatalogOptions{})
	require.Len(t, entries, 1)
	assert.Equal(t, "Standard Room", entries[0].DisplayName)
	assert.Equal(t, uint(28), entries[0].AreaSqm)
	assert.JSONEq(t, `["/images/rooms/standard-1.jpg"]`, string(entries[0].Images))
}

func TestJoinCatalog_CategoryMismatchDropsDisplayFields(t *testing.T) {
	records := []bookingapi.RoomRecord{
		{Code: "STD-01", Category: "Standard Room", PricePerNightSingle: 800},
	}
	meta := map[string]models.RoomDisplayInfo{
		// key differs from the feed's category string
		"Standard": {Category: "Standard", DisplayName: "Standard Room"},
	}

	entries := JoinCatalog(records, meta, PricingService{}, CatalogOptions{})
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].DisplayName, "a join-key mismatch silently loses display fields")
	assert.Equal(t, 800.0, entries[0].PricePerNightSingle, "pricing survives the mismatch")
}

func TestJoinCatalog_DerivedFields(t *testing.T) {
	records := []bookingapi.RoomRecord{
		{Category: "Garden Villa", PricePerNightSingle: 3000, PricePerNightSingleUpto7: 3600},
		{Category: "Standard", PricePerNightSingle: 800, PricePerNightSingleUpto7: 1000},
	}

	opts := CatalogOptions{
		StartDate: soldOutCutoffs["Garden Villa"],
		Nights:    8,
		Adults:    1,
	}

	entries := JoinCatalog(records, nil, PricingService{}, opts)
	require.Len(t, entries, 2)

	assert.True(t, entries[0].SoldOut)
	assert.Equal(t, 3000.0, entries[0].StartingFrom, "8 nights uses the standard tier")
	assert.False(t, entries[1].SoldOut)
	assert.Equal(t, 800.0, entries[1].StartingFrom)
}

func TestCatalogService_RoomTypesWithoutCache(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/room-types", r.URL.Path)
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`[{"code":"STD-01","category":"Standard","price_per_night_single":800}]`))
	}))
	defer srv.Close()

	api := bookingapi.NewClient(srv.URL, 2*time.Second, zap.NewNop())
	svc := NewCatalogService(nil, api, nil, time.Minute, zap.NewNop())

	rooms, err := svc.RoomTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Standard", rooms[0].Category)

	// no cache configured: every call hits the API
	_, err = svc.RoomTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestCatalogService_EntryUnknownCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"code":"STD-01","category":"Standard"}]`))
	}))
	defer srv.Close()

	api := bookingapi.NewClient(srv.URL, 2*time.Second, zap.NewNop())
	svc := NewCatalogService(nil, api, nil, time.Minute, zap.NewNop())

	_, err := svc.Entry(context.Background(), "Moonbase", CatalogOptions{})
	assert.Error(t, err)
}

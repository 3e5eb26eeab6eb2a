package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"resort-frontend/models"
	"resort-frontend/services/bookingapi"
)

const roomTypesCacheKey = "catalog:room-types"

// RoomCatalogEntry is a room-types record enriched with the local display
// metadata. When the category string of the feed does not match a metadata
// row exactly, the display fields stay empty and only the pricing survives.
type RoomCatalogEntry struct {
	bookingapi.RoomRecord

	DisplayName string          `json:"display_name,omitempty"`
	AreaSqm     uint            `json:"area_sqm,omitempty"`
	Summary     string          `json:"summary,omitempty"`
	Highlights  json.RawMessage `json:"highlights,omitempty"`
	Images      json.RawMessage `json:"images,omitempty"`

	SoldOut      bool    `json:"sold_out"`
	StartingFrom float64 `json:"starting_from,omitempty"`
}

// CatalogOptions drive the per-request derived fields of a catalog listing.
type CatalogOptions struct {
	StartDate time.Time // zero: skip sold-out flags
	Nights    int       // zero: skip the "starting from" price
	Adults    int
}

// JoinCatalog merges the API feed with the display metadata, keyed on the
// exact category string.
func JoinCatalog(records []bookingapi.RoomRecord, meta map[string]models.RoomDisplayInfo, pricing PricingService, opts CatalogOptions) []RoomCatalogEntry {
	entries := make([]RoomCatalogEntry, 0, len(records))
	for _, record := range records {
		entry := RoomCatalogEntry{RoomRecord: record}
		if info, ok := meta[record.Category]; ok {
			entry.DisplayName = info.DisplayName
			entry.AreaSqm = info.AreaSqm
			entry.Summary = info.Summary
			entry.Highlights = json.RawMessage(info.Highlights)
			entry.Images = json.RawMessage(info.Images)
		}
		if !opts.StartDate.IsZero() {
			entry.SoldOut = pricing.IsSoldOut(record.Category, opts.StartDate)
		}
		if opts.Nights > 0 {
			adults := opts.Adults
			if adults < 1 {
				adults = 1
			}
			entry.StartingFrom = pricing.NightlyRate(record, opts.Nights, adults)
		}
		entries = append(entries, entry)
	}
	return entries
}

// CatalogService serves the joined room catalog. The room-types feed is
// static content and may be cached; estimates never pass through here.
type CatalogService struct {
	db      *gorm.DB
	api     *bookingapi.Client
	cache   *redis.Client
	pricing PricingService
	ttl     time.Duration
	log     *zap.Logger
}

func NewCatalogService(db *gorm.DB, api *bookingapi.Client, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *CatalogService {
	return &CatalogService{db: db, api: api, cache: cache, ttl: ttl, log: logger}
}

// RoomTypes returns the raw feed, from cache when possible.
func (s *CatalogService) RoomTypes(ctx context.Context) ([]bookingapi.RoomRecord, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, roomTypesCacheKey).Bytes(); err == nil {
			var rooms []bookingapi.RoomRecord
			if err := json.Unmarshal(cached, &rooms); err == nil {
				return rooms, nil
			}
		}
	}

	rooms, err := s.api.FetchRoomTypes(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(rooms); err == nil {
			if err := s.cache.Set(ctx, roomTypesCacheKey, payload, s.ttl).Err(); err != nil {
				s.log.Warn("room-types cache write failed", zap.Error(err))
			}
		}
	}
	return rooms, nil
}

func (s *CatalogService) displayMetadata() map[string]models.RoomDisplayInfo {
	meta := map[string]models.RoomDisplayInfo{}
	if s.db == nil {
		return meta
	}
	var rows []models.RoomDisplayInfo
	if err := s.db.Find(&rows).Error; err != nil {
		s.log.Warn("display metadata load failed", zap.Error(err))
		return meta
	}
	for _, row := range rows {
		meta[row.Category] = row
	}
	return meta
}

// Catalog returns every bookable category joined with its display metadata.
func (s *CatalogService) Catalog(ctx context.Context, opts CatalogOptions) ([]RoomCatalogEntry, error) {
	rooms, err := s.RoomTypes(ctx)
	if err != nil {
		return nil, err
	}
	return JoinCatalog(rooms, s.displayMetadata(), s.pricing, opts), nil
}

// Entry returns a single category's joined record.
func (s *CatalogService) Entry(ctx context.Context, category string, opts CatalogOptions) (*RoomCatalogEntry, error) {
	entries, err := s.Catalog(ctx, opts)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].Category == category {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("unknown room category %q", category)
}

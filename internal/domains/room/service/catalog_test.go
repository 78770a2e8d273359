package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"madison/config"
	"madison/infras/otel/mocks"
	s3Mocks "madison/infras/s3/mocks"
	roomMocks "madison/internal/domains/room/mocks"
	"madison/internal/domains/room/model"
	"madison/internal/domains/room/model/dto"
	"madison/internal/domains/room/service"
	cacheMocks "madison/shared/cache/mocks"
	gDto "madison/shared/dto"
)

func intPtr(v int) *int {
	return &v
}

// catalogRooms returns eight rooms sorted by price, the order the
// repository delivers them in.
func catalogRooms() []model.Room {
	rooms := make([]model.Room, 0, 8)

	prices := []int{20000, 25000, 30000, 35000, 45000, 50000, 65000, 80000}
	types := []string{
		model.TypeStandard, model.TypeStandard, model.TypeStandard, model.TypeVIP,
		model.TypeVIP, model.TypeSuite, model.TypeLuxe, model.TypeDuplex,
	}

	for i, price := range prices {
		rooms = append(rooms, model.Room{
			ID:        fmt.Sprintf("room-%d", i+1),
			Name:      fmt.Sprintf("Chambre %d", i+1),
			Price:     price,
			Capacity:  2,
			Type:      types[i],
			Available: true,
		})
	}

	return rooms
}

func TestRoomService_Catalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	tests := []struct {
		name          string
		req           dto.CatalogRequest
		setupMock     func()
		wantErr       bool
		wantIDs       []string
		wantPage      int
		wantTotalPage int
	}{
		{
			name: "first page without filters",
			req:  dto.CatalogRequest{Page: 1},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(catalogRooms(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantIDs:       []string{"room-1", "room-2", "room-3", "room-4", "room-5", "room-6"},
			wantPage:      1,
			wantTotalPage: 2,
		},
		{
			name: "page past the end clamps to the last page",
			req:  dto.CatalogRequest{Page: 9},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(catalogRooms(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantIDs:       []string{"room-7", "room-8"},
			wantPage:      2,
			wantTotalPage: 2,
		},
		{
			name: "price range filter",
			req: dto.CatalogRequest{
				PriceRange: gDto.PriceRange{Min: intPtr(30000), Max: intPtr(50000)},
				Page:       1,
			},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(catalogRooms(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantIDs:       []string{"room-3", "room-4", "room-5", "room-6"},
			wantPage:      1,
			wantTotalPage: 1,
		},
		{
			name: "open ended price range combined with a type filter",
			req: dto.CatalogRequest{
				PriceRange: gDto.PriceRange{Min: intPtr(30000)},
				Type:       model.TypeVIP,
				Page:       1,
			},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(catalogRooms(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantIDs:       []string{"room-4", "room-5"},
			wantPage:      1,
			wantTotalPage: 1,
		},
		{
			name: "no match still reports one page",
			req: dto.CatalogRequest{
				PriceRange: gDto.PriceRange{Min: intPtr(500000)},
				Page:       1,
			},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(catalogRooms(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantIDs:       []string{},
			wantPage:      1,
			wantTotalPage: 1,
		},
		{
			name: "repository error",
			req:  dto.CatalogRequest{Page: 1},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Catalog(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantPage, res.Page)
			assert.Equal(t, tt.wantTotalPage, res.TotalPages)

			ids := make([]string, 0, len(res.Rooms))
			for _, room := range res.Rooms {
				ids = append(ids, room.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRoomService_CatalogCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			res, ok := value.(*dto.RoomCatalogResponse)
			if !ok {
				return errors.New("unexpected cache value type")
			}

			res.Page = 1
			res.TotalPages = 1
			return nil
		})

	res, err := svc.Catalog(context.Background(), dto.CatalogRequest{Page: 1})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 1, res.TotalPages)
}

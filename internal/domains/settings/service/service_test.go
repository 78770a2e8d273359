package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"madison/config"
	"madison/infras/otel/mocks"
	settingsMocks "madison/internal/domains/settings/mocks"
	"madison/internal/domains/settings/model"
	"madison/internal/domains/settings/model/dto"
	"madison/internal/domains/settings/service"
	cacheMocks "madison/shared/cache/mocks"
	"madison/shared/constant"
)

func newSettingsService(ctrl *gomock.Controller) (
	service.Settings,
	*settingsMocks.MockSettings,
	*cacheMocks.MockRedisCache,
) {
	mockRepo := settingsMocks.NewMockSettings(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Hotel.Name = "MADISON HOTEL"
	cfg.Hotel.WhatsApp = "+237 690 19 84 84"

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func storedSettings() model.Settings {
	return model.Settings{
		ID:             model.SingletonID,
		HotelName:      "MADISON HOTEL",
		WhatsAppNumber: "+237 699 00 00 00",
		Phone:          "+237 233 46 00 00",
		Email:          "contact@madison-hotel.cm",
		Address:        "Kribi, Cameroun",
	}
}

func TestSettingsService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newSettingsService(ctrl)

	t.Run("returns the stored row", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedSettings(), nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "MADISON HOTEL", res.HotelName)
		assert.Equal(t, "+237 699 00 00 00", res.WhatsAppNumber)
	})

	t.Run("missing row falls back to the configured defaults", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Settings{}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "MADISON HOTEL", res.HotelName)
		assert.Equal(t, "+237 690 19 84 84", res.WhatsAppNumber)
	})
}

func TestSettingsService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newSettingsService(ctrl)

	t.Run("updates the existing row", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user-id")
		err := svc.Update(ctx, dto.UpdateSettingsRequest{Phone: "+237 233 46 11 11"})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("seeds the row when missing", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, settings model.Settings) error {
				assert.Equal(t, model.SingletonID, settings.ID)
				return nil
			})

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user-id")
		err := svc.Update(ctx, dto.UpdateSettingsRequest{Phone: "+237 233 46 11 11"})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}

func TestSettingsService_WhatsAppNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newSettingsService(ctrl)

	t.Run("returns the stored number", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedSettings(), nil)

		assert.Equal(t, "+237 699 00 00 00", svc.WhatsAppNumber(context.Background()))
	})

	t.Run("falls back to the configured number on error", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Settings{}, errors.New("database error"))

		assert.Equal(t, "+237 690 19 84 84", svc.WhatsAppNumber(context.Background()))
	})
}

package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"madison/internal/domains/gallery/model"
	"madison/internal/domains/gallery/model/dto"
	gModel "madison/shared/model"
	"madison/shared/timezone"
)

func galleryModel(id, title string, images ...string) model.Gallery {
	now := timezone.Now()

	return model.Gallery{
		ID:          id,
		Title:       title,
		Description: "Photos de l'hotel",
		Category:    "exterior",
		Images:      images,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "manager",
			ModifiedBy: "manager",
		},
	}
}

func TestCreateGalleryRequest_ToModel(t *testing.T) {
	req := dto.CreateGalleryRequest{
		Title:       "Le jardin",
		Description: "Le jardin et la terrasse",
		Category:    "exterior",
		Images: []string{
			"https://cdn.madison-hotel.cm/madison-media/gallery/jardin-1.webp",
			"https://cdn.madison-hotel.cm/madison-media/gallery/jardin-2.webp",
		},
	}

	m := req.ToModel("user-manager")

	assert.NotEmpty(t, m.ID, "expected ID to be generated")
	assert.Equal(t, req.Title, m.Title)
	assert.Equal(t, req.Description, m.Description)
	assert.Equal(t, req.Category, m.Category)
	assert.Equal(t, req.Images, []string(m.Images))
	assert.Equal(t, "user-manager", m.CreatedBy)
	assert.Equal(t, "user-manager", m.ModifiedBy)
	assert.False(t, m.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, m.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestGalleryResponse_FromModel(t *testing.T) {
	m := galleryModel("gal-jardin", "Le jardin", "https://cdn.madison-hotel.cm/madison-media/gallery/jardin-1.webp")

	var response dto.GalleryResponse
	response.FromModel(m)

	assert.Equal(t, m.ID, response.ID)
	assert.Equal(t, m.Title, response.Title)
	assert.Equal(t, m.Description, response.Description)
	assert.Equal(t, m.Category, response.Category)
	assert.Equal(t, []string(m.Images), response.Images)
	assert.Equal(t, m.CreatedBy, response.CreatedBy)
	assert.Equal(t, m.ModifiedBy, response.ModifiedBy)
}

func TestGetGalleriesResponse_FromModels(t *testing.T) {
	galleries := []model.Gallery{
		galleryModel("gal-jardin", "Le jardin", "https://cdn.madison-hotel.cm/madison-media/gallery/jardin-1.webp"),
		galleryModel("gal-piscine", "La piscine",
			"https://cdn.madison-hotel.cm/madison-media/gallery/piscine-1.webp",
			"https://cdn.madison-hotel.cm/madison-media/gallery/piscine-2.webp",
		),
	}

	var response dto.GetGalleriesResponse
	response.FromModels(galleries, 15, 10)

	assert.Equal(t, 15, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Galleries, len(galleries))

	for i, gallery := range response.Galleries {
		assert.Equal(t, galleries[i].ID, gallery.ID)
		assert.Equal(t, galleries[i].Title, gallery.Title)
		assert.Equal(t, []string(galleries[i].Images), gallery.Images)
	}
}

func TestGetGalleriesResponse_FromModels_EmptyList(t *testing.T) {
	var response dto.GetGalleriesResponse
	response.FromModels(nil, 0, 10)

	assert.Equal(t, 0, response.TotalData)
	assert.Equal(t, 1, response.TotalPage)
	assert.Empty(t, response.Galleries)
}

func TestUploadImageResponse_FromModel(t *testing.T) {
	url := "https://cdn.madison-hotel.cm/madison-media/gallery/reception.webp"

	var response dto.UploadImageResponse
	response.FromModel(url, "reception.webp")

	assert.Equal(t, url, response.URL)
	assert.Equal(t, "reception.webp", response.FileName)
}

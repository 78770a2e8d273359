package dto

import (
	"strings"
	"unicode"

	"madison/internal/domains/blog/model"
	"madison/shared"
	gDto "madison/shared/dto"
	"madison/shared/format"
	gModel "madison/shared/model"
	"madison/shared/timezone"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Title     string `json:"title"     validate:"required,max=200"`
	Excerpt   string `json:"excerpt"   validate:"omitempty,max=500"`
	Content   string `json:"content"   validate:"required"`
	Image     string `json:"image"     validate:"omitempty,url,max=500"`
	Category  string `json:"category"  validate:"omitempty,max=100"`
	Published *bool  `json:"published" validate:"omitempty"`
}

func (c *CreatePostRequest) ToModel(user string) model.Post {
	published := c.Published != nil && *c.Published

	post := model.Post{
		ID:        uuid.NewString(),
		Title:     c.Title,
		Slug:      Slugify(c.Title),
		Excerpt:   c.Excerpt,
		Content:   c.Content,
		Image:     c.Image,
		Category:  c.Category,
		Published: published,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if published {
		now := timezone.Now()
		post.PublishedAt = &now
	}

	return post
}

// Slugify turns a post title into a URL path segment. Accented characters
// common in French titles map to their base letters.
func Slugify(title string) string {
	replacer := strings.NewReplacer(
		"à", "a", "â", "a", "ä", "a",
		"é", "e", "è", "e", "ê", "e", "ë", "e",
		"î", "i", "ï", "i",
		"ô", "o", "ö", "o",
		"ù", "u", "û", "u", "ü", "u",
		"ç", "c",
	)

	var b strings.Builder

	lastDash := true
	for _, r := range replacer.Replace(strings.ToLower(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)

			lastDash = false
		case !lastDash:
			b.WriteRune('-')

			lastDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}

type UpdatePostRequest struct {
	Title     string `db:"title"     json:"title"     validate:"omitempty,max=200"`
	Excerpt   string `db:"excerpt"   json:"excerpt"   validate:"omitempty,max=500"`
	Content   string `db:"content"   json:"content"   validate:"omitempty"`
	Image     string `db:"image"     json:"image"     validate:"omitempty,url,max=500"`
	Category  string `db:"category"  json:"category"  validate:"omitempty,max=100"`
	Published *bool  `db:"published" json:"published" validate:"omitempty"`
}

type PostResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Slug               string `json:"slug"`
	Excerpt            string `json:"excerpt"`
	Content            string `json:"content"`
	Image              string `json:"image"`
	Category           string `json:"category"`
	Published          bool   `json:"published"`
	PublishedAtDisplay string `json:"published_at_display,omitempty"`
	gDto.Metadata
}

func (r *PostResponse) FromModel(model model.Post) {
	r.ID = model.ID
	r.Title = model.Title
	r.Slug = model.Slug
	r.Excerpt = model.Excerpt
	r.Content = model.Content
	r.Image = model.Image
	r.Category = model.Category
	r.Published = model.Published

	if model.PublishedAt != nil {
		r.PublishedAtDisplay = format.DateLong(*model.PublishedAt)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetPostsResponse struct {
	Posts     []PostResponse `json:"posts"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetPostsResponse) FromModels(models []model.Post, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Posts = make([]PostResponse, len(models))
	for i, mod := range models {
		r.Posts[i].FromModel(mod)
	}
}

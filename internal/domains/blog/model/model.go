package model

import (
	"time"

	"madison/shared/model"
)

const (
	TableName  = "blog_posts"
	EntityName = "blog_post"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldExcerpt     = "excerpt"
	FieldContent     = "content"
	FieldImage       = "image"
	FieldCategory    = "category"
	FieldPublished   = "published"
	FieldPublishedAt = "published_at"
)

type Post struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Excerpt     string     `db:"excerpt"`
	Content     string     `db:"content"`
	Image       string     `db:"image"`
	Category    string     `db:"category"`
	Published   bool       `db:"published"`
	PublishedAt *time.Time `db:"published_at"`
	model.Metadata
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentType holds the schema definition for the ContentType entity.
// Content types map resources to a MIME type, a file extension used when
// generating friendly URLs, and optional extra response headers.
type ContentType struct {
	ent.Schema
}

// Mixin of the ContentType.
func (ContentType) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ContentType.
func (ContentType) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.String("mime_type").
			Default("text/html"),
		field.String("file_extensions").
			Optional(), // e.g. ".html"
		field.JSON("headers", []string{}).
			Optional(), // Extra response headers sent with this type
		field.Bool("binary").
			Default(false),
	}
}

// Indexes of the ContentType.
func (ContentType) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
		index.Fields("mime_type"),
	}
}

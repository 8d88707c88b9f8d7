package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PropertySet holds the schema definition for the PropertySet entity.
// A property set is a named, reusable bag of element properties. The name
// is unique platform-wide; uniqueness is enforced at the storage layer.
type PropertySet struct {
	ent.Schema
}

// Mixin of the PropertySet.
func (PropertySet) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the PropertySet.
func (PropertySet) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.JSON("properties", map[string]interface{}{}).
			Optional(), // Opaque property bag; the server never interprets values
	}
}

// Edges of the PropertySet.
func (PropertySet) Edges() []ent.Edge {
	return []ent.Edge{
		// Optional owner. Absent means "uncategorized".
		edge.From("category", Category.Type).
			Ref("property_sets").
			Unique(),
		// Owned children: element attachments removed together with the set.
		edge.To("bindings", ElementBinding.Type),
	}
}

// Indexes of the PropertySet.
func (PropertySet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ElementBinding holds the schema definition for the ElementBinding entity.
// A binding attaches a property set to one site element. Bindings are owned
// by their property set and are removed together with it.
type ElementBinding struct {
	ent.Schema
}

// Mixin of the ElementBinding.
func (ElementBinding) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ElementBinding.
func (ElementBinding) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("element_type").
			NotEmpty(), // e.g. "snippet", "chunk", "template"
		field.String("element_id").
			NotEmpty(),
	}
}

// Edges of the ElementBinding.
func (ElementBinding) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("property_set", PropertySet.Type).
			Ref("bindings").
			Unique().
			Required(),
	}
}

// Indexes of the ElementBinding.
func (ElementBinding) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("element_type", "element_id"),
		index.Fields("element_type", "element_id").
			Edges("property_set").
			Unique(),
	}
}

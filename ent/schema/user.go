package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// Local manager accounts authenticated with username/password.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("username").
			NotEmpty().
			MaxLen(255),
		field.String("display_name").
			Optional(),
		field.String("password_hash").
			NotEmpty().
			Sensitive(),
		field.JSON("permissions", []string{}).
			Optional(), // Flat permission strings, e.g. "property_set:save"
		field.Bool("enabled").
			Default(true),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username").Unique(),
	}
}

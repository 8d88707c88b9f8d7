// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"lattice-cms.io/lattice/ent/auditlog"
	"lattice-cms.io/lattice/ent/category"
	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/ent/elementbinding"
	"lattice-cms.io/lattice/ent/propertyset"
	"lattice-cms.io/lattice/ent/schema"
	"lattice-cms.io/lattice/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[2].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[3].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	categoryMixin := schema.Category{}.Mixin()
	categoryMixinFields0 := categoryMixin[0].Fields()
	_ = categoryMixinFields0
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescCreatedAt is the schema descriptor for created_at field.
	categoryDescCreatedAt := categoryMixinFields0[0].Descriptor()
	// category.DefaultCreatedAt holds the default value on creation for the created_at field.
	category.DefaultCreatedAt = categoryDescCreatedAt.Default.(func() time.Time)
	// categoryDescUpdatedAt is the schema descriptor for updated_at field.
	categoryDescUpdatedAt := categoryMixinFields0[1].Descriptor()
	// category.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	category.DefaultUpdatedAt = categoryDescUpdatedAt.Default.(func() time.Time)
	// category.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	category.UpdateDefaultUpdatedAt = categoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescRank is the schema descriptor for rank field.
	categoryDescRank := categoryFields[2].Descriptor()
	// category.DefaultRank holds the default value on creation for the rank field.
	category.DefaultRank = categoryDescRank.Default.(int)
	contenttypeMixin := schema.ContentType{}.Mixin()
	contenttypeMixinFields0 := contenttypeMixin[0].Fields()
	_ = contenttypeMixinFields0
	contenttypeFields := schema.ContentType{}.Fields()
	_ = contenttypeFields
	// contenttypeDescCreatedAt is the schema descriptor for created_at field.
	contenttypeDescCreatedAt := contenttypeMixinFields0[0].Descriptor()
	// contenttype.DefaultCreatedAt holds the default value on creation for the created_at field.
	contenttype.DefaultCreatedAt = contenttypeDescCreatedAt.Default.(func() time.Time)
	// contenttypeDescUpdatedAt is the schema descriptor for updated_at field.
	contenttypeDescUpdatedAt := contenttypeMixinFields0[1].Descriptor()
	// contenttype.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contenttype.DefaultUpdatedAt = contenttypeDescUpdatedAt.Default.(func() time.Time)
	// contenttype.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contenttype.UpdateDefaultUpdatedAt = contenttypeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contenttypeDescName is the schema descriptor for name field.
	contenttypeDescName := contenttypeFields[1].Descriptor()
	// contenttype.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contenttype.NameValidator = contenttypeDescName.Validators[0].(func(string) error)
	// contenttypeDescMimeType is the schema descriptor for mime_type field.
	contenttypeDescMimeType := contenttypeFields[3].Descriptor()
	// contenttype.DefaultMimeType holds the default value on creation for the mime_type field.
	contenttype.DefaultMimeType = contenttypeDescMimeType.Default.(string)
	// contenttypeDescBinary is the schema descriptor for binary field.
	contenttypeDescBinary := contenttypeFields[6].Descriptor()
	// contenttype.DefaultBinary holds the default value on creation for the binary field.
	contenttype.DefaultBinary = contenttypeDescBinary.Default.(bool)
	elementbindingMixin := schema.ElementBinding{}.Mixin()
	elementbindingMixinFields0 := elementbindingMixin[0].Fields()
	_ = elementbindingMixinFields0
	elementbindingFields := schema.ElementBinding{}.Fields()
	_ = elementbindingFields
	// elementbindingDescCreatedAt is the schema descriptor for created_at field.
	elementbindingDescCreatedAt := elementbindingMixinFields0[0].Descriptor()
	// elementbinding.DefaultCreatedAt holds the default value on creation for the created_at field.
	elementbinding.DefaultCreatedAt = elementbindingDescCreatedAt.Default.(func() time.Time)
	// elementbindingDescUpdatedAt is the schema descriptor for updated_at field.
	elementbindingDescUpdatedAt := elementbindingMixinFields0[1].Descriptor()
	// elementbinding.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	elementbinding.DefaultUpdatedAt = elementbindingDescUpdatedAt.Default.(func() time.Time)
	// elementbinding.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	elementbinding.UpdateDefaultUpdatedAt = elementbindingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// elementbindingDescElementType is the schema descriptor for element_type field.
	elementbindingDescElementType := elementbindingFields[1].Descriptor()
	// elementbinding.ElementTypeValidator is a validator for the "element_type" field. It is called by the builders before save.
	elementbinding.ElementTypeValidator = elementbindingDescElementType.Validators[0].(func(string) error)
	// elementbindingDescElementID is the schema descriptor for element_id field.
	elementbindingDescElementID := elementbindingFields[2].Descriptor()
	// elementbinding.ElementIDValidator is a validator for the "element_id" field. It is called by the builders before save.
	elementbinding.ElementIDValidator = elementbindingDescElementID.Validators[0].(func(string) error)
	propertysetMixin := schema.PropertySet{}.Mixin()
	propertysetMixinFields0 := propertysetMixin[0].Fields()
	_ = propertysetMixinFields0
	propertysetFields := schema.PropertySet{}.Fields()
	_ = propertysetFields
	// propertysetDescCreatedAt is the schema descriptor for created_at field.
	propertysetDescCreatedAt := propertysetMixinFields0[0].Descriptor()
	// propertyset.DefaultCreatedAt holds the default value on creation for the created_at field.
	propertyset.DefaultCreatedAt = propertysetDescCreatedAt.Default.(func() time.Time)
	// propertysetDescUpdatedAt is the schema descriptor for updated_at field.
	propertysetDescUpdatedAt := propertysetMixinFields0[1].Descriptor()
	// propertyset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	propertyset.DefaultUpdatedAt = propertysetDescUpdatedAt.Default.(func() time.Time)
	// propertyset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	propertyset.UpdateDefaultUpdatedAt = propertysetDescUpdatedAt.UpdateDefault.(func() time.Time)
	// propertysetDescName is the schema descriptor for name field.
	propertysetDescName := propertysetFields[1].Descriptor()
	// propertyset.NameValidator is a validator for the "name" field. It is called by the builders before save.
	propertyset.NameValidator = propertysetDescName.Validators[0].(func(string) error)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[5].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
}

// Package service wires the generic processor bases to the ent persistence
// layer, one service per managed entity.
package service

import (
	"strings"

	"github.com/google/uuid"

	"lattice-cms.io/lattice/ent"
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
	"lattice-cms.io/lattice/internal/processor"
)

// Object type names used in events and audit records.
const (
	ObjectTypePropertySet = "property_set"
	ObjectTypeCategory    = "category"
	ObjectTypeContentType = "content_type"
)

// Permission strings gating the manager operations. platform:admin implies
// all of them.
const (
	PermPropertySetView   = "property_set:view"
	PermPropertySetList   = "property_set:list"
	PermPropertySetSave   = "property_set:save"
	PermPropertySetRemove = "property_set:remove"

	PermCategorySave   = "category:save"
	PermCategoryRemove = "category:remove"
	PermCategoryList   = "category:list"

	PermContentTypeView   = "content_type:view"
	PermContentTypeList   = "content_type:list"
	PermContentTypeSave   = "content_type:save"
	PermContentTypeRemove = "content_type:remove"

	PermAuditView = "audit:view"
)

// newID returns a time-ordered identifier for a new row.
func newID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return prefix + "-" + uuid.NewString()
	}
	return prefix + "-" + id.String()
}

// trimmedName pulls the "name" property with surrounding whitespace removed.
func trimmedName(props processor.Properties) string {
	return strings.TrimSpace(props.String("name"))
}

// orNotFound maps an ent miss onto the shared sentinel so the processor
// bases can localize it. Other errors pass through.
func orNotFound(err error) error {
	if ent.IsNotFound(err) {
		return apperrors.ErrNotFound
	}
	return err
}

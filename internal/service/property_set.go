package service

import (
	"context"
	"net/http"

	entsql "entgo.io/ent/dialect/sql"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/category"
	"lattice-cms.io/lattice/ent/elementbinding"
	"lattice-cms.io/lattice/ent/propertyset"
	"lattice-cms.io/lattice/internal/domain"
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
	"lattice-cms.io/lattice/internal/processor"
)

// MaxPropertySetNameLen bounds property set display names.
const MaxPropertySetNameLen = 100

// PropertySetService runs the property set CRUD operations through the
// processor bases.
type PropertySetService struct {
	client *ent.Client
	rt     *processor.Runtime
}

// NewPropertySetService creates a PropertySetService.
func NewPropertySetService(client *ent.Client, rt *processor.Runtime) *PropertySetService {
	return &PropertySetService{client: client, rt: rt}
}

// propertySetView is the response projection of a property set.
type propertySetView struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Category    string                 `json:"category,omitempty"`
	Properties  map[string]interface{} `json:"properties,omitempty"`
}

func projectPropertySet(ps *ent.PropertySet) interface{} {
	view := propertySetView{
		ID:          ps.ID,
		Name:        ps.Name,
		Description: ps.Description,
		Properties:  ps.Properties,
	}
	if cat, err := ps.Edges.CategoryOrErr(); err == nil && cat != nil {
		view.Category = cat.ID
	}
	return view
}

func (s *PropertySetService) load(ctx context.Context, id string) (*ent.PropertySet, error) {
	ps, err := s.client.PropertySet.Query().
		Where(propertyset.IDEQ(id)).
		WithCategory().
		Only(ctx)
	if err != nil {
		return nil, orNotFound(err)
	}
	return ps, nil
}

// Get fetches one property set by id.
func (s *PropertySetService) Get(ctx context.Context, props processor.Properties) *processor.Response {
	p := &processor.GetProcessor[ent.PropertySet]{
		Runtime:            s.rt,
		Props:              props,
		RequiredPermission: PermPropertySetView,
		LexTopics:          []string{"property_set"},
		NotFoundKey:        "property_set_not_found",
		NotFoundCode:       apperrors.CodePropertySetNotFound,
		Load:               s.load,
		Project:            projectPropertySet,
	}
	return p.Run(ctx)
}

// List returns one page of property sets. The optional "category" property
// narrows the page to one category; "query" matches against name and
// description.
func (s *PropertySetService) List(ctx context.Context, props processor.Properties) *processor.Response {
	p := &processor.ListProcessor[ent.PropertySet]{
		Runtime:            s.rt,
		Props:              props,
		RequiredPermission: PermPropertySetList,
		LexTopics:          []string{"property_set"},
		Count: func(ctx context.Context, spec processor.QuerySpec) (int, error) {
			return s.listQuery(spec).Count(ctx)
		},
		Fetch: func(ctx context.Context, spec processor.QuerySpec) ([]*ent.PropertySet, error) {
			q := s.listQuery(spec).
				WithCategory().
				Order(sortOrder(spec, map[string]string{
					"name":       propertyset.FieldName,
					"created_at": propertyset.FieldCreatedAt,
				})).
				Offset(spec.Start)
			if spec.Limit > 0 {
				q = q.Limit(spec.Limit)
			}
			return q.All(ctx)
		},
		// Permissions are flat strings, so the row check is the same for
		// every item; a row-scoped policy would inspect item here.
		CanList: func(ctx context.Context, item *ent.PropertySet) bool {
			return s.rt.Policy == nil || s.rt.Policy.Can(ctx, PermPropertySetView)
		},
		Project: projectPropertySet,
	}
	return p.Run(ctx)
}

func (s *PropertySetService) listQuery(spec processor.QuerySpec) *ent.PropertySetQuery {
	q := s.client.PropertySet.Query()
	if spec.Search != "" {
		q = q.Where(propertyset.Or(
			propertyset.NameContainsFold(spec.Search),
			propertyset.DescriptionContainsFold(spec.Search),
		))
	}
	if cat := spec.Props.String("category"); cat != "" {
		q = q.Where(propertyset.HasCategoryWith(category.IDEQ(cat)))
	}
	return q
}

// Create persists a new property set.
func (s *PropertySetService) Create(ctx context.Context, actor string, props processor.Properties) *processor.Response {
	id := newID("ps")
	name := trimmedName(props)
	categoryID := props.String("category")

	p := &processor.CreateProcessor[ent.PropertySet]{
		Runtime:            s.rt,
		Props:              props,
		Actor:              actor,
		ObjectType:         ObjectTypePropertySet,
		ID:                 id,
		RequiredPermission: PermPropertySetSave,
		LexTopics:          []string{"property_set"},
		BeforeEvent:        domain.EventPropertySetBeforeSave,
		AfterEvent:         domain.EventPropertySetAfterSave,
		Validate: func(ctx context.Context) []apperrors.FieldError {
			return s.validate(ctx, name, categoryID, "")
		},
		Save: func(ctx context.Context) (*ent.PropertySet, error) {
			create := s.client.PropertySet.Create().
				SetID(id).
				SetName(name).
				SetDescription(props.String("description"))
			if m := props.Map("properties"); m != nil {
				create = create.SetProperties(m)
			}
			if categoryID != "" {
				create = create.SetCategoryID(categoryID)
			}
			ps, err := create.Save(ctx)
			if err != nil {
				return nil, s.saveError(err, name)
			}
			return s.load(ctx, ps.ID)
		},
		Project: projectPropertySet,
	}
	return p.Run(ctx)
}

// Update rewrites an existing property set.
func (s *PropertySetService) Update(ctx context.Context, actor string, props processor.Properties) *processor.Response {
	name := trimmedName(props)
	categoryID := props.String("category")

	p := &processor.UpdateProcessor[ent.PropertySet]{
		Runtime:            s.rt,
		Props:              props,
		Actor:              actor,
		ObjectType:         ObjectTypePropertySet,
		RequiredPermission: PermPropertySetSave,
		LexTopics:          []string{"property_set"},
		NotFoundKey:        "property_set_not_found",
		NotFoundCode:       apperrors.CodePropertySetNotFound,
		BeforeEvent:        domain.EventPropertySetBeforeSave,
		AfterEvent:         domain.EventPropertySetAfterSave,
		Load:               s.load,
	}
	p.Validate = func(ctx context.Context) []apperrors.FieldError {
		return s.validate(ctx, name, categoryID, p.Object().ID)
	}
	p.Save = func(ctx context.Context) (*ent.PropertySet, error) {
		update := s.client.PropertySet.UpdateOneID(p.Object().ID).
			SetName(name).
			SetDescription(props.String("description"))
		if props.Has("properties") {
			update = update.SetProperties(props.Map("properties"))
		}
		if props.Has("category") {
			if categoryID == "" {
				update = update.ClearCategory()
			} else {
				update = update.SetCategoryID(categoryID)
			}
		}
		ps, err := update.Save(ctx)
		if err != nil {
			return nil, s.saveError(err, name)
		}
		return s.load(ctx, ps.ID)
	}
	p.Project = projectPropertySet
	return p.Run(ctx)
}

// Remove deletes a property set together with its element bindings.
func (s *PropertySetService) Remove(ctx context.Context, actor string, props processor.Properties) *processor.Response {
	p := &processor.RemoveProcessor[ent.PropertySet]{
		Runtime:            s.rt,
		Props:              props,
		Actor:              actor,
		ObjectType:         ObjectTypePropertySet,
		RequiredPermission: PermPropertySetRemove,
		LexTopics:          []string{"property_set"},
		NotFoundKey:        "property_set_not_found",
		NotFoundCode:       apperrors.CodePropertySetNotFound,
		RemoveFailedKey:    "property_set_remove_failed",
		BeforeEvent:        domain.EventPropertySetBeforeRemove,
		AfterEvent:         domain.EventPropertySetAfterRemove,
		Load:               s.load,
		Delete: func(ctx context.Context, ps *ent.PropertySet) error {
			// Bindings are owned children; they go first.
			if _, err := s.client.ElementBinding.Delete().
				Where(elementbinding.HasPropertySetWith(propertyset.IDEQ(ps.ID))).
				Exec(ctx); err != nil {
				return err
			}
			return s.client.PropertySet.DeleteOneID(ps.ID).Exec(ctx)
		},
	}
	return p.Run(ctx)
}

// Duplicate clones a property set under a new name. Element bindings are
// deliberately not copied; the clone starts unattached.
func (s *PropertySetService) Duplicate(ctx context.Context, actor string, props processor.Properties) *processor.Response {
	p := &processor.DuplicateProcessor[ent.PropertySet]{
		Runtime:            s.rt,
		Props:              props,
		Actor:              actor,
		ObjectType:         ObjectTypePropertySet,
		RequiredPermission: PermPropertySetSave,
		LexTopics:          []string{"property_set"},
		NotFoundKey:        "property_set_not_found",
		NotFoundCode:       apperrors.CodePropertySetNotFound,
		NameTakenKey:       "property_set_name_taken",
		Load:               s.load,
		NameOf:             func(ps *ent.PropertySet) string { return ps.Name },
		Exists: func(ctx context.Context, name string) (bool, error) {
			return s.client.PropertySet.Query().
				Where(propertyset.NameEQ(name)).
				Exist(ctx)
		},
		Copy: func(ctx context.Context, source *ent.PropertySet, newName string) (*ent.PropertySet, error) {
			create := s.client.PropertySet.Create().
				SetID(newID("ps")).
				SetName(newName).
				SetDescription(source.Description).
				SetProperties(source.Properties)
			if cat, err := source.Edges.CategoryOrErr(); err == nil && cat != nil {
				create = create.SetCategoryID(cat.ID)
			}
			clone, err := create.Save(ctx)
			if err != nil {
				return nil, s.saveError(err, newName)
			}
			return s.load(ctx, clone.ID)
		},
		ObjectID: func(ps *ent.PropertySet) string { return ps.ID },
		Project:  projectPropertySet,
	}
	return p.Run(ctx)
}

// validate applies the property set field rules. excludeID skips the name
// uniqueness check against the row under update.
func (s *PropertySetService) validate(ctx context.Context, name, categoryID, excludeID string) []apperrors.FieldError {
	var errs []apperrors.FieldError

	switch {
	case name == "":
		errs = append(errs, apperrors.FieldError{
			Field:   "name",
			Code:    apperrors.CodeValidationFailed,
			Message: s.rt.Lexicon.Get("property_set_name_required"),
		})
	case len(name) > MaxPropertySetNameLen:
		errs = append(errs, apperrors.FieldError{
			Field:   "name",
			Code:    apperrors.CodeValidationFailed,
			Message: s.rt.Lexicon.Format("property_set_name_too_long", map[string]string{"max": "100"}),
		})
	default:
		q := s.client.PropertySet.Query().Where(propertyset.NameEQ(name))
		if excludeID != "" {
			q = q.Where(propertyset.IDNEQ(excludeID))
		}
		if taken, err := q.Exist(ctx); err == nil && taken {
			errs = append(errs, apperrors.FieldError{
				Field:   "name",
				Code:    apperrors.CodeValidationFailed,
				Message: s.rt.Lexicon.Format("property_set_name_taken", map[string]string{"name": name}),
			})
		}
	}

	if categoryID != "" {
		exists, err := s.client.Category.Query().
			Where(category.IDEQ(categoryID)).
			Exist(ctx)
		if err != nil || !exists {
			errs = append(errs, apperrors.FieldError{
				Field:   "category",
				Code:    apperrors.CodeValidationFailed,
				Message: s.rt.Lexicon.Get("property_set_category_invalid"),
			})
		}
	}

	return errs
}

// saveError maps a unique violation onto the localized name-taken message;
// other storage failures surface as a localized save failure wrapping the
// underlying error.
func (s *PropertySetService) saveError(err error, name string) error {
	if ent.IsConstraintError(err) {
		msg := s.rt.Lexicon.Format("property_set_name_taken", map[string]string{"name": name})
		return apperrors.Conflict(apperrors.CodePropertySetExists, msg).
			WithFieldErrors([]apperrors.FieldError{{
				Field:   "name",
				Code:    apperrors.CodeValidationFailed,
				Message: msg,
			}})
	}
	return apperrors.Wrap(err, apperrors.CodePropertySetSaveFail,
		s.rt.Lexicon.Get("property_set_save_failed"), http.StatusInternalServerError)
}

// sortOrder maps the request sort field onto an ent order option, falling
// back to name when the field is unknown. The unnamed func type keeps the
// result assignable to every generated per-entity OrderOption.
func sortOrder(spec processor.QuerySpec, fields map[string]string) func(*entsql.Selector) {
	column, ok := fields[spec.SortBy]
	if !ok {
		column = fields["name"]
	}
	if spec.SortDir == processor.SortDesc {
		return ent.Desc(column)
	}
	return ent.Asc(column)
}

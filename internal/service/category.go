package service

import (
	"context"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/category"
	"lattice-cms.io/lattice/ent/propertyset"
	"lattice-cms.io/lattice/internal/domain"
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
	"lattice-cms.io/lattice/internal/processor"
)

// CategoryService manages the manager tree categories.
type CategoryService struct {
	client *ent.Client
	rt     *processor.Runtime
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(client *ent.Client, rt *processor.Runtime) *CategoryService {
	return &CategoryService{client: client, rt: rt}
}

type categoryView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rank   int    `json:"rank"`
	Parent string `json:"parent,omitempty"`
}

func projectCategory(cat *ent.Category) interface{} {
	view := categoryView{
		ID:   cat.ID,
		Name: cat.Name,
		Rank: cat.Rank,
	}
	if parent, err := cat.Edges.ParentOrErr(); err == nil && parent != nil {
		view.Parent = parent.ID
	}
	return view
}

func (s *CategoryService) load(ctx context.Context, id string) (*ent.Category, error) {
	cat, err := s.client.Category.Query().
		Where(category.IDEQ(id)).
		WithParent().
		Only(ctx)
	if err != nil {
		return nil, orNotFound(err)
	}
	return cat, nil
}

// List returns one page of categories ordered by rank, then name.
func (s *CategoryService) List(ctx context.Context, props processor.Properties) *processor.Response {
	p := &processor.ListProcessor[ent.Category]{
		Runtime:            s.rt,
		Props:              props,
		RequiredPermission: PermCategoryList,
		LexTopics:          []string{"category"},
		DefaultSortBy:      "rank",
		Count: func(ctx context.Context, spec processor.QuerySpec) (int, error) {
			return s.listQuery(spec).Count(ctx)
		},
		Fetch: func(ctx context.Context, spec processor.QuerySpec) ([]*ent.Category, error) {
			q := s.listQuery(spec).
				WithParent().
				Order(sortOrder(spec, map[string]string{
					"name": category.FieldName,
					"rank": category.FieldRank,
				}), ent.Asc(category.FieldName)).
				Offset(spec.Start)
			if spec.Limit > 0 {
				q = q.Limit(spec.Limit)
			}
			return q.All(ctx)
		},
		Project: projectCategory,
	}
	return p.Run(ctx)
}

func (s *CategoryService) listQuery(spec processor.QuerySpec) *ent.CategoryQuery {
	q := s.client.Category.Query()
	if spec.Search != "" {
		q = q.Where(category.NameContainsFold(spec.Search))
	}
	return q
}

// Create persists a new category, optionally under a parent.
func (s *CategoryService) Create(ctx context.Context, actor string, props processor.Properties) *processor.Response {
	id := newID("cat")
	name := trimmedName(props)
	parentID := props.String("parent")

	p := &processor.CreateProcessor[ent.Category]{
		Runtime:            s.rt,
		Props:              props,
		Actor:              actor,
		ObjectType:         ObjectTypeCategory,
		ID:                 id,
		RequiredPermission: PermCategorySave,
		LexTopics:          []string{"category"},
		BeforeEvent:        domain.EventCategoryBeforeSave,
		AfterEvent:         domain.EventCategoryAfterSave,
		Validate: func(ctx context.Context) []apperrors.FieldError {
			var errs []apperrors.FieldError
			if name == "" {
				errs = append(errs, apperrors.FieldError{
					Field:   "name",
					Code:    apperrors.CodeValidationFailed,
					Message: s.rt.Lexicon.Get("category_name_required"),
				})
			} else if taken, err := s.client.Category.Query().
				Where(category.NameEQ(name)).
				Exist(ctx); err == nil && taken {
				errs = append(errs, apperrors.FieldError{
					Field:   "name",
					Code:    apperrors.CodeValidationFailed,
					Message: s.rt.Lexicon.Format("category_name_taken", map[string]string{"name": name}),
				})
			}
			if parentID != "" {
				exists, err := s.client.Category.Query().
					Where(category.IDEQ(parentID)).
					Exist(ctx)
				if err != nil || !exists {
					errs = append(errs, apperrors.FieldError{
						Field:   "parent",
						Code:    apperrors.CodeValidationFailed,
						Message: s.rt.Lexicon.Get("category_not_found"),
					})
				}
			}
			return errs
		},
		Save: func(ctx context.Context) (*ent.Category, error) {
			create := s.client.Category.Create().
				SetID(id).
				SetName(name).
				SetRank(props.IntOr("rank", 0))
			if parentID != "" {
				create = create.SetParentID(parentID)
			}
			cat, err := create.Save(ctx)
			if err != nil {
				if ent.IsConstraintError(err) {
					msg := s.rt.Lexicon.Format("category_name_taken", map[string]string{"name": name})
					return nil, apperrors.Conflict(apperrors.CodeCategoryExists, msg)
				}
				return nil, err
			}
			return s.load(ctx, cat.ID)
		},
		Project: projectCategory,
	}
	return p.Run(ctx)
}

// Remove deletes a category. Child categories are reparented to the root
// and property sets in the category become uncategorized.
func (s *CategoryService) Remove(ctx context.Context, actor string, props processor.Properties) *processor.Response {
	p := &processor.RemoveProcessor[ent.Category]{
		Runtime:            s.rt,
		Props:              props,
		Actor:              actor,
		ObjectType:         ObjectTypeCategory,
		RequiredPermission: PermCategoryRemove,
		LexTopics:          []string{"category"},
		NotFoundKey:        "category_not_found",
		NotFoundCode:       apperrors.CodeCategoryNotFound,
		RemoveFailedKey:    "category_remove_failed",
		BeforeEvent:        domain.EventCategoryBeforeRemove,
		AfterEvent:         domain.EventCategoryAfterRemove,
		Load:               s.load,
		Delete: func(ctx context.Context, cat *ent.Category) error {
			if _, err := s.client.Category.Update().
				Where(category.HasParentWith(category.IDEQ(cat.ID))).
				ClearParent().
				Save(ctx); err != nil {
				return err
			}
			if _, err := s.client.PropertySet.Update().
				Where(propertyset.HasCategoryWith(category.IDEQ(cat.ID))).
				ClearCategory().
				Save(ctx); err != nil {
				return err
			}
			return s.client.Category.DeleteOneID(cat.ID).Exec(ctx)
		},
	}
	return p.Run(ctx)
}

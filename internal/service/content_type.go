package service

import (
	"context"
	"strings"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/internal/domain"
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
	"lattice-cms.io/lattice/internal/processor"
)

// ContentTypeService manages resource content types. Listing is handled
// directly by the HTTP handler against the query builder; this service
// carries the mutating operations.
type ContentTypeService struct {
	client *ent.Client
	rt     *processor.Runtime
}

// NewContentTypeService creates a ContentTypeService.
func NewContentTypeService(client *ent.Client, rt *processor.Runtime) *ContentTypeService {
	return &ContentTypeService{client: client, rt: rt}
}

// ContentTypeView is the response projection of a content type.
type ContentTypeView struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	MimeType       string   `json:"mime_type"`
	FileExtensions string   `json:"file_extensions,omitempty"`
	Headers        []string `json:"headers,omitempty"`
	Binary         bool     `json:"binary"`
}

// ProjectContentType shapes a content type row for responses.
func ProjectContentType(ct *ent.ContentType) ContentTypeView {
	return ContentTypeView{
		ID:             ct.ID,
		Name:           ct.Name,
		Description:    ct.Description,
		MimeType:       ct.MimeType,
		FileExtensions: ct.FileExtensions,
		Headers:        ct.Headers,
		Binary:         ct.Binary,
	}
}

func (s *ContentTypeService) load(ctx context.Context, id string) (*ent.ContentType, error) {
	ct, err := s.client.ContentType.Get(ctx, id)
	if err != nil {
		return nil, orNotFound(err)
	}
	return ct, nil
}

// Create persists a new content type.
func (s *ContentTypeService) Create(ctx context.Context, actor string, props processor.Properties) *processor.Response {
	id := newID("ct")
	name := trimmedName(props)
	mimeType := strings.TrimSpace(props.StringOr("mime_type", "text/html"))
	extensions := strings.TrimSpace(props.String("file_extensions"))

	p := &processor.CreateProcessor[ent.ContentType]{
		Runtime:            s.rt,
		Props:              props,
		Actor:              actor,
		ObjectType:         ObjectTypeContentType,
		ID:                 id,
		RequiredPermission: PermContentTypeSave,
		LexTopics:          []string{"content_type"},
		BeforeEvent:        domain.EventContentTypeBeforeSave,
		AfterEvent:         domain.EventContentTypeAfterSave,
		Validate: func(ctx context.Context) []apperrors.FieldError {
			return s.validate(ctx, name, mimeType, extensions)
		},
		Save: func(ctx context.Context) (*ent.ContentType, error) {
			ct, err := s.client.ContentType.Create().
				SetID(id).
				SetName(name).
				SetDescription(props.String("description")).
				SetMimeType(mimeType).
				SetFileExtensions(extensions).
				SetHeaders(props.Strings("headers")).
				SetBinary(props.Bool("binary")).
				Save(ctx)
			if err != nil {
				if ent.IsConstraintError(err) {
					msg := s.rt.Lexicon.Format("content_type_name_taken", map[string]string{"name": name})
					return nil, apperrors.Conflict(apperrors.CodeContentTypeExists, msg)
				}
				return nil, err
			}
			return ct, nil
		},
		Project: func(ct *ent.ContentType) interface{} { return ProjectContentType(ct) },
	}
	return p.Run(ctx)
}

// Remove deletes a content type.
func (s *ContentTypeService) Remove(ctx context.Context, actor string, props processor.Properties) *processor.Response {
	p := &processor.RemoveProcessor[ent.ContentType]{
		Runtime:            s.rt,
		Props:              props,
		Actor:              actor,
		ObjectType:         ObjectTypeContentType,
		RequiredPermission: PermContentTypeRemove,
		LexTopics:          []string{"content_type"},
		NotFoundKey:        "content_type_not_found",
		NotFoundCode:       apperrors.CodeContentTypeNotFound,
		RemoveFailedKey:    "content_type_remove_failed",
		BeforeEvent:        domain.EventContentTypeBeforeRemove,
		AfterEvent:         domain.EventContentTypeAfterRemove,
		Load:               s.load,
		Delete: func(ctx context.Context, ct *ent.ContentType) error {
			return s.client.ContentType.DeleteOneID(ct.ID).Exec(ctx)
		},
	}
	return p.Run(ctx)
}

func (s *ContentTypeService) validate(ctx context.Context, name, mimeType, extensions string) []apperrors.FieldError {
	var errs []apperrors.FieldError

	if name == "" {
		errs = append(errs, apperrors.FieldError{
			Field:   "name",
			Code:    apperrors.CodeValidationFailed,
			Message: s.rt.Lexicon.Get("content_type_name_required"),
		})
	} else if taken, err := s.client.ContentType.Query().
		Where(contenttype.NameEQ(name)).
		Exist(ctx); err == nil && taken {
		errs = append(errs, apperrors.FieldError{
			Field:   "name",
			Code:    apperrors.CodeValidationFailed,
			Message: s.rt.Lexicon.Format("content_type_name_taken", map[string]string{"name": name}),
		})
	}

	if mimeType == "" {
		errs = append(errs, apperrors.FieldError{
			Field:   "mime_type",
			Code:    apperrors.CodeValidationFailed,
			Message: s.rt.Lexicon.Get("content_type_mime_required"),
		})
	}

	if extensions != "" {
		for _, ext := range strings.Split(extensions, ",") {
			if !strings.HasPrefix(strings.TrimSpace(ext), ".") {
				errs = append(errs, apperrors.FieldError{
					Field:   "file_extensions",
					Code:    apperrors.CodeValidationFailed,
					Message: s.rt.Lexicon.Get("content_type_extension_invalid"),
				})
				break
			}
		}
	}

	return errs
}

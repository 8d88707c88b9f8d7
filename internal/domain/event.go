// Package domain contains lifecycle events fired around entity persistence.
package domain

import "time"

// EventName identifies a lifecycle event.
type EventName string

// Property set lifecycle events.
const (
	EventPropertySetBeforeSave   EventName = "property_set.before_save"
	EventPropertySetAfterSave    EventName = "property_set.after_save"
	EventPropertySetBeforeRemove EventName = "property_set.before_remove"
	EventPropertySetAfterRemove  EventName = "property_set.after_remove"
)

// Category lifecycle events.
const (
	EventCategoryBeforeSave   EventName = "category.before_save"
	EventCategoryAfterSave    EventName = "category.after_save"
	EventCategoryBeforeRemove EventName = "category.before_remove"
	EventCategoryAfterRemove  EventName = "category.after_remove"
)

// Content type lifecycle events.
const (
	EventContentTypeBeforeSave   EventName = "content_type.before_save"
	EventContentTypeAfterSave    EventName = "content_type.after_save"
	EventContentTypeBeforeRemove EventName = "content_type.before_remove"
	EventContentTypeAfterRemove  EventName = "content_type.after_remove"
)

// Event is an immutable lifecycle event delivered to registered handlers.
// "before" events are delivered synchronously and may veto the operation;
// "after" events are informational.
type Event struct {
	Name       EventName              `json:"name"`
	ObjectType string                 `json:"object_type"`
	ObjectID   string                 `json:"object_id"`
	Actor      string                 `json:"actor"`
	Data       map[string]interface{} `json:"data,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// NewEvent creates an Event stamped with the current time.
func NewEvent(name EventName, objectType, objectID, actor string, data map[string]interface{}) *Event {
	return &Event{
		Name:       name,
		ObjectType: objectType,
		ObjectID:   objectID,
		Actor:      actor,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}

package domain

// Content lifecycle statuses the decision engine special-cases. Any other
// non-empty status string is legal and simply never crosses a boundary.
const (
	StatusPublish = "publish"
	StatusTrash   = "trash"
	StatusDraft   = "draft"
	StatusPending = "pending"
	StatusPrivate = "private"
	StatusFuture  = "future"
)

// ContentItem describes the piece of content whose status changed.
type ContentItem struct {
	ID          int64  `json:"id" yaml:"id"`
	ContentType string `json:"content_type" yaml:"content_type"`
	IsRevision  bool   `json:"is_revision,omitempty" yaml:"is_revision,omitempty"`
	IsAutosave  bool   `json:"is_autosave,omitempty" yaml:"is_autosave,omitempty"`
}

// PostStatusTransition is the input to the purge decision engine.
type PostStatusTransition struct {
	NewStatus string
	OldStatus string
	item      *ContentItem
	hasItem   bool
}

// NewTransition builds a transition. A nil item yields a transition the engine
// cannot reason about. The item is copied so later mutation by the caller has no effect.
func NewTransition(newStatus, oldStatus string, item *ContentItem) PostStatusTransition {
	t := PostStatusTransition{NewStatus: newStatus, OldStatus: oldStatus}
	if item != nil {
		c := *item
		t.item = &c
		t.hasItem = true
	}
	return t
}

// Item returns a copy of the content item and whether one is present.
func (t PostStatusTransition) Item() (ContentItem, bool) {
	if !t.hasItem {
		return ContentItem{}, false
	}
	return *t.item, true
}

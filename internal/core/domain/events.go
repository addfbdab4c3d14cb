package domain

// Events the trigger registrar subscribes to.
const (
	EventStatusTransitioned = "content_status_transitioned"
	EventContentDeleted     = "content_deleted"
	EventContentTrashed     = "content_trashed"

	EventThemeSwitched      = "theme_switched"
	EventCustomizationSaved = "customization_saved"
	EventNavMenuUpdated     = "nav_menu_updated"
	EventSiteOptionUpdated  = "site_option_updated"
	EventWidgetsUpdated     = "widgets_updated"

	EventCommentPosted        = "comment_posted"
	EventCommentStatusChanged = "comment_status_changed"

	EventManualPurge = "manual_purge"
)

// EventCachePurged is emitted once after a successful purge.
const EventCachePurged = "cache_purged"

// Filters consulted through the event bus.
const (
	FilterExcludedContentTypes = "excluded_content_types"
	FilterOverrideShouldPurge  = "override_should_purge"
	FilterOverrideAttemptGate  = "override_attempt_gate"
	FilterStructuralEvents     = "structural_events"
	FilterPurgingSiteOptions   = "purging_site_options"
)

// StructuralEvents returns the events that always purge, once per unit of work.
func StructuralEvents() []string {
	return []string{
		EventThemeSwitched,
		EventCustomizationSaved,
		EventNavMenuUpdated,
		EventSiteOptionUpdated,
		EventWidgetsUpdated,
	}
}

// PurgingSiteOptions returns the site options whose update purges the cache.
// Updates to any other option are recorded as ignored.
func PurgingSiteOptions() []string {
	return []string{"blogname", "blogdescription", "siteurl", "home"}
}

// IgnoredEvents returns events that are recognized but never purge.
func IgnoredEvents() []string {
	return []string{EventCommentPosted, EventCommentStatusChanged}
}

// Event is a platform notification delivered to the bus. Which fields are set
// depends on Name: transitions carry Transition, deletions carry Item and Status,
// site option updates carry Option.
type Event struct {
	Name       string
	Transition *PostStatusTransition
	Item       *ContentItem
	Status     string
	Option     string
}

// CachePurged is the payload of EventCachePurged.
type CachePurged struct {
	Path   string
	UnitID string
}

// Trigger tells the attempt gate what asked for a purge.
type Trigger struct {
	Event      string
	UnitID     string
	Transition *PostStatusTransition
}

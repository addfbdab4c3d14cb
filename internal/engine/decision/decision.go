// Package decision classifies content status transitions into purge verdicts.
package decision

import (
	"slices"

	"github.com/llegomark/better-nginx-cache/internal/core/domain"
)

// internalContentTypes have no frontend rendering and never purge.
var internalContentTypes = []string{
	"revision",
	"nav_menu_item",
	"customize_changeset",
	"oembed_cache",
	"wp_global_styles",
}

// InternalContentTypes returns the built-in skip set.
func InternalContentTypes() []string {
	return slices.Clone(internalContentTypes)
}

// Override receives the baseline verdict and the transition and returns the final verdict.
type Override func(baseline bool, t domain.PostStatusTransition) bool

// Identity is the default Override.
func Identity(baseline bool, _ domain.PostStatusTransition) bool {
	return baseline
}

// ShouldPurge reports whether t warrants a full cache purge.
func ShouldPurge(t domain.PostStatusTransition, excluded []string, override Override) bool {
	return Evaluate(t, excluded, override).Purge
}

// Evaluate is ShouldPurge with the reasoning attached. It performs no I/O.
// The override only runs once a baseline has been computed from the status pair.
func Evaluate(t domain.PostStatusTransition, excluded []string, override Override) domain.PurgeVerdict {
	item, ok := t.Item()
	switch {
	case !ok:
		return reject(domain.ReasonNoItem)
	case item.IsRevision:
		return reject(domain.ReasonRevision)
	case item.IsAutosave:
		return reject(domain.ReasonAutosave)
	case slices.Contains(internalContentTypes, item.ContentType):
		return reject(domain.ReasonInternalType)
	case slices.Contains(excluded, item.ContentType):
		return reject(domain.ReasonExcludedType)
	}

	baseline, reason := classify(t.NewStatus, t.OldStatus)

	final := baseline
	if override != nil {
		final = override(baseline, t)
	}

	return domain.PurgeVerdict{
		Purge:      final,
		Baseline:   baseline,
		Reason:     reason,
		Overridden: final != baseline,
	}
}

// classify applies the publish-boundary rules. Any matching rule purges.
func classify(newStatus, oldStatus string) (bool, domain.VerdictReason) {
	firstPublish := newStatus == domain.StatusPublish && oldStatus != domain.StatusPublish
	republish := newStatus == domain.StatusPublish && oldStatus == domain.StatusPublish
	unpublish := oldStatus == domain.StatusPublish && newStatus != domain.StatusPublish
	trashed := newStatus == domain.StatusTrash

	switch {
	case firstPublish:
		return true, domain.ReasonFirstPublish
	case republish:
		return true, domain.ReasonRepublish
	case trashed:
		return true, domain.ReasonTrashed
	case unpublish:
		return true, domain.ReasonUnpublish
	default:
		return false, domain.ReasonNoBoundary
	}
}

func reject(reason domain.VerdictReason) domain.PurgeVerdict {
	return domain.PurgeVerdict{Reason: reason}
}

package decision_test

import (
	"context"
	"testing"

	"github.com/llegomark/better-nginx-cache/internal/adapters/eventbus"
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/llegomark/better-nginx-cache/internal/core/ports/mocks"
	"github.com/llegomark/better-nginx-cache/internal/engine/decision"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var statuses = []string{
	domain.StatusPublish,
	domain.StatusDraft,
	domain.StatusTrash,
	domain.StatusPending,
	domain.StatusPrivate,
	domain.StatusFuture,
	"inherit",
	"auto-draft",
}

func post(id int64) *domain.ContentItem {
	return &domain.ContentItem{ID: id, ContentType: "post"}
}

func TestShouldPurge_StatusPairs(t *testing.T) {
	tests := []struct {
		name      string
		newStatus string
		oldStatus string
		want      bool
		reason    domain.VerdictReason
	}{
		{name: "first publish", newStatus: "publish", oldStatus: "draft", want: true, reason: domain.ReasonFirstPublish},
		{name: "scheduled goes live", newStatus: "publish", oldStatus: "future", want: true, reason: domain.ReasonFirstPublish},
		{name: "update while live", newStatus: "publish", oldStatus: "publish", want: true, reason: domain.ReasonRepublish},
		{name: "unpublish to draft", newStatus: "draft", oldStatus: "publish", want: true, reason: domain.ReasonUnpublish},
		{name: "unpublish to private", newStatus: "private", oldStatus: "publish", want: true, reason: domain.ReasonUnpublish},
		{name: "trash from publish", newStatus: "trash", oldStatus: "publish", want: true, reason: domain.ReasonTrashed},
		{name: "trash from draft", newStatus: "trash", oldStatus: "draft", want: true, reason: domain.ReasonTrashed},
		{name: "trash to trash", newStatus: "trash", oldStatus: "trash", want: true, reason: domain.ReasonTrashed},
		{name: "draft save", newStatus: "draft", oldStatus: "draft", want: false, reason: domain.ReasonNoBoundary},
		{name: "submit for review", newStatus: "pending", oldStatus: "draft", want: false, reason: domain.ReasonNoBoundary},
		{name: "restore from trash", newStatus: "draft", oldStatus: "trash", want: false, reason: domain.ReasonNoBoundary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := domain.NewTransition(tt.newStatus, tt.oldStatus, post(1))
			v := decision.Evaluate(tr, nil, decision.Identity)
			assert.Equal(t, tt.want, v.Purge)
			assert.Equal(t, tt.want, v.Baseline)
			assert.Equal(t, tt.reason, v.Reason)
			assert.False(t, v.Overridden)
			assert.Equal(t, tt.want, decision.ShouldPurge(tr, nil, nil))
		})
	}
}

func TestShouldPurge_Exclusions(t *testing.T) {
	live := func(item *domain.ContentItem) domain.PostStatusTransition {
		return domain.NewTransition(domain.StatusPublish, domain.StatusDraft, item)
	}

	tests := []struct {
		name     string
		tr       domain.PostStatusTransition
		excluded []string
		reason   domain.VerdictReason
	}{
		{name: "missing item", tr: live(nil), reason: domain.ReasonNoItem},
		{name: "revision", tr: live(&domain.ContentItem{ID: 2, ContentType: "post", IsRevision: true}), reason: domain.ReasonRevision},
		{name: "autosave", tr: live(&domain.ContentItem{ID: 3, ContentType: "post", IsAutosave: true}), reason: domain.ReasonAutosave},
		{name: "excluded type", tr: live(&domain.ContentItem{ID: 4, ContentType: "product"}), excluded: []string{"product"}, reason: domain.ReasonExcludedType},
	}

	for _, ct := range decision.InternalContentTypes() {
		tests = append(tests, struct {
			name     string
			tr       domain.PostStatusTransition
			excluded []string
			reason   domain.VerdictReason
		}{name: "internal " + ct, tr: live(&domain.ContentItem{ID: 5, ContentType: ct}), reason: domain.ReasonInternalType})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			override := func(bool, domain.PostStatusTransition) bool {
				called = true
				return true
			}

			v := decision.Evaluate(tt.tr, tt.excluded, override)
			assert.False(t, v.Purge)
			assert.Equal(t, tt.reason, v.Reason)
			assert.False(t, called, "override must not run for rejected items")
		})
	}
}

func TestShouldPurge_Properties(t *testing.T) {
	for _, newStatus := range statuses {
		for _, oldStatus := range statuses {
			tr := domain.NewTransition(newStatus, oldStatus, post(7))
			got := decision.ShouldPurge(tr, nil, decision.Identity)

			if newStatus == oldStatus && newStatus != domain.StatusPublish && newStatus != domain.StatusTrash {
				assert.False(t, got, "%s -> %s", oldStatus, newStatus)
			}
			if newStatus == domain.StatusPublish && oldStatus != domain.StatusPublish {
				assert.True(t, got, "%s -> %s", oldStatus, newStatus)
			}
			if newStatus == domain.StatusTrash {
				assert.True(t, got, "%s -> %s", oldStatus, newStatus)
			}

			rev := domain.NewTransition(newStatus, oldStatus, &domain.ContentItem{ID: 7, ContentType: "post", IsRevision: true})
			assert.False(t, decision.ShouldPurge(rev, nil, decision.Identity))

			excluded := decision.ShouldPurge(tr, []string{"post"}, decision.Identity)
			assert.False(t, excluded)
		}
	}
}

func TestShouldPurge_OverrideReceivesTransition(t *testing.T) {
	tr := domain.NewTransition(domain.StatusDraft, domain.StatusDraft, post(42))

	var seen domain.PostStatusTransition
	v := decision.Evaluate(tr, nil, func(baseline bool, got domain.PostStatusTransition) bool {
		seen = got
		return !baseline
	})

	assert.True(t, v.Purge)
	assert.False(t, v.Baseline)
	assert.True(t, v.Overridden)
	item, ok := seen.Item()
	assert.True(t, ok)
	assert.Equal(t, int64(42), item.ID)
	assert.Equal(t, domain.StatusDraft, seen.NewStatus)
}

func TestEngine_Decide(t *testing.T) {
	t.Run("uses configured exclusions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metrics := mocks.NewMockMetrics(ctrl)
		metrics.EXPECT().ObserveDecision(gomock.Any())

		e := decision.NewEngine(eventbus.New(), metrics)
		tr := domain.NewTransition(domain.StatusPublish, domain.StatusDraft, &domain.ContentItem{ID: 1, ContentType: "product"})

		v := e.Decide(context.Background(), tr, domain.CacheConfiguration{ExcludedContentTypes: []string{"product"}})
		assert.False(t, v.Purge)
		assert.Equal(t, domain.ReasonExcludedType, v.Reason)
	})

	t.Run("exclusion filter extends the list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metrics := mocks.NewMockMetrics(ctrl)
		metrics.EXPECT().ObserveDecision(gomock.Any())

		bus := eventbus.New()
		bus.AddFilter(domain.FilterExcludedContentTypes, func(_ context.Context, value any, _ ...any) any {
			return append(value.([]string), "event")
		})

		e := decision.NewEngine(bus, metrics)
		tr := domain.NewTransition(domain.StatusPublish, domain.StatusDraft, &domain.ContentItem{ID: 1, ContentType: "event"})

		v := e.Decide(context.Background(), tr, domain.CacheConfiguration{})
		assert.False(t, v.Purge)
		assert.Equal(t, domain.ReasonExcludedType, v.Reason)
	})

	t.Run("override filter inverts baseline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metrics := mocks.NewMockMetrics(ctrl)
		metrics.EXPECT().ObserveDecision(domain.PurgeVerdict{
			Purge:      false,
			Baseline:   true,
			Reason:     domain.ReasonFirstPublish,
			Overridden: true,
		})

		bus := eventbus.New()
		bus.AddFilter(domain.FilterOverrideShouldPurge, func(_ context.Context, value any, args ...any) any {
			tr := args[0].(domain.PostStatusTransition)
			item, _ := tr.Item()
			if item.ID == 42 {
				return false
			}
			return value
		})

		e := decision.NewEngine(bus, metrics)
		v := e.Decide(context.Background(), domain.NewTransition(domain.StatusPublish, domain.StatusDraft, post(42)), domain.CacheConfiguration{})
		assert.False(t, v.Purge)
	})

	t.Run("filter returning wrong type keeps baseline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metrics := mocks.NewMockMetrics(ctrl)
		metrics.EXPECT().ObserveDecision(gomock.Any())

		bus := eventbus.New()
		bus.AddFilter(domain.FilterOverrideShouldPurge, func(context.Context, any, ...any) any {
			return "yes"
		})

		e := decision.NewEngine(bus, metrics)
		v := e.Decide(context.Background(), domain.NewTransition(domain.StatusPublish, domain.StatusDraft, post(1)), domain.CacheConfiguration{})
		assert.True(t, v.Purge)
	})
}

package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{name: "zero", in: 0, want: "0 B"},
		{name: "negative", in: -5, want: "0 B"},
		{name: "bytes", in: 512, want: "512 B"},
		{name: "fractional kilobytes", in: 1536, want: "1.5 KB"},
		{name: "exact kilobyte", in: 1024, want: "1 KB"},
		{name: "two decimals", in: 1500000, want: "1.43 MB"},
		{name: "exact gigabyte", in: 1073741824, want: "1 GB"},
		{name: "terabytes", in: 5 * 1024 * 1024 * 1024 * 1024, want: "5 TB"},
		{name: "clamped to terabytes", in: 2048 * 1024 * 1024 * 1024 * 1024, want: "2048 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FormatBytes(tt.in))
		})
	}
}

func TestPurgeError_MatchesKindSentinel(t *testing.T) {
	cause := errors.New("permission denied")
	err := error(domain.NewPurgeError(domain.FailureNotWritable, "/var/cache/nginx", cause))

	assert.ErrorIs(t, err, domain.ErrNotWritable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, domain.ErrPathNotFound)
	assert.Equal(t, "Cache path is not writable.: permission denied", err.Error())

	var perr *domain.PurgeError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, domain.FailureNotWritable, perr.Kind)
	assert.Equal(t, "/var/cache/nginx", perr.Path)
	assert.False(t, perr.Kind.Destructive())
	assert.Equal(t, "not-writable", perr.Kind.String())
}

func TestPurgeError_WithoutCause(t *testing.T) {
	err := domain.NewPurgeError(domain.FailureUnconfigured, "", nil)
	assert.Equal(t, "Cache path is not configured.", err.Error())
	assert.NoError(t, err.Unwrap())
}

func TestFailureKind_Destructive(t *testing.T) {
	assert.True(t, domain.FailureRemoveFailed.Destructive())
	assert.True(t, domain.FailureRecreateFailed.Destructive())
	assert.False(t, domain.FailureNotACacheDirectory.Destructive())
	assert.Equal(t, "unknown", domain.FailureKind(0).String())
}

func TestPurgeGate(t *testing.T) {
	g := domain.NewPurgeGate()
	assert.False(t, g.Done())
	g.MarkDone()
	assert.True(t, g.Done())
	g.MarkDone()
	assert.True(t, g.Done())

	var zero domain.PurgeGate
	assert.False(t, zero.Done())
}

func TestNewTransition_CopiesItem(t *testing.T) {
	item := &domain.ContentItem{ID: 42, ContentType: "post"}
	tr := domain.NewTransition(domain.StatusPublish, domain.StatusDraft, item)

	item.ContentType = "page"

	got, ok := tr.Item()
	require.True(t, ok)
	assert.Equal(t, "post", got.ContentType)
	assert.Equal(t, int64(42), got.ID)

	_, ok = domain.NewTransition(domain.StatusPublish, domain.StatusDraft, nil).Item()
	assert.False(t, ok)
}

func TestParseContentTypes(t *testing.T) {
	assert.Nil(t, domain.ParseContentTypes(""))
	assert.Equal(t, []string{"product", "event"}, domain.ParseContentTypes(" product, ,event,product "))
}

func TestLookupSetting(t *testing.T) {
	spec, ok := domain.LookupSetting(domain.SettingAutoPurge)
	require.True(t, ok)
	assert.Equal(t, domain.SettingBool, spec.Type)
	assert.Equal(t, true, spec.Default)

	_, ok = domain.LookupSetting("nope")
	assert.False(t, ok)
}

func TestCacheStatusFromHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    string
	}{
		{name: "hit", headers: []string{"Content-Type: text/html", "Fastcgi-Cache: HIT"}, want: "HIT"},
		{name: "case insensitive name", headers: []string{"fastcgi-cache:  bypass "}, want: "BYPASS"},
		{name: "missing", headers: []string{"Content-Type: text/html"}, want: domain.CacheStatusUnknown},
		{name: "empty value", headers: []string{"Fastcgi-Cache:"}, want: domain.CacheStatusUnknown},
		{name: "no headers", headers: nil, want: domain.CacheStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CacheStatusFromHeaders(tt.headers))
		})
	}
}

func TestUnitOfWork_ReportAndContext(t *testing.T) {
	u := domain.NewUnitOfWork("unit-1", time.Unix(0, 0))
	require.False(t, u.Gate.Done())

	skipped := domain.Skipped("/cache", domain.SkipAlreadyPurged)
	purged := domain.Purged("/cache")
	u.Record(domain.EventResult{Event: domain.EventNavMenuUpdated, Outcome: &purged})
	u.Record(domain.EventResult{Event: domain.EventThemeSwitched, Outcome: &skipped})

	report := u.Report()
	assert.Equal(t, "unit-1", report.UnitID)
	assert.True(t, report.Purged)
	assert.Len(t, report.Results, 2)

	ctx := domain.WithUnitOfWork(context.Background(), u)
	got, ok := domain.UnitOfWorkFrom(ctx)
	require.True(t, ok)
	assert.Same(t, u, got)

	_, ok = domain.UnitOfWorkFrom(context.Background())
	assert.False(t, ok)
}

func TestPurgeResult_String(t *testing.T) {
	assert.Equal(t, "purged", domain.ResultPurged.String())
	assert.Equal(t, "skipped", domain.ResultSkipped.String())
	assert.Equal(t, "unknown", domain.PurgeResult(0).String())
}

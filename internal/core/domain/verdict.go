package domain

// VerdictReason names the rule that produced a baseline verdict.
type VerdictReason string

const (
	ReasonNoItem       VerdictReason = "no-item"
	ReasonRevision     VerdictReason = "revision"
	ReasonAutosave     VerdictReason = "autosave"
	ReasonInternalType VerdictReason = "internal-type"
	ReasonExcludedType VerdictReason = "excluded-type"
	ReasonFirstPublish VerdictReason = "first-publish"
	ReasonRepublish    VerdictReason = "republish"
	ReasonUnpublish    VerdictReason = "unpublish"
	ReasonTrashed      VerdictReason = "trashed"
	ReasonNoBoundary   VerdictReason = "no-publish-boundary"
)

// PurgeVerdict is the decision engine's answer for one transition.
type PurgeVerdict struct {
	// Purge is the final answer after the override hook ran.
	Purge bool
	// Baseline is the answer the built-in rules produced.
	Baseline bool
	// Reason is the rule that produced Baseline.
	Reason VerdictReason
	// Overridden is true when the override hook changed the baseline.
	Overridden bool
}

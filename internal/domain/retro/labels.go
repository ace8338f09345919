package retro

// Message identifiers for user-facing strings. They are resolved to text by
// the renderer's i18n catalog.
const (
	LabelSortVotes          = "retro.sort-votes-column"
	LabelSearch             = "retro.label-query-search"
	LabelJoinCards          = "retro.join-cards"
	LabelJoinCardsCancel    = "retro.join-cards-no"
	LabelJoinCardsConfirm   = "retro.join-cards-ok"
	LabelToggleCardsVisible = "retro.toggle-cards-visible"
	LabelModeratorPanel     = "retro.moderator-panel"
	LabelDownloadActions    = "retro.download-action-points"
	LabelPreviousStep       = "retro.previous-step"
	LabelNextStep           = "retro.next-step"
)

// ExportFilename is the download name of the action-point export.
const ExportFilename = "action-points.csv"

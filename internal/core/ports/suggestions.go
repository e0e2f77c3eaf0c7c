package ports

import "context"

// SuggestionProvider is the external text-generation collaborator used to
// improve client briefings. Implementations never fail the caller: on a
// missing key or service error they return a human-readable fallback
// message in place of the suggestion text, with ok set to false.
type SuggestionProvider interface {
	BriefingSuggestions(ctx context.Context, clientName, currentBriefing string) (text string, ok bool)
}

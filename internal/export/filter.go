// Package export contains the pure pipeline stages between fetch and
// file output: filtering, folder grouping, and OPML serialization.
package export

import (
	"time"

	"github.com/omnivore-tools/omniexport/internal/omnivore"
)

// unfetchedWindow is the tolerance for treating a subscription's only
// recorded fetch as part of its creation rather than a genuine poll.
const unfetchedWindow = 60 * time.Second

// ExcludeUnfetched drops subscriptions that were never genuinely polled:
// no last-fetch time at all, or a last-fetch within a minute of
// creation. Returns the survivors in input order and the number removed.
// Running it again on its own output removes nothing.
func ExcludeUnfetched(subs []omnivore.Subscription) ([]omnivore.Subscription, int) {
	kept := make([]omnivore.Subscription, 0, len(subs))
	for _, sub := range subs {
		if neverFetched(sub) {
			continue
		}
		kept = append(kept, sub)
	}
	return kept, len(subs) - len(kept)
}

func neverFetched(sub omnivore.Subscription) bool {
	if sub.LastFetchedAt == nil {
		return true
	}
	if sub.CreatedAt == nil {
		return false
	}
	gap := sub.LastFetchedAt.Sub(*sub.CreatedAt)
	if gap < 0 {
		gap = -gap
	}
	return gap < unfetchedWindow
}

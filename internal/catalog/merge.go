package catalog

import (
	"slices"

	"gallery-storefront/internal/domain/paintings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Merge builds the working catalog from its three sources. Hidden seed
// records are dropped, session edits replace their seed record, remote
// records are ordered newest first, and remoteFirst decides which group
// leads. When two records share an id the first one emitted wins.
func Merge(
	seed []paintings.Painting,
	hidden mapset.Set[string],
	edits map[string]paintings.Painting,
	remote []paintings.Painting,
	remoteFirst bool,
) []paintings.Painting {
	visibleSeed := make([]paintings.Painting, 0, len(seed))
	for _, p := range seed {
		if hidden != nil && hidden.Contains(p.ID) {
			continue
		}
		if e, ok := edits[p.ID]; ok {
			e.ID = p.ID
			e.Origin = paintings.OriginSeed
			p = e
		}
		visibleSeed = append(visibleSeed, p)
	}

	sortedRemote := slices.Clone(remote)
	slices.SortStableFunc(sortedRemote, newestFirst)

	ordered := make([]paintings.Painting, 0, len(visibleSeed)+len(sortedRemote))
	if remoteFirst {
		ordered = append(append(ordered, sortedRemote...), visibleSeed...)
	} else {
		ordered = append(append(ordered, visibleSeed...), sortedRemote...)
	}

	seen := mapset.NewThreadUnsafeSetWithSize[string](len(ordered))
	out := ordered[:0]
	for _, p := range ordered {
		if !seen.Add(p.ID) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// newestFirst orders by createdAt descending; records without a timestamp go last.
func newestFirst(a, b paintings.Painting) int {
	switch {
	case a.CreatedAt == nil && b.CreatedAt == nil:
		return 0
	case a.CreatedAt == nil:
		return 1
	case b.CreatedAt == nil:
		return -1
	default:
		return b.CreatedAt.Compare(*a.CreatedAt)
	}
}

package silo

import (
	"iter"

	iterutil "github.com/TheBitDrifter/util/iter"
)

// collect snapshots a storage range into a slice. Scheme views need a
// concrete, indexable sequence per component to zip across peers; ranges
// are otherwise only consumable once, lazily.
//
// Grounded on TheBitDrifter-warehouse/entity.go's own
// iter_util.Collect(e.Table().ElementTypes()) call.
func collect[PT any](seq iter.Seq[PT]) []PT {
	return iterutil.Collect(seq)
}

package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elietedasilvas/BLZ-BookingService/pkg/ptr"
)

// Индексы uq_booking_policies_professional и uq_booking_policies_salon
// частичные: конфликтная цель должна дословно повторять предикат индекса,
// иначе Postgres отвечает "no unique or exclusion constraint matching
// the ON CONFLICT specification".
func TestUpsertConflictTarget(t *testing.T) {
	t.Run("personal policy repeats the partial index predicate", func(t *testing.T) {
		assert.Equal(t,
			"(professional_id) WHERE professional_id IS NOT NULL",
			upsertConflictTarget(ptr.Ptr(int64(1))))
	})

	t.Run("salon-wide policy targets the IS NULL expression index", func(t *testing.T) {
		assert.Equal(t,
			"((professional_id IS NULL)) WHERE professional_id IS NULL",
			upsertConflictTarget(nil))
	})
}

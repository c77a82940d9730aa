package schedule

import (
	"github.com/clinicdesk/clinic-scheduling/internal/clinic"
)

// Rotation assigns technicians to imaging bookings round-robin. The cursor
// marks where the next scan starts and moves only on a successful
// assignment, so fairness survives failed scans.
type Rotation struct {
	techs []*clinic.Provider
	next  int
}

// NewRotation takes the technicians in roster load order, which is the
// rotation order.
func NewRotation(techs []*clinic.Provider) *Rotation {
	return &Rotation{techs: techs}
}

// Assign scans at most one full cycle from the cursor for a technician who
// is free at (date, slot) and whose location has the requested room free at
// that slot. On success the cursor advances to one past the pick.
func (r *Rotation) Assign(store *Store, date clinic.Date, slot clinic.Slot, room clinic.RoomKind) (*clinic.Provider, error) {
	n := len(r.techs)
	for i := 0; i < n; i++ {
		idx := (r.next + i) % n
		tech := r.techs[idx]
		if store.ProviderBusy(tech, date, slot) {
			continue
		}
		if store.RoomBusy(tech.Location, room, slot) {
			continue
		}
		r.next = (idx + 1) % n
		return tech, nil
	}
	return nil, ErrNoTechnician
}

// file: internals/poller/detector.go
package poller

import (
	"time"

	"github.com/google/uuid"

	requestModel "examcontrol_backend/internals/features/exam/requests/model"
)

// UrgentDetector mendeteksi بلاغ PENDING *baru* secara edge-triggered:
// alert hanya menyala saat بلاغ terbaru berubah dibanding observasi
// sebelumnya. Observasi pertama hanya priming — data lama yang sudah ada
// sebelum proses start tidak boleh memicu alarm.
type UrgentDetector struct {
	primed   bool
	lastID   uuid.UUID
	lastSeen time.Time
}

// Observe menerima daftar بلاغ tanggal aktif dan mengembalikan بلاغ PENDING
// terbaru yang belum pernah terlihat, atau nil.
func (d *UrgentDetector) Observe(requests []requestModel.ControlRequestModel) *requestModel.ControlRequestModel {
	var newest *requestModel.ControlRequestModel
	for i := range requests {
		r := &requests[i]
		if r.ControlRequestStatus != requestModel.StatusPending {
			continue
		}
		if newest == nil || r.ControlRequestCreatedAt.After(newest.ControlRequestCreatedAt) {
			newest = r
		}
	}

	if !d.primed {
		d.primed = true
		if newest != nil {
			d.lastID = newest.ControlRequestID
			d.lastSeen = newest.ControlRequestCreatedAt
		}
		return nil
	}

	if newest == nil {
		return nil
	}
	if newest.ControlRequestID == d.lastID {
		return nil
	}
	if newest.ControlRequestCreatedAt.Before(d.lastSeen) {
		return nil
	}

	d.lastID = newest.ControlRequestID
	d.lastSeen = newest.ControlRequestCreatedAt
	return newest
}

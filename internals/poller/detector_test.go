// file: internals/poller/detector_test.go
package poller

import (
	"testing"
	"time"

	"github.com/google/uuid"

	requestModel "examcontrol_backend/internals/features/exam/requests/model"
)

func req(status string, createdAt time.Time) requestModel.ControlRequestModel {
	return requestModel.ControlRequestModel{
		ControlRequestID:              uuid.New(),
		ControlRequestCommitteeNumber: "7",
		ControlRequestStatus:          status,
		ControlRequestCreatedAt:       createdAt,
	}
}

func TestUrgentDetectorFirstObservationPrimes(t *testing.T) {
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	existing := req(requestModel.StatusPending, base)

	var d UrgentDetector
	if got := d.Observe([]requestModel.ControlRequestModel{existing}); got != nil {
		t.Fatalf("observasi pertama memicu alert: %+v", got)
	}

	// snapshot sama → tetap diam
	if got := d.Observe([]requestModel.ControlRequestModel{existing}); got != nil {
		t.Fatalf("snapshot tidak berubah memicu alert: %+v", got)
	}
}

func TestUrgentDetectorEdgeTrigger(t *testing.T) {
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	first := req(requestModel.StatusPending, base)

	var d UrgentDetector
	d.Observe([]requestModel.ControlRequestModel{first})

	newer := req(requestModel.StatusPending, base.Add(time.Minute))
	got := d.Observe([]requestModel.ControlRequestModel{first, newer})
	if got == nil || got.ControlRequestID != newer.ControlRequestID {
		t.Fatalf("بلاغ baru tidak terdeteksi: %+v", got)
	}

	// edge, bukan level: siklus berikut dengan data sama harus diam
	if got := d.Observe([]requestModel.ControlRequestModel{first, newer}); got != nil {
		t.Fatalf("alert berulang untuk بلاغ yang sama: %+v", got)
	}
}

func TestUrgentDetectorIgnoresNonPending(t *testing.T) {
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	var d UrgentDetector
	d.Observe(nil)

	done := req(requestModel.StatusDone, base.Add(time.Minute))
	inProgress := req(requestModel.StatusInProgress, base.Add(2*time.Minute))
	if got := d.Observe([]requestModel.ControlRequestModel{done, inProgress}); got != nil {
		t.Fatalf("بلاغ non-PENDING memicu alert: %+v", got)
	}

	fresh := req(requestModel.StatusPending, base.Add(3*time.Minute))
	if got := d.Observe([]requestModel.ControlRequestModel{done, inProgress, fresh}); got == nil {
		t.Fatal("بلاغ PENDING baru tidak terdeteksi")
	}
}

// file: internals/poller/poller.go
package poller

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"examcontrol_backend/internals/constants"
	committeeService "examcontrol_backend/internals/features/exam/committees/service"
	deliveryModel "examcontrol_backend/internals/features/exam/deliveries/model"
	deliveryService "examcontrol_backend/internals/features/exam/deliveries/service"
	requestModel "examcontrol_backend/internals/features/exam/requests/model"
	configModel "examcontrol_backend/internals/features/system/config/model"
	configService "examcontrol_backend/internals/features/system/config/service"
	notificationModel "examcontrol_backend/internals/features/system/notifications/model"
	helper "examcontrol_backend/internals/helpers"
)

// RefreshInterval: irama sinkronisasi dashboard. Jangan dikecilkan tanpa
// menaikkan limit rate global.
const RefreshInterval = 8 * time.Second

// Poller menyegarkan snapshot dashboard tiap RefreshInterval, mendeteksi
// بلاغ baru (edge-triggered), dan menjalankan auto-confirm saat flag config
// menyala. Snapshot di-share ke controller monitor lewat RWMutex.
type Poller struct {
	db *gorm.DB

	mu       sync.RWMutex
	snap     committeeService.Snapshot
	cfg      configModel.SystemConfigModel
	loadedAt time.Time

	detector UrgentDetector
}

func New(db *gorm.DB) *Poller {
	return &Poller{db: db}
}

// Run memblokir sampai ctx selesai. Panggil sebagai goroutine dari main.
func (p *Poller) Run(ctx context.Context) {
	// tick pertama langsung, bukan menunggu interval
	p.tick()

	ticker := time.NewTicker(RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("🛑 poller berhenti")
			return
		case <-ticker.C:
			p.tick()
		}
	}
}

func (p *Poller) tick() {
	cfg, err := configService.Load(p.db)
	if err != nil {
		log.Printf("❌ [POLLER] gagal baca config: %v", err)
		return
	}

	snap, requests, err := loadSnapshot(p.db, cfg.ConfigActiveExamDate)
	if err != nil {
		log.Printf("❌ [POLLER] gagal refresh snapshot: %v", err)
		return
	}

	p.mu.Lock()
	p.snap = snap
	p.cfg = cfg
	p.loadedAt = time.Now()
	urgent := p.detector.Observe(requests)
	p.mu.Unlock()

	if urgent != nil {
		p.broadcastUrgent(urgent)
	}

	if cfg.ConfigAutoConfirmEnabled && hasPendingLogs(snap.DeliveryLogs) {
		actor := deliveryService.Actor{
			Name: "النظام",
			Role: constants.RoleControlManager,
		}
		written, err := deliveryService.AutoConfirmPending(p.db, actor, cfg.ConfigActiveExamDate)
		if err != nil {
			log.Printf("❌ [POLLER] auto-confirm gagal: %v", err)
		} else if written > 0 {
			log.Printf("✅ [POLLER] auto-confirm menulis %d konfirmasi", written)
		}
	}
}

// Current mengembalikan snapshot terakhir; kalau poller belum pernah sukses
// (mis. dipanggil sebelum tick pertama), load langsung dari store.
func (p *Poller) Current() (committeeService.Snapshot, configModel.SystemConfigModel, error) {
	p.mu.RLock()
	if !p.loadedAt.IsZero() {
		snap, cfg := p.snap, p.cfg
		p.mu.RUnlock()
		return snap, cfg, nil
	}
	p.mu.RUnlock()

	cfg, err := configService.Load(p.db)
	if err != nil {
		return committeeService.Snapshot{}, configModel.SystemConfigModel{}, err
	}
	snap, _, err := loadSnapshot(p.db, cfg.ConfigActiveExamDate)
	if err != nil {
		return committeeService.Snapshot{}, configModel.SystemConfigModel{}, err
	}
	return snap, cfg, nil
}

func (p *Poller) broadcastUrgent(req *requestModel.ControlRequestModel) {
	payload, _ := sonic.Marshal(map[string]any{
		"control_request_id": req.ControlRequestID.String(),
		"committee_number":   req.ControlRequestCommitteeNumber,
	})
	note := notificationModel.NotificationModel{
		NotificationSenderName: "النظام",
		NotificationTarget:     notificationModel.TargetAll,
		NotificationMessage:    "بلاغ جديد من اللجنة " + req.ControlRequestCommitteeNumber,
		NotificationPayload:    datatypes.JSON(payload),
	}
	if err := p.db.Create(&note).Error; err != nil {
		log.Printf("❌ [POLLER] gagal broadcast بلاغ: %v", err)
		return
	}
	log.Printf("🔔 [POLLER] بلاغ baru dari lajnah %s", req.ControlRequestCommitteeNumber)
}

/* =========================
   Snapshot loading
   ========================= */

func loadSnapshot(db *gorm.DB, date time.Time) (committeeService.Snapshot, []requestModel.ControlRequestModel, error) {
	day := helper.DateOnly(date)
	var snap committeeService.Snapshot

	if err := db.Find(&snap.Students).Error; err != nil {
		return snap, nil, err
	}
	if err := db.Find(&snap.Users).Error; err != nil {
		return snap, nil, err
	}
	if err := db.Where("supervision_date = ?", day).Find(&snap.Supervisions).Error; err != nil {
		return snap, nil, err
	}
	if err := db.Where("absence_date = ?", day).Find(&snap.Absences).Error; err != nil {
		return snap, nil, err
	}
	if err := db.Where("delivery_log_date = ?", day).Find(&snap.DeliveryLogs).Error; err != nil {
		return snap, nil, err
	}

	var requests []requestModel.ControlRequestModel
	if err := db.Where("control_request_date = ?", day).Find(&requests).Error; err != nil {
		return snap, nil, err
	}
	return snap, requests, nil
}

func hasPendingLogs(logs []deliveryModel.DeliveryLogModel) bool {
	for _, l := range logs {
		if l.DeliveryLogStatus == deliveryModel.StatusPending {
			return true
		}
	}
	return false
}

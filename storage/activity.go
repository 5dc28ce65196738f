package storage

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/qwerty0999999/payment-projek/models"
)

// MaxLogEntries membatasi panjang dokumen log aktivitas; saat terlampaui,
// entri tertua dibuang diam-diam.
const MaxLogEntries = 100

// ActivityLog mencatat aksi administratif sebagai catatan append-only
// berukuran terbatas di atas Store.
type ActivityLog struct {
	store *Store
}

// NewActivityLog membuat pencatat aktivitas di atas store yang diberikan.
func NewActivityLog(store *Store) *ActivityLog {
	return &ActivityLog{store: store}
}

// Record menambahkan satu entri log. Kegagalan menyimpan hanya dicatat ke
// logger proses dan tidak pernah menggagalkan mutasi utama pemanggil.
func (a *ActivityLog) Record(username, action, detail string) {
	var entries []models.LogEntry
	err := a.store.Update(DocLogs, &entries, func() (any, error) {
		entries = append(entries, models.LogEntry{
			Time:     time.Now(),
			Username: username,
			Action:   action,
			Detail:   detail,
		})
		if len(entries) > MaxLogEntries {
			entries = entries[len(entries)-MaxLogEntries:]
		}
		return entries, nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"username": username,
			"action":   action,
			"error":    err.Error(),
		}).Warn("Gagal menulis log aktivitas")
	}
}

// Entries mengembalikan seluruh isi log aktivitas, tertua lebih dulu.
func (a *ActivityLog) Entries() []models.LogEntry {
	var entries []models.LogEntry
	a.store.Load(DocLogs, &entries)
	return entries
}

package loclib

import (
	"encoding/json"
	"time"
)

// UsageStats counts lookups of a single provider. It is owned by
// Resolver and is not safe for concurrent use: Run resolves addresses
// one by one and the stats are read only after it returns.
type UsageStats struct {
	Name string

	lastUsed     time.Time
	successCount uint64
	failureCount uint64
}

func (u *UsageStats) Used(err error) {
	u.lastUsed = time.Now()

	if err == nil {
		u.successCount++
	} else {
		u.failureCount++
	}
}

func (u *UsageStats) SuccessCount() uint64 {
	return u.successCount
}

func (u *UsageStats) FailureCount() uint64 {
	return u.failureCount
}

func (u *UsageStats) MarshalJSON() ([]byte, error) {
	var lastUsedTime int64

	if !u.lastUsed.IsZero() {
		lastUsedTime = u.lastUsed.Unix()
	}

	rawStruct := struct {
		Name         string `json:"name"`
		LastUsed     int64  `json:"last_used"`
		SuccessCount uint64 `json:"success_count"`
		FailureCount uint64 `json:"failure_count"`
	}{
		Name:         u.Name,
		LastUsed:     lastUsedTime,
		SuccessCount: u.successCount,
		FailureCount: u.failureCount,
	}

	return json.Marshal(&rawStruct)
}

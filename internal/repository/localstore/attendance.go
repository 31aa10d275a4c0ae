package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/attendance"
	"github.com/atlasfield/fieldops-agent-go/internal/pkg/kvstore"
)

// recordsKey is the store key holding the whole attendance mapping as one
// JSON blob, matching the read-modify-write lifecycle of the tracker.
const recordsKey = "attendance_records"

type AttendanceStore struct {
	store kvstore.Store
}

func NewAttendanceStore(store kvstore.Store) *AttendanceStore {
	return &AttendanceStore{store: store}
}

// Load implements attendance.RecordStore.
func (s *AttendanceStore) Load(ctx context.Context) (attendance.Records, error) {
	raw, err := s.store.Get(ctx, recordsKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return make(attendance.Records), nil
		}
		return nil, fmt.Errorf("failed to load attendance records: %w", err)
	}

	var records attendance.Records
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance records: %w", err)
	}
	if records == nil {
		records = make(attendance.Records)
	}
	return records, nil
}

// Save implements attendance.RecordStore.
func (s *AttendanceStore) Save(ctx context.Context, records attendance.Records) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode attendance records: %w", err)
	}
	if err := s.store.Set(ctx, recordsKey, raw); err != nil {
		return fmt.Errorf("failed to save attendance records: %w", err)
	}
	return nil
}

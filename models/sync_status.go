package models

import "fmt"

// SyncStatus marks where a locally stored warranty record stands in the
// replication lifecycle. Every record carries exactly one status at all times.
type SyncStatus string

const (
	// StatusCreated marks a record that was created locally and has never
	// round-tripped to the server. Its ServerID is empty.
	StatusCreated SyncStatus = "created"

	// StatusUpdated marks a previously synced record with local edits that
	// have not been pushed yet.
	StatusUpdated SyncStatus = "updated"

	// StatusSynced marks a record whose local state matches the last
	// exchange with the server.
	StatusSynced SyncStatus = "synced"

	// StatusDeleted marks a tombstone: the record was deleted locally and is
	// retained until the deletion is confirmed on the server.
	StatusDeleted SyncStatus = "deleted"
)

// SyncOp is an event that may move a record from one SyncStatus to another.
type SyncOp string

const (
	// OpLocalEdit is a field mutation made by the user on this device.
	OpLocalEdit SyncOp = "local_edit"

	// OpLocalDelete is a delete requested by the user on this device.
	OpLocalDelete SyncOp = "local_delete"

	// OpPushAck is a confirmed server write of this record's local changes.
	OpPushAck SyncOp = "push_ack"

	// OpPullApply is a server-side version of the record being applied
	// locally during pull.
	OpPullApply SyncOp = "pull_apply"
)

// statusTransitions is the full transition table for the record lifecycle.
// Notably created+local_edit stays created: a record the server has never
// seen must be pushed as a create, not an update, no matter how many times
// it is edited before the first push.
var statusTransitions = map[SyncStatus]map[SyncOp]SyncStatus{
	StatusCreated: {
		OpLocalEdit:   StatusCreated,
		OpLocalDelete: StatusDeleted,
		OpPushAck:     StatusSynced,
		OpPullApply:   StatusSynced,
	},
	StatusUpdated: {
		OpLocalEdit:   StatusUpdated,
		OpLocalDelete: StatusDeleted,
		OpPushAck:     StatusSynced,
		OpPullApply:   StatusSynced,
	},
	StatusSynced: {
		OpLocalEdit:   StatusUpdated,
		OpLocalDelete: StatusDeleted,
		OpPushAck:     StatusSynced,
		OpPullApply:   StatusSynced,
	},
	StatusDeleted: {
		OpLocalEdit:   StatusDeleted,
		OpLocalDelete: StatusDeleted,
		OpPushAck:     StatusDeleted,
		OpPullApply:   StatusSynced,
	},
}

// NextStatus returns the status a record in current moves to when op is
// applied. Unknown statuses or operations return an error so a corrupted
// status column surfaces instead of silently resetting the lifecycle.
func NextStatus(current SyncStatus, op SyncOp) (SyncStatus, error) {
	ops, ok := statusTransitions[current]
	if !ok {
		return "", fmt.Errorf("unknown sync status %q", current)
	}

	next, ok := ops[op]
	if !ok {
		return "", fmt.Errorf("unknown sync operation %q", op)
	}

	return next, nil
}

// Valid reports whether s is one of the four defined statuses.
func (s SyncStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsDirty reports whether a record with this status still has local changes
// the server has not confirmed.
func (s SyncStatus) IsDirty() bool {
	return s != StatusSynced
}

// StatusQuery selects records by sync status, with support for inequality
// ("everything except deleted") which the UI listing path relies on.
type StatusQuery struct {
	Is  SyncStatus
	Not SyncStatus
}

// StatusIs matches records whose status equals s.
func StatusIs(s SyncStatus) StatusQuery {
	return StatusQuery{Is: s}
}

// StatusNot matches records whose status differs from s.
func StatusNot(s SyncStatus) StatusQuery {
	return StatusQuery{Not: s}
}

// Matches reports whether status satisfies the query.
func (q StatusQuery) Matches(status SyncStatus) bool {
	if q.Is != "" {
		return status == q.Is
	}
	if q.Not != "" {
		return status != q.Not
	}
	return true
}

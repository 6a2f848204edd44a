// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// AuditEventType is the closed set of events the audit log records.
type AuditEventType int

const (
	AuditEventVaultUnlock AuditEventType = iota
	AuditEventVaultLock
	AuditEventCategoryUnlock
	AuditEventEntryAccess
	AuditEventEntryCreate
	AuditEventEntryUpdate
	AuditEventEntryDelete
	AuditEventAuthUse
	AuditEventAnomalyDetected
	AuditEventAccessDenied
)

var auditEventNames = [...]string{
	AuditEventVaultUnlock:     "vault_unlock",
	AuditEventVaultLock:       "vault_lock",
	AuditEventCategoryUnlock:  "category_unlock",
	AuditEventEntryAccess:     "entry_access",
	AuditEventEntryCreate:     "entry_create",
	AuditEventEntryUpdate:     "entry_update",
	AuditEventEntryDelete:     "entry_delete",
	AuditEventAuthUse:         "auth_use",
	AuditEventAnomalyDetected: "anomaly_detected",
	AuditEventAccessDenied:    "access_denied",
}

// String returns the event type's wire/on-disk name.
func (t AuditEventType) String() string {
	if int(t) < 0 || int(t) >= len(auditEventNames) {
		return fmt.Sprintf("audit_event(%d)", int(t))
	}
	return auditEventNames[t]
}

// MarshalJSON implements [json.Marshaler].
func (t AuditEventType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements [json.Unmarshaler].
func (t *AuditEventType) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	for i, n := range auditEventNames {
		if n == name {
			*t = AuditEventType(i)
			return nil
		}
	}
	return fmt.Errorf("models: unknown audit event type %q", name)
}

// absentField is the canonical placeholder substituted for every absent
// optional field when computing an AuditEntry's canonical hash input, so
// an empty string and "genuinely absent" are never confused in the chain.
const absentField = "<none>"

// AuditEntry is one hash-chained record in the audit log.
type AuditEntry struct {
	ID           string         `json:"id"`
	Timestamp    time.Time      `json:"timestamp"`
	EventType    AuditEventType `json:"event_type"`
	EntryID      *string        `json:"entry_id,omitempty"`
	EntryName    *string        `json:"entry_name,omitempty"`
	Category     *Category      `json:"category,omitempty"`
	AgentID      *string        `json:"agent_id,omitempty"`
	OriginChain  *[]string      `json:"origin_chain,omitempty"`
	Purpose      *string        `json:"purpose,omitempty"`
	Granted      bool           `json:"granted"`
	DenialReason *string        `json:"denial_reason,omitempty"`
	TargetDomain *string        `json:"target_domain,omitempty"`
	PreviousHash string         `json:"previous_hash"`
	EntryHash    string         `json:"entry_hash"`
}

// CanonicalHashInput returns the pipe-delimited, fixed-order string an
// AuditEntry's hash is computed over:
//
//	id|timestamp|event_type|entry_id|entry_name|category|agent_id|
//	origin_chain|purpose|granted|denial_reason|target_domain|previous_hash
//
// timestamp is rendered as RFC3339Nano UTC. Every absent optional field is
// rendered as the literal "<none>".
func (e AuditEntry) CanonicalHashInput() string {
	fields := []string{
		e.ID,
		e.Timestamp.UTC().Format(time.RFC3339Nano),
		e.EventType.String(),
		optionalString(e.EntryID),
		optionalString(e.EntryName),
		optionalCategory(e.Category),
		optionalString(e.AgentID),
		optionalStringSlice(e.OriginChain),
		optionalString(e.Purpose),
		fmt.Sprintf("%t", e.Granted),
		optionalString(e.DenialReason),
		optionalString(e.TargetDomain),
		e.PreviousHash,
	}
	return strings.Join(fields, "|")
}

func optionalString(s *string) string {
	if s == nil {
		return absentField
	}
	return *s
}

func optionalCategory(c *Category) string {
	if c == nil {
		return absentField
	}
	return c.String()
}

// optionalStringSlice renders an ordered origin_chain as a comma-joined
// list, so the canonical hash input stays a single pipe-delimited field
// per spec.md's field order even though the origin chain itself is a list.
func optionalStringSlice(s *[]string) string {
	if s == nil {
		return absentField
	}
	return strings.Join(*s, ",")
}

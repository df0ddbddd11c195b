package claim

import (
	"time"

	"github.com/google/uuid"
)

type SubjectKind string

const (
	SubjectDispute SubjectKind = "dispute"
	SubjectRefund  SubjectKind = "refund"
)

// AuditEntry records one state transition. Entries are append-only and
// immutable once written; writing one must never abort the transition it
// records.
type AuditEntry struct {
	id          uuid.UUID
	subjectKind SubjectKind
	subjectID   uuid.UUID
	actorID     uuid.UUID
	fromStatus  string
	toStatus    string
	occurredAt  time.Time
}

func NewAuditEntry(kind SubjectKind, subjectID, actorID uuid.UUID, from, to string, at time.Time) *AuditEntry {
	return &AuditEntry{
		id:          uuid.New(),
		subjectKind: kind,
		subjectID:   subjectID,
		actorID:     actorID,
		fromStatus:  from,
		toStatus:    to,
		occurredAt:  at,
	}
}

func (a *AuditEntry) ID() uuid.UUID            { return a.id }
func (a *AuditEntry) SubjectKind() SubjectKind { return a.subjectKind }
func (a *AuditEntry) SubjectID() uuid.UUID     { return a.subjectID }
func (a *AuditEntry) ActorID() uuid.UUID       { return a.actorID }
func (a *AuditEntry) FromStatus() string       { return a.fromStatus }
func (a *AuditEntry) ToStatus() string         { return a.toStatus }
func (a *AuditEntry) OccurredAt() time.Time    { return a.occurredAt }

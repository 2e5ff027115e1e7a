package postgres

import (
	"fmt"

	"github.com/roamio/travelagency/model"
)

// AppendAudit appends one immutable audit record. Records are never
// updated or deleted.
func (r *PostgresRepository) AppendAudit(req model.AppendAuditRequest) error {
	record := &model.AuditRecord{
		ActorID:  req.ActorID,
		Action:   req.Action,
		TargetID: req.TargetID,
		Detail:   req.Detail,
	}

	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to append audit record: %w", err)
	}

	return nil
}

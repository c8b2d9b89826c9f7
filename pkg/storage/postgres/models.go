package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"auditor/pkg/domain"

	"github.com/google/uuid"
)

type PgAudit struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	URL    string          `db:"url"`
	Status string          `db:"status"`
	Result json.RawMessage `db:"result" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgAudit) ToDomain() (*domain.Audit, error) {
	// the result column defaults to '{}'::jsonb; only completed rows carry a
	// real payload, so the default must not surface as a zero-value result
	var result *domain.AnalysisResult
	if domain.AuditStatus(p.Status) == domain.AuditStatusCompleted &&
		len(p.Result) > 0 && string(p.Result) != "null" {
		result = &domain.AnalysisResult{}
		if err := json.Unmarshal(p.Result, result); err != nil {
			return nil, fmt.Errorf("could not unmarshal analysis result: %w", err)
		}
	}

	return &domain.Audit{
		ID:        domain.AuditID(p.ID),
		UserID:    domain.UserID(p.UserID),
		URL:       p.URL,
		Status:    domain.AuditStatus(p.Status),
		Result:    result,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgAudit) FromDomain(audit domain.Audit) error {
	var result json.RawMessage
	if audit.Result != nil {
		b, err := json.Marshal(audit.Result)
		if err != nil {
			return fmt.Errorf("could not marshal analysis result: %w", err)
		}

		result = b
	}

	*p = PgAudit{
		ID:       uuid.UUID(audit.ID),
		UserID:   uuid.UUID(audit.UserID),
		URL:      audit.URL,
		Status:   string(audit.Status),
		Result:   result,
		Attempts: audit.Attempts,
		LastError: sql.NullString{
			String: audit.LastError,
			Valid:  audit.LastError != "",
		},
		CreatedAt: audit.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  audit.UpdatedAt,
			Valid: !audit.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  audit.DeletedAt,
			Valid: !audit.DeletedAt.IsZero(),
		},
	}

	return nil
}

func domainAuditsToPg(audits []domain.Audit) ([]PgAudit, error) {
	out := make([]PgAudit, len(audits))
	for i := range out {
		if err := out[i].FromDomain(audits[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgAuditsToDomain(audits []PgAudit) ([]domain.Audit, error) {
	out := make([]domain.Audit, 0, len(audits))
	for _, audit := range audits {
		d, err := audit.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgUser struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Email        string         `db:"email"`
	FullName     sql.NullString `db:"full_name"`
	PasswordHash string         `db:"password_hash"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		FullName:     p.FullName.String,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:    uuid.UUID(user.ID),
		Email: user.Email,
		FullName: sql.NullString{
			String: user.FullName,
			Valid:  user.FullName != "",
		},
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"

	"fleetledger/internal/core/company"
	appcontext "fleetledger/internal/core/context"
	"fleetledger/internal/core/id"
)

// CompressionAlgo names the compression applied to an audit payload.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// AuditEntry is a single audit log row.
type AuditEntry struct {
	ID                id.ID           `db:"id"`
	CompanyID         id.ID           `db:"company_id"`
	EntityType        string          `db:"entity_type"`
	EntityID          id.ID           `db:"entity_id"`
	Action            string          `db:"action"`
	UserID            string          `db:"user_id"`
	Changes           json.RawMessage `db:"changes"`
	ChangesCompressed []byte          `db:"changes_compressed"`
	CompressionAlgo   CompressionAlgo `db:"compression_algo"`
	CreatedAt         time.Time       `db:"created_at"`
}

// AuditService records entity changes per company. Large change
// payloads are zstd-compressed before insert.
type AuditService struct {
	txManager         *TxManager
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int
}

// NewAuditService creates a new audit service.
func NewAuditService(txManager *TxManager) (*AuditService, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &AuditService{
		txManager:         txManager,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 10 * 1024,
	}, nil
}

// Log records an audit entry. Company and user identifiers are filled
// from context when not set by the caller.
func (s *AuditService) Log(ctx context.Context, entry AuditEntry) error {
	if id.IsNil(entry.CompanyID) {
		entry.CompanyID = company.IDFromContext(ctx)
	}
	if entry.UserID == "" {
		entry.UserID = appcontext.GetUserID(ctx)
	}
	if id.IsNil(entry.ID) {
		entry.ID = id.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	entry.CompressionAlgo = CompressionNone
	if len(entry.Changes) > s.compressThreshold {
		entry.ChangesCompressed = s.encoder.EncodeAll(entry.Changes, nil)
		entry.Changes = nil
		entry.CompressionAlgo = CompressionZstd
	}

	sql := `
		INSERT INTO sys_audit (
			id, company_id, entity_type, entity_id, action, user_id,
			changes, changes_compressed, compression_algo, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	querier := s.txManager.GetQuerier(ctx)
	_, err := querier.Exec(ctx, sql,
		entry.ID, entry.CompanyID, entry.EntityType, entry.EntityID,
		entry.Action, entry.UserID,
		entry.Changes, entry.ChangesCompressed, entry.CompressionAlgo,
		entry.CreatedAt,
	)

	return err
}

// LogChange implements domain.AuditLogger.
func (s *AuditService) LogChange(
	ctx context.Context,
	entityType string,
	entityID id.ID,
	action string,
	changes map[string]any,
) error {
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}

	return s.Log(ctx, AuditEntry{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Changes:    changesJSON,
	})
}

// GetEntityHistory retrieves recent audit entries for one entity,
// transparently decompressing stored payloads.
func (s *AuditService) GetEntityHistory(
	ctx context.Context,
	companyID id.ID,
	entityType string,
	entityID id.ID,
	limit int,
) ([]AuditEntry, error) {
	sql := `
		SELECT id, company_id, entity_type, entity_id, action, user_id,
			   changes, changes_compressed, compression_algo, created_at
		FROM sys_audit
		WHERE company_id = $1 AND entity_type = $2 AND entity_id = $3
		ORDER BY created_at DESC
		LIMIT $4
	`

	rows, err := s.txManager.GetQuerier(ctx).Query(ctx, sql, companyID, entityType, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		err := rows.Scan(
			&e.ID, &e.CompanyID, &e.EntityType, &e.EntityID, &e.Action, &e.UserID,
			&e.Changes, &e.ChangesCompressed, &e.CompressionAlgo, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		if e.CompressionAlgo == CompressionZstd && len(e.ChangesCompressed) > 0 {
			decompressed, err := s.decoder.DecodeAll(e.ChangesCompressed, nil)
			if err != nil {
				return nil, fmt.Errorf("decompress changes: %w", err)
			}
			e.Changes = decompressed
			e.ChangesCompressed = nil
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

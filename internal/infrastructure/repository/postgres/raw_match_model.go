package postgres

import "time"

type rawDocumentTableModel struct {
	MatchID    string    `db:"match_id"`
	Payload    []byte    `db:"payload"`
	IngestedAt time.Time `db:"ingested_at"`
}

// Payload is bound as text: pq sends []byte as bytea, which jsonb rejects.
type rawDocumentInsertModel struct {
	MatchID string `db:"match_id"`
	Payload string `db:"payload"`
}

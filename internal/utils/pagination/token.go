package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const (
	timeFormat = time.RFC3339Nano
	dateFormat = "2006-01-02"
	separator  = "|"
)

// DefaultLimit and MaxLimit bound the page size of list endpoints.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// JournalCursor marks the last journal entry of a page. Entries are ordered by
// entry date, then creation time, then ID, all descending.
type JournalCursor struct {
	EntryDate time.Time
	CreatedAt time.Time
	EntryID   string
}

// EncodeJournalCursor creates an opaque token from a cursor.
func EncodeJournalCursor(c JournalCursor) string {
	tokenStr := strings.Join([]string{
		c.EntryDate.Format(dateFormat),
		c.CreatedAt.UTC().Format(timeFormat),
		c.EntryID,
	}, separator)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeJournalCursor parses a token produced by EncodeJournalCursor.
func DecodeJournalCursor(token string) (JournalCursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return JournalCursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.Split(string(decodedBytes), separator)
	if len(parts) != 3 || parts[2] == "" {
		return JournalCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	entryDate, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		return JournalCursor{}, fmt.Errorf("invalid pagination token format (entry date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return JournalCursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return JournalCursor{EntryDate: entryDate, CreatedAt: createdAt, EntryID: parts[2]}, nil
}

// ClampLimit applies the default and maximum page size.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/freight_management_app/internal/apperrors"
	"github.com/SscSPs/freight_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/freight_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/freight_management_app/internal/models"
	"github.com/SscSPs/freight_management_app/internal/utils/accounting"
	"github.com/SscSPs/freight_management_app/internal/utils/mapping"
	"github.com/SscSPs/freight_management_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const journalEntryColumns = `id, entry_number, entry_date, description, total_debit, total_credit, is_approved, approved_by, approved_at, created_by, created_at`

// entryNumberFormat renders the value of journal_entry_number_seq.
const entryNumberFormat = "JE-%06d"

type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTransactionSupport
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTransactionSupport) *PgxJournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveJournalEntry numbers and inserts an entry with its details and applies the balance
// changes to the locked accounts, all in one database transaction.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.NewJournalEntry, balanceChanges map[string]decimal.Decimal) (*domain.CreatedJournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored once the transaction is committed
	defer r.Rollback(ctx, tx)

	var seq int64
	if err := tx.QueryRow(ctx, `SELECT nextval('journal_entry_number_seq');`).Scan(&seq); err != nil {
		return nil, apperrors.NewAppError(500, "failed to allocate entry number", err)
	}

	now := time.Now().UTC()
	totalDebit, totalCredit := accounting.LineTotals(entry.Lines)
	created := &domain.CreatedJournalEntry{
		EntryID:     uuid.NewString(),
		EntryNumber: fmt.Sprintf(entryNumberFormat, seq),
	}

	entryQuery := `
		INSERT INTO journal_entries (` + journalEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NULL, NULL, $7, $8);
	`
	var createdBy *string
	if entry.CreatedBy != "" {
		createdBy = &entry.CreatedBy
	}
	_, err = tx.Exec(ctx, entryQuery,
		created.EntryID,
		created.EntryNumber,
		entry.EntryDate,
		entry.Description,
		totalDebit,
		totalCredit,
		createdBy,
		now,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert journal entry "+created.EntryNumber, err)
	}

	accountIDs := make([]string, 0, len(balanceChanges))
	for id := range balanceChanges {
		accountIDs = append(accountIDs, id)
	}
	sort.Strings(accountIDs)
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return nil, fmt.Errorf("failed to lock accounts for update: %w", err)
	}

	detailQuery := `
		INSERT INTO journal_entry_details (id, journal_entry_id, account_id, line_number, debit_amount, credit_amount, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for i, line := range entry.Lines {
		m := mapping.ToModelJournalEntryDetail(uuid.NewString(), created.EntryID, i+1, line)
		batch.Queue(detailQuery,
			m.DetailID,
			m.EntryID,
			m.AccountID,
			m.LineNumber,
			m.DebitAmount,
			m.CreditAmount,
			m.Description,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, mapWriteError(err, "journal entry details of "+created.EntryNumber)
	}

	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, now); err != nil {
		return nil, fmt.Errorf("failed to update account balances: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return created, nil
}

func scanJournalEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Description,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.IsApproved,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.CreatedBy,
		&m.CreatedAt,
	)
	return m, err
}

// FindJournalEntryByID retrieves an entry with its details.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE id = $1;`

	m, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}

	details, err := r.findDetailsByEntryIDs(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}

	entry := mapping.ToDomainJournalEntry(m, details[entryID])
	return &entry, nil
}

// ListJournalEntries retrieves a page of entries ordered by entry date, creation time
// and ID, all descending. One extra row is fetched to decide whether a next page exists.
func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}
	fetchLimit := limit + 1

	var rows pgx.Rows
	var err error
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeJournalCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, decodeErr)
		}
		query := `
			SELECT ` + journalEntryColumns + `
			FROM journal_entries
			WHERE (entry_date, created_at, id) < ($1, $2, $3)
			ORDER BY entry_date DESC, created_at DESC, id DESC
			LIMIT $4;
		`
		rows, err = r.Pool.Query(ctx, query, cursor.EntryDate, cursor.CreatedAt, cursor.EntryID, fetchLimit)
	} else {
		query := `
			SELECT ` + journalEntryColumns + `
			FROM journal_entries
			ORDER BY entry_date DESC, created_at DESC, id DESC
			LIMIT $1;
		`
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanJournalEntry(rows)
		if scanErr != nil {
			return nil, nil, fmt.Errorf("failed to scan journal entry row: %w", scanErr)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	var nextTokenVal *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeJournalCursor(pagination.JournalCursor{
			EntryDate: last.EntryDate,
			CreatedAt: last.CreatedAt,
			EntryID:   last.EntryID,
		})
		nextTokenVal = &token
		entries = entries[:limit]
	}

	entryIDs := make([]string, len(entries))
	for i, m := range entries {
		entryIDs[i] = m.EntryID
	}
	details, err := r.findDetailsByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, nil, err
	}

	result := make([]domain.JournalEntry, len(entries))
	for i, m := range entries {
		result[i] = mapping.ToDomainJournalEntry(m, details[m.EntryID])
	}
	return result, nextTokenVal, nil
}

// findDetailsByEntryIDs loads the details of the given entries, annotated with account
// code and name, grouped by entry ID in line order.
func (r *PgxJournalRepository) findDetailsByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]models.JournalEntryDetail, error) {
	grouped := make(map[string][]models.JournalEntryDetail, len(entryIDs))
	if len(entryIDs) == 0 {
		return grouped, nil
	}

	query := `
		SELECT d.id, d.journal_entry_id, d.account_id, d.line_number, d.debit_amount, d.credit_amount, d.description,
		       a.account_code, a.account_name
		FROM journal_entry_details d
		JOIN chart_of_accounts a ON a.id = d.account_id
		WHERE d.journal_entry_id = ANY($1)
		ORDER BY d.journal_entry_id, d.line_number;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entry details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.JournalEntryDetail
		if err := rows.Scan(
			&m.DetailID,
			&m.EntryID,
			&m.AccountID,
			&m.LineNumber,
			&m.DebitAmount,
			&m.CreditAmount,
			&m.Description,
			&m.AccountCode,
			&m.AccountName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry detail row: %w", err)
		}
		grouped[m.EntryID] = append(grouped[m.EntryID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry detail rows: %w", err)
	}
	return grouped, nil
}

package handshakes

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/snipvault/snipvault/internal/common"
	"github.com/snipvault/snipvault/internal/keys"
	"github.com/snipvault/snipvault/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var getQuery = regexp.MustCompile(`SELECT id, algorithm, client_public_key, server_public_key, server_private_key,\s+payload, payload_iv, state, created_at, expires_at\s+FROM handshakes\s+WHERE id = \$1`)

func handshakeRow(hs *models.Handshake) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "algorithm", "client_public_key", "server_public_key", "server_private_key",
		"payload", "payload_iv", "state", "created_at", "expires_at",
	}).AddRow(
		hs.ID, string(hs.Algorithm), hs.ClientPublicKey, hs.ServerPublicKey, hs.ServerPrivateKey,
		hs.Payload, hs.PayloadIV, string(hs.State), hs.CreatedAt, hs.ExpiresAt,
	)
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`INSERT INTO handshakes \(id, algorithm, client_public_key, server_public_key, server_private_key, state, created_at, expires_at\)\s+VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8\)`)

	now := time.Now()
	mock.ExpectExec(q.String()).
		WithArgs("hs-1", string(keys.AlgorithmX25519), []byte("ck"), []byte("sk"), []byte("priv"),
			string(models.HandshakeKeyExchanged), now, now.Add(5*time.Minute)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.Handshake{
		ID:               "hs-1",
		Algorithm:        keys.AlgorithmX25519,
		ClientPublicKey:  []byte("ck"),
		ServerPublicKey:  []byte("sk"),
		ServerPrivateKey: []byte("priv"),
		State:            models.HandshakeKeyExchanged,
		CreatedAt:        now,
		ExpiresAt:        now.Add(5 * time.Minute),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getQuery.String()).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestConsume_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`UPDATE handshakes\s+SET state = \$2\s+WHERE id = \$1 AND state = \$3 AND expires_at > \$4\s+RETURNING payload, payload_iv`)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"payload", "payload_iv"}).AddRow([]byte("sealed"), []byte("iv12"))

	mock.ExpectQuery(q.String()).
		WithArgs("hs-1", string(models.HandshakeConsumed), string(models.HandshakePayloadDelivered), now).
		WillReturnRows(rows)

	payload, iv, err := repo.Consume(context.Background(), "hs-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(payload, []byte("sealed")) || !bytes.Equal(iv, []byte("iv12")) {
		t.Fatalf("unexpected payload: %q %q", payload, iv)
	}
}

func TestConsume_NoRowClassifiedAsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`UPDATE handshakes\s+SET state = \$2\s+WHERE id = \$1 AND state = \$3 AND expires_at > \$4\s+RETURNING payload, payload_iv`)

	now := time.Now()
	mock.ExpectQuery(q.String()).
		WithArgs("ghost", string(models.HandshakeConsumed), string(models.HandshakePayloadDelivered), now).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(getQuery.String()).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, _, err := repo.Consume(context.Background(), "ghost", now)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestConsume_NoRowClassifiedAsAlreadyConsumed(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`UPDATE handshakes\s+SET state = \$2\s+WHERE id = \$1 AND state = \$3 AND expires_at > \$4\s+RETURNING payload, payload_iv`)

	now := time.Now()
	mock.ExpectQuery(q.String()).
		WithArgs("hs-1", string(models.HandshakeConsumed), string(models.HandshakePayloadDelivered), now).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(getQuery.String()).WithArgs("hs-1").WillReturnRows(handshakeRow(&models.Handshake{
		ID:        "hs-1",
		Algorithm: keys.AlgorithmX25519,
		State:     models.HandshakeConsumed,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Minute),
	}))

	_, _, err := repo.Consume(context.Background(), "hs-1", now)
	if !errors.Is(err, common.ErrorAlreadyConsumed) {
		t.Fatalf("want ErrorAlreadyConsumed, got %v", err)
	}
}

func TestConsume_ExpiryShadowsState(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`UPDATE handshakes\s+SET state = \$2\s+WHERE id = \$1 AND state = \$3 AND expires_at > \$4\s+RETURNING payload, payload_iv`)

	now := time.Now()
	mock.ExpectQuery(q.String()).
		WithArgs("hs-1", string(models.HandshakeConsumed), string(models.HandshakePayloadDelivered), now).
		WillReturnError(sql.ErrNoRows)

	// Record is both consumed and expired; expiry wins.
	mock.ExpectQuery(getQuery.String()).WithArgs("hs-1").WillReturnRows(handshakeRow(&models.Handshake{
		ID:        "hs-1",
		Algorithm: keys.AlgorithmX25519,
		State:     models.HandshakeConsumed,
		CreatedAt: now.Add(-10 * time.Minute),
		ExpiresAt: now.Add(-5 * time.Minute),
	}))

	_, _, err := repo.Consume(context.Background(), "hs-1", now)
	if !errors.Is(err, common.ErrorExpired) {
		t.Fatalf("want ErrorExpired, got %v", err)
	}
}

func TestAttachPayload_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`UPDATE handshakes\s+SET payload = \$2, payload_iv = \$3, state = \$4\s+WHERE id = \$1 AND state IN \(\$5, \$6\) AND expires_at > \$7`)

	now := time.Now()
	mock.ExpectExec(q.String()).
		WithArgs("hs-1", []byte("p"), []byte("iv"),
			string(models.HandshakePayloadDelivered), string(models.HandshakeInitiated), string(models.HandshakeKeyExchanged), now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AttachPayload(context.Background(), "hs-1", []byte("p"), []byte("iv"), now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAttachPayload_ZeroRowsOnDeliveredState(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`UPDATE handshakes\s+SET payload = \$2, payload_iv = \$3, state = \$4\s+WHERE id = \$1 AND state IN \(\$5, \$6\) AND expires_at > \$7`)

	now := time.Now()
	mock.ExpectExec(q.String()).
		WithArgs("hs-1", []byte("p"), []byte("iv"),
			string(models.HandshakePayloadDelivered), string(models.HandshakeInitiated), string(models.HandshakeKeyExchanged), now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(getQuery.String()).WithArgs("hs-1").WillReturnRows(handshakeRow(&models.Handshake{
		ID:        "hs-1",
		Algorithm: keys.AlgorithmX25519,
		Payload:   []byte("old"),
		PayloadIV: []byte("oiv"),
		State:     models.HandshakePayloadDelivered,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Minute),
	}))

	err := repo.AttachPayload(context.Background(), "hs-1", []byte("p"), []byte("iv"), now)
	if !errors.Is(err, common.ErrorInvalidState) {
		t.Fatalf("want ErrorInvalidState, got %v", err)
	}
}

func TestDeleteExpired_ReturnsCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`DELETE FROM handshakes\s+WHERE expires_at <= \$1`)

	now := time.Now()
	mock.ExpectExec(q.String()).WithArgs(now).WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.DeleteExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Fatalf("want 4 deleted, got %d", n)
	}
}

func TestDeleteExpired_DBExecError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`DELETE FROM handshakes\s+WHERE expires_at <= \$1`)

	now := time.Now()
	mock.ExpectExec(q.String()).WithArgs(now).WillReturnError(errors.New("db is down"))

	_, err := repo.DeleteExpired(context.Background(), now)
	if err == nil || !regexp.MustCompile(`db error: .*db is down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

package devicekeys

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestUpsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`INSERT INTO device_keys .* ON CONFLICT \(user_id, device_id\)\s+DO UPDATE SET .* updated_at = now\(\);`)

	mock.ExpectExec(q.String()).
		WithArgs("u1", "d1", string(keys.AlgorithmECDHP256), []byte("enc"), []byte("sig"), true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &models.DeviceKey{
		UserID:           "u1",
		DeviceID:         "d1",
		Algorithm:        keys.AlgorithmECDHP256,
		EncryptionPubKey: []byte("enc"),
		SigningPubKey:    []byte("sig"),
		IsDefault:        true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsert_DBExecError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`INSERT INTO device_keys .* ON CONFLICT`)

	mock.ExpectExec(q.String()).
		WithArgs("u1", "d1", string(keys.AlgorithmX25519), []byte("enc"), []byte(nil), false).
		WillReturnError(errors.New("db is down"))

	err := repo.Upsert(context.Background(), &models.DeviceKey{
		UserID:           "u1",
		DeviceID:         "d1",
		Algorithm:        keys.AlgorithmX25519,
		EncryptionPubKey: []byte("enc"),
	})
	if err == nil || !regexp.MustCompile(`db error: .*db is down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListForUser_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`SELECT user_id, device_id, algorithm, enc_public_key, sign_public_key, is_default, created_at, updated_at\s+FROM device_keys\s+WHERE user_id = \$1\s+ORDER BY device_id`)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"user_id", "device_id", "algorithm", "enc_public_key", "sign_public_key", "is_default", "created_at", "updated_at",
	}).AddRow(
		"u1", "d1", string(keys.AlgorithmECDHP256), []byte("e1"), []byte("s1"), true, now, now,
	).AddRow(
		"u1", "d2", string(keys.AlgorithmX25519), []byte("e2"), []byte(nil), false, now, now,
	)

	mock.ExpectQuery(q.String()).WithArgs("u1").WillReturnRows(rows)

	got, err := repo.ListForUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 rows, got %d", len(got))
	}
	if got[0].DeviceID != "d1" || !got[0].IsDefault {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[1].Algorithm != keys.AlgorithmX25519 || got[1].IsDefault {
		t.Fatalf("unexpected second row: %+v", got[1])
	}
}

func TestListForUser_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`SELECT user_id, device_id, .* FROM device_keys\s+WHERE user_id = \$1`)

	mock.ExpectQuery(q.String()).WithArgs("u1").WillReturnError(errors.New("db err"))

	_, err := repo.ListForUser(context.Background(), "u1")
	if err == nil || !regexp.MustCompile(`failed to select device keys: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped select error, got %v", err)
	}
}

func TestListForUser_ScanRowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`SELECT user_id, device_id, .* FROM device_keys\s+WHERE user_id = \$1`)

	rows := sqlmock.NewRows([]string{
		"user_id", "device_id", "algorithm", "enc_public_key", "sign_public_key", "is_default", "created_at", "updated_at",
	}).AddRow(
		"u1", "d1", string(keys.AlgorithmECDHP256), []byte("e1"), []byte(nil), "not-bool", time.Now(), time.Now(),
	)

	mock.ExpectQuery(q.String()).WithArgs("u1").WillReturnRows(rows)

	_, err := repo.ListForUser(context.Background(), "u1")
	if err == nil {
		t.Fatalf("expected scan error, got nil")
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`DELETE FROM device_keys\s+WHERE user_id = \$1 AND device_id = \$2`)

	mock.ExpectExec(q.String()).
		WithArgs("u1", "d1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "u1", "d1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDelete_AbsentRowIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`DELETE FROM device_keys\s+WHERE user_id = \$1 AND device_id = \$2`)

	mock.ExpectExec(q.String()).
		WithArgs("u1", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "u1", "ghost"); err != nil {
		t.Fatalf("delete of absent row must not error, got %v", err)
	}
}

func TestClearForUser_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`DELETE FROM device_keys\s+WHERE user_id = \$1`)

	mock.ExpectExec(q.String()).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.ClearForUser(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

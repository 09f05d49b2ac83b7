package teams

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestListMembers_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`SELECT team_id, user_id, role, created_at\s+FROM team_members\s+WHERE team_id = \$1\s+ORDER BY user_id`)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"team_id", "user_id", "role", "created_at"}).
		AddRow("t1", "u1", "admin", now).
		AddRow("t1", "u2", "member", now)

	mock.ExpectQuery(q.String()).WithArgs("t1").WillReturnRows(rows)

	got, err := repo.ListMembers(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 rows, got %d", len(got))
	}
	if got[0].UserID != "u1" || got[0].Role != "admin" {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
}

func TestListMembers_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`SELECT team_id, user_id, role, created_at\s+FROM team_members`)

	mock.ExpectQuery(q.String()).WithArgs("t1").WillReturnError(errors.New("db err"))

	_, err := repo.ListMembers(context.Background(), "t1")
	if err == nil || !regexp.MustCompile(`failed to select team members: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped select error, got %v", err)
	}
}

func TestIsMember_TrueAndFalse(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`SELECT EXISTS \(\s+SELECT 1 FROM team_members WHERE team_id = \$1 AND user_id = \$2\s+\)`)

	mock.ExpectQuery(q.String()).WithArgs("t1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.IsMember(context.Background(), "t1", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("want member")
	}

	mock.ExpectQuery(q.String()).WithArgs("t1", "outsider").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err = repo.IsMember(context.Background(), "t1", "outsider")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("want non-member")
	}
}

func TestIsMember_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`SELECT EXISTS`)

	mock.ExpectQuery(q.String()).WithArgs("t1", "u1").WillReturnError(errors.New("db err"))

	_, err := repo.IsMember(context.Background(), "t1", "u1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestAddMember_UpsertsRole(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`INSERT INTO team_members \(team_id, user_id, role\)\s+VALUES \(\$1, \$2, \$3\)\s+ON CONFLICT \(team_id, user_id\)\s+DO UPDATE SET role = EXCLUDED\.role`)

	mock.ExpectExec(q.String()).
		WithArgs("t1", "u1", "admin").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddMember(context.Background(), &models.TeamMember{TeamID: "t1", UserID: "u1", Role: "admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRemoveMember_AbsentRowIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`DELETE FROM team_members\s+WHERE team_id = \$1 AND user_id = \$2`)

	mock.ExpectExec(q.String()).
		WithArgs("t1", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.RemoveMember(context.Background(), "t1", "ghost"); err != nil {
		t.Fatalf("remove of absent member must not error, got %v", err)
	}
}

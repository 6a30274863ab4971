package user

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func userColumns() []string {
	return []string{"id", "name", "email", "phone", "dateOfBirth", "profilePicture", "createdAt", "updatedAt"}
}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(2, "Bo", "bo@x.com", nil, nil, nil, "2024-02-01T10:00:00Z", "2024-02-01T10:00:00Z").
		AddRow(1, "Ann", "ann@x.com", "123", "1990-01-01", "https://img.example/a.png", "2024-01-01T10:00:00Z", "2024-01-01T10:00:00Z")
	mock.ExpectQuery("FROM users").WillReturnRows(rows)

	edges := sqlmock.NewRows([]string{"followerId", "followingId"}).AddRow(1, 2)
	mock.ExpectQuery("FROM follows").WillReturnRows(edges)

	users, err := repo.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Name != "Bo" {
		t.Fatalf("expected newest first, got %q", users[0].Name)
	}
	if len(users[0].Followers) != 1 || users[0].Followers[0].Name != "Ann" {
		t.Fatalf("Bo's followers not annotated: %+v", users[0].Followers)
	}
	if len(users[1].Following) != 1 || users[1].Following[0].Name != "Bo" {
		t.Fatalf("Ann's following not annotated: %+v", users[1].Following)
	}
	if users[1].DateOfBirth == nil || *users[1].DateOfBirth != "1990-01-01" {
		t.Fatalf("dateOfBirth not scanned: %+v", users[1].DateOfBirth)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(2, "Bo", "bo@x.com", nil, nil, nil, "2024-02-01T10:00:00Z", "2024-02-01T10:00:00Z")
	mock.ExpectQuery("FROM users").WithArgs(2).WillReturnRows(rows)

	mock.ExpectQuery(`array_agg\("followerId"`).WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"ids"}).AddRow("{1}"))
	mock.ExpectQuery("array_position").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Ann"))
	mock.ExpectQuery(`array_agg\("followingId"`).WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"ids"}).AddRow("{}"))

	user, err := repo.GetByID(2)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if user.Name != "Bo" {
		t.Fatalf("unexpected user %+v", user)
	}
	if len(user.Followers) != 1 || user.Followers[0].ID != 1 || user.Followers[0].Name != "Ann" {
		t.Fatalf("followers not hydrated: %+v", user.Followers)
	}
	if len(user.Following) != 0 {
		t.Fatalf("expected empty following, got %+v", user.Following)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM users").WithArgs(99).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	if _, err := repo.GetByID(99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	dob := "1990-01-01"
	created, err := repo.Create(User{
		Name:        "Ann",
		Email:       "ann@x.com",
		DateOfBirth: &dob,
		CreatedAt:   "2024-01-01T10:00:00Z",
		UpdatedAt:   "2024-01-01T10:00:00Z",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected returned id 7, got %d", created.ID)
	}
	if created.Followers == nil || created.Following == nil {
		t.Fatalf("new user should carry empty annotation sets: %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := repo.Update(99, User{Name: "X", Email: "x@x.com"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM users").WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete(1); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	mock.ExpectExec("DELETE FROM users").WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(1); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

type stubBackend struct {
	handleErr error
	closeErr  error
	closed    bool
}

func (s *stubBackend) Handle(ctx context.Context, table string) (Handle, error) {
	if s.handleErr != nil {
		return nil, s.handleErr
	}
	return &mongoHandle{collection: table}, nil
}

func (s *stubBackend) Close(ctx context.Context) error {
	s.closed = true
	return s.closeErr
}

func TestRegistry_Handle(t *testing.T) {
	reg := NewRegistry()
	reg.Register("default", &stubBackend{})
	reg.Register("broken", &stubBackend{handleErr: errors.New("boom")})

	t.Run("Registered", func(t *testing.T) {
		h, err := reg.Handle(context.Background(), "users", "default")
		require.NoError(t, err)
		assert.NotNil(t, h)
	})

	t.Run("UnknownConnection", func(t *testing.T) {
		_, err := reg.Handle(context.Background(), "users", "analytics")
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Contains(t, err.Error(), "analytics")
	})

	t.Run("BackendFailure", func(t *testing.T) {
		_, err := reg.Handle(context.Background(), "users", "broken")
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Contains(t, err.Error(), "boom")
	})

	assert.Equal(t, []string{"broken", "default"}, reg.Connections())
}

func TestRegistry_Close(t *testing.T) {
	ok := &stubBackend{}
	bad := &stubBackend{closeErr: errors.New("already closed")}

	reg := NewRegistry()
	reg.Register("a", ok)
	reg.Register("b", bad)

	err := reg.Close(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "close b")
	assert.True(t, ok.closed)
	assert.True(t, bad.closed)
}

func TestGormHandle_InsertOne(t *testing.T) {
	db, mock := setupMockDB(t)
	backend := NewGormBackend(db)

	h, err := backend.Handle(context.Background(), "users")
	require.NoError(t, err)

	t.Run("LastInsertId", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users` (`age`,`name`) VALUES (?,?)")).
			WithArgs(int64(36), "ada").
			WillReturnResult(sqlmock.NewResult(7, 1))

		id, err := h.InsertOne(context.Background(), map[string]any{"name": "ada", "age": int64(36)})
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("ExplicitID", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users` (`id`,`name`) VALUES (?,?)")).
			WithArgs("u-1", "grace").
			WillReturnResult(sqlmock.NewResult(0, 1))

		id, err := h.InsertOne(context.Background(), map[string]any{"id": "u-1", "name": "grace"})
		require.NoError(t, err)
		assert.Equal(t, "u-1", id)
	})

	t.Run("NestedValuesAsJSON", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users` (`name`,`tags`) VALUES (?,?)")).
			WithArgs("linus", `["a","b"]`).
			WillReturnResult(sqlmock.NewResult(8, 1))

		id, err := h.InsertOne(context.Background(), map[string]any{"name": "linus", "tags": []any{"a", "b"}})
		require.NoError(t, err)
		assert.Equal(t, int64(8), id)
	})

	t.Run("ExecError", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users`")).
			WillReturnError(errors.New("duplicate entry"))

		_, err := h.InsertOne(context.Background(), map[string]any{"name": "dup"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate entry")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBackend_EmptyTable(t *testing.T) {
	db, _ := setupMockDB(t)
	_, err := NewGormBackend(db).Handle(context.Background(), "")
	assert.Error(t, err)
}

func TestMongoHandle_InsertOne(t *testing.T) {
	var got any
	h := &mongoHandle{
		collection: "orgs",
		insert: func(ctx context.Context, doc any) (*mongo.InsertOneResult, error) {
			got = doc
			return &mongo.InsertOneResult{InsertedID: "665f1c"}, nil
		},
	}

	id, err := h.InsertOne(context.Background(), map[string]any{"name": "acme"})
	require.NoError(t, err)
	assert.Equal(t, "665f1c", id)
	assert.Equal(t, map[string]any{"name": "acme"}, got)

	h.insert = func(ctx context.Context, doc any) (*mongo.InsertOneResult, error) {
		return nil, errors.New("write concern")
	}
	_, err = h.InsertOne(context.Background(), map[string]any{"name": "acme"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "orgs")
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(databaseConfig("oracle"))
	assert.Error(t, err)
}

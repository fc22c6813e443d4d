package person_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"starwars-api/internal/person"
	"starwars-api/internal/shared/database/databasetest"
	apperrors "starwars-api/internal/shared/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func luke() *person.Person {
	return &person.Person{
		Name:      "Luke Skywalker",
		HairColor: "blond",
		EyeColor:  "blue",
		SkinColor: "fair",
		Gender:    "male",
		Specie:    "human",
		HomeWorld: "Tatooine",
		Height:    172,
		Mass:      77,
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := person.NewRepository(databasetest.New(t), discardLogger())

	people, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, people)
	assert.Empty(t, people)

	p := luke()
	require.NoError(t, repo.Create(ctx, p, nil))
	assert.Equal(t, 1, p.ID)

	droid := &person.Person{Name: "R2-D2", Specie: "droid", Height: 96, Mass: 32}
	require.NoError(t, repo.Create(ctx, droid, nil))
	assert.Equal(t, 2, droid.ID)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	people, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "Luke Skywalker", people[0].Name)
	assert.Equal(t, "R2-D2", people[1].Name)
}

func TestRepository_GetByIDNotFound(t *testing.T) {
	repo := person.NewRepository(databasetest.New(t), discardLogger())

	_, err := repo.GetByID(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "person not found with id: 42", apperrors.ClientMessage(err))
}

func TestRepository_StorageFailure(t *testing.T) {
	db, mock := databasetest.NewMock(t)
	repo := person.NewRepository(db, discardLogger())
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM person ORDER BY id").WillReturnError(errors.New("connection refused"))
	_, err := repo.GetAll(ctx)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.GetType(err))

	mock.ExpectQuery("SELECT (.+) FROM person WHERE id = ?").WithArgs(1).WillReturnError(errors.New("connection refused"))
	_, err = repo.GetByID(ctx, 1)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.GetType(err))
	assert.Equal(t, "failed to get person", apperrors.ClientMessage(err))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateReturnsID(t *testing.T) {
	db, mock := databasetest.NewMock(t)
	repo := person.NewRepository(db, discardLogger())

	p := luke()
	mock.ExpectQuery("INSERT INTO person").
		WithArgs(p.Name, p.HairColor, p.EyeColor, p.SkinColor, p.Gender, p.Specie, p.HomeWorld, p.Height, p.Mass).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	require.NoError(t, repo.Create(context.Background(), p, nil))
	assert.Equal(t, 7, p.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateInsideTransaction(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)
	repo := person.NewRepository(db, discardLogger())

	tx, err := db.BeginTxContext(ctx)
	require.NoError(t, err)

	p := luke()
	require.NoError(t, repo.Create(ctx, p, tx))
	assert.Positive(t, p.ID)
	require.NoError(t, tx.Rollback())

	people, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestPerson_JSONFields(t *testing.T) {
	data, err := json.Marshal(luke())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	want := []string{"id", "name", "hair_color", "eye_color", "skin_color", "gender", "specie", "home_world", "height", "mass"}
	assert.Len(t, fields, len(want))
	for _, key := range want {
		assert.Contains(t, fields, key)
	}
}

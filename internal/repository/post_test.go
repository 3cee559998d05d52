package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "plant_name", "plant_image"}).
		AddRow(2, 1, "Monstera Deliciosa", "http://localhost/plant-images/1/2.jpg").
		AddRow(1, 1, "Golden Pothos", "http://localhost/plant-images/1/1.jpg")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE "posts"."deleted_at" IS NULL ORDER BY created_at DESC`)).
		WillReturnRows(rows)

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, uint(2), posts[0].ID)
	assert.Equal(t, "Monstera Deliciosa", posts[0].PlantName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CountLikes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes" WHERE post_id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountLikes(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CountComments(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "comments" WHERE post_id = $1 AND "comments"."deleted_at" IS NULL`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountComments(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CountsForPosts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT post_id, COUNT(*) AS total FROM "likes" WHERE post_id IN ($1,$2) GROUP BY "post_id"`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "total"}).AddRow(1, 4))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT post_id, COUNT(*) AS total FROM "comments" WHERE post_id IN ($1,$2) AND "comments"."deleted_at" IS NULL GROUP BY "post_id"`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "total"}).AddRow(2, 9))

	counts, err := repo.CountsForPosts(context.Background(), []uint{1, 2})
	require.NoError(t, err)
	assert.Equal(t, Counts{Likes: 4, Comments: 0}, counts[1])
	assert.Equal(t, Counts{Likes: 0, Comments: 9}, counts[2])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CountsForPosts_Empty(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := NewPostRepository(db)

	counts, err := repo.CountsForPosts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestPostRepository_UpdateImageBySource(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET "plant_image"=$1,"updated_at"=$2 WHERE plant_image = $3 AND "posts"."deleted_at" IS NULL`)).
		WithArgs("http://localhost/plant-images/demo/plant1.jpg", sqlmock.AnyArg(), "/src/assets/plant1.jpg").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	updated, err := repo.UpdateImageBySource(context.Background(),
		"/src/assets/plant1.jpg", "http://localhost/plant-images/demo/plant1.jpg")
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

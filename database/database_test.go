package database

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/khaledev/inkwell/models"
)

func setupTestDB(t *testing.T) Database {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return New(db)
}

func addUser(t *testing.T, d Database, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", Name: "Test"}
	require.NoError(t, d.UserRepo().Add(user))
	return user
}

func TestUserRepoUniqueEmail(t *testing.T) {
	d := setupTestDB(t)

	addUser(t, d, "a@x.com")
	err := d.UserRepo().Add(&models.User{Email: "a@x.com", PasswordHash: "y", Name: "Dup"})
	assert.Error(t, err)

	count, err := d.UserRepo().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserRepoFindByEmailCaseSensitive(t *testing.T) {
	d := setupTestDB(t)
	addUser(t, d, "a@x.com")

	found, err := d.UserRepo().FindByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)

	// stored case only; lookups are case-sensitive
	missing, err := d.UserRepo().FindByEmail("A@X.COM")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepoFirstUserGetsIDOne(t *testing.T) {
	d := setupTestDB(t)

	first := addUser(t, d, "first@x.com")
	second := addUser(t, d, "second@x.com")

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.True(t, first.IsAdmin)
	assert.False(t, second.IsAdmin)
}

// TestUserRepoConcurrentFirstRegistrations races several registrations
// against an empty store. Exactly one row may come out flagged as
// administrator, and it must be the row that won ID 1.
func TestUserRepoConcurrentFirstRegistrations(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "race.db")
	db, err := gorm.Open(sqlite.Open(dbPath+"?_busy_timeout=10000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	d := New(db)

	const racers = 8
	var wg sync.WaitGroup
	errCh := make(chan error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errCh <- d.UserRepo().Add(&models.User{
				Email:        fmt.Sprintf("racer%d@x.com", i),
				PasswordHash: "x",
				Name:         "Racer",
			})
		}(i)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	var admins []models.User
	require.NoError(t, db.Where("is_admin = ?", true).Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, uint(1), admins[0].ID)
}

func TestPostRepoUniqueTitle(t *testing.T) {
	d := setupTestDB(t)
	author := addUser(t, d, "a@x.com")

	post := &models.BlogPost{AuthorID: author.ID, Title: "T1", Subtitle: "s", Date: "January 2, 2006", Body: "b", ImgURL: "i"}
	require.NoError(t, d.PostRepo().Add(post))

	dup := &models.BlogPost{AuthorID: author.ID, Title: "T1", Subtitle: "s2", Date: "January 3, 2006", Body: "b2", ImgURL: "i2"}
	assert.Error(t, d.PostRepo().Add(dup))

	posts, err := d.PostRepo().FindAll()
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestPostRepoFindByIDPreloads(t *testing.T) {
	d := setupTestDB(t)
	author := addUser(t, d, "a@x.com")
	commenter := addUser(t, d, "c@x.com")

	post := &models.BlogPost{AuthorID: author.ID, Title: "T1", Subtitle: "s", Date: "January 2, 2006", Body: "b", ImgURL: "i"}
	require.NoError(t, d.PostRepo().Add(post))
	require.NoError(t, d.CommentRepo().Add(&models.Comment{Text: "nice", AuthorID: commenter.ID, PostID: post.ID}))

	loaded, err := d.PostRepo().FindByID(post.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.NotNil(t, loaded.Author)
	assert.Equal(t, author.ID, loaded.Author.ID)
	require.Len(t, loaded.Comments, 1)
	require.NotNil(t, loaded.Comments[0].Author)
	assert.Equal(t, commenter.ID, loaded.Comments[0].Author.ID)
}

func TestPostRepoDeleteCascadesComments(t *testing.T) {
	d := setupTestDB(t)
	author := addUser(t, d, "a@x.com")

	post := &models.BlogPost{AuthorID: author.ID, Title: "T1", Subtitle: "s", Date: "January 2, 2006", Body: "b", ImgURL: "i"}
	require.NoError(t, d.PostRepo().Add(post))
	require.NoError(t, d.CommentRepo().Add(&models.Comment{Text: "one", AuthorID: author.ID, PostID: post.ID}))
	require.NoError(t, d.CommentRepo().Add(&models.Comment{Text: "two", AuthorID: author.ID, PostID: post.ID}))

	require.NoError(t, d.PostRepo().Delete(post.ID))

	gone, err := d.PostRepo().FindByID(post.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	count, err := d.CommentRepo().CountByPost(post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMessageRepoNewestFirst(t *testing.T) {
	d := setupTestDB(t)

	older := &models.Message{Name: "A", Email: "a@x.com", Body: "first", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.Message{Name: "B", Email: "b@x.com", Body: "second", CreatedAt: time.Now()}
	require.NoError(t, d.MessageRepo().Add(older))
	require.NoError(t, d.MessageRepo().Add(newer))

	messages, err := d.MessageRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "second", messages[0].Body)
	assert.Equal(t, "first", messages[1].Body)
}

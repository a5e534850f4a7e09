package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/clipmd"
	"github.com/fwojciec/clipmd/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestClip(t *testing.T, svc *sqlite.ClipService, source, content string) *clipmd.Clip {
	t.Helper()
	clip := &clipmd.Clip{Source: source, Title: "Title", Content: content}
	require.NoError(t, svc.CreateClip(context.Background(), clip))
	return clip
}

func TestClipService_CreateClip(t *testing.T) {
	t.Parallel()

	t.Run("creates clip with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewClipService(setupTestDB(t))

		clip := &clipmd.Clip{
			Source:  "https://example.com/post",
			Title:   "Post",
			Content: "# Post\n\nBody.",
		}

		err := svc.CreateClip(context.Background(), clip)
		require.NoError(t, err)

		assert.NotEmpty(t, clip.ID)
		assert.Len(t, clip.ContentHash, 16)
		assert.False(t, clip.CreatedAt.IsZero())
	})

	t.Run("identical content of different sources is kept", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewClipService(setupTestDB(t))

		a := createTestClip(t, svc, "a.html", "same")
		b := createTestClip(t, svc, "b.html", "same")
		c := createTestClip(t, svc, "c.html", "different")

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ContentHash, c.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("returns newest clip of the source when content is unchanged", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewClipService(db)
		first := createTestClip(t, svc, "https://example.com/post", "# Post")

		again := &clipmd.Clip{Source: "https://example.com/post", Title: "Retitled", Content: "# Post"}
		require.NoError(t, svc.CreateClip(context.Background(), again))

		assert.Equal(t, first.ID, again.ID)
		assert.Equal(t, "Title", again.Title)
		assert.True(t, first.CreatedAt.Equal(again.CreatedAt))

		var count int
		require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM clips").Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("records changed content of the same source", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewClipService(setupTestDB(t))
		first := createTestClip(t, svc, "https://example.com/post", "# Post")
		second := createTestClip(t, svc, "https://example.com/post", "# Post, updated")

		assert.NotEqual(t, first.ID, second.ID)
		assert.NotEqual(t, first.ContentHash, second.ContentHash)
	})

	t.Run("records content that matches an older clip only", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewClipService(setupTestDB(t))
		first := createTestClip(t, svc, "a.html", "one")
		createTestClip(t, svc, "a.html", "two")
		third := createTestClip(t, svc, "a.html", "one")

		assert.NotEqual(t, first.ID, third.ID)
	})

	t.Run("returns EINVALID for missing content", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewClipService(setupTestDB(t))

		err := svc.CreateClip(context.Background(), &clipmd.Clip{Source: "page.html"})

		require.Error(t, err)
		assert.Equal(t, clipmd.EINVALID, clipmd.ErrorCode(err))
	})
}

func TestClipService_FindClipByID(t *testing.T) {
	t.Parallel()

	t.Run("returns stored clip", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewClipService(setupTestDB(t))
		created := createTestClip(t, svc, "https://example.com/post", "# Post")

		got, err := svc.FindClipByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "https://example.com/post", got.Source)
		assert.Equal(t, "Title", got.Title)
		assert.Equal(t, "# Post", got.Content)
		assert.Equal(t, created.ContentHash, got.ContentHash)
		assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewClipService(setupTestDB(t))

		_, err := svc.FindClipByID(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, clipmd.ENOTFOUND, clipmd.ErrorCode(err))
	})
}

func TestClipService_FindClips(t *testing.T) {
	t.Parallel()

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewClipService(setupTestDB(t))
		first := createTestClip(t, svc, "a.html", "one")
		second := createTestClip(t, svc, "b.html", "two")
		third := createTestClip(t, svc, "c.html", "three")

		clips, err := svc.FindClips(context.Background(), clipmd.ClipFilter{})

		require.NoError(t, err)
		require.Len(t, clips, 3)
		assert.Equal(t, third.ID, clips[0].ID)
		assert.Equal(t, second.ID, clips[1].ID)
		assert.Equal(t, first.ID, clips[2].ID)
	})

	t.Run("filters by source", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewClipService(setupTestDB(t))
		createTestClip(t, svc, "a.html", "one")
		want := createTestClip(t, svc, "b.html", "two")

		source := "b.html"
		clips, err := svc.FindClips(context.Background(), clipmd.ClipFilter{Source: &source})

		require.NoError(t, err)
		require.Len(t, clips, 1)
		assert.Equal(t, want.ID, clips[0].ID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewClipService(setupTestDB(t))
		createTestClip(t, svc, "a.html", "one")
		second := createTestClip(t, svc, "b.html", "two")
		createTestClip(t, svc, "c.html", "three")

		clips, err := svc.FindClips(context.Background(), clipmd.ClipFilter{Limit: 1, Offset: 1})

		require.NoError(t, err)
		require.Len(t, clips, 1)
		assert.Equal(t, second.ID, clips[0].ID)
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewClipService(setupTestDB(t))
		first := createTestClip(t, svc, "a.html", "one")
		createTestClip(t, svc, "b.html", "two")

		clips, err := svc.FindClips(context.Background(), clipmd.ClipFilter{Offset: 1})

		require.NoError(t, err)
		require.Len(t, clips, 1)
		assert.Equal(t, first.ID, clips[0].ID)
	})

	t.Run("returns empty for no clips", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewClipService(setupTestDB(t))

		clips, err := svc.FindClips(context.Background(), clipmd.ClipFilter{})

		require.NoError(t, err)
		assert.Empty(t, clips)
	})
}

func TestClipService_DeleteClip(t *testing.T) {
	t.Parallel()

	t.Run("removes clip", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewClipService(setupTestDB(t))
		clip := createTestClip(t, svc, "a.html", "one")

		require.NoError(t, svc.DeleteClip(context.Background(), clip.ID))

		_, err := svc.FindClipByID(context.Background(), clip.ID)
		assert.Equal(t, clipmd.ENOTFOUND, clipmd.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewClipService(setupTestDB(t))

		err := svc.DeleteClip(context.Background(), "missing")

		assert.Equal(t, clipmd.ENOTFOUND, clipmd.ErrorCode(err))
	})
}

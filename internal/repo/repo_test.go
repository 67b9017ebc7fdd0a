package repo_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/col3name/kotlin-git/internal/config"
	"github.com/col3name/kotlin-git/internal/repo"
)

func openTestRepo(t *testing.T) *repo.Repository {
	t.Helper()
	r, err := repo.OpenAt(t.TempDir())
	require.NoError(t, err)
	return r
}

func writeWorkFile(t *testing.T, r *repo.Repository, rel, content string) {
	t.Helper()
	path := filepath.Join(r.Config.WorkTree, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readWorkFile(t *testing.T, r *repo.Repository, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.Config.WorkTree, rel))
	require.NoError(t, err)
	return string(data)
}

func logLen(t *testing.T, r *repo.Repository) int {
	t.Helper()
	commits, err := r.Meta.AllCommits()
	require.NoError(t, err)
	return len(commits)
}

func snapshotCount(t *testing.T, r *repo.Repository) int {
	t.Helper()
	entries, err := os.ReadDir(r.Config.CommitsDir())
	require.NoError(t, err)
	return len(entries)
}

func TestOpenAtIsIdempotent(t *testing.T) {
	tmp := t.TempDir()
	r1, err := repo.OpenAt(tmp)
	require.NoError(t, err)
	r2, err := repo.OpenAt(tmp)
	require.NoError(t, err)
	assert.Equal(t, r1.Config.Root, r2.Config.Root)
	assert.DirExists(t, r1.Config.CommitsDir())
}

func TestTrackMissingPath(t *testing.T) {
	r := openTestRepo(t)

	err := r.Track("nope.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repo.ErrPathNotFound))
}

func TestTrackRejectsStorageDir(t *testing.T) {
	r := openTestRepo(t)
	require.Error(t, r.Track(config.RepoDir))
}

func TestTrackRejectsOutsideWorkTree(t *testing.T) {
	parent := t.TempDir()
	secret := filepath.Join(parent, "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("private"), 0o644))

	work := filepath.Join(parent, "work")
	require.NoError(t, os.MkdirAll(work, 0o755))
	r, err := repo.OpenAt(work)
	require.NoError(t, err)

	// paths escaping the working tree would be snapshotted outside the
	// commit dir and deleted from the outside location on checkout
	for _, p := range []string{"../secret.txt", "..", ".", secret} {
		require.Error(t, r.Track(p), "path %q", p)
	}

	paths, err := r.Meta.TrackedPaths()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestCommitEmptyMessage(t *testing.T) {
	r := openTestRepo(t)
	writeWorkFile(t, r, "a.txt", "v1")
	require.NoError(t, r.Track("a.txt"))

	_, err := r.Commit("   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repo.ErrEmptyMessage))
	assert.Equal(t, 0, logLen(t, r))
}

func TestCommitNothingTracked(t *testing.T) {
	r := openTestRepo(t)

	_, err := r.Commit("message")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repo.ErrNothingTracked))
	assert.Equal(t, 0, logLen(t, r))
}

func TestCommitAndNoOpDetection(t *testing.T) {
	r := openTestRepo(t)
	writeWorkFile(t, r, "a.txt", "v1")
	require.NoError(t, r.Track("a.txt"))

	c1, err := r.Commit("first")
	require.NoError(t, err)
	require.NotEmpty(t, c1.ID)
	assert.Equal(t, 1, logLen(t, r))
	assert.Equal(t, 1, snapshotCount(t, r))

	// unchanged content is a no-op regardless of the message
	_, err = r.Commit("second")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repo.ErrNoChanges))
	assert.Equal(t, 1, logLen(t, r))
	assert.Equal(t, 1, snapshotCount(t, r))

	// one changed file is enough for a real commit
	writeWorkFile(t, r, "a.txt", "v2")
	c2, err := r.Commit("second")
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
	assert.Equal(t, 2, logLen(t, r))
	assert.Equal(t, 2, snapshotCount(t, r))
}

func TestCommitNewlyTrackedFile(t *testing.T) {
	r := openTestRepo(t)
	writeWorkFile(t, r, "a.txt", "v1")
	require.NoError(t, r.Track("a.txt"))

	_, err := r.Commit("first")
	require.NoError(t, err)

	// a path tracked after the last commit has no snapshot counterpart
	// and must force a real commit, not a silent no-op
	writeWorkFile(t, r, "b.txt", "new")
	require.NoError(t, r.Track("b.txt"))

	c2, err := r.Commit("second")
	require.NoError(t, err)
	assert.Equal(t, 2, logLen(t, r))

	data, err := os.ReadFile(filepath.Join(r.Store.Dir(c2.ID), "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCommitSnapshotMatchesWorkingTree(t *testing.T) {
	r := openTestRepo(t)
	writeWorkFile(t, r, "a.txt", "alpha")
	writeWorkFile(t, r, "src/deep/b.txt", "beta")
	require.NoError(t, r.Track("a.txt"))
	require.NoError(t, r.Track("src"))

	c, err := r.Commit("snapshot")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(r.Store.Dir(c.ID), "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(data))

	data, err = os.ReadFile(filepath.Join(r.Store.Dir(c.ID), "src", "deep", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "beta", string(data))
}

func TestCommitStampsConfiguredAuthor(t *testing.T) {
	r := openTestRepo(t)
	require.NoError(t, r.Config.SaveUser(config.UserConfig{Username: "alice"}))
	writeWorkFile(t, r, "a.txt", "v1")
	require.NoError(t, r.Track("a.txt"))

	c, err := r.Commit("first")
	require.NoError(t, err)
	assert.Equal(t, "alice", c.Author)

	latest, err := r.Meta.LatestCommit()
	require.NoError(t, err)
	assert.Equal(t, "alice", latest.Author)
}

func TestCommitWithoutConfiguredAuthor(t *testing.T) {
	r := openTestRepo(t)
	writeWorkFile(t, r, "a.txt", "v1")
	require.NoError(t, r.Track("a.txt"))

	c, err := r.Commit("first")
	require.NoError(t, err)
	assert.Equal(t, "", c.Author)
}

func TestCheckoutUnknownCommit(t *testing.T) {
	r := openTestRepo(t)
	writeWorkFile(t, r, "a.txt", "v1")
	require.NoError(t, r.Track("a.txt"))
	_, err := r.Commit("first")
	require.NoError(t, err)

	err = r.Checkout("no-such-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repo.ErrCommitNotFound))

	// working tree and log untouched
	assert.Equal(t, "v1", readWorkFile(t, r, "a.txt"))
	assert.Equal(t, 1, logLen(t, r))
}

func TestCheckoutRejectsPathlikeIDs(t *testing.T) {
	r := openTestRepo(t)
	writeWorkFile(t, r, "a.txt", "v1")
	require.NoError(t, r.Track("a.txt"))
	_, err := r.Commit("first")
	require.NoError(t, err)

	// "." and ".." join to directories that exist under the storage
	// root; treating them as commits would wipe tracked files and spill
	// storage internals into the working tree
	for _, id := range []string{"", ".", "..", "../log", "x/y"} {
		err := r.Checkout(id)
		require.Error(t, err, "id %q", id)
		assert.True(t, errors.Is(err, repo.ErrCommitNotFound), "id %q", id)
	}

	assert.Equal(t, "v1", readWorkFile(t, r, "a.txt"))
	assert.Equal(t, 1, logLen(t, r))
	assert.Equal(t, 1, snapshotCount(t, r))
}

func TestCommitCheckoutRoundTrip(t *testing.T) {
	r := openTestRepo(t)
	writeWorkFile(t, r, "a.txt", "v1")
	require.NoError(t, r.Track("a.txt"))

	c1, err := r.Commit("first")
	require.NoError(t, err)

	// modify, commit again, then go back
	writeWorkFile(t, r, "a.txt", "v2")
	_, err = r.Commit("first")
	require.NoError(t, err) // content changed, same message is fine
	assert.Equal(t, 2, logLen(t, r))

	require.NoError(t, r.Checkout(c1.ID))
	assert.Equal(t, "v1", readWorkFile(t, r, "a.txt"))

	// registry is not rolled back
	paths, err := r.Meta.TrackedPaths()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, paths)
}

func TestCheckoutRestoresDirectories(t *testing.T) {
	r := openTestRepo(t)
	writeWorkFile(t, r, "src/a.kt", "a1")
	require.NoError(t, r.Track("src"))

	c1, err := r.Commit("first")
	require.NoError(t, err)

	writeWorkFile(t, r, "src/a.kt", "a2")
	writeWorkFile(t, r, "src/b.kt", "b1")
	_, err = r.Commit("second")
	require.NoError(t, err)

	require.NoError(t, r.Checkout(c1.ID))
	assert.Equal(t, "a1", readWorkFile(t, r, "src/a.kt"))
	_, statErr := os.Stat(filepath.Join(r.Config.WorkTree, "src", "b.kt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestHistoryIsAppendOnly(t *testing.T) {
	r := openTestRepo(t)
	writeWorkFile(t, r, "a.txt", "v1")
	require.NoError(t, r.Track("a.txt"))

	var ids []string
	for _, content := range []string{"v1", "v2", "v3"} {
		writeWorkFile(t, r, "a.txt", content)
		c, err := r.Commit("change to " + content)
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	commits, err := r.Meta.AllCommits()
	require.NoError(t, err)
	require.Len(t, commits, 3)
	for i, c := range commits {
		assert.Equal(t, ids[i], c.ID, "append order must match commit order")
	}
}

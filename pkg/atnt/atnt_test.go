package atnt_test

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bob-devel/recipetool/pkg/atnt"
)

func TestQueryCounts(t *testing.T) {
	t.Parallel()
	var db atnt.Database

	count := func(q atnt.Query) int {
		t.Helper()
		files, err := db.Objects(q)
		require.NoError(t, err)
		return len(files)
	}

	assert.Equal(t, 400, count(atnt.Query{}))
	assert.Equal(t, 200, count(atnt.Query{Groups: []atnt.Group{atnt.GroupWorld}}))
	assert.Equal(t, 200, count(atnt.Query{Groups: []atnt.Group{atnt.GroupDev}}))
	assert.Equal(t, 100, count(atnt.Query{
		Groups:   []atnt.Group{atnt.GroupDev},
		Purposes: []atnt.Purpose{atnt.PurposeEnrol},
	}))
	assert.Equal(t, 100, count(atnt.Query{
		Groups:   []atnt.Group{atnt.GroupDev},
		Purposes: []atnt.Purpose{atnt.PurposeProbe},
	}))

	clients, err := db.Clients()
	require.NoError(t, err)
	assert.Len(t, clients, 40)
	clients, err = db.Clients(atnt.GroupWorld)
	require.NoError(t, err)
	assert.Len(t, clients, 20)
	clients, err = db.Clients(atnt.GroupDev)
	require.NoError(t, err)
	assert.Len(t, clients, 20)
}

func TestQueryEnrolFilesOfOneClient(t *testing.T) {
	t.Parallel()
	var db atnt.Database

	// Client 3 is a dev client; its enrollment files are numbers 2, 4, 5,
	// 7, and 9.
	files, err := db.Objects(atnt.Query{
		Groups:   []atnt.Group{atnt.GroupDev},
		Purposes: []atnt.Purpose{atnt.PurposeEnrol},
		ModelIDs: []int{3},
	})
	require.NoError(t, err)
	require.Len(t, files, 5)

	for i, fileNum := range []int{2, 4, 5, 7, 9} {
		assert.Equal(t, filepath.Join("s3", strconv.Itoa(fileNum)), files[i].Path)
		assert.Equal(t, 3, files[i].ClientID)
		assert.Equal(t, 20+fileNum, files[i].ID)

		clientID, err := db.ClientIDFromFileID(files[i].ID)
		require.NoError(t, err)
		assert.Equal(t, 3, clientID)
	}
}

func TestQueryValidation(t *testing.T) {
	t.Parallel()
	var db atnt.Database

	_, err := db.Objects(atnt.Query{Groups: []atnt.Group{"eval"}})
	assert.Error(t, err)
	_, err = db.Objects(atnt.Query{
		Groups:   []atnt.Group{atnt.GroupDev},
		Purposes: []atnt.Purpose{"train"},
	})
	assert.Error(t, err)
	_, err = db.Objects(atnt.Query{ModelIDs: []int{0}})
	assert.Error(t, err)
	_, err = db.Objects(atnt.Query{ModelIDs: []int{41}})
	assert.Error(t, err)
	_, err = db.ClientIDs("eval")
	assert.Error(t, err)

	// Purposes are ignored for the world group, as in the original
	// protocol, so an off-vocabulary purpose only errors when dev files
	// are requested.
	files, err := db.Objects(atnt.Query{
		Groups:   []atnt.Group{atnt.GroupWorld},
		Purposes: []atnt.Purpose{"train"},
	})
	require.NoError(t, err)
	assert.Len(t, files, 200)

	_, err = db.ClientIDFromFileID(0)
	assert.Error(t, err)
	_, err = db.ClientIDFromFileID(401)
	assert.Error(t, err)
	clientID, err := db.ClientIDFromFileID(400)
	require.NoError(t, err)
	assert.Equal(t, 40, clientID)
	assert.Equal(t, 7, db.ClientIDFromModelID(7))
}

func TestFilePaths(t *testing.T) {
	t.Parallel()
	f, err := atnt.NewFile(3, 7)
	require.NoError(t, err)
	assert.Equal(t, 27, f.ID)
	assert.Equal(t, filepath.Join("s3", "7"), f.Path)
	assert.Equal(t, filepath.Join("s3", "7"), f.MakePath("", ""))
	assert.Equal(t, filepath.Join("data", "s3", "7.pgm"), f.MakePath("data", ".pgm"))

	_, err = atnt.NewFile(0, 1)
	assert.Error(t, err)
	_, err = atnt.NewFile(41, 1)
	assert.Error(t, err)
	_, err = atnt.NewFile(1, 0)
	assert.Error(t, err)
	_, err = atnt.NewFile(1, 11)
	assert.Error(t, err)
}

func TestWorldDevPartition(t *testing.T) {
	t.Parallel()
	var db atnt.Database

	world, err := db.ClientIDs(atnt.GroupWorld)
	require.NoError(t, err)
	dev, err := db.ClientIDs(atnt.GroupDev)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, id := range append(append([]int{}, world...), dev...) {
		assert.False(t, seen[id], "client %d in both groups", id)
		seen[id] = true
	}
	assert.Len(t, seen, atnt.NumClients)

	both, err := db.ModelIDs(atnt.GroupWorld, atnt.GroupDev)
	require.NoError(t, err)
	assert.Len(t, both, atnt.NumClients)
}

package atnt

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// FilesPerClient is the number of images recorded for each client.
const FilesPerClient = 10

// NumClients is the number of subjects in the database.
const NumClients = 40

// A Client is one of the photographed subjects.  Clients carry nothing but
// their id.
type Client struct {
	ID int
}

// A File is a single image of the database.
type File struct {
	// ID is unique across the whole database and is computed from the
	// client id and the per-client file number.
	ID int
	// ClientID identifies the subject shown in the image.
	ClientID int
	// Path is the relative path stem of the image, without a leading
	// directory or a filename extension, e.g. "s3/7".
	Path string
}

// NewFile builds the File for image fileID (1-based, per client) of the given
// client.
func NewFile(clientID, fileID int) (File, error) {
	if clientID < 1 || clientID > NumClients {
		return File{}, fmt.Errorf("atnt: client id %d out of range [1,%d]", clientID, NumClients)
	}
	if fileID < 1 || fileID > FilesPerClient {
		return File{}, fmt.Errorf("atnt: file id %d out of range [1,%d]", fileID, FilesPerClient)
	}
	return File{
		ID:       (clientID-1)*FilesPerClient + fileID,
		ClientID: clientID,
		Path:     filepath.Join("s"+strconv.Itoa(clientID), strconv.Itoa(fileID)),
	}, nil
}

// MakePath completes the file's path stem with a directory prefix and a
// filename extension.  The extension includes the leading dot, as in ".pgm".
// Either part may be empty.
func (f File) MakePath(dir, ext string) string {
	if dir == "" {
		return f.Path + ext
	}
	return filepath.Join(dir, f.Path+ext)
}

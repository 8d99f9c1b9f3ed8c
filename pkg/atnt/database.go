// Package atnt implements the access protocol for the AT&T/ORL database of
// faces (40 subjects, 10 images each).  The database is small, so the
// protocol splits it into just two groups: "world" for training, and "dev"
// for development, with the dev images further divided into enrollment and
// probe purposes.  There is no "eval" group.
package atnt

import (
	"fmt"
	"sort"
)

// A Group names one of the subject partitions of the database.
type Group string

const (
	// GroupWorld is the training partition.
	GroupWorld Group = "world"
	// GroupDev is the development partition.
	GroupDev Group = "dev"
)

// A Purpose names what a dev-group file is used for.  Purposes are ignored
// for the world group.
type Purpose string

const (
	PurposeEnrol Purpose = "enrol"
	PurposeProbe Purpose = "probe"
)

// The fixed set of clients reserved for training.  The remaining clients
// form the dev group.
var trainingClients = map[int]bool{
	1: true, 2: true, 5: true, 6: true, 10: true,
	11: true, 12: true, 14: true, 16: true, 17: true,
	20: true, 21: true, 24: true, 26: true, 27: true,
	29: true, 33: true, 34: true, 36: true, 39: true,
}

// The per-client file numbers used for enrollment; the rest are probes.
var enrolFiles = map[int]bool{2: true, 4: true, 5: true, 7: true, 9: true}

// A Database answers queries about the protocol.  It is stateless; the zero
// value is ready to use.
type Database struct{}

// Groups returns the groups of the protocol.
func (Database) Groups() []Group { return []Group{GroupWorld, GroupDev} }

// Purposes returns the purposes of the protocol.
func (Database) Purposes() []Purpose { return []Purpose{PurposeEnrol, PurposeProbe} }

// checkGroups validates the requested groups; an empty request means all of
// them.
func (db Database) checkGroups(groups []Group) ([]Group, error) {
	if len(groups) == 0 {
		return db.Groups(), nil
	}
	for _, group := range groups {
		if group != GroupWorld && group != GroupDev {
			return nil, fmt.Errorf("atnt: invalid group %q (valid: %v)", group, db.Groups())
		}
	}
	return groups, nil
}

func (db Database) checkPurposes(purposes []Purpose) ([]Purpose, error) {
	if len(purposes) == 0 {
		return db.Purposes(), nil
	}
	for _, purpose := range purposes {
		if purpose != PurposeEnrol && purpose != PurposeProbe {
			return nil, fmt.Errorf("atnt: invalid purpose %q (valid: %v)", purpose, db.Purposes())
		}
	}
	return purposes, nil
}

// ClientIDs returns the sorted ids of the clients in the given groups (all
// groups when none are given).
func (db Database) ClientIDs(groups ...Group) ([]int, error) {
	groups, err := db.checkGroups(groups)
	if err != nil {
		return nil, err
	}
	world, dev := false, false
	for _, group := range groups {
		world = world || group == GroupWorld
		dev = dev || group == GroupDev
	}
	var ids []int
	for id := 1; id <= NumClients; id++ {
		if (world && trainingClients[id]) || (dev && !trainingClients[id]) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Clients returns the clients in the given groups.
func (db Database) Clients(groups ...Group) ([]Client, error) {
	ids, err := db.ClientIDs(groups...)
	if err != nil {
		return nil, err
	}
	clients := make([]Client, len(ids))
	for i, id := range ids {
		clients[i] = Client{ID: id}
	}
	return clients, nil
}

// Models returns the models of the given groups.  For this database models
// and clients are the same thing.
func (db Database) Models(groups ...Group) ([]Client, error) {
	return db.Clients(groups...)
}

// ModelIDs returns the ids of the models of the given groups.
func (db Database) ModelIDs(groups ...Group) ([]int, error) {
	return db.ClientIDs(groups...)
}

// ClientIDFromFileID returns the id of the client shown in the given file.
func (Database) ClientIDFromFileID(fileID int) (int, error) {
	if fileID < 1 || fileID > NumClients*FilesPerClient {
		return 0, fmt.Errorf("atnt: file id %d out of range [1,%d]", fileID, NumClients*FilesPerClient)
	}
	return (fileID-1)/FilesPerClient + 1, nil
}

// ClientIDFromModelID returns the id of the client behind the given model,
// which for this database is the model id itself.
func (Database) ClientIDFromModelID(modelID int) int { return modelID }

// A Query filters the files returned by Objects.  Zero-valued fields mean
// "no restriction".
type Query struct {
	Groups   []Group
	Purposes []Purpose
	// ModelIDs restricts the enrollment files to the given clients.  Probe
	// files are not restricted by it: every model is probed against all
	// probe files of its groups.
	ModelIDs []int
}

// Objects returns the files matching the query, ordered by client and then
// by file number.
func (db Database) Objects(q Query) ([]File, error) {
	groups, err := db.checkGroups(q.Groups)
	if err != nil {
		return nil, err
	}
	groupIDs, err := db.ClientIDs(groups...)
	if err != nil {
		return nil, err
	}

	modelIDs := q.ModelIDs
	if len(modelIDs) == 0 {
		for id := 1; id <= NumClients; id++ {
			modelIDs = append(modelIDs, id)
		}
	} else {
		for _, id := range modelIDs {
			if id < 1 || id > NumClients {
				return nil, fmt.Errorf("atnt: invalid model id %d (valid: [1,%d])", id, NumClients)
			}
		}
	}

	// Purposes only discriminate within the dev group.
	purposes := q.Purposes
	dev := false
	for _, group := range groups {
		dev = dev || group == GroupDev
	}
	if dev {
		if purposes, err = db.checkPurposes(purposes); err != nil {
			return nil, err
		}
	} else {
		purposes = db.Purposes()
	}
	enrol, probe := false, false
	for _, purpose := range purposes {
		enrol = enrol || purpose == PurposeEnrol
		probe = probe || purpose == PurposeProbe
	}

	inGroups := make(map[int]bool, len(groupIDs))
	for _, id := range groupIDs {
		inGroups[id] = true
	}
	enrolIDs := make([]int, 0, len(modelIDs))
	for _, id := range modelIDs {
		if inGroups[id] {
			enrolIDs = append(enrolIDs, id)
		}
	}
	sort.Ints(enrolIDs)

	var files []File
	appendFiles := func(clientIDs []int, want func(fileID int) bool) error {
		for _, clientID := range clientIDs {
			for fileID := 1; fileID <= FilesPerClient; fileID++ {
				if !want(fileID) {
					continue
				}
				file, err := NewFile(clientID, fileID)
				if err != nil {
					return err
				}
				files = append(files, file)
			}
		}
		return nil
	}
	if enrol {
		if err := appendFiles(enrolIDs, func(id int) bool { return enrolFiles[id] }); err != nil {
			return nil, err
		}
	}
	if probe {
		if err := appendFiles(groupIDs, func(id int) bool { return !enrolFiles[id] }); err != nil {
			return nil, err
		}
	}
	return files, nil
}

package explode

import (
	"github.com/google/uuid"

	nberrors "github.com/matzehuels/nbexplode/pkg/errors"
	"github.com/matzehuels/nbexplode/pkg/notebook"
)

// IDGenerator mints an identifier for a cell that has never been exploded.
type IDGenerator func() string

// NewUUID returns a random (version 4) UUID string.
func NewUUID() string {
	return uuid.NewString()
}

// assignIDs resolves the directory name of every cell: the existing
// [notebook.Cell.ID] when set, otherwise a freshly minted one. Cells are not
// modified.
func assignIDs(cells []*notebook.Cell, gen IDGenerator) ([]string, error) {
	ids := make([]string, len(cells))
	seen := make(map[string]int, len(cells))
	for i, c := range cells {
		id := c.ID
		if id == "" {
			id = gen()
		}
		if err := nberrors.ValidateCellID(id); err != nil {
			return nil, err
		}
		if prev, dup := seen[id]; dup {
			return nil, nberrors.New(nberrors.ErrCodeInvalidCellID, "cells %d and %d share id %q", prev+1, i+1, id)
		}
		seen[id] = i
		ids[i] = id
	}
	return ids, nil
}

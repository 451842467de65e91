package domain

import "errors"

var (
	ErrSnapshotMiss = errors.New("no snapshot for date")
)

func IsSnapshotMiss(err error) bool {
	return errors.Is(err, ErrSnapshotMiss)
}

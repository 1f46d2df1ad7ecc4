package dataset

import "errors"

var (
	// ErrNoDataset is returned before the first dataset was generated.
	ErrNoDataset = errors.New("no dataset generated yet")
	// ErrNoDatabase is returned by operations that need persistence.
	ErrNoDatabase = errors.New("database not configured")
	// ErrNoStorage is returned by operations that need the object store.
	ErrNoStorage = errors.New("storage not configured")
	// ErrUnknownFile is returned for export names other than the two CSV files.
	ErrUnknownFile = errors.New("unknown export file")
)

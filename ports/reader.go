// Package ports defines the interfaces between the application core and its
// adapters.
package ports

import "gridiron/domain/table"

// ReaderPort provides read access to a tabular dataset source. Callers own
// the caching policy; implementations touch the source on every call.
type ReaderPort interface {
	ReadData() (*table.Table, error)
}

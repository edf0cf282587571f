package exporting

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrNoData            = errors.New("no data to export")
	ErrSerialization     = errors.New("error serializing export data")
)

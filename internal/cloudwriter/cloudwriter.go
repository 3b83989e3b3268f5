package cloudwriter

import (
	"fmt"
	"time"
)

type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}

// ObjectKey builds a date-stamped object path for an export, e.g.
// exports/skylark_menu_data_2024-03-18.csv.
func ObjectKey(folder, name, ext string, now time.Time) string {
	return fmt.Sprintf("%s/%s_%s.%s", folder, name, now.Format("2006-01-02"), ext)
}

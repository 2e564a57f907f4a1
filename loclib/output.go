package loclib

import (
	"encoding/csv"
	"io"
)

// OutputHeader is a header row of the output table.
var OutputHeader = []string{"IP Address", "City", "Country", "Organization", "ASName"}

type rowWriter struct {
	writer *csv.Writer
}

func (r rowWriter) WriteHeader() error {
	return r.writer.Write(OutputHeader)
}

func (r rowWriter) WriteRow(ip string, record LocationRecord) error {
	return r.writer.Write([]string{
		ip,
		record.City,
		record.Country,
		record.Organization,
		record.ASName,
	})
}

func (r rowWriter) Flush() error {
	r.writer.Flush()

	return r.writer.Error()
}

func newRowWriter(w io.Writer) rowWriter {
	return rowWriter{
		writer: csv.NewWriter(w),
	}
}

// Package report serializes aggregated rows into downloadable files.
package report

import (
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// ContentType is the MIME type of exported report files.
const ContentType = "text/csv"

// ExportCSV renders a slice of flat aggregate rows as CSV text. Column order
// follows the struct's csv tags; fields with embedded delimiters or quotes
// are escaped per RFC 4180. rows must be a slice (or pointer to one) of
// structs carrying csv tags.
func ExportCSV(rows any) (string, error) {
	out, err := gocsv.MarshalString(rows)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return out, nil
}

// Filename builds the suggested download name for a report covering the
// inclusive [start, end] date window.
func Filename(reportType, start, end string) string {
	return fmt.Sprintf("%s_report_%s_to_%s.csv", reportType, start, end)
}

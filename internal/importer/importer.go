package importer

import (
	"io"

	"github.com/bursarhq/bursar/internal/importer/bankcsv"
	"github.com/bursarhq/bursar/internal/student"
)

// Parser turns a raw statement export into credit rows.
type Parser interface {
	Parse(r io.Reader) ([]bankcsv.Credit, error)
}

// ReviewRow is one statement credit awaiting operator confirmation, with
// the matched student attached when identification succeeded.
type ReviewRow struct {
	Credit  bankcsv.Credit   `json:"credit"`
	Student *student.Student `json:"student,omitempty"`
}

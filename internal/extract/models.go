package extract

import (
	"github.com/dtnitsch/page-signals/models"
	"github.com/dtnitsch/page-signals/pkg/vector"
)

// Job is one target handed to a worker. Index keeps results in input order.
type Job struct {
	Index  int
	Target string
}

// Result holds the outcome of a processed job.
type Result struct {
	Index int
	Page  models.PageResult
	Err   error
}

// seenSnapshot is what the dedup cache remembers about extracted HTML.
type seenSnapshot struct {
	target  string
	signals *vector.PageSignals
}

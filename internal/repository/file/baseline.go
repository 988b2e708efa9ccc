package file

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const baselineFile = "traffic_simulation.csv"

// BaselineStore loads the optional traffic simulation dataset. The engine
// does not require the file; its absence degrades to an empty sample set.
type BaselineStore struct {
	path   string
	logger *logrus.Logger
}

// NewBaselineStore creates a loader for dataDir/traffic_simulation.csv
func NewBaselineStore(dataDir string, logger *logrus.Logger) *BaselineStore {
	return &BaselineStore{
		path:   filepath.Join(dataDir, baselineFile),
		logger: logger,
	}
}

// Records returns the dataset rows as column-name to value maps.
// Any read or parse failure yields an empty slice.
func (s *BaselineStore) Records() []map[string]string {
	f, err := os.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.WithError(err).Error("Failed to open traffic baseline")
		}
		return nil
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to parse traffic baseline, treating as empty")
		return nil
	}
	if len(rows) < 2 {
		return nil
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				record[col] = row[i]
			}
		}
		records = append(records, record)
	}
	return records
}

// SampleCount returns the number of rows in the dataset
func (s *BaselineStore) SampleCount() int {
	return len(s.Records())
}

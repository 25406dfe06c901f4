package report

import (
	"os"

	json "github.com/goccy/go-json"

	"dpscan/internal/models"
	"dpscan/internal/providers"
)

// Writer dumps a published snapshot to disk as zstd-compressed JSON for
// downstream consumers. The scan core itself never reads these files
// back; results do not survive across runs.
type Writer struct {
	compressor CompressorInterface
	logger     providers.Logger
}

func NewWriter(compressor CompressorInterface, logger providers.Logger) *Writer {
	return &Writer{
		compressor: compressor,
		logger:     logger,
	}
}

// Save writes atomically: a tmp file is written, synced, then renamed
// over the target so a crash never leaves a torn report.
func (w *Writer) Save(fileName string, stats *models.AggregateStats) error {
	jsonData, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	data, err := w.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (w *Writer) Close() {
	w.compressor.Close()
}

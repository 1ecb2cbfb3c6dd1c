package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path"

	log "github.com/sirupsen/logrus"

	"ml-lifecycle-service/internal/core/domain"
	"ml-lifecycle-service/internal/core/ports/output"
)

const defaultEvalFraction = 0.2

// DatasetService pulls labeled examples out of the warehouse and
// stages them as CSV in the artifact bucket for the trainer.
type DatasetService struct {
	examples ports.ExampleRepository
	store    ports.ArtifactStore
}

func NewDatasetService(examples ports.ExampleRepository, store ports.ArtifactStore) *DatasetService {
	return &DatasetService{examples: examples, store: store}
}

type ExportResult struct {
	TrainRows int    `json:"train_rows"`
	EvalRows  int    `json:"eval_rows"`
	TrainURI  string `json:"train_uri"`
	EvalURI   string `json:"eval_uri"`
}

// Export fetches examples matching filter, splits off the tail as the
// eval set and uploads both splits under prefix. The warehouse query
// orders rows, so the split is stable for a given filter.
func (s *DatasetService) Export(ctx context.Context, filter ports.ExampleFilter, prefix string, evalFraction float64) (*ExportResult, error) {
	if evalFraction <= 0 || evalFraction >= 1 {
		evalFraction = defaultEvalFraction
	}

	examples, err := s.examples.Fetch(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fetch examples: %w", err)
	}
	if len(examples) == 0 {
		return nil, domain.ErrNoTrainingData
	}

	split := len(examples) - int(float64(len(examples))*evalFraction)
	if split < 1 {
		split = 1
	}
	train, eval := examples[:split], examples[split:]

	if err := s.store.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensure bucket: %w", err)
	}

	trainURI, err := s.uploadCSV(ctx, path.Join(prefix, "train.csv"), train)
	if err != nil {
		return nil, err
	}
	evalURI, err := s.uploadCSV(ctx, path.Join(prefix, "eval.csv"), eval)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"train_rows": len(train),
		"eval_rows":  len(eval),
		"prefix":     prefix,
	}).Info("training data exported")

	return &ExportResult{
		TrainRows: len(train),
		EvalRows:  len(eval),
		TrainURI:  trainURI,
		EvalURI:   evalURI,
	}, nil
}

func (s *DatasetService) uploadCSV(ctx context.Context, key string, examples []*domain.Example) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(domain.CSVHeader()); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range examples {
		if err := w.Write(e.CSVRecord()); err != nil {
			return "", fmt.Errorf("write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}

	uri, err := s.store.Upload(ctx, key, buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return uri, nil
}

// LabelBalance reports how many positive and negative examples the
// warehouse currently holds.
func (s *DatasetService) LabelBalance(ctx context.Context) (positive, negative int64, err error) {
	return s.examples.LabelBalance(ctx)
}

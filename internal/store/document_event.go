package store

import (
	"context"
	"fmt"

	"github.com/mhruby/kantor/ent"
	"github.com/mhruby/kantor/ent/documentevent"
)

// documentRepo implements DocumentRepo backed by ent and the global
// sequence counter.
type documentRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *documentRepo) AppendDocument(ctx context.Context, data DocumentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DocumentEvent.Create().
		SetSequence(seqNum).
		SetDocumentID(data.DocumentID).
		SetMaterialType(data.MaterialType).
		SetSubtype(data.Subtype).
		SetTitle(data.Title).
		SetSubject(data.Subject).
		SetGradeLevel(data.GradeLevel).
		SetQualityScore(data.QualityScore).
		SetIsValid(data.IsValid).
		SetAttempts(data.Attempts).
		SetContent(data.Content).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save document event: %w", err)
	}

	return nil
}

func (r *documentRepo) QueryDocuments(ctx context.Context, opts QueryOpts) ([]DocumentEvent, error) {
	q := r.client.DocumentEvent.Query()
	if opts.After > 0 {
		q = q.Where(documentevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(documentevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(documentevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(documentevent.TimestampLTE(opts.To))
	}
	q = q.Order(ent.Asc(documentevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	docs := make([]DocumentEvent, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, documentFromRow(row))
	}
	return docs, nil
}

func (r *documentRepo) GetDocument(ctx context.Context, documentID string) (*DocumentEvent, error) {
	row, err := r.client.DocumentEvent.Query().
		Where(documentevent.DocumentID(documentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document %s: %w", documentID, err)
	}
	doc := documentFromRow(row)
	return &doc, nil
}

func documentFromRow(row *ent.DocumentEvent) DocumentEvent {
	return DocumentEvent{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		DocumentEventData: DocumentEventData{
			DocumentID:   row.DocumentID,
			MaterialType: row.MaterialType,
			Subtype:      row.Subtype,
			Title:        row.Title,
			Subject:      row.Subject,
			GradeLevel:   row.GradeLevel,
			QualityScore: row.QualityScore,
			IsValid:      row.IsValid,
			Attempts:     row.Attempts,
			Content:      row.Content,
		},
	}
}

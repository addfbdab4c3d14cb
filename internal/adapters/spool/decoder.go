package spool

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// batchExtensions are the file types read from the spool directory.
var batchExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// IsBatchFile reports whether path names an event batch by its extension.
// Hidden files are temporary and never batches.
func IsBatchFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return batchExtensions[strings.ToLower(filepath.Ext(base))]
}

// batchDTO is the on-disk form of a batch. A bare list of events is accepted too.
type batchDTO struct {
	Events []eventDTO `yaml:"events"`
}

type eventDTO struct {
	Name      string   `yaml:"name" validate:"required,max=128"`
	NewStatus string   `yaml:"new_status" validate:"required_if=Name content_status_transitioned"`
	OldStatus string   `yaml:"old_status"`
	Status    string   `yaml:"status"`
	Option    string   `yaml:"option"`
	Item      *itemDTO `yaml:"item"`
}

type itemDTO struct {
	ID          int64  `yaml:"id" validate:"gte=0"`
	ContentType string `yaml:"content_type" validate:"required"`
	Revision    bool   `yaml:"revision"`
	Autosave    bool   `yaml:"autosave"`
}

// Decoder turns batch documents into domain events.
type Decoder struct {
	validate *validator.Validate
}

// NewDecoder creates a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Decode parses a YAML or JSON batch. Either every event is valid or an
// error naming the first invalid one is returned.
func (d *Decoder) Decode(data []byte) ([]domain.Event, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSpoolDecodeFailed.Error())
	}

	var batch batchDTO
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&batch.Events); err != nil {
			return nil, zerr.Wrap(err, domain.ErrSpoolDecodeFailed.Error())
		}
	case yaml.MappingNode:
		if err := doc.Decode(&batch); err != nil {
			return nil, zerr.Wrap(err, domain.ErrSpoolDecodeFailed.Error())
		}
	default:
		return nil, zerr.With(domain.ErrSpoolDecodeFailed, "kind", fmt.Sprintf("%v", doc.Kind))
	}

	events := make([]domain.Event, 0, len(batch.Events))
	for i := range batch.Events {
		dto := &batch.Events[i]
		if err := d.validate.Struct(dto); err != nil {
			return nil, zerr.With(zerr.With(zerr.Wrap(err, domain.ErrInvalidEvent.Error()), "index", i), "event", dto.Name)
		}
		events = append(events, dto.toDomain())
	}
	return events, nil
}

func (e *eventDTO) toDomain() domain.Event {
	event := domain.Event{
		Name:   e.Name,
		Status: e.Status,
		Option: e.Option,
	}

	var item *domain.ContentItem
	if e.Item != nil {
		item = &domain.ContentItem{
			ID:          e.Item.ID,
			ContentType: e.Item.ContentType,
			IsRevision:  e.Item.Revision,
			IsAutosave:  e.Item.Autosave,
		}
		event.Item = item
	}

	if e.Name == domain.EventStatusTransitioned {
		t := domain.NewTransition(e.NewStatus, e.OldStatus, item)
		event.Transition = &t
	}
	return event
}

// Package broker carries dataset records between the importer and the ingestor.
package broker

import (
	"encoding/json"

	"greenlake/internal/domain/constants"
	"greenlake/internal/domain/entity"
	"greenlake/internal/errors"
)

// PushMessage is the body Google Pub/Sub sends to push endpoints.
// The local publisher produces the same shape so the worker cannot tell them apart.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// EncodeRecord serialises a record for the wire.
func EncodeRecord(record *entity.DatasetRecord) ([]byte, error) {
	if record == nil {
		return nil, errors.New("nil dataset record")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// DecodeRecord parses a record produced by EncodeRecord.
func DecodeRecord(data []byte) (*entity.DatasetRecord, error) {
	var record entity.DatasetRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrap(err, "decode dataset record")
	}

	if _, ok := entity.ParseDataset(string(record.Dataset)); !ok {
		return nil, errors.Errorf("unknown dataset %q", record.Dataset)
	}

	return &record, nil
}

// MessageKey is the partitioning key of a record: all versions of one row land
// on the same partition and are applied in order.
func MessageKey(record *entity.DatasetRecord) string {
	return string(record.Dataset) + ":" + record.Key
}

// Attributes returns the metadata sent alongside the payload.
func Attributes(record *entity.DatasetRecord) map[string]string {
	return map[string]string{
		constants.AttrDataset: string(record.Dataset),
		constants.AttrKey:     record.Key,
	}
}

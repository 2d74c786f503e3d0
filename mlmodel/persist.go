package mlmodel

import (
	"bytes"
	"encoding/gob"
	"github.com/pkg/errors"
	"github.com/wlattner/rf/forest"
)

// EncodeModel serializes a trained model for a FileStore. Only models
// produced by RFLearner can be persisted.
func EncodeModel(m TrainedModel) ([]byte, error) {
	rf, ok := m.(*rfModel)
	if !ok {
		return nil, errors.Errorf("EncodeModel can't persist model of type %T", m)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rf.Reg); err != nil {
		return nil, errors.Wrap(err, "EncodeModel couldn't encode forest")
	}
	return buf.Bytes(), nil
}

func DecodeModel(content []byte) (TrainedModel, error) {
	reg := &forest.Regressor{}
	if err := gob.NewDecoder(bytes.NewReader(content)).Decode(reg); err != nil {
		return nil, errors.Wrap(err, "DecodeModel couldn't decode forest")
	}
	return &rfModel{Reg: reg}, nil
}

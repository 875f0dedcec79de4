package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a stored document with its field order preserved. It renders
// as a JSON object whose keys appear in stored order, with ObjectIDs written
// as plain hex strings.
type Document bson.D

// Lookup returns the value stored under key and whether it was present.
func (d Document) Lookup(key string) (interface{}, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// StringField returns the value under key when it is a string.
func (d Document) StringField(key string) (string, bool) {
	v, ok := d.Lookup(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// MarshalJSON writes the document as an ordered JSON object.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONValue(&buf, bson.D(d)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSONValue(buf *bytes.Buffer, v interface{}) error {
	switch val := v.(type) {
	case bson.D:
		buf.WriteByte('{')
		for i, e := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(e.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSONValue(buf, e.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case Document:
		return writeJSONValue(buf, bson.D(val))
	case bson.A:
		return writeJSONArray(buf, []interface{}(val))
	case []interface{}:
		return writeJSONArray(buf, val)
	case bson.M:
		return writeJSONMap(buf, map[string]interface{}(val))
	case map[string]interface{}:
		return writeJSONMap(buf, val)
	case primitive.ObjectID:
		return writeMarshaled(buf, val.Hex())
	case primitive.DateTime:
		return writeMarshaled(buf, val.Time().UTC().Format(time.RFC3339Nano))
	case primitive.Decimal128:
		return writeMarshaled(buf, val.String())
	default:
		return writeMarshaled(buf, val)
	}
}

func writeJSONArray(buf *bytes.Buffer, items []interface{}) error {
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONValue(buf, item); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

// Maps carry no order; keys are written sorted, as encoding/json does.
func writeJSONMap(buf *bytes.Buffer, m map[string]interface{}) error {
	converted := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		var inner bytes.Buffer
		if err := writeJSONValue(&inner, v); err != nil {
			return err
		}
		converted[k] = json.RawMessage(inner.Bytes())
	}
	return writeMarshaled(buf, converted)
}

func writeMarshaled(buf *bytes.Buffer, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// StringifyID returns a copy of doc with its _id rendered as a string.
func StringifyID(doc Document) Document {
	out := make(Document, len(doc))
	copy(out, doc)
	for i, e := range out {
		if e.Key != "_id" {
			continue
		}
		switch id := e.Value.(type) {
		case primitive.ObjectID:
			out[i].Value = id.Hex()
		case string:
		default:
			out[i].Value = fmt.Sprint(id)
		}
	}
	return out
}

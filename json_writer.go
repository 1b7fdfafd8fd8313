package cruise

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter writes a JSON object whose keys keep their insertion order.
// The zero value is an empty object.
type jsonObjectWriter struct {
	buf bytes.Buffer
	err error
}

// Append writes 'key' and the JSON form of 'value'. After a marshaling error
// every call is a no-op and MarshalJSON returns that error.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	v, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot marshal %q: %w", key, err)
		return w
	}
	if w.buf.Len() > 0 {
		w.buf.WriteByte(',')
	}
	fmt.Fprintf(&w.buf, "%q:", key)
	w.buf.Write(v)
	return w
}

// MarshalJSON returns the object written so far.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return fmt.Appendf(nil, "{%s}", w.buf.Bytes()), nil
}

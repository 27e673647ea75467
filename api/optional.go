package api

import "encoding/json"

// Optional is a JSON field that remembers whether the key appeared in the
// payload at all. Present is false when the field was omitted; Present with a
// nil Value means the caller sent an explicit null. This keeps "omitted" and
// "null" distinguishable all the way down to the partial-update column maps.
type Optional[T any] struct {
	Present bool
	Value   *T
}

// UnmarshalJSON is only invoked for keys that exist in the payload, so its
// being called at all is what marks the field present.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	o.Value = &value
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

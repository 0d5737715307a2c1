package result

import "encoding/json"

// The wire form of a container is exactly its visible fields:
// Result is {"ok":true,"value":...} or {"ok":false,"error":...},
// Option is {"some":true,"value":...} or {"some":false}.

func (r Result[T, E]) MarshalJSON() ([]byte, error) {
	if r.ok {
		return json.Marshal(struct {
			Ok    bool `json:"ok"`
			Value T    `json:"value"`
		}{true, r.value})
	}
	return json.Marshal(struct {
		Ok    bool `json:"ok"`
		Error E    `json:"error"`
	}{false, r.err})
}

func (r *Result[T, E]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Ok    bool            `json:"ok"`
		Value json.RawMessage `json:"value"`
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Result[T, E]{ok: raw.Ok}
	if raw.Ok {
		if len(raw.Value) > 0 {
			return json.Unmarshal(raw.Value, &r.value)
		}
		return nil
	}
	if len(raw.Error) > 0 {
		return json.Unmarshal(raw.Error, &r.err)
	}
	return nil
}

func (o Option[T]) MarshalJSON() ([]byte, error) {
	if o.some {
		return json.Marshal(struct {
			Some  bool `json:"some"`
			Value T    `json:"value"`
		}{true, o.value})
	}
	return json.Marshal(struct {
		Some bool `json:"some"`
	}{false})
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Some  bool            `json:"some"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = Option[T]{some: raw.Some}
	if raw.Some && len(raw.Value) > 0 {
		return json.Unmarshal(raw.Value, &o.value)
	}
	return nil
}

package lqueue

import (
	"errors"
	"fmt"

	"github.com/sugawarayuuta/sonnet"
)

// MarshalJSON encodes q as a JSON array of its payloads, head to
// tail. A nil queue encodes as null.
func (q *Queue) MarshalJSON() ([]byte, error) {
	if q == nil {
		return []byte("null"), nil
	}

	vals := q.Values()
	if vals == nil {
		vals = []string{}
	}
	return sonnet.Marshal(vals)
}

// UnmarshalJSON decodes a JSON array of strings, inserting each at the
// tail of q. Existing elements are kept. Decoding into a nil queue
// is an error.
func (q *Queue) UnmarshalJSON(data []byte) error {
	if q == nil {
		return errors.New("lqueue: decode into nil queue")
	}

	var vals []string
	if err := sonnet.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("lqueue: decode queue: %w", err)
	}

	for _, v := range vals {
		q.InsertTail(v)
	}
	return nil
}

package ds

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// DumpJSON encodes v for a zerolog RawJSON field. When v cannot be encoded the
// error text is returned as a JSON string, so the log line stays valid JSON.
func DumpJSON[T any](v T) json.RawMessage {
	bs, err := json.Marshal(v)
	if err == nil {
		return bs
	}
	bs, _ = json.Marshal(errors.Wrap(err, "ds.DumpJSON error").Error())
	return bs
}

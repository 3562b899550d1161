package models

import (
	"bytes"
	"fmt"
	"strconv"
)

// FlexID is a time-based integer identifier that tolerates being stored as
// either a JSON number or a JSON string. Stored documents written by older
// clients carry string ids, so both forms must compare equal after decoding.
type FlexID int64

// UnmarshalJSON accepts both 1736899200000 and "1736899200000".
func (id *FlexID) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}

	parsed, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("parse id %q: %w", string(data), err)
	}

	*id = FlexID(parsed)
	return nil
}

func (id FlexID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

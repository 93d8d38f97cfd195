package snapshot

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
)

// FromJSON decodes a Snapshot from extractor output. Upstream OCR and
// spreadsheet extraction occasionally emit almost-JSON (trailing commas,
// single quotes, unquoted keys); a strict parse is attempted first, then the
// payload is repaired and parsed once more. Fields missing from the payload
// keep their zero value, so the returned Snapshot is always fully defined.
func FromJSON(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err == nil {
		return &snap, nil
	}

	repaired, err := jsonrepair.RepairJSON(string(data))
	if err != nil {
		return nil, fmt.Errorf("snapshot payload is not valid JSON and could not be repaired: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &snap); err != nil {
		return nil, fmt.Errorf("repaired snapshot payload still failed to decode: %w", err)
	}
	return &snap, nil
}

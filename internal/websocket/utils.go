// internal/websocket/utils.go
package websocket

import (
	"encoding/json"
	"errors"
)

var errMissingData = errors.New("message carries no data")

// decodeData re-decodes a message's loosely typed data into T.
func decodeData[T any](data interface{}) (T, error) {
	var out T
	if data == nil {
		return out, errMissingData
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}

package remoteapi

import (
	"bytes"
	"encoding/json"
	"net/http"

	"autoparts/internal/errors"
)

// envelope is the success wrapper of the remote API.
type envelope struct {
	Success   *bool           `json:"success"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
	Path      string          `json:"path"`
}

// decodeSuccess unwraps a 2xx body into out. 204 and empty bodies carry no
// data; a body without "success" is the data itself.
func decodeSuccess(status int, body []byte, path string, out any) error {
	if status == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil || env.Success == nil {
		if out == nil {
			return nil
		}

		return errors.Wrap(json.Unmarshal(body, out), "decode remote response")
	}

	if !*env.Success {
		return parseAPIError(status, body, path)
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	return errors.Wrap(json.Unmarshal(env.Data, out), "decode remote data")
}

package event

import (
	"encoding/json"
	"fmt"
)

// Decode returns evt's payload as T. Payloads published on the MemoryBus
// already hold the typed struct; anything else (a map read back from a log,
// say) is converted through JSON.
func Decode[T any](evt Event) (T, error) {
	if v, ok := evt.Payload.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(evt.Payload)
	if err == nil {
		err = json.Unmarshal(data, &result)
	}
	if err != nil {
		return result, fmt.Errorf(ErrMsgDecodePayloadFmt, evt.Type, err)
	}
	return result, nil
}

// Package codec decodes and encodes metric configurations.
//
// Both codecs read and write plain JSON, so a configuration written by one is
// readable by the other. They differ only in the library doing the work.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Names lists the names accepted by ByName.
func Names() []string {
	return []string{JSON{}.Name(), GoJSON{}.Name()}
}

// Default is the codec used when none is given.
var Default Codec = GoJSON{}

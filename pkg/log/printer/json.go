package printer

import (
	"encoding/json"

	"github.com/TylerBrock/colorjson"
)

// FormatJSON renders v as indented JSON, colored when colors are enabled.
func FormatJSON(v interface{}) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	var obj interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", err
	}

	if !IsColorEnabled() {
		out, err := json.MarshalIndent(obj, "", "  ")
		return string(out), err
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	out, err := f.Marshal(obj)
	return string(out), err
}

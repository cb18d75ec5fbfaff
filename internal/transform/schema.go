package transform

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SettingsSchema returns the JSON Schema describing the settings accepted
// by a bundled plugin, for the host's -describe diagnostic surface.
func SettingsSchema(pluginName string) ([]byte, error) {
	var settings any
	switch pluginName {
	case "mirror":
		settings = &MirrorSettings{}
	case "blur":
		settings = &BlurSettings{}
	default:
		return nil, fmt.Errorf("unknown plugin '%s' (bundled plugins: mirror, blur)", pluginName)
	}

	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(settings)
	return json.MarshalIndent(schema, "", "  ")
}

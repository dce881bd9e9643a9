package save

import "github.com/invopop/jsonschema"

// Schema describes Document as a JSON Schema.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(new(Document))
	schema.Title = "Caverns of Aether save"
	schema.Description = "Uncompressed content of a gzip save file."
	return schema
}

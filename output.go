package spv

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// ToJSON renders a PipelineInfo as indented JSON, the CLI's default
// output format.
func ToJSON(info *PipelineInfo) ([]byte, error) {
	return json.MarshalIndent(info, "", "  ")
}

// ToYAML renders a PipelineInfo as YAML, for downstream asset pipelines
// that keep their shader-binding manifests in YAML rather than JSON.
func ToYAML(info *PipelineInfo) ([]byte, error) {
	return yaml.Marshal(info)
}

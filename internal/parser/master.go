package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/starford/hrpaudit/internal/models"
)

// ErrInvalidMaster is returned when a master document cannot be decoded.
var ErrInvalidMaster = errors.New("invalid master checklist")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseMaster decodes a master checklist. The document is either a bare list
// of requirements or an object holding them under "requirements"; unknown
// fields are ignored. JSON is tried first, anything else is read as YAML.
func ParseMaster(data []byte) ([]models.Requirement, error) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidMaster)
	}
	switch trimmed[0] {
	case '[', '{':
		return parseMasterJSON(trimmed)
	default:
		return parseMasterYAML(trimmed)
	}
}

func parseMasterJSON(data []byte) ([]models.Requirement, error) {
	if data[0] == '[' {
		var reqs []models.Requirement
		if err := json.Unmarshal(data, &reqs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMaster, err)
		}
		return nonNil(reqs), nil
	}
	var doc struct {
		Requirements []models.Requirement `json:"requirements"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMaster, err)
	}
	return nonNil(doc.Requirements), nil
}

func parseMasterYAML(data []byte) ([]models.Requirement, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMaster, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidMaster)
	}
	node := root.Content[0]
	switch node.Kind {
	case yaml.SequenceNode:
		var reqs []models.Requirement
		if err := node.Decode(&reqs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMaster, err)
		}
		return nonNil(reqs), nil
	case yaml.MappingNode:
		var doc struct {
			Requirements []models.Requirement `yaml:"requirements"`
		}
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMaster, err)
		}
		return nonNil(doc.Requirements), nil
	default:
		return nil, fmt.Errorf("%w: expected a list or an object", ErrInvalidMaster)
	}
}

func nonNil(reqs []models.Requirement) []models.Requirement {
	if reqs == nil {
		return []models.Requirement{}
	}
	return reqs
}

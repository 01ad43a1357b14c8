package yaml_adapter

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/specialistvlad/uaschema/internal/config"
	"github.com/specialistvlad/uaschema/internal/nodeid"
	"gopkg.in/yaml.v3"
)

type fileDoc struct {
	Enumerations []*enumerationDoc `yaml:"enumerations,omitempty"`
	Structures   []*structureDoc   `yaml:"structures,omitempty"`
}

type enumerationDoc struct {
	Name        string      `yaml:"name"`
	ID          identityDoc `yaml:"id"`
	Namespace   *int        `yaml:"namespace,omitempty"`
	Description string      `yaml:"description,omitempty"`
	Values      []valueDoc  `yaml:"values"`
}

type valueDoc struct {
	Name        string `yaml:"name"`
	Value       int64  `yaml:"value"`
	Description string `yaml:"description,omitempty"`
}

type structureDoc struct {
	Name        string      `yaml:"name"`
	ID          identityDoc `yaml:"id"`
	Namespace   *int        `yaml:"namespace,omitempty"`
	Description string      `yaml:"description,omitempty"`
	Fields      []fieldDoc  `yaml:"fields,omitempty"`
}

type fieldDoc struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Array       bool   `yaml:"array,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// identityDoc accepts the canonical text (`"ns=0;i=852"`), a bare number
// combined with the sibling `namespace` key, or a mapping
// `{namespace: 0, numeric: 852}` whose identifier is one of numeric, string
// or guid.
type identityDoc struct {
	line int

	text      *string
	numeric   *uint64
	namespace *int
	// id is set directly for identifiers that have no text shorthand here.
	id  *nodeid.ID
	err error
}

type identityMapping struct {
	Namespace *int    `yaml:"namespace"`
	Numeric   *uint64 `yaml:"numeric"`
	String    *string `yaml:"string"`
	GUID      *string `yaml:"guid"`
}

// UnmarshalYAML implements yaml.Unmarshaler. Identity problems are recorded
// rather than returned, so one bad identity does not hide the rest of the file.
func (i *identityDoc) UnmarshalYAML(node *yaml.Node) error {
	i.line = node.Line

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!int" {
			var n uint64
			if err := node.Decode(&n); err != nil {
				i.err = fmt.Errorf("%w: %q is not a numeric identifier", nodeid.ErrMalformedIdentity, node.Value)
				return nil
			}
			i.numeric = &n
			return nil
		}
		text := node.Value
		i.text = &text
		return nil

	case yaml.MappingNode:
		var m identityMapping
		if err := node.Decode(&m); err != nil {
			i.err = fmt.Errorf("%w: %v", nodeid.ErrMalformedIdentity, err)
			return nil
		}
		i.namespace = m.Namespace
		ns := 0
		if m.Namespace != nil {
			ns = *m.Namespace
		}
		switch {
		case m.Numeric != nil && m.String == nil && m.GUID == nil:
			i.numeric = m.Numeric
		case m.String != nil && m.Numeric == nil && m.GUID == nil:
			id, err := nodeid.Make(ns, *m.String)
			i.id, i.err = &id, err
		case m.GUID != nil && m.Numeric == nil && m.String == nil:
			g, err := uuid.Parse(*m.GUID)
			if err != nil {
				i.err = fmt.Errorf("%w: guid %q: %v", nodeid.ErrMalformedIdentity, *m.GUID, err)
				return nil
			}
			id, err := nodeid.Make(ns, g)
			i.id, i.err = &id, err
		default:
			i.err = fmt.Errorf("%w: identity mapping needs exactly one of numeric, string or guid", nodeid.ErrMalformedIdentity)
		}
		return nil

	default:
		i.err = fmt.Errorf("%w: identity must be a string, a number or a mapping", nodeid.ErrMalformedIdentity)
		return nil
	}
}

// MarshalYAML implements yaml.Marshaler; identities are always written as text.
func (i identityDoc) MarshalYAML() (any, error) {
	if i.text == nil {
		return nil, fmt.Errorf("identity has no text form")
	}
	return *i.text, nil
}

// resolve combines the identity with the declaration's namespace key.
func (i *identityDoc) resolve(namespace *int) (nodeid.ID, error) {
	if i.err != nil {
		return nodeid.ID{}, i.err
	}
	if i.id != nil {
		if namespace != nil && *namespace != int(i.id.Namespace()) {
			return nodeid.ID{}, fmt.Errorf("%w: namespace %d disagrees with identity %s", nodeid.ErrMalformedIdentity, *namespace, i.id)
		}
		return *i.id, nil
	}
	ns := i.namespace
	if ns == nil {
		ns = namespace
	} else if namespace != nil && *namespace != *ns {
		return nodeid.ID{}, fmt.Errorf("%w: namespace %d disagrees with identity namespace %d", nodeid.ErrMalformedIdentity, *namespace, *ns)
	}
	return config.Identity(i.text, i.numeric, ns)
}

func textIdentity(id nodeid.ID) identityDoc {
	text := id.String()
	return identityDoc{text: &text}
}

package device

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// keywordList accepts either a YAML sequence or a single space-joined string.
type keywordList []string

func (l *keywordList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var joined string
		if err := node.Decode(&joined); err != nil {
			return err
		}
		*l = keywordList{joined}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*l = list
		return nil
	default:
		return fmt.Errorf("line %d: keyword group must be a list or a string", node.Line)
	}
}

type keywordDocument struct {
	TV      keywordList `yaml:"tv"`
	Tablet  keywordList `yaml:"tablet"`
	Mobile  keywordList `yaml:"mobile"`
	Desktop keywordList `yaml:"desktop"`
}

// LoadKeywords decodes a YAML keyword document:
//
//	tv: smarttv googletv appletv
//	tablet: [ipad, tablet, kindle]
//	mobile:
//	  - iphone
//	  - mobile
//	desktop: windows macintosh x11
//
// Missing groups are left empty. The result is normalized.
func LoadKeywords(r io.Reader) (Keywords, error) {
	var doc keywordDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Keywords{}, errors.Join(ErrInvalidKeywords, err)
	}
	return Keywords{
		TV:      doc.TV,
		Tablet:  doc.Tablet,
		Mobile:  doc.Mobile,
		Desktop: doc.Desktop,
	}.Normalize(), nil
}

// LoadKeywordsFile reads a keyword document from path.
func LoadKeywordsFile(path string) (Keywords, error) {
	f, err := os.Open(path)
	if err != nil {
		return Keywords{}, errors.Join(ErrKeywordsFile, err)
	}
	defer f.Close()
	return LoadKeywords(f)
}

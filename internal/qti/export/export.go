package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/mind-engage/mindengage-mcq/internal/mcq"
)

// Small QTI 2.1 exporter: a manifest plus one single-choice item per question.

const itemNS = "http://www.imsglobal.org/xsd/imsqti_v2p1"

// BuildPackage zips the bank. Items are named by position because question
// ids are not guaranteed unique.
func BuildPackage(questions []mcq.Question) ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	mf := imsManifest{Xmlns: "http://www.imsglobal.org/xsd/imscp_v1p1"}
	for i, q := range questions {
		ident := ItemIdentifier(i, q)
		itemName := ident + ".xml"
		mf.Resources = append(mf.Resources, imsResource{
			Identifier: ident,
			Type:       "imsqti_item_xmlv2p1",
			Href:       itemName,
			Files:      []imsFile{{Href: itemName}},
		})
		body, err := buildItemXML(ident, q)
		if err != nil {
			return nil, err
		}
		w, err := zw.Create(itemName)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(body); err != nil {
			return nil, err
		}
	}

	mfw, err := zw.Create("imsmanifest.xml")
	if err != nil {
		return nil, err
	}
	b, err := xml.MarshalIndent(mf, "", "  ")
	if err != nil {
		return nil, err
	}
	mfw.Write([]byte(xml.Header))
	mfw.Write(b)

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ItemIdentifier names the item for the question at position i.
func ItemIdentifier(i int, q mcq.Question) string {
	return fmt.Sprintf("item-%03d-q%d", i+1, q.ID)
}

// --- mini XML model for manifest (export only) ---
type imsManifest struct {
	XMLName   xml.Name      `xml:"manifest"`
	Xmlns     string        `xml:"xmlns,attr,omitempty"`
	Resources []imsResource `xml:"resources>resource"`
}
type imsResource struct {
	Identifier string    `xml:"identifier,attr"`
	Type       string    `xml:"type,attr"`
	Href       string    `xml:"href,attr"`
	Files      []imsFile `xml:"file"`
}
type imsFile struct {
	Href string `xml:"href,attr"`
}

// --- item model ---
type assessmentItem struct {
	XMLName      xml.Name            `xml:"assessmentItem"`
	Xmlns        string              `xml:"xmlns,attr"`
	Identifier   string              `xml:"identifier,attr"`
	Title        string              `xml:"title,attr"`
	Adaptive     bool                `xml:"adaptive,attr"`
	TimeDep      bool                `xml:"timeDependent,attr"`
	ResponseDecl responseDeclaration `xml:"responseDeclaration"`
	Body         itemBody            `xml:"itemBody"`
}
type responseDeclaration struct {
	Identifier  string           `xml:"identifier,attr"`
	Cardinality string           `xml:"cardinality,attr"`
	BaseType    string           `xml:"baseType,attr"`
	Correct     *correctResponse `xml:"correctResponse,omitempty"`
}
type correctResponse struct {
	Values []string `xml:"value"`
}
type itemBody struct {
	Prompt      string            `xml:"p"`
	Interaction choiceInteraction `xml:"choiceInteraction"`
}
type choiceInteraction struct {
	ResponseIdentifier string         `xml:"responseIdentifier,attr"`
	Shuffle            bool           `xml:"shuffle,attr"`
	MaxChoices         int            `xml:"maxChoices,attr"`
	Choices            []simpleChoice `xml:"simpleChoice"`
}
type simpleChoice struct {
	Identifier string `xml:"identifier,attr"`
	Label      string `xml:",chardata"`
}

func buildItemXML(ident string, q mcq.Question) ([]byte, error) {
	it := assessmentItem{
		Xmlns:      itemNS,
		Identifier: ident,
		Title:      fmt.Sprintf("Question %d", q.ID),
		ResponseDecl: responseDeclaration{
			Identifier:  "RESPONSE",
			Cardinality: "single",
			BaseType:    "identifier",
		},
		Body: itemBody{
			Prompt: q.Text,
			Interaction: choiceInteraction{
				ResponseIdentifier: "RESPONSE",
				MaxChoices:         1,
			},
		},
	}
	if q.CorrectAnswer != "" {
		it.ResponseDecl.Correct = &correctResponse{Values: []string{q.CorrectAnswer}}
	}
	for i, opt := range q.Options {
		id, label := splitOption(i, opt)
		it.Body.Interaction.Choices = append(it.Body.Interaction.Choices, simpleChoice{Identifier: id, Label: label})
	}
	b, err := xml.MarshalIndent(it, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), b...), nil
}

// splitOption separates the letter token from an option line. Lines that do
// not start with a letter token get a positional identifier.
func splitOption(i int, opt string) (id, label string) {
	l := mcq.Classify(opt)
	if l.Kind == mcq.KindOption {
		return strings.ToUpper(l.Letter), l.Text
	}
	if i < 26 {
		return string(rune('A' + i)), opt
	}
	return fmt.Sprintf("OPT%d", i+1), opt
}

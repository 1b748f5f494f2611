// Package response decodes the SellerCenter response envelope.
//
// Every response is either a SuccessResponse, whose Body is handed to the
// entity factories, or an ErrorResponse, which is turned into an
// *ApplicationError.
package response

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/ianaindex"
)

// Root element names of the two envelope variants
const (
	RootSuccess = "SuccessResponse"
	RootError   = "ErrorResponse"
)

// Protocol errors
var (
	ErrMalformedXML  = errors.New("sellercenter: malformed XML response")
	ErrEmptyDocument = errors.New("sellercenter: empty XML document")
)

// Head is the metadata section of a successful response
type Head struct {
	RequestID         string
	RequestAction     string
	ResponseType      string
	Timestamp         *time.Time
	RequestParameters map[string]string
}

// SuccessResponse is a decoded successful response
type SuccessResponse struct {
	Head Head
	// Body is the action-specific payload; never nil
	Body *etree.Element
}

// Parse decodes raw into an XML tree
func Parse(raw []byte) (*etree.Document, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrEmptyDocument
	}
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrEmptyDocument
	}
	if err := checkSingleRoot(doc); err != nil {
		return nil, err
	}
	if len(root.ChildElements()) == 0 && strings.TrimSpace(root.Text()) == "" {
		return nil, ErrEmptyDocument
	}
	return doc, nil
}

// checkSingleRoot rejects documents with more than one top-level element or
// with text outside the root
func checkSingleRoot(doc *etree.Document) error {
	if n := len(doc.ChildElements()); n != 1 {
		return fmt.Errorf("%w: %d root elements", ErrMalformedXML, n)
	}
	for _, tok := range doc.Child {
		if cd, ok := tok.(*etree.CharData); ok && strings.TrimSpace(cd.Data) != "" {
			return fmt.Errorf("%w: text outside the root element", ErrMalformedXML)
		}
	}
	return nil
}

// Validate returns an *ApplicationError when raw is an ErrorResponse
func Validate(raw []byte) error {
	doc, err := Parse(raw)
	if err != nil {
		return err
	}
	return validateRoot(doc.Root())
}

// Handle parses raw and returns the success document, or the typed error
// the document describes
func Handle(raw []byte) (*SuccessResponse, error) {
	doc, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	root := doc.Root()
	if err := validateRoot(root); err != nil {
		return nil, err
	}
	return newSuccessResponse(root), nil
}

func validateRoot(root *etree.Element) error {
	switch root.Tag {
	case RootSuccess:
		return nil
	case RootError:
		return newApplicationError(root)
	default:
		return fmt.Errorf("%w: unexpected root element <%s>", ErrMalformedXML, root.Tag)
	}
}

func newSuccessResponse(root *etree.Element) *SuccessResponse {
	resp := &SuccessResponse{Body: root.SelectElement("Body")}
	if resp.Body == nil {
		resp.Body = etree.NewElement("Body")
	}
	head := root.SelectElement("Head")
	if head == nil {
		return resp
	}
	resp.Head = Head{
		RequestID:     childText(head, "RequestId"),
		RequestAction: childText(head, "RequestAction"),
		ResponseType:  childText(head, "ResponseType"),
	}
	if ts := childText(head, "Timestamp"); ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			resp.Head.Timestamp = &t
		}
	}
	if params := head.SelectElement("RequestParameters"); params != nil {
		resp.Head.RequestParameters = make(map[string]string)
		for _, p := range params.ChildElements() {
			resp.Head.RequestParameters[p.Tag] = strings.TrimSpace(p.Text())
		}
	}
	return resp
}

func childText(parent *etree.Element, tag string) string {
	e := parent.SelectElement(tag)
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Text())
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

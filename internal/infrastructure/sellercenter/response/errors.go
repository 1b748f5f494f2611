package response

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// ErrorDetail is a per-field remark attached to an ErrorResponse body
type ErrorDetail struct {
	Field     string
	Message   string
	Value     string
	SellerSku string
}

// ApplicationError is a business-level failure reported by SellerCenter
type ApplicationError struct {
	Message string
	Code    int
	Type    string
	Action  string
	Details []ErrorDetail
}

// Error implements the error interface
func (e *ApplicationError) Error() string {
	return fmt.Sprintf("sellercenter: %s failed (%s error %d): %s", e.Action, e.Type, e.Code, e.Message)
}

// IsSenderError returns true when the request itself was rejected
func (e *ApplicationError) IsSenderError() bool {
	return strings.EqualFold(e.Type, "Sender")
}

// newApplicationError reads the error head; absent fields stay zero
func newApplicationError(root *etree.Element) *ApplicationError {
	appErr := &ApplicationError{}
	if head := root.SelectElement("Head"); head != nil {
		appErr.Message = childText(head, "ErrorMessage")
		appErr.Type = childText(head, "ErrorType")
		appErr.Action = childText(head, "RequestAction")
		if code, err := strconv.Atoi(childText(head, "ErrorCode")); err == nil {
			appErr.Code = code
		}
	}
	if body := root.SelectElement("Body"); body != nil {
		for _, d := range body.SelectElements("ErrorDetail") {
			appErr.Details = append(appErr.Details, ErrorDetail{
				Field:     childText(d, "Field"),
				Message:   childText(d, "Message"),
				Value:     childText(d, "Value"),
				SellerSku: childText(d, "SellerSku"),
			})
		}
	}
	return appErr
}

package store

import (
	"net/http"
	"net/mail"
	"strings"

	platform "github.com/jmgilman/go/errors"
)

// Validator is implemented by record types that can check their own
// consistency. Stores validate records before sending them to the
// backend, mirroring the backend's own entry validation so obviously
// malformed records fail fast without a round trip.
type Validator interface {
	Validate() error
}

// RequestStatus is the lifecycle state of a Request.
type RequestStatus string

// Request lifecycle states.
const (
	RequestStatusDraft      RequestStatus = "Draft"
	RequestStatusPublished  RequestStatus = "Published"
	RequestStatusInProgress RequestStatus = "InProgress"
	RequestStatusCompleted  RequestStatus = "Completed"
	RequestStatusCancelled  RequestStatus = "Cancelled"
)

func (s RequestStatus) valid() bool {
	switch s {
	case RequestStatusDraft, RequestStatusPublished, RequestStatusInProgress,
		RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// Request is a marketplace request: something a participant needs done.
type Request struct {
	// Title of the request.
	Title string `json:"title"`
	// Description details what is needed.
	Description string `json:"description"`
	// Status is the current lifecycle state.
	Status RequestStatus `json:"status"`
	// Skills required to fulfill the request. At least one.
	Skills []string `json:"skills"`
}

// Validate checks the request against the backend's entry rules.
func (r Request) Validate() error {
	if r.Title == "" {
		return platform.New(platform.CodeInvalidInput, "request title cannot be empty")
	}
	if r.Description == "" {
		return platform.New(platform.CodeInvalidInput, "request description cannot be empty")
	}
	if len(r.Skills) == 0 {
		return platform.New(platform.CodeInvalidInput, "request must have at least one skill")
	}
	if !r.Status.valid() {
		return platform.Newf(platform.CodeInvalidInput, "unknown request status %q", r.Status)
	}
	return nil
}

// Offer is a marketplace offer: capabilities a participant provides.
type Offer struct {
	// Title of the offer.
	Title string `json:"title"`
	// Description details what is offered.
	Description string `json:"description"`
	// Capabilities being offered. At least one.
	Capabilities []string `json:"capabilities"`
	// Availability is an optional free-form timeframe.
	Availability string `json:"availability,omitempty"`
}

// Validate checks the offer against the backend's entry rules.
func (o Offer) Validate() error {
	if o.Title == "" {
		return platform.New(platform.CodeInvalidInput, "offer title cannot be empty")
	}
	if o.Description == "" {
		return platform.New(platform.CodeInvalidInput, "offer description cannot be empty")
	}
	if len(o.Capabilities) == 0 {
		return platform.New(platform.CodeInvalidInput, "offer must have at least one capability")
	}
	return nil
}

// Organization is a group of participants acting under a shared identity.
type Organization struct {
	// Name the organization goes by.
	Name string `json:"name"`
	// Description of the organization.
	Description string `json:"description"`
	// FullLegalName is the registered legal name. Required.
	FullLegalName string `json:"full_legal_name"`
	// Logo is an optional raw image payload.
	Logo []byte `json:"logo,omitempty"`
	// Email is the organization's contact address.
	Email string `json:"email"`
	// URLs are the organization's web presences.
	URLs []string `json:"urls"`
	// Location is a free-form place description.
	Location string `json:"location"`
}

// Validate checks the organization against the backend's entry rules.
// Name and description are unconstrained; the backend requires only a
// legal name, a well-formed email, and an image payload for the logo.
func (o Organization) Validate() error {
	if strings.TrimSpace(o.FullLegalName) == "" {
		return platform.New(platform.CodeInvalidInput, "organization full legal name cannot be empty")
	}
	if len(o.Logo) > 0 && !strings.HasPrefix(http.DetectContentType(o.Logo), "image/") {
		return platform.New(platform.CodeInvalidInput, "organization logo must be a valid image")
	}
	if _, err := mail.ParseAddress(o.Email); err != nil {
		return platform.Newf(platform.CodeInvalidInput, "organization email %q is not valid", o.Email)
	}
	return nil
}

// ServiceType is a moderated category that requests and offers reference.
type ServiceType struct {
	// Name of the service type.
	Name string `json:"name"`
	// Description of what the category covers.
	Description string `json:"description"`
	// Technical distinguishes technical from non-technical services.
	Technical bool `json:"technical"`
}

// Validate checks the service type against the backend's entry rules.
func (s ServiceType) Validate() error {
	if s.Name == "" {
		return platform.New(platform.CodeInvalidInput, "service type name cannot be empty")
	}
	if s.Description == "" {
		return platform.New(platform.CodeInvalidInput, "service type description cannot be empty")
	}
	return nil
}

package store

import (
	"testing"

	platform "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/require"
)

func TestRequestValidate(t *testing.T) {
	valid := Request{
		Title:       "Need a logo",
		Description: "Vector logo for the community site",
		Status:      RequestStatusDraft,
		Skills:      []string{"design"},
	}

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr bool
	}{
		{"valid", func(r *Request) {}, false},
		{"empty title", func(r *Request) { r.Title = "" }, true},
		{"empty description", func(r *Request) { r.Description = "" }, true},
		{"no skills", func(r *Request) { r.Skills = nil }, true},
		{"unknown status", func(r *Request) { r.Status = "Archived" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Equal(t, platform.CodeInvalidInput, platform.GetCode(err))
		})
	}
}

func TestRequestStatusValues(t *testing.T) {
	for _, s := range []RequestStatus{
		RequestStatusDraft,
		RequestStatusPublished,
		RequestStatusInProgress,
		RequestStatusCompleted,
		RequestStatusCancelled,
	} {
		require.True(t, s.valid(), "status %q", s)
	}
	require.False(t, RequestStatus("").valid())
}

func TestOfferValidate(t *testing.T) {
	valid := Offer{
		Title:        "Web development",
		Description:  "Svelte front ends and Go services",
		Capabilities: []string{"svelte"},
	}

	tests := []struct {
		name    string
		mutate  func(*Offer)
		wantErr bool
	}{
		{"valid", func(o *Offer) {}, false},
		{"availability is optional", func(o *Offer) { o.Availability = "" }, false},
		{"empty title", func(o *Offer) { o.Title = "" }, true},
		{"empty description", func(o *Offer) { o.Description = "" }, true},
		{"no capabilities", func(o *Offer) { o.Capabilities = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid
			tt.mutate(&o)
			err := o.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Equal(t, platform.CodeInvalidInput, platform.GetCode(err))
		})
	}
}

func TestOrganizationValidate(t *testing.T) {
	// Minimal PNG header, enough for content-type sniffing.
	pngLogo := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

	valid := Organization{
		Name:          "hAppenings",
		Description:   "Community of practice",
		FullLegalName: "hAppenings Community Ltd",
		Email:         "contact@happenings.community",
		URLs:          []string{"https://happenings.community"},
		Location:      "Global",
	}

	tests := []struct {
		name    string
		mutate  func(*Organization)
		wantErr bool
	}{
		{"valid", func(o *Organization) {}, false},
		{"valid with image logo", func(o *Organization) { o.Logo = pngLogo }, false},
		{"empty name is allowed", func(o *Organization) { o.Name = "" }, false},
		{"empty description is allowed", func(o *Organization) { o.Description = "" }, false},
		{"empty legal name", func(o *Organization) { o.FullLegalName = "" }, true},
		{"whitespace legal name", func(o *Organization) { o.FullLegalName = "   " }, true},
		{"non-image logo", func(o *Organization) { o.Logo = []byte("plain text payload") }, true},
		{"invalid email", func(o *Organization) { o.Email = "not-an-email" }, true},
		{"empty email", func(o *Organization) { o.Email = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid
			tt.mutate(&o)
			err := o.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Equal(t, platform.CodeInvalidInput, platform.GetCode(err))
		})
	}
}

func TestServiceTypeValidate(t *testing.T) {
	tests := []struct {
		name    string
		st      ServiceType
		wantErr bool
	}{
		{"valid technical", ServiceType{Name: "Hosting", Description: "Server hosting", Technical: true}, false},
		{"valid non-technical", ServiceType{Name: "Facilitation", Description: "Meeting facilitation"}, false},
		{"empty name", ServiceType{Description: "Server hosting"}, true},
		{"empty description", ServiceType{Name: "Hosting"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.st.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Equal(t, platform.CodeInvalidInput, platform.GetCode(err))
		})
	}
}

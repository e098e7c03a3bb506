package domain

import "github.com/google/uuid"

// Report is a COUNTER report type, e.g. "TR" for release "5".
type Report struct {
	ReportID       string `json:"report_id"`
	CounterRelease string `json:"counter_release"`
}

// Platform is a content platform known to the COUNTER registry.
type Platform struct {
	ID                  uuid.UUID
	Name                string
	Abbrev              string
	ContentProviderName string
	Website             string
	Deprecated          bool

	// Reports and SushiServices are only filled for detail lookups.
	Reports       []Report
	SushiServices []uuid.UUID
}

// SushiService is a COUNTER API endpoint registered for a platform.
// The optional booleans are unknown when nil.
type SushiService struct {
	ID                     uuid.UUID
	CounterRelease         string
	URL                    string
	PlatformID             *uuid.UUID
	IPAddressAuthorization *bool
	APIKeyRequired         *bool
	PlatformAttrRequired   *bool
	RequestorIDRequired    *bool
	Deprecated             bool
}

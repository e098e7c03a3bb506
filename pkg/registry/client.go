// Package registry is a client of the COUNTER registry REST API, the source
// of the platform and SUSHI service list.
package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"countervalidator/pkg/domain"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Platform is a platform entry of the registry.
type Platform struct {
	ID                  uuid.UUID       `json:"id"                    validate:"required"`
	Name                string          `json:"name"                  validate:"required,max=400"`
	Abbrev              string          `json:"abbrev"                validate:"max=50"`
	ContentProviderName string          `json:"content_provider_name" validate:"max=400"`
	Website             string          `json:"website"`
	Reports             []domain.Report `json:"reports"               validate:"dive"`
	SushiServices       []ServiceLink   `json:"sushi_services"        validate:"dive"`
}

// ServiceLink points to the registry resource describing one SUSHI service.
type ServiceLink struct {
	URL string `json:"url" validate:"required,url"`
}

// SushiService is a SUSHI service entry of the registry.
type SushiService struct {
	ID                     uuid.UUID `json:"id"                       validate:"required"`
	CounterRelease         string    `json:"counter_release"          validate:"required,max=20"`
	URL                    string    `json:"url"`
	IPAddressAuthorization *bool     `json:"ip_address_authorization"`
	APIKeyRequired         *bool     `json:"api_key_required"`
	PlatformAttrRequired   *bool     `json:"platform_attr_required"`
	RequestorIDRequired    *bool     `json:"requestor_id_required"`
}

// ToDomain converts the entry into a domain platform, without its services.
func (p Platform) ToDomain() domain.Platform {
	return domain.Platform{
		ID:                  p.ID,
		Name:                p.Name,
		Abbrev:              p.Abbrev,
		ContentProviderName: p.ContentProviderName,
		Website:             p.Website,
		Reports:             p.Reports,
	}
}

// ToDomain converts the entry into a domain service linked to platformID.
func (s SushiService) ToDomain(platformID uuid.UUID) domain.SushiService {
	return domain.SushiService{
		ID:                     s.ID,
		CounterRelease:         s.CounterRelease,
		URL:                    s.URL,
		PlatformID:             &platformID,
		IPAddressAuthorization: s.IPAddressAuthorization,
		APIKeyRequired:         s.APIKeyRequired,
		PlatformAttrRequired:   s.PlatformAttrRequired,
		RequestorIDRequired:    s.RequestorIDRequired,
	}
}

// Client reads the registry.
//
//go:generate mockgen -package mockregistry -source=client.go -destination=mock/mockregistry.go *
type Client interface {
	Platforms(ctx context.Context) ([]Platform, error)
	// SushiService fetches the service described at the registry URL u.
	SushiService(ctx context.Context, u string) (*SushiService, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	validate   *validator.Validate
}

// New returns a Client for the registry at baseURL, e.g. https://registry.countermetrics.org.
func New(httpClient *http.Client, baseURL string) Client {
	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/") + "/api/v1",
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (c *client) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned non OK status code (%d)", u, resp.StatusCode)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode response of %s: %w", u, err)
	}

	return nil
}

func (c *client) Platforms(ctx context.Context) ([]Platform, error) {
	var platforms []Platform
	if err := c.get(ctx, c.baseURL+"/platform/", &platforms); err != nil {
		return nil, err
	}
	for i := range platforms {
		if err := c.validate.Struct(&platforms[i]); err != nil {
			return nil, fmt.Errorf("invalid platform %s: %w", platforms[i].ID, err)
		}
	}

	return platforms, nil
}

func (c *client) SushiService(ctx context.Context, u string) (*SushiService, error) {
	var service SushiService
	if err := c.get(ctx, u, &service); err != nil {
		return nil, fmt.Errorf("could not download sushi service: %w", err)
	}
	if err := c.validate.Struct(&service); err != nil {
		return nil, fmt.Errorf("invalid sushi service %s: %w", u, err)
	}

	return &service, nil
}

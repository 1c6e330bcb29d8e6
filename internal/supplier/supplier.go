// Package supplier fetches supplier-published catalog feeds: an index of
// suppliers, each pointing at a category-structured products document and a
// display theme config. The package only fetches and decodes; normalization
// is delegated to the catalog package and state to the caller's Store.
package supplier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ingrediq/catalog/internal/catalog"
)

// DefaultFetchTimeout bounds a single feed request.
const DefaultFetchTimeout = 15 * time.Second

// Supplier is one entry of the supplier index.
type Supplier struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProductsFile string `json:"products_file"`
	ConfigFile   string `json:"config_file"`
}

// Theme holds the display-theming fields a supplier config carries. The
// zero-valued fields are filled with catalog-wide defaults on decode.
type Theme struct {
	SupplierName   string `json:"supplier_name"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	TertiaryColor  string `json:"tertiary_color"`
	LogoURL        string `json:"logo_url"`
	ContactEmail   string `json:"contact_email"`
	ContactPhone   string `json:"contact_phone"`
	Website        string `json:"website"`
}

// Theme defaults applied when a supplier config omits a field.
const (
	defaultThemeName      = "Supplier Catalog"
	defaultPrimaryColor   = "#1e40af"
	defaultSecondaryColor = "#047857"
	defaultTertiaryColor  = "#d97706"
)

// Client fetches supplier feed documents relative to a base URL.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a feed client. timeout <= 0 uses DefaultFetchTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// Index fetches the supplier index (suppliers.json at the feed root).
func (c *Client) Index(ctx context.Context) ([]Supplier, error) {
	data, err := c.fetch(ctx, "suppliers.json")
	if err != nil {
		return nil, err
	}

	var suppliers []Supplier
	if err := json.Unmarshal(data, &suppliers); err != nil {
		return nil, fmt.Errorf("invalid JSON in supplier index: %w", err)
	}
	return suppliers, nil
}

// Find returns the index entry for id.
func (c *Client) Find(ctx context.Context, id string) (Supplier, error) {
	suppliers, err := c.Index(ctx)
	if err != nil {
		return Supplier{}, err
	}
	for _, s := range suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return Supplier{}, fmt.Errorf("supplier not found: %s", id)
}

// Products fetches and normalizes a supplier's products document. Feeds
// usually publish the category-structured shape, but any document
// catalog.ParseJSON accepts (a flat array included) is ingestible.
func (c *Client) Products(ctx context.Context, s Supplier) ([]catalog.Product, error) {
	data, err := c.fetch(ctx, s.ProductsFile)
	if err != nil {
		return nil, err
	}
	return catalog.ParseJSON(data)
}

// Theme fetches a supplier's display config and applies defaults for any
// missing field. Theming is display-only; a partially filled config is fine.
func (c *Client) Theme(ctx context.Context, s Supplier) (Theme, error) {
	data, err := c.fetch(ctx, s.ConfigFile)
	if err != nil {
		return Theme{}, err
	}

	var theme Theme
	if err := json.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("invalid JSON in supplier config: %w", err)
	}

	if theme.SupplierName == "" {
		theme.SupplierName = defaultThemeName
	}
	if theme.PrimaryColor == "" {
		theme.PrimaryColor = defaultPrimaryColor
	}
	if theme.SecondaryColor == "" {
		theme.SecondaryColor = defaultSecondaryColor
	}
	if theme.TertiaryColor == "" {
		theme.TertiaryColor = defaultTertiaryColor
	}
	return theme, nil
}

// fetch performs one GET against the feed. Non-2xx responses are transport
// failures: the ingestion aborts and the caller's store is left untouched.
func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	url := c.base + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

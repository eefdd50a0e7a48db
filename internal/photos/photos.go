package photos

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/bytedance/sonic"
)

// imagePattern matches the file names shown in the strip. Names are
// lowercased before matching.
const imagePattern = "*.{jpg,jpeg,png,gif}"

// maxListingSize bounds how much of a listing response is read.
const maxListingSize = 2 << 20

// listingItem is one entry of a directory-listing response.
type listingItem struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// Photo is one image file from the listing.
type Photo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Client fetches a directory listing and keeps the image files.
type Client struct {
	ListingURL string
	HTTP       *http.Client
}

// NewClient returns a Client for the given listing URL.
func NewClient(listingURL string) *Client {
	return &Client{
		ListingURL: listingURL,
		HTTP:       &http.Client{Timeout: 15 * time.Second},
	}
}

// IsImage reports whether name has an image extension, ignoring case.
func IsImage(name string) bool {
	ok, err := doublestar.Match(imagePattern, strings.ToLower(name))
	return err == nil && ok
}

// List fetches the listing and returns its image files in listing order.
func (c *Client) List(ctx context.Context) ([]Photo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ListingURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building listing request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching photo listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching photo listing: %s returned %s", c.ListingURL, resp.Status)
	}

	var items []listingItem
	if err := sonic.ConfigDefault.NewDecoder(io.LimitReader(resp.Body, maxListingSize)).Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding photo listing: %w", err)
	}
	return filter(items), nil
}

// filter keeps file entries with image names and a download URL.
func filter(items []listingItem) []Photo {
	photos := make([]Photo, 0, len(items))
	for _, it := range items {
		if it.Type != "" && it.Type != "file" {
			continue
		}
		if it.DownloadURL == "" || !IsImage(it.Name) {
			continue
		}
		photos = append(photos, Photo{Name: it.Name, URL: it.DownloadURL})
	}
	return photos
}

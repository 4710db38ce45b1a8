package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Client is an HTTP client for the track lookup service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new lookup client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// lookupResponse is the wire shape returned by the lookup service
type lookupResponse struct {
	Track struct {
		Name       string  `json:"name"`
		Year       string  `json:"year"`
		Explicit   bool    `json:"explicit"`
		Popularity float64 `json:"popularity"`
		ImageID    string  `json:"image_id"`
		IsCover    bool    `json:"is_cover"`
		OriginalID *string `json:"original_id"`
	} `json:"track"`
	Artists []struct {
		Name    string   `json:"name"`
		ImageID string   `json:"image_id"`
		Genres  []string `json:"genres"`
	} `json:"artists"`
	Signals struct {
		Views      int64     `json:"views"`
		PostedDate time.Time `json:"posted_date"`
	} `json:"signals"`
}

// Resolve looks up track metadata for a media URL
func (c *Client) Resolve(ctx context.Context, mediaURL string) (*TrackMetadata, error) {
	endpoint := fmt.Sprintf("%s/v1/tracks?url=%s", c.baseURL, url.QueryEscape(mediaURL))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, &ResolutionError{URL: mediaURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ResolutionError{URL: mediaURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ResolutionError{URL: mediaURL, Err: fmt.Errorf("lookup service returned HTTP %d", resp.StatusCode)}
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &ResolutionError{URL: mediaURL, Err: fmt.Errorf("malformed lookup response: %w", err)}
	}
	if body.Track.Name == "" {
		return nil, &ResolutionError{URL: mediaURL, Err: fmt.Errorf("lookup response has no track")}
	}

	meta := &TrackMetadata{
		Track: Track{
			Name:       body.Track.Name,
			Year:       body.Track.Year,
			Explicit:   body.Track.Explicit,
			Popularity: body.Track.Popularity,
			ImageID:    body.Track.ImageID,
			IsCover:    body.Track.IsCover,
			OriginalID: body.Track.OriginalID,
		},
		Signals: Signals{
			Views:    body.Signals.Views,
			PostedAt: body.Signals.PostedDate,
		},
	}
	for _, a := range body.Artists {
		meta.Artists = append(meta.Artists, ArtistMetadata{
			Name:    a.Name,
			ImageID: a.ImageID,
			Genres:  a.Genres,
		})
	}

	// Best effort: when the lookup has no artwork, fall back to the media
	// page's Open Graph image.
	if meta.Track.ImageID == "" {
		if img := c.scrapeOGImage(ctx, mediaURL); img != "" {
			meta.Track.ImageID = img
		}
	}

	return meta, nil
}

// scrapeOGImage fetches the media page and extracts its og:image meta tag.
// Failures return an empty string; artwork is optional.
func (c *Client) scrapeOGImage(ctx context.Context, pageURL string) string {
	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return ""
	}

	var image string
	findMetaTags(doc, func(property, content string) {
		if property == "og:image" && image == "" {
			image = content
		}
	})
	return image
}

// findMetaTags walks the document calling back for each meta tag with a
// property or name attribute
func findMetaTags(n *html.Node, callback func(property, content string)) {
	if n.Type == html.ElementNode && n.Data == "meta" {
		var property, content string
		for _, attr := range n.Attr {
			switch attr.Key {
			case "property", "name":
				property = attr.Val
			case "content":
				content = attr.Val
			}
		}
		if property != "" {
			callback(property, content)
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		findMetaTags(child, callback)
	}
}

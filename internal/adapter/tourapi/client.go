// Package tourapi adapts the Korean tourism open-data service
// (KorService2) to the domain event types. The festival search returns a
// nationwide list for the current month; per-event details are stitched
// together from four related endpoints, degrading gracefully when the
// optional ones fail.
package tourapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/galraemalrae/weathertravel/internal/domain"
	"github.com/galraemalrae/weathertravel/internal/observability"
)

var kst = time.FixedZone("KST", 9*60*60)

// Client calls the KorService2 open-data API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	rows       int
	logger     *slog.Logger
	metrics    *observability.Metrics
	clock      clockwork.Clock
}

// NewClient creates a KorService2 client. rows bounds the festival list
// size per search.
func NewClient(apiKey string, timeout time.Duration, rows int, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    "https://apis.data.go.kr/B551011/KorService2",
		rows:       rows,
		logger:     logger,
		metrics:    metrics,
		clock:      clock,
	}
}

// SearchFestivals fetches the nationwide festival list for the window
// from the first of the current month through today (KST), the same
// window the original site shows.
func (c *Client) SearchFestivals(ctx context.Context) ([]domain.EventRecord, error) {
	now := c.clock.Now().In(kst)
	start := fmt.Sprintf("%04d%02d01", now.Year(), int(now.Month()))
	end := now.Format("20060102")

	params := c.baseParams()
	params.Set("numOfRows", fmt.Sprintf("%d", c.rows))
	params.Set("pageNo", "1")
	params.Set("arrange", "C")
	params.Set("eventStartDate", start)
	params.Set("eventEndDate", end)

	items, err := c.fetchItems(ctx, "/searchFestival2", params, "search")
	if err != nil {
		return nil, err
	}

	events := make([]domain.EventRecord, 0, len(items))
	for _, it := range items {
		events = append(events, domain.EventRecord{
			Title:       it.Title,
			StartDate:   it.EventStartDate,
			EndDate:     it.EventEndDate,
			Address:     it.Addr1,
			Description: it.Overview,
			ImageURL:    firstNonEmpty(it.FirstImage, it.FirstImage2),
			ContentID:   it.ContentID,
			Tel:         it.Tel,
			Homepage:    it.Homepage,
			Category:    CategoryName(it.Cat1),
		})
	}
	return events, nil
}

// EventDetail aggregates one event from the four detail endpoints.
// detailCommon1 is required; intro, repeat-info, and image failures are
// logged and skipped so a partial detail page still renders.
func (c *Client) EventDetail(ctx context.Context, contentID string) (domain.EventRecord, error) {
	common := c.baseParams()
	common.Set("contentId", contentID)
	common.Set("defaultYN", "Y")
	common.Set("firstImageYN", "Y")
	common.Set("areacodeYN", "Y")
	common.Set("catcodeYN", "Y")
	common.Set("addrinfoYN", "Y")
	common.Set("mapinfoYN", "Y")
	common.Set("overviewYN", "Y")

	items, err := c.fetchItems(ctx, "/detailCommon1", common, "detail")
	if err != nil {
		return domain.EventRecord{}, err
	}
	if len(items) == 0 {
		return domain.EventRecord{}, fmt.Errorf("tourapi: no detail for content %s", contentID)
	}
	it := items[0]

	event := domain.EventRecord{
		Title:       it.Title,
		StartDate:   it.EventStartDate,
		EndDate:     it.EventEndDate,
		Address:     it.Addr1,
		Overview:    it.Overview,
		ImageURL:    firstNonEmpty(it.FirstImage, it.FirstImage2),
		ContentID:   it.ContentID,
		Tel:         it.Tel,
		Homepage:    it.Homepage,
		Category:    CategoryName(it.Cat1),
	}

	if it.ContentTypeID != "" {
		c.mergeIntro(ctx, &event, contentID, it.ContentTypeID)
		c.mergeInfo(ctx, &event, contentID, it.ContentTypeID)
	}
	c.mergeImages(ctx, &event, contentID)

	return event, nil
}

func (c *Client) mergeIntro(ctx context.Context, event *domain.EventRecord, contentID, contentTypeID string) {
	params := c.baseParams()
	params.Set("contentId", contentID)
	params.Set("contentTypeId", contentTypeID)

	items, err := c.fetchItems(ctx, "/detailIntro1", params, "intro")
	if err != nil || len(items) == 0 {
		if err != nil {
			c.logger.Warn("event intro fetch failed", "content_id", contentID, "error", err)
		}
		return
	}
	it := items[0]
	event.Sponsor = firstNonEmpty(it.Sponsor1, it.Sponsor2)
	event.Fee = firstNonEmpty(it.UseFee, it.UseFeeInfo)
	event.Parking = it.Parking
}

func (c *Client) mergeInfo(ctx context.Context, event *domain.EventRecord, contentID, contentTypeID string) {
	params := c.baseParams()
	params.Set("contentId", contentID)
	params.Set("contentTypeId", contentTypeID)

	items, err := c.fetchItems(ctx, "/detailInfo1", params, "info")
	if err != nil || len(items) == 0 {
		if err != nil {
			c.logger.Warn("event repeat-info fetch failed", "content_id", contentID, "error", err)
		}
		return
	}
	it := items[0]
	event.OperatingHours = it.UseTime
	event.ClosedDays = it.RestDate
}

func (c *Client) mergeImages(ctx context.Context, event *domain.EventRecord, contentID string) {
	params := c.baseParams()
	params.Set("contentId", contentID)
	params.Set("imageYN", "Y")
	params.Set("subImageYN", "Y")

	items, err := c.fetchItems(ctx, "/detailImage1", params, "images")
	if err != nil {
		c.logger.Warn("event image fetch failed", "content_id", contentID, "error", err)
		return
	}
	for _, it := range items {
		if u := firstNonEmpty(it.OriginImgURL, it.SmallImageURL); u != "" {
			event.Images = append(event.Images, u)
		}
	}
}

func (c *Client) baseParams() url.Values {
	return url.Values{
		"serviceKey": {c.apiKey},
		"MobileOS":   {"ETC"},
		"MobileApp":  {"WeatherTravel"},
		"_type":      {"json"},
	}
}

func (c *Client) fetchItems(ctx context.Context, path string, params url.Values, operation string) ([]apiItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderDuration.WithLabelValues("tourapi", operation).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues("tourapi", operation, "error").Inc()
		return nil, fmt.Errorf("%s request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.ProviderRequests.WithLabelValues("tourapi", operation, "error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tourapi error: status %d: %s", resp.StatusCode, body)
	}

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.metrics.ProviderRequests.WithLabelValues("tourapi", operation, "error").Inc()
		return nil, fmt.Errorf("decode response: %w", err)
	}

	items := envelope.items()
	if len(items) == 0 {
		c.metrics.ProviderRequests.WithLabelValues("tourapi", operation, "empty").Inc()
		return nil, nil
	}
	c.metrics.ProviderRequests.WithLabelValues("tourapi", operation, "success").Inc()
	return items, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// KorService2 response types. The API encodes "no results" as an empty
// string where the items object would be, so that field stays raw until
// we know it is an object.

type apiResponse struct {
	Response struct {
		Body struct {
			Items json.RawMessage `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

func (r apiResponse) items() []apiItem {
	raw := r.Response.Body.Items
	if len(raw) == 0 {
		return nil
	}
	var wrapper struct {
		Item []apiItem `json:"item"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		// "items": "" is the provider's empty-result sentinel.
		return nil
	}
	return wrapper.Item
}

type apiItem struct {
	Title          string `json:"title"`
	EventStartDate string `json:"eventstartdate"`
	EventEndDate   string `json:"eventenddate"`
	Addr1          string `json:"addr1"`
	Overview       string `json:"overview"`
	FirstImage     string `json:"firstimage"`
	FirstImage2    string `json:"firstimage2"`
	ContentID      string `json:"contentid"`
	ContentTypeID  string `json:"contenttypeid"`
	Tel            string `json:"tel"`
	Homepage       string `json:"homepage"`
	Cat1           string `json:"cat1"`

	// detailIntro1 fields.
	Sponsor1   string `json:"sponsor1"`
	Sponsor2   string `json:"sponsor2"`
	UseFee     string `json:"usefee"`
	UseFeeInfo string `json:"usefeeinfo"`
	Parking    string `json:"parking"`

	// detailInfo1 fields.
	UseTime  string `json:"usetime"`
	RestDate string `json:"restdate"`

	// detailImage1 fields.
	OriginImgURL  string `json:"originimgurl"`
	SmallImageURL string `json:"smallimageurl"`
}

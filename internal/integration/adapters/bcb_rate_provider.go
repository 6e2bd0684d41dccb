package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/charmap"

	"github.com/dindin-invest/backend/internal/application/adapter"
)

const (
	DefaultBCBBaseURL = "https://api.bcb.gov.br/dados/serie"
	sgsDateLayout     = "02/01/2006"
)

// BCBRateProvider fetches series from the Banco Central SGS service in XML format.
type BCBRateProvider struct {
	baseURL string
	client  *http.Client
}

// NewBCBRateProvider initializes a new SGS client.
func NewBCBRateProvider(baseURL string, timeout time.Duration) *BCBRateProvider {
	if baseURL == "" {
		baseURL = DefaultBCBBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &BCBRateProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Latest returns the most recent observation of an SGS series.
func (c *BCBRateProvider) Latest(ctx context.Context, seriesCode int) (*adapter.RateObservation, error) {
	url := fmt.Sprintf("%s/bcdata.sgs.%d/dados/ultimos/1?formato=xml", c.baseURL, seriesCode)

	body, err := c.sendRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	observations, err := parseSeriesXML(body)
	if err != nil {
		return nil, fmt.Errorf("series %d: %w", seriesCode, err)
	}
	return &observations[len(observations)-1], nil
}

func (c *BCBRateProvider) sendRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// parseSeriesXML extracts the observations of an SGS XML document, oldest first.
// Every element holding both a data and a valor child is one observation.
func parseSeriesXML(raw []byte) ([]adapter.RateObservation, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	var out []adapter.RateObservation
	for _, el := range doc.FindElements("//*[data]") {
		dateEl := el.FindElement("./data")
		valueEl := el.FindElement("./valor")
		if dateEl == nil || valueEl == nil {
			continue
		}

		date, err := time.Parse(sgsDateLayout, strings.TrimSpace(dateEl.Text()))
		if err != nil {
			return nil, fmt.Errorf("failed to parse date %q: %w", dateEl.Text(), err)
		}
		value, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(valueEl.Text()), ",", "."), 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %q: %w", valueEl.Text(), err)
		}

		out = append(out, adapter.RateObservation{Date: date, Value: value})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no series data found in XML")
	}
	return out, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(label) {
	case "iso-8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(input), nil
	case "utf-8", "utf8", "":
		return input, nil
	}
	return nil, fmt.Errorf("unsupported charset %q", label)
}

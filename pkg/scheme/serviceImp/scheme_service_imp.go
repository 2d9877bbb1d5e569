package serviceImp

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"agrilink/entities"
	repo "agrilink/pkg/scheme/repository"
	"agrilink/pkg/scheme/service"
)

type schemeSvc struct{ r repo.SchemeRepository }

func New(r repo.SchemeRepository) service.SchemeService { return &schemeSvc{r: r} }

// IngestHTML expects the portal's scheme listing markup: one
// div.scheme-item per scheme with h3 name, .provider, .category,
// .description, .benefit and data-min-acres / data-max-acres /
// data-crops attributes.
func (s *schemeSvc) IngestHTML(html, sourceURL string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, err
	}

	var schemes []entities.Scheme
	doc.Find("div.scheme-item").Each(func(_ int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Find("h3").First().Text())
		if name == "" {
			return
		}
		minAcres, _ := strconv.ParseFloat(sel.AttrOr("data-min-acres", "0"), 64)
		maxAcres, _ := strconv.ParseFloat(sel.AttrOr("data-max-acres", "0"), 64)
		schemes = append(schemes, entities.Scheme{
			Name:           name,
			Provider:       strings.TrimSpace(sel.Find(".provider").First().Text()),
			Category:       strings.TrimSpace(sel.Find(".category").First().Text()),
			Description:    strings.TrimSpace(sel.Find(".description").First().Text()),
			BenefitSummary: strings.TrimSpace(sel.Find(".benefit").First().Text()),
			MinLandAcres:   minAcres,
			MaxLandAcres:   maxAcres,
			EligibleCrops:  sel.AttrOr("data-crops", ""),
			SourceURL:      sourceURL,
		})
	})
	if len(schemes) == 0 {
		return 0, service.ErrNoSchemesFound
	}
	if err := s.r.CreateSchemes(schemes); err != nil {
		return 0, err
	}
	return len(schemes), nil
}

func (s *schemeSvc) IngestURL(url string) (int, error) {
	httpc := &http.Client{Timeout: 20 * time.Second}
	resp, err := httpc.Get(url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, err
	}
	html, err := doc.Html()
	if err != nil {
		return 0, err
	}
	return s.IngestHTML(html, url)
}

func (s *schemeSvc) Search(data entities.SchemeProfileData) ([]entities.Scheme, error) {
	all, err := s.r.ListSchemes(data.Category)
	if err != nil {
		return nil, err
	}
	out := []entities.Scheme{}
	for _, sc := range all {
		if !eligible(sc, data) {
			continue
		}
		out = append(out, sc)
	}
	return out, nil
}

func eligible(sc entities.Scheme, data entities.SchemeProfileData) bool {
	if data.LandAcres < sc.MinLandAcres {
		return false
	}
	if sc.MaxLandAcres > 0 && data.LandAcres > sc.MaxLandAcres {
		return false
	}
	if sc.EligibleCrops == "" || len(data.Crops) == 0 {
		return true
	}
	allowed := strings.Split(strings.ToLower(sc.EligibleCrops), ",")
	for _, crop := range data.Crops {
		for _, a := range allowed {
			if strings.TrimSpace(a) == strings.ToLower(strings.TrimSpace(crop)) {
				return true
			}
		}
	}
	return false
}

func (s *schemeSvc) SaveProfile(userID, profileName string, data entities.SchemeProfileData, results []entities.Scheme, isDefault bool) (*entities.SchemeProfile, error) {
	if userID == "" || strings.TrimSpace(profileName) == "" {
		return nil, service.ErrMissingProfile
	}
	p := &entities.SchemeProfile{
		UserID:        userID,
		ProfileName:   strings.TrimSpace(profileName),
		ProfileData:   data,
		SearchResults: results,
		IsDefault:     isDefault,
		IsActive:      true,
	}
	if err := s.r.UpsertProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *schemeSvc) ListProfiles(userID string) ([]entities.SchemeProfile, error) {
	return s.r.ListProfiles(userID)
}

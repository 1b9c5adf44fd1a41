package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"trip_map_system/configs"
	"trip_map_system/internal/db"
	"trip_map_system/internal/db/models"
	"trip_map_system/internal/db/repositories"
	"trip_map_system/internal/di"
	"trip_map_system/internal/geo"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func main() {
	category := flag.String("category", "", "category name (inferred from keywords when empty)")
	description := flag.String("description", "", "pin description override")
	batchFile := flag.String("batch", "", "file with one maps url per line")
	flag.Parse()

	config, err := configs.LoadPinImportToolConfig()
	logger := di.NewLogger(config.App, config.Logger)
	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}

	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}

	importer := &importer{
		pinRepository:      repositories.NewPinRepository(database),
		categoryRepository: repositories.NewCategoryRepository(database),
		client:             &http.Client{},
		logger:             logger,
	}

	var urls []string
	if *batchFile != "" {
		urls, err = readURLFile(*batchFile)
		if err != nil {
			logger.Fatalw("failed to read batch file", "error", err)
		}
	} else {
		if flag.NArg() != 1 {
			logger.Fatal("usage: pin_import_tool [-category NAME] [-description TEXT] <maps-url> | -batch FILE")
		}
		urls = []string{flag.Arg(0)}
	}

	for _, url := range urls {
		if err := importer.importPin(url, *category, *description); err != nil {
			logger.Errorw("failed to import pin", "url", url, "error", err)
		}
	}
}

func readURLFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			urls = append(urls, line)
		}
	}

	return urls, scanner.Err()
}

type importer struct {
	pinRepository      repositories.PinRepository
	categoryRepository repositories.CategoryRepository
	client             *http.Client
	logger             *zap.SugaredLogger
}

type extracted struct {
	name          string
	lat, lng      float64
	description   string
	distance      *float64
	elevationGain *float64
}

func (i *importer) importPin(url, categoryName, description string) error {
	service := geo.DetectMapsService(url)
	if service == geo.ServiceUnknown {
		return fmt.Errorf("unsupported url: %s", url)
	}

	place, err := i.extract(service, url)
	if err != nil {
		return err
	}

	if description != "" {
		place.description = description
	}

	if categoryName == "" {
		if service == geo.ServiceAllTrails {
			categoryName = "Hike"
		} else {
			categories, err := i.categoryRepository.GetMany()
			if err != nil {
				return err
			}
			names := make([]string, 0, len(categories))
			for _, category := range categories {
				names = append(names, category.Name)
			}
			categoryName = geo.InferCategory(place.name, place.description, names)
		}
	}
	if categoryName == "" {
		return fmt.Errorf("could not infer a category for %q, pass -category", place.name)
	}

	category, err := i.categoryRepository.GetOneByName(categoryName)
	if err != nil {
		return fmt.Errorf("category %q not found: %w", categoryName, err)
	}

	pin, err := i.pinRepository.Create(&models.Pin{
		Name:          place.name,
		Lat:           place.lat,
		Lng:           place.lng,
		Description:   place.description,
		CategoryID:    category.ID,
		MapsLink:      url,
		Distance:      place.distance,
		ElevationGain: place.elevationGain,
	})
	if err != nil {
		return err
	}

	i.logger.Infow("pin imported", "name", pin.Name, "category", category.Name, "lat", pin.Lat, "lng", pin.Lng)
	return nil
}

// extract follows the share link (short links redirect to the full URL)
// and pulls coordinates from the final URL or the page body.
func (i *importer) extract(service geo.MapsService, url string) (*extracted, error) {
	response, err := i.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch url: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read page: %w", err)
	}
	html := string(body)
	finalURL := response.Request.URL.String()

	place := &extracted{name: placeNameFromHTML(html, finalURL)}

	switch service {
	case geo.ServiceGoogle:
		place.lat, place.lng, err = geo.ExtractGoogleCoordinates(finalURL)
		if err != nil {
			place.lat, place.lng, err = geo.ExtractHTMLCoordinates(html)
		}
	case geo.ServiceApple:
		place.lat, place.lng, err = geo.ExtractAppleCoordinates(html)
	case geo.ServiceAllTrails:
		place.lat, place.lng, err = geo.ExtractHTMLCoordinates(html)
		place.distance, place.elevationGain = geo.ExtractTrailStats(html)
		place.description = trailDescription(place.distance, place.elevationGain)
	}
	if err != nil {
		return nil, fmt.Errorf("could not extract coordinates: %w", err)
	}

	return place, nil
}

var (
	ogTitlePattern   = regexp.MustCompile(`<meta property="og:title" content="([^"]+)"`)
	pageTitlePattern = regexp.MustCompile(`<title>([^<]+)</title>`)
)

func placeNameFromHTML(html, url string) string {
	if match := ogTitlePattern.FindStringSubmatch(html); match != nil {
		return match[1]
	}
	if match := pageTitlePattern.FindStringSubmatch(html); match != nil {
		return strings.TrimSpace(strings.Split(match[1], "|")[0])
	}

	// last resort: derive a title from the url slug
	slug := strings.Trim(url[strings.LastIndex(url, "/")+1:], "/")
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

func trailDescription(distance, elevationGain *float64) string {
	var parts []string
	if distance != nil {
		parts = append(parts, fmt.Sprintf("%.1f mi", *distance))
	}
	if elevationGain != nil {
		parts = append(parts, fmt.Sprintf("+%d ft elevation", int(*elevationGain)))
	}
	return strings.Join(parts, ", ")
}

package cli

import (
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dmitrijs2005/travelkeeper/internal/client/services"
)

const dateLayout = "2006-01-02"

// parseDateOrToday parses s as YYYY-MM-DD; an empty string means today.
func parseDateOrToday(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(dateLayout, s)
}

// parseCoordinate parses s as a float; an empty string means 0.
func parseCoordinate(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// addTravel interactively collects travel fields and registers the record.
// The travel is stored even when the server is unreachable; it is then kept
// locally as pending until a later synchronization.
func (a *App) addTravel(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}

	dateStr, err := getSimpleText(a.reader, "Enter date (YYYY-MM-DD, empty for today)", os.Stdout)
	if err != nil {
		return err
	}
	date, err := parseDateOrToday(dateStr)
	if err != nil {
		log.Printf("Invalid date: %s", err.Error())
		return err
	}

	latStr, err := getSimpleText(a.reader, "Enter latitude (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	lat, err := parseCoordinate(latStr)
	if err != nil {
		log.Printf("Invalid latitude: %s", err.Error())
		return err
	}

	lngStr, err := getSimpleText(a.reader, "Enter longitude (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	lng, err := parseCoordinate(lngStr)
	if err != nil {
		log.Printf("Invalid longitude: %s", err.Error())
		return err
	}

	in := services.RegisterTravelInput{
		Title:       title,
		Description: description,
		Date:        date,
		User:        *a.currentUser,
		Latitude:    lat,
		Longitude:   lng,
	}

	photoPath, err := getSimpleText(a.reader, "Enter photo file path (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if photoPath != "" {
		data, err := os.ReadFile(photoPath)
		if err != nil {
			log.Printf("Cannot read photo: %s", err.Error())
			return err
		}
		in.Photo = data
		in.PhotoContentType = mime.TypeByExtension(filepath.Ext(photoPath))
	}

	t, err := a.travelService.RegisterTravel(ctx, in)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Saved travel %s\n", t.ID)
	return nil
}

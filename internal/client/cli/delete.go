package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) delete(ctx context.Context) {

	id, err := getSimpleText(a.reader, "Enter travel id to delete", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.travelService.Remove(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	fmt.Println("Deleted")
}

func (a *App) show(ctx context.Context) {

	id, err := getSimpleText(a.reader, "Enter travel id to show", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	t, err := a.travelService.Get(ctx, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	fmt.Println(t.Title)
	fmt.Printf("Date: %s\n", t.Date.Format(dateLayout))
	if t.User.Name != "" {
		fmt.Printf("Author: %s\n", t.User.Name)
	}
	if t.Description != "" {
		fmt.Println(t.Description)
	}
	if t.Latitude != 0 || t.Longitude != 0 {
		fmt.Printf("Location: %f, %f\n", t.Latitude, t.Longitude)
	}
	if t.PhotoURL != "" {
		fmt.Printf("Photo: %s\n", t.PhotoURL)
	}
}

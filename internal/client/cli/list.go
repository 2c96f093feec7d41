package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/dmitrijs2005/travelkeeper/internal/client/models"
)

func formatTravel(t *models.Travel) string {
	s := fmt.Sprintf("%s  %s  %s", t.ID, t.Date.Format(dateLayout), t.Title)
	if t.User.Name != "" {
		s += "  by " + t.User.Name
	}
	if t.SyncStatus != "" && t.SyncStatus != models.SyncStatusSynced {
		s += "  [" + string(t.SyncStatus) + "]"
	}
	return s
}

func (a *App) list(ctx context.Context) {
	travels, err := a.travelService.ListAll(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	for i := range travels {
		fmt.Println(formatTravel(&travels[i]))
	}
}

func (a *App) mine(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	travels, err := a.travelService.ListByUser(ctx, a.currentUser.ID)
	if err != nil {
		log.Println(err.Error())
		return
	}

	for i := range travels {
		fmt.Println(formatTravel(&travels[i]))
	}
}

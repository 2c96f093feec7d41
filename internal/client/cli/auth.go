package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/travelkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a name, email and password and attempts to
// create a new account via the AuthService.
//
// On success the new user becomes the current user and the app switches to
// online mode. The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Register(ctx, name, email, password)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	a.currentUser = user
	a.setMode(ModeOnline)
	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate against
// the server. On success it sets the current user and switches to online
// mode; on failure the app stays logged out and travels remain reachable
// through local storage only.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		a.setMode(ModeOffline)
		return err
	}

	a.currentUser = user
	a.setMode(ModeOnline)
	log.Printf("Login successful")
	return nil
}

// Logout removes the in-memory user. Locally stored travels are kept.
func (a *App) Logout(ctx context.Context) error {
	a.currentUser = nil
	return nil
}

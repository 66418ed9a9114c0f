package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/akozlovs/bizkeeper/internal/client/remote"
	"github.com/akozlovs/bizkeeper/internal/client/route"
	"github.com/akozlovs/bizkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to create
// a new account. On success the user is logged in right away and the session
// is reconciled like a normal login.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.identity.Register(ctx, userName, string(password)); err != nil {
		log.Printf("Registration unsuccessfull: %s", err.Error())
		return err
	}

	fmt.Println("Success!")
	a.setMode(ModeOnline)
	return a.afterSignIn(ctx)
}

// Login prompts the user for credentials and tries to authenticate.
//
// If the server is unavailable the client stays signed out and switches to
// offline mode; locally cached profiles remain readable once a session was
// established earlier. On success the session is reconciled and background
// sync starts.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.identity.Login(ctx, userName, string(password)); err != nil {
		if errors.Is(err, remote.ErrUnavailable) {
			log.Printf("Server unavailable, staying offline")
			a.setMode(ModeOffline)
		} else {
			log.Printf("Login unsuccessfull: %s", err.Error())
		}
		return err
	}

	log.Printf("Login successfull")
	a.setMode(ModeOnline)
	return a.afterSignIn(ctx)
}

// afterSignIn reconciles the fresh session against the local cache and the
// server, reports an account switch if one happened, and starts background
// feature state sync.
func (a *App) afterSignIn(ctx context.Context) error {
	rt, err := a.reconciler.Reconcile(ctx, a.identity.Current())
	if err != nil {
		return err
	}

	if notice := a.reconciler.Notice(); notice != nil {
		fmt.Printf("Note: previous session on this device belonged to %s, switching accounts.\n", notice.PreviousEmail)
		a.reconciler.AcknowledgeNotice()
	}

	a.sync.SwitchProfile(ctx, a.store.ActiveID())
	a.sync.Start(ctx)

	switch a.resolveView(route.View(rt)) {
	case route.ViewDashboard:
		a.list(ctx)
	case route.ViewOnboarding:
		fmt.Println("No business profiles yet. Type 'onboard' to create one.")
	}
	return nil
}

// resolveView runs a requested view through the navigation gate.
func (a *App) resolveView(requested route.View) route.View {
	hasProfile := len(a.store.Load().Profiles) > 0
	return route.Resolve(requested, hasProfile, a.identity.Current().IsAuthenticated)
}

// Logout flushes pending feature state to the local cache, stops background
// sync and drops the session. Cached data stays on disk for the next login.
func (a *App) Logout(ctx context.Context) error {
	a.sync.Stop()
	a.sync.FlushSynchronously(ctx)

	if err := a.identity.SignOut(ctx); err != nil {
		return err
	}

	// Resets the one-shot session guard so the next login reconciles again.
	if _, err := a.reconciler.Reconcile(ctx, a.identity.Current()); err != nil {
		return err
	}

	a.store.Clear()
	fmt.Println("Logged out")
	return nil
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if snap := a.identity.Current(); snap.IsAuthenticated {
		s = snap.Email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to BizKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	for {
		fmt.Printf("bizk %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: list, onboard, edit <id>, switch <id>, delete <id>, show <domain>, set <domain>, sync, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "list":
			a.list(ctx)
		case "onboard":
			err = a.onboard(ctx)
		case "edit":
			if len(args) == 0 {
				fmt.Println("Usage: edit <id>")
				continue
			}
			err = a.edit(ctx, args[0])
		case "switch":
			if len(args) == 0 {
				fmt.Println("Usage: switch <id>")
				continue
			}
			err = a.switchProfile(ctx, args[0])
		case "delete":
			if len(args) == 0 {
				fmt.Println("Usage: delete <id>")
				continue
			}
			err = a.deleteProfile(ctx, args[0])
		case "show":
			if len(args) == 0 {
				fmt.Println("Usage: show <domain>")
				continue
			}
			err = a.showFeature(ctx, args[0])
		case "set":
			if len(args) == 0 {
				fmt.Println("Usage: set <domain>")
				continue
			}
			err = a.setFeature(ctx, args[0])
		case "sync":
			err = a.syncNow(ctx)
		case "exit", "quit":
			a.shutdown(ctx)
			fmt.Println("Bye!")
			return
		default:
			fmt.Printf("Unknown command %q, type 'help'\n", cmd)
		}

		if err != nil {
			log.Printf("Error: %s", err.Error())
		}
	}

	// input closed (Ctrl-D), same teardown as an explicit exit
	a.shutdown(ctx)
}

// shutdown stops the background sync and writes the active profile's
// in-memory feature state to the local cache before the process exits.
func (a *App) shutdown(ctx context.Context) {
	a.sync.Stop()
	a.sync.FlushSynchronously(ctx)
}

// syncNow flushes pending feature state to the local cache and, when a
// session is active, pushes the full profile list to the server.
func (a *App) syncNow(ctx context.Context) error {
	a.sync.FlushSynchronously(ctx)

	if !a.isLoggedIn() {
		fmt.Println("Flushed local cache (signed out, nothing pushed)")
		return nil
	}

	snap := a.store.Load()
	if err := a.client.PutProfiles(ctx, snap.Profiles); err != nil {
		return err
	}
	fmt.Println("Synced")
	return nil
}

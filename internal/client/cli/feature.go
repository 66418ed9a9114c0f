package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/akozlovs/bizkeeper/internal/client/models"
	"github.com/akozlovs/bizkeeper/internal/client/route"
	"github.com/akozlovs/bizkeeper/internal/common"
)

// parseDomain validates a feature domain given on the command line.
func parseDomain(arg string) (models.Domain, bool) {
	d := models.Domain(strings.ToLower(arg))
	return d, d.Valid()
}

func domainList() string {
	names := make([]string, 0, len(models.Domains()))
	for _, d := range models.Domains() {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}

// showFeature prints the stored document for one feature domain of the
// active profile.
func (a *App) showFeature(ctx context.Context, arg string) error {
	d, ok := parseDomain(arg)
	if !ok {
		fmt.Printf("Unknown domain %q. Domains: %s\n", arg, domainList())
		return nil
	}
	if v := a.resolveView(route.View(d)); v != route.View(d) {
		fmt.Printf("No active profile, redirected to %s\n", v)
		return nil
	}

	activeID := a.store.ActiveID()
	if activeID == "" {
		fmt.Println("No active profile")
		return nil
	}

	doc, err := a.sync.Load(ctx, activeID, d)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Printf("No %s state for the active profile\n", d)
			return nil
		}
		return err
	}
	if len(doc) == 0 {
		fmt.Printf("No %s state for the active profile\n", d)
		return nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, doc, "", "  "); err != nil {
		fmt.Println(string(doc))
		return nil
	}
	fmt.Println(pretty.String())
	return nil
}

// setFeature reads a JSON document from the prompt and saves it as the
// feature state of the active profile.
func (a *App) setFeature(ctx context.Context, arg string) error {
	d, ok := parseDomain(arg)
	if !ok {
		fmt.Printf("Unknown domain %q. Domains: %s\n", arg, domainList())
		return nil
	}
	if v := a.resolveView(route.View(d)); v != route.View(d) {
		fmt.Printf("No active profile, redirected to %s\n", v)
		return nil
	}

	activeID := a.store.ActiveID()
	if activeID == "" {
		fmt.Println("No active profile")
		return nil
	}

	text, err := GetMultiline(a.reader, fmt.Sprintf("Enter %s state as JSON", d), os.Stdout)
	if err != nil {
		return err
	}
	if !json.Valid([]byte(text)) {
		fmt.Println("Not valid JSON, nothing saved")
		return nil
	}

	if err := a.sync.Save(ctx, activeID, d, json.RawMessage(text)); err != nil {
		return err
	}
	fmt.Printf("Saved %s state\n", d)
	return nil
}

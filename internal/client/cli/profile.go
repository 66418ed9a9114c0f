package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/akozlovs/bizkeeper/internal/client/services"
	"github.com/akozlovs/bizkeeper/internal/common"
)

// list prints all business profiles, marking the active one.
func (a *App) list(ctx context.Context) {
	snap := a.profileSvc.List()
	if len(snap.Profiles) == 0 {
		fmt.Println("No business profiles. Type 'onboard' to create one.")
		return
	}

	fmt.Println("Business profiles:")
	for _, p := range snap.Profiles {
		marker := " "
		if p.ID == snap.ActiveID {
			marker = "*"
		}
		fmt.Printf(" %s %s  %s (%s)\n", marker, p.ID, p.Name, p.Industry)
	}
}

// promptProfileInput collects profile fields from the user. Existing values
// are shown as defaults and kept when the user enters an empty line.
func (a *App) promptProfileInput(defaults services.ProfileInput) (services.ProfileInput, error) {
	fields := []struct {
		prompt string
		value  *string
	}{
		{"Business name", &defaults.Name},
		{"Industry", &defaults.Industry},
		{"Description", &defaults.Description},
		{"Target audience", &defaults.TargetAudience},
		{"Brand voice", &defaults.BrandVoice},
		{"Goals", &defaults.Goals},
		{"Website", &defaults.Website},
	}

	for _, f := range fields {
		prompt := f.prompt
		if *f.value != "" {
			prompt = fmt.Sprintf("%s [%s]", f.prompt, *f.value)
		}
		v, err := getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return defaults, err
		}
		if v != "" {
			*f.value = v
		}
	}
	return defaults, nil
}

// onboard creates a new business profile from interactive input.
func (a *App) onboard(ctx context.Context) error {
	in, err := a.promptProfileInput(services.ProfileInput{})
	if err != nil {
		return err
	}
	if in.Name == "" {
		fmt.Println("Business name is required")
		return nil
	}

	p, err := a.profileSvc.Onboard(ctx, in)
	if err != nil {
		return err
	}

	fmt.Printf("Created profile %s (%s)\n", p.Name, p.ID)
	return nil
}

// edit updates an existing profile, prefilling the prompts with its
// current values.
func (a *App) edit(ctx context.Context, id string) error {
	snap := a.profileSvc.List()
	var current services.ProfileInput
	found := false
	for _, p := range snap.Profiles {
		if p.ID == id {
			current = services.ProfileInput{
				Name:           p.Name,
				Industry:       p.Industry,
				Description:    p.Description,
				TargetAudience: p.TargetAudience,
				BrandVoice:     p.BrandVoice,
				Goals:          p.Goals,
				Website:        p.Website,
			}
			found = true
			break
		}
	}
	if !found {
		fmt.Printf("Profile %s not found\n", id)
		return nil
	}

	in, err := a.promptProfileInput(current)
	if err != nil {
		return err
	}

	p, err := a.profileSvc.Update(ctx, id, in)
	if err != nil {
		return err
	}

	fmt.Printf("Updated profile %s\n", p.Name)
	return nil
}

// switchProfile makes the profile with the given id active.
func (a *App) switchProfile(ctx context.Context, id string) error {
	if err := a.profileSvc.Switch(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Printf("Profile %s not found\n", id)
			return nil
		}
		return err
	}
	fmt.Printf("Active profile is now %s\n", id)
	return nil
}

// deleteProfile removes a profile and its cached feature state.
func (a *App) deleteProfile(ctx context.Context, id string) error {
	if err := a.profileSvc.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Printf("Profile %s not found\n", id)
			return nil
		}
		return err
	}
	fmt.Printf("Deleted profile %s\n", id)
	return nil
}

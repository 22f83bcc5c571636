package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/tenantline/internal/client/client"
	"github.com/dmitrijs2005/tenantline/internal/common"
	"github.com/dmitrijs2005/tenantline/internal/entitlements"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, a marketplace role and a password and
// creates the account. The password is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	roles := make([]string, 0, len(entitlements.Roles))
	for _, r := range entitlements.Roles {
		roles = append(roles, string(r))
	}
	role, err := getSimpleText(a.reader, "Enter role ("+strings.Join(roles, ", ")+")", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, role, password); err != nil {
		return err
	}

	a.printf("Success!\n")
	return nil
}

// Login prompts for credentials and authenticates.
//
// Online login is tried first. If the server is unavailable it falls back to
// offline login against locally cached data, and the profile of the last
// online login is used for the entitlement gate. The resulting mode is:
//   - ModeOnline if online login succeeds,
//   - ModeOffline if offline login succeeds,
//   - ModeDisabled if both fail.
//
// Messaging is activated only online and only when the profile is entitled
// to direct messaging.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	masterKey, profile, err := a.authService.OnlineLogin(ctx, userName, password)
	switch {
	case err == nil:
		a.log.Info(ctx, "login successful", "user", userName)
		a.setMode(ModeOnline)

	case errors.Is(err, client.ErrUnavailable):
		a.log.Warn(ctx, "server unavailable, trying offline login")
		masterKey, err = a.authService.OfflineLogin(ctx, userName, password)
		if err != nil {
			a.setMode(ModeDisabled)
			return fmt.Errorf("offline login: %w", err)
		}
		a.log.Info(ctx, "offline login successful", "user", userName)
		a.setMode(ModeOffline)

		profile, err = a.session.LoadProfile(ctx)
		if err != nil {
			a.log.Warn(ctx, "cached profile unavailable", "error", err)
		}

	default:
		return err
	}

	a.closeMessenger()
	a.masterKey = masterKey
	a.userName = userName
	a.profile = profile

	if _, err := a.session.LoadPassphrase(ctx); err != nil {
		a.log.Warn(ctx, "passphrase not restored", "error", err)
	}

	if a.Mode() == ModeOnline {
		if _, err := a.messaging(ctx); err != nil {
			a.printf("%v\n", err)
		}
	}
	return nil
}

// Logout clears locally cached auth data and the in-memory session. The
// messaging passphrase is kept.
func (a *App) Logout(ctx context.Context) error {
	a.closeMessenger()
	if err := a.authService.ClearOfflineData(ctx); err != nil {
		return err
	}
	common.WipeByteArray(a.masterKey)
	a.masterKey = nil
	a.userName = ""
	a.profile = nil
	return nil
}

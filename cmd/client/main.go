// Command client is a small command line front end of the volunteer hub API.
//
// Usage:
//
//	client [-s address] [-timeout 10s] <command> [args]
//
// Commands:
//
//	version
//	login <username> <password> [command [args]]
//	me
//	events
//	event <id>
//
// A session only lives for one invocation, so login is followed by the
// command to run with it, e.g. "client login bob pw123 events".
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-volunteer-hub/internal/adapter"
	"github.com/MKhiriev/go-volunteer-hub/internal/config"
	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/models"
)

var errUsage = errors.New("usage: client [-s address] [-timeout 10s] version | login <username> <password> [events | event <id> | me]")

func main() {
	log := logger.NewLogger("volunteer-hub-client")
	if err := logger.SetLevel("warn"); err != nil {
		log.Fatal().Err(err).Msg("set log level")
	}

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	if err = run(context.Background(), api, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "version":
		version, err := api.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Println(version)
		return nil

	case "login":
		if len(args) < 3 {
			return errUsage
		}
		user, err := api.Login(ctx, models.LoginRequest{Username: args[1], Password: args[2]})
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s (%s)\n", user.Username, user.Role)
		if len(args) == 3 {
			return nil
		}
		defer api.Logout(ctx)
		return run(ctx, api, args[3:])

	case "me":
		user, err := api.CurrentUser(ctx)
		if err != nil {
			return err
		}
		fmt.Println(renderUser(user))
		return nil

	case "events":
		events, err := api.ListEvents(ctx)
		if err != nil {
			return err
		}
		fmt.Println(renderEvents(events))
		return nil

	case "event":
		if len(args) < 2 {
			return errUsage
		}
		event, err := api.GetEvent(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Println(renderEvents([]models.Event{event}))
		return nil
	}

	return errUsage
}
